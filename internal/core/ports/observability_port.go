package ports

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

type LoggerPort interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// CachePort reads and writes response bodies with a bounded TTL. Entries
// are never invalidated explicitly; they age out.
type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
}
