package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type cachedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheMiddleware serves listing responses from redis for the configured
// TTL. Writes do not invalidate entries; stale reads inside the window are
// an accepted trade-off.
func CacheMiddleware(cache ports.CachePort, logger ports.LoggerPort, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := fmt.Sprintf("respcache:%s?%s", c.Request.URL.Path, c.Request.URL.RawQuery)
		if body, err := cache.Get(c.Request.Context(), key); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &cachedWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			if err := cache.Set(c.Request.Context(), key, writer.body.Bytes(), ttl); err != nil {
				logger.Warn("Failed to cache response", map[string]interface{}{
					"error": err.Error(),
					"key":   key,
				})
			}
		}
	}
}
