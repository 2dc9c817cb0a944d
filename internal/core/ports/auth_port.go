package ports

import "github.com/mechshop/autoshop-api/internal/core/domain"

type TokenService interface {
	IssueToken(customerID int64) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}
