package ports

import (
	"context"

	"github.com/mechshop/autoshop-api/internal/core/domain"
)

type PartRepository interface {
	CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error)
	GetPartByID(ctx context.Context, id int64) (*domain.Part, error)
	ListParts(ctx context.Context, limit, offset int) ([]*domain.Part, error)
	UpdatePart(ctx context.Context, part *domain.Part) (*domain.Part, error)
	DeletePart(ctx context.Context, id int64) error
}

type PartService interface {
	CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error)
	GetPartByID(ctx context.Context, id int64) (*domain.Part, error)
	ListParts(ctx context.Context, page, perPage int) ([]*domain.Part, error)
	UpdatePart(ctx context.Context, id int64, patch *domain.PartPatch) (*domain.Part, error)
	DeletePart(ctx context.Context, id int64) error
}
