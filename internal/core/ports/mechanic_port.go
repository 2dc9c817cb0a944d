package ports

import (
	"context"

	"github.com/mechshop/autoshop-api/internal/core/domain"
)

type MechanicRepository interface {
	CreateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error)
	GetMechanicByID(ctx context.Context, id int64) (*domain.Mechanic, error)
	GetMechanicByEmail(ctx context.Context, email string) (*domain.Mechanic, error)
	ListMechanics(ctx context.Context, limit, offset int) ([]*domain.Mechanic, error)
	UpdateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error)
	DeleteMechanic(ctx context.Context, id int64) error
	RankMechanicsByTicketCount(ctx context.Context) ([]*domain.MechanicRank, error)
}

type MechanicService interface {
	CreateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error)
	GetMechanicByID(ctx context.Context, id int64) (*domain.Mechanic, error)
	ListMechanics(ctx context.Context, page, perPage int) ([]*domain.Mechanic, error)
	UpdateMechanic(ctx context.Context, id int64, patch *domain.MechanicPatch) (*domain.Mechanic, error)
	DeleteMechanic(ctx context.Context, id int64) error
	MostActiveMechanics(ctx context.Context) ([]*domain.MechanicRank, error)
}
