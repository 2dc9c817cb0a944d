package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mechshop/autoshop-api/internal/core/domain"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type PartService struct {
	partRepo ports.PartRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewPartService(
	partRepo ports.PartRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *PartService {
	return &PartService{
		partRepo: partRepo,
		logger:   logger,
		validate: validate,
	}
}

func (s *PartService) CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	if err := s.validate.Struct(part); err != nil {
		s.logger.Error("Part validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	created, err := s.partRepo.CreatePart(ctx, part)
	if err != nil {
		s.logger.Error("Failed to create part", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Part created successfully", map[string]interface{}{
		"part_id": created.ID,
	})
	return created, nil
}

func (s *PartService) GetPartByID(ctx context.Context, id int64) (*domain.Part, error) {
	part, err := s.partRepo.GetPartByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get part", map[string]interface{}{
			"error":   err.Error(),
			"part_id": id,
		})
		return nil, err
	}
	return part, nil
}

func (s *PartService) ListParts(ctx context.Context, page, perPage int) ([]*domain.Part, error) {
	limit, offset := pageWindow(page, perPage)
	parts, err := s.partRepo.ListParts(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list parts", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return parts, nil
}

func (s *PartService) UpdatePart(ctx context.Context, id int64, patch *domain.PartPatch) (*domain.Part, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	part, err := s.partRepo.GetPartByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		part.Name = *patch.Name
	}
	if patch.Price != nil {
		part.Price = *patch.Price
	}

	updated, err := s.partRepo.UpdatePart(ctx, part)
	if err != nil {
		s.logger.Error("Failed to update part", map[string]interface{}{
			"error":   err.Error(),
			"part_id": id,
		})
		return nil, err
	}

	s.logger.Info("Part updated successfully", map[string]interface{}{
		"part_id": id,
	})
	return updated, nil
}

func (s *PartService) DeletePart(ctx context.Context, id int64) error {
	if err := s.partRepo.DeletePart(ctx, id); err != nil {
		s.logger.Error("Failed to delete part", map[string]interface{}{
			"error":   err.Error(),
			"part_id": id,
		})
		return err
	}

	s.logger.Info("Part deleted successfully", map[string]interface{}{
		"part_id": id,
	})
	return nil
}
