package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mechshop/autoshop-api/internal/core/domain"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type MechanicService struct {
	mechanicRepo ports.MechanicRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewMechanicService(
	mechanicRepo ports.MechanicRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *MechanicService {
	return &MechanicService{
		mechanicRepo: mechanicRepo,
		logger:       logger,
		validate:     validate,
	}
}

func (s *MechanicService) CreateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error) {
	if err := s.validate.Struct(mechanic); err != nil {
		s.logger.Error("Mechanic validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.mechanicRepo.GetMechanicByEmail(ctx, mechanic.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrMechanicNotFound) {
		return nil, err
	}

	created, err := s.mechanicRepo.CreateMechanic(ctx, mechanic)
	if err != nil {
		s.logger.Error("Failed to create mechanic", map[string]interface{}{
			"error": err.Error(),
			"email": mechanic.Email,
		})
		return nil, err
	}

	s.logger.Info("Mechanic created successfully", map[string]interface{}{
		"mechanic_id": created.ID,
	})
	return created, nil
}

func (s *MechanicService) GetMechanicByID(ctx context.Context, id int64) (*domain.Mechanic, error) {
	mechanic, err := s.mechanicRepo.GetMechanicByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get mechanic", map[string]interface{}{
			"error":       err.Error(),
			"mechanic_id": id,
		})
		return nil, err
	}
	return mechanic, nil
}

func (s *MechanicService) ListMechanics(ctx context.Context, page, perPage int) ([]*domain.Mechanic, error) {
	limit, offset := pageWindow(page, perPage)
	mechanics, err := s.mechanicRepo.ListMechanics(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list mechanics", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return mechanics, nil
}

func (s *MechanicService) UpdateMechanic(ctx context.Context, id int64, patch *domain.MechanicPatch) (*domain.Mechanic, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	mechanic, err := s.mechanicRepo.GetMechanicByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		mechanic.Name = *patch.Name
	}
	if patch.Email != nil {
		mechanic.Email = *patch.Email
	}
	if patch.Phone != nil {
		mechanic.Phone = *patch.Phone
	}
	if patch.Salary != nil {
		mechanic.Salary = *patch.Salary
	}

	updated, err := s.mechanicRepo.UpdateMechanic(ctx, mechanic)
	if err != nil {
		s.logger.Error("Failed to update mechanic", map[string]interface{}{
			"error":       err.Error(),
			"mechanic_id": id,
		})
		return nil, err
	}

	s.logger.Info("Mechanic updated successfully", map[string]interface{}{
		"mechanic_id": id,
	})
	return updated, nil
}

func (s *MechanicService) DeleteMechanic(ctx context.Context, id int64) error {
	if err := s.mechanicRepo.DeleteMechanic(ctx, id); err != nil {
		s.logger.Error("Failed to delete mechanic", map[string]interface{}{
			"error":       err.Error(),
			"mechanic_id": id,
		})
		return err
	}

	s.logger.Info("Mechanic deleted successfully", map[string]interface{}{
		"mechanic_id": id,
	})
	return nil
}

func (s *MechanicService) MostActiveMechanics(ctx context.Context) ([]*domain.MechanicRank, error) {
	ranks, err := s.mechanicRepo.RankMechanicsByTicketCount(ctx)
	if err != nil {
		s.logger.Error("Failed to rank mechanics", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return ranks, nil
}
