package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mechshop/autoshop-api/internal/core/domain"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type CustomerService struct {
	customerRepo ports.CustomerRepository
	tokenService ports.TokenService
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewCustomerService(
	customerRepo ports.CustomerRepository,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		tokenService: tokenService,
		logger:       logger,
		validate:     validate,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.validate.Struct(customer); err != nil {
		s.logger.Error("Customer validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Exact-match pre-check; the unique index closes the remaining race.
	if _, err := s.customerRepo.GetCustomerByEmail(ctx, customer.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	created, err := s.customerRepo.CreateCustomer(ctx, customer)
	if err != nil {
		s.logger.Error("Failed to create customer", map[string]interface{}{
			"error": err.Error(),
			"email": customer.Email,
		})
		return nil, err
	}

	s.logger.Info("Customer created successfully", map[string]interface{}{
		"customer_id": created.ID,
	})
	return created, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": id,
		})
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, page, perPage int) ([]*domain.Customer, error) {
	limit, offset := pageWindow(page, perPage)
	customers, err := s.customerRepo.ListCustomers(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list customers", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, patch *domain.CustomerPatch) (*domain.Customer, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	customer, err := s.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.Phone != nil {
		customer.Phone = *patch.Phone
	}
	if patch.Password != nil {
		customer.Password = *patch.Password
	}

	updated, err := s.customerRepo.UpdateCustomer(ctx, customer)
	if err != nil {
		s.logger.Error("Failed to update customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": id,
		})
		return nil, err
	}

	s.logger.Info("Customer updated successfully", map[string]interface{}{
		"customer_id": id,
	})
	return updated, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customerRepo.DeleteCustomer(ctx, id); err != nil {
		s.logger.Error("Failed to delete customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": id,
		})
		return err
	}

	s.logger.Info("Customer deleted successfully", map[string]interface{}{
		"customer_id": id,
	})
	return nil
}

// Login checks the stored credential with an exact match and issues a bearer
// token carrying the customer id. A missing customer and a wrong password
// collapse into the same error so callers cannot probe for accounts.
func (s *CustomerService) Login(ctx context.Context, email, password string) (string, error) {
	customer, err := s.customerRepo.GetCustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if customer.Password != password {
		s.logger.Warn("Login failed", map[string]interface{}{
			"customer_id": customer.ID,
		})
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.IssueToken(customer.ID)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customer.ID,
		})
		return "", err
	}

	s.logger.Info("Customer logged in", map[string]interface{}{
		"customer_id": customer.ID,
	})
	return token, nil
}
