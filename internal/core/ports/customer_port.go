package ports

import (
	"context"

	"github.com/mechshop/autoshop-api/internal/core/domain"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context, page, perPage int) ([]*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, patch *domain.CustomerPatch) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	Login(ctx context.Context, email, password string) (string, error)
}
