package services

import (
	"context"
	"errors"

	"github.com/mechshop/autoshop-api/internal/core/domain"
)

// =============================================================================
// Mock repositories and collaborators
// =============================================================================

type mockCustomerRepo struct {
	createCustomerFunc     func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	getCustomerByIDFunc    func(ctx context.Context, id int64) (*domain.Customer, error)
	getCustomerByEmailFunc func(ctx context.Context, email string) (*domain.Customer, error)
	listCustomersFunc      func(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	updateCustomerFunc     func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	deleteCustomerFunc     func(ctx context.Context, id int64) error
}

func (m *mockCustomerRepo) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if m.createCustomerFunc != nil {
		return m.createCustomerFunc(ctx, customer)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerRepo) GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if m.getCustomerByIDFunc != nil {
		return m.getCustomerByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerRepo) GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if m.getCustomerByEmailFunc != nil {
		return m.getCustomerByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerRepo) ListCustomers(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	if m.listCustomersFunc != nil {
		return m.listCustomersFunc(ctx, limit, offset)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerRepo) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if m.updateCustomerFunc != nil {
		return m.updateCustomerFunc(ctx, customer)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerRepo) DeleteCustomer(ctx context.Context, id int64) error {
	if m.deleteCustomerFunc != nil {
		return m.deleteCustomerFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockMechanicRepo struct {
	createMechanicFunc     func(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error)
	getMechanicByIDFunc    func(ctx context.Context, id int64) (*domain.Mechanic, error)
	getMechanicByEmailFunc func(ctx context.Context, email string) (*domain.Mechanic, error)
	listMechanicsFunc      func(ctx context.Context, limit, offset int) ([]*domain.Mechanic, error)
	updateMechanicFunc     func(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error)
	deleteMechanicFunc     func(ctx context.Context, id int64) error
	rankMechanicsFunc      func(ctx context.Context) ([]*domain.MechanicRank, error)
}

func (m *mockMechanicRepo) CreateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error) {
	if m.createMechanicFunc != nil {
		return m.createMechanicFunc(ctx, mechanic)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicRepo) GetMechanicByID(ctx context.Context, id int64) (*domain.Mechanic, error) {
	if m.getMechanicByIDFunc != nil {
		return m.getMechanicByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicRepo) GetMechanicByEmail(ctx context.Context, email string) (*domain.Mechanic, error) {
	if m.getMechanicByEmailFunc != nil {
		return m.getMechanicByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicRepo) ListMechanics(ctx context.Context, limit, offset int) ([]*domain.Mechanic, error) {
	if m.listMechanicsFunc != nil {
		return m.listMechanicsFunc(ctx, limit, offset)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicRepo) UpdateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error) {
	if m.updateMechanicFunc != nil {
		return m.updateMechanicFunc(ctx, mechanic)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicRepo) DeleteMechanic(ctx context.Context, id int64) error {
	if m.deleteMechanicFunc != nil {
		return m.deleteMechanicFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockMechanicRepo) RankMechanicsByTicketCount(ctx context.Context) ([]*domain.MechanicRank, error) {
	if m.rankMechanicsFunc != nil {
		return m.rankMechanicsFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

type mockPartRepo struct {
	createPartFunc  func(ctx context.Context, part *domain.Part) (*domain.Part, error)
	getPartByIDFunc func(ctx context.Context, id int64) (*domain.Part, error)
	listPartsFunc   func(ctx context.Context, limit, offset int) ([]*domain.Part, error)
	updatePartFunc  func(ctx context.Context, part *domain.Part) (*domain.Part, error)
	deletePartFunc  func(ctx context.Context, id int64) error
}

func (m *mockPartRepo) CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	if m.createPartFunc != nil {
		return m.createPartFunc(ctx, part)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPartRepo) GetPartByID(ctx context.Context, id int64) (*domain.Part, error) {
	if m.getPartByIDFunc != nil {
		return m.getPartByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPartRepo) ListParts(ctx context.Context, limit, offset int) ([]*domain.Part, error) {
	if m.listPartsFunc != nil {
		return m.listPartsFunc(ctx, limit, offset)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPartRepo) UpdatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	if m.updatePartFunc != nil {
		return m.updatePartFunc(ctx, part)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPartRepo) DeletePart(ctx context.Context, id int64) error {
	if m.deletePartFunc != nil {
		return m.deletePartFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockTicketRepo struct {
	createTicketFunc            func(ctx context.Context, ticket *domain.ServiceTicket) (*domain.ServiceTicket, error)
	getTicketByIDFunc           func(ctx context.Context, id int64) (*domain.ServiceTicket, error)
	listTicketsFunc             func(ctx context.Context, limit, offset int) ([]*domain.ServiceTicket, error)
	listTicketsByCustomerIDFunc func(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error)
	deleteTicketFunc            func(ctx context.Context, id int64) error
	ensureMechanicLinkFunc      func(ctx context.Context, ticketID, mechanicID int64) error
	removeMechanicLinkFunc      func(ctx context.Context, ticketID, mechanicID int64) error
	editMechanicLinksFunc       func(ctx context.Context, ticketID int64, addIDs, removeIDs []int64) error
	ensurePartLinkFunc          func(ctx context.Context, ticketID, partID int64) error
}

func (m *mockTicketRepo) CreateTicket(ctx context.Context, ticket *domain.ServiceTicket) (*domain.ServiceTicket, error) {
	if m.createTicketFunc != nil {
		return m.createTicketFunc(ctx, ticket)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketRepo) GetTicketByID(ctx context.Context, id int64) (*domain.ServiceTicket, error) {
	if m.getTicketByIDFunc != nil {
		return m.getTicketByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketRepo) ListTickets(ctx context.Context, limit, offset int) ([]*domain.ServiceTicket, error) {
	if m.listTicketsFunc != nil {
		return m.listTicketsFunc(ctx, limit, offset)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketRepo) ListTicketsByCustomerID(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error) {
	if m.listTicketsByCustomerIDFunc != nil {
		return m.listTicketsByCustomerIDFunc(ctx, customerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketRepo) DeleteTicket(ctx context.Context, id int64) error {
	if m.deleteTicketFunc != nil {
		return m.deleteTicketFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockTicketRepo) EnsureMechanicLink(ctx context.Context, ticketID, mechanicID int64) error {
	if m.ensureMechanicLinkFunc != nil {
		return m.ensureMechanicLinkFunc(ctx, ticketID, mechanicID)
	}
	return errors.New("not implemented")
}

func (m *mockTicketRepo) RemoveMechanicLink(ctx context.Context, ticketID, mechanicID int64) error {
	if m.removeMechanicLinkFunc != nil {
		return m.removeMechanicLinkFunc(ctx, ticketID, mechanicID)
	}
	return errors.New("not implemented")
}

func (m *mockTicketRepo) EditMechanicLinks(ctx context.Context, ticketID int64, addIDs, removeIDs []int64) error {
	if m.editMechanicLinksFunc != nil {
		return m.editMechanicLinksFunc(ctx, ticketID, addIDs, removeIDs)
	}
	return errors.New("not implemented")
}

func (m *mockTicketRepo) EnsurePartLink(ctx context.Context, ticketID, partID int64) error {
	if m.ensurePartLinkFunc != nil {
		return m.ensurePartLinkFunc(ctx, ticketID, partID)
	}
	return errors.New("not implemented")
}

type mockTokenService struct {
	issueTokenFunc  func(customerID int64) (string, error)
	verifyTokenFunc func(token string) (*domain.TokenPayload, error)
}

func (m *mockTokenService) IssueToken(customerID int64) (string, error) {
	if m.issueTokenFunc != nil {
		return m.issueTokenFunc(customerID)
	}
	return "test-token", nil
}

func (m *mockTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	if m.verifyTokenFunc != nil {
		return m.verifyTokenFunc(token)
	}
	return nil, errors.New("not implemented")
}

// noopLogger satisfies ports.LoggerPort without output noise in tests.
type noopLogger struct{}

func (noopLogger) Info(msg string, fields map[string]interface{})  {}
func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}
