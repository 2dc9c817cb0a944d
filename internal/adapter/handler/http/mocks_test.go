package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/core/domain"
)

// =============================================================================
// Mock services
// =============================================================================

type mockCustomerService struct {
	createCustomerFunc  func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	getCustomerByIDFunc func(ctx context.Context, id int64) (*domain.Customer, error)
	listCustomersFunc   func(ctx context.Context, page, perPage int) ([]*domain.Customer, error)
	updateCustomerFunc  func(ctx context.Context, id int64, patch *domain.CustomerPatch) (*domain.Customer, error)
	deleteCustomerFunc  func(ctx context.Context, id int64) error
	loginFunc           func(ctx context.Context, email, password string) (string, error)
}

func (m *mockCustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if m.createCustomerFunc != nil {
		return m.createCustomerFunc(ctx, customer)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerService) GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if m.getCustomerByIDFunc != nil {
		return m.getCustomerByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerService) ListCustomers(ctx context.Context, page, perPage int) ([]*domain.Customer, error) {
	if m.listCustomersFunc != nil {
		return m.listCustomersFunc(ctx, page, perPage)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerService) UpdateCustomer(ctx context.Context, id int64, patch *domain.CustomerPatch) (*domain.Customer, error) {
	if m.updateCustomerFunc != nil {
		return m.updateCustomerFunc(ctx, id, patch)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	if m.deleteCustomerFunc != nil {
		return m.deleteCustomerFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockCustomerService) Login(ctx context.Context, email, password string) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return "", errors.New("not implemented")
}

type mockTicketService struct {
	createTicketFunc            func(ctx context.Context, ticket *domain.ServiceTicket) (*domain.ServiceTicket, error)
	getTicketByIDFunc           func(ctx context.Context, id int64) (*domain.ServiceTicket, error)
	listTicketsFunc             func(ctx context.Context, page, perPage int) ([]*domain.ServiceTicket, error)
	listTicketsByCustomerIDFunc func(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error)
	deleteTicketFunc            func(ctx context.Context, id int64) error
	assignMechanicFunc          func(ctx context.Context, ticketID, mechanicID int64) (*domain.ServiceTicket, error)
	removeMechanicFunc          func(ctx context.Context, ticketID, mechanicID int64) (*domain.ServiceTicket, error)
	editMechanicsFunc           func(ctx context.Context, ticketID int64, addIDs, removeIDs []int64) (*domain.ServiceTicket, error)
	addPartFunc                 func(ctx context.Context, ticketID, partID int64) (*domain.ServiceTicket, error)
}

func (m *mockTicketService) CreateTicket(ctx context.Context, ticket *domain.ServiceTicket) (*domain.ServiceTicket, error) {
	if m.createTicketFunc != nil {
		return m.createTicketFunc(ctx, ticket)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketService) GetTicketByID(ctx context.Context, id int64) (*domain.ServiceTicket, error) {
	if m.getTicketByIDFunc != nil {
		return m.getTicketByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketService) ListTickets(ctx context.Context, page, perPage int) ([]*domain.ServiceTicket, error) {
	if m.listTicketsFunc != nil {
		return m.listTicketsFunc(ctx, page, perPage)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketService) ListTicketsByCustomerID(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error) {
	if m.listTicketsByCustomerIDFunc != nil {
		return m.listTicketsByCustomerIDFunc(ctx, customerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketService) DeleteTicket(ctx context.Context, id int64) error {
	if m.deleteTicketFunc != nil {
		return m.deleteTicketFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockTicketService) AssignMechanic(ctx context.Context, ticketID, mechanicID int64) (*domain.ServiceTicket, error) {
	if m.assignMechanicFunc != nil {
		return m.assignMechanicFunc(ctx, ticketID, mechanicID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketService) RemoveMechanic(ctx context.Context, ticketID, mechanicID int64) (*domain.ServiceTicket, error) {
	if m.removeMechanicFunc != nil {
		return m.removeMechanicFunc(ctx, ticketID, mechanicID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketService) EditMechanics(ctx context.Context, ticketID int64, addIDs, removeIDs []int64) (*domain.ServiceTicket, error) {
	if m.editMechanicsFunc != nil {
		return m.editMechanicsFunc(ctx, ticketID, addIDs, removeIDs)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketService) AddPart(ctx context.Context, ticketID, partID int64) (*domain.ServiceTicket, error) {
	if m.addPartFunc != nil {
		return m.addPartFunc(ctx, ticketID, partID)
	}
	return nil, errors.New("not implemented")
}

type mockMechanicService struct {
	createMechanicFunc      func(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error)
	getMechanicByIDFunc     func(ctx context.Context, id int64) (*domain.Mechanic, error)
	listMechanicsFunc       func(ctx context.Context, page, perPage int) ([]*domain.Mechanic, error)
	updateMechanicFunc      func(ctx context.Context, id int64, patch *domain.MechanicPatch) (*domain.Mechanic, error)
	deleteMechanicFunc      func(ctx context.Context, id int64) error
	mostActiveMechanicsFunc func(ctx context.Context) ([]*domain.MechanicRank, error)
}

func (m *mockMechanicService) CreateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error) {
	if m.createMechanicFunc != nil {
		return m.createMechanicFunc(ctx, mechanic)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicService) GetMechanicByID(ctx context.Context, id int64) (*domain.Mechanic, error) {
	if m.getMechanicByIDFunc != nil {
		return m.getMechanicByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicService) ListMechanics(ctx context.Context, page, perPage int) ([]*domain.Mechanic, error) {
	if m.listMechanicsFunc != nil {
		return m.listMechanicsFunc(ctx, page, perPage)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicService) UpdateMechanic(ctx context.Context, id int64, patch *domain.MechanicPatch) (*domain.Mechanic, error) {
	if m.updateMechanicFunc != nil {
		return m.updateMechanicFunc(ctx, id, patch)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMechanicService) DeleteMechanic(ctx context.Context, id int64) error {
	if m.deleteMechanicFunc != nil {
		return m.deleteMechanicFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockMechanicService) MostActiveMechanics(ctx context.Context) ([]*domain.MechanicRank, error) {
	if m.mostActiveMechanicsFunc != nil {
		return m.mostActiveMechanicsFunc(ctx)
	}
	return nil, errors.New("not implemented")
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

type noopLogger struct{}

func (noopLogger) Info(msg string, fields map[string]interface{})  {}
func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}

type noopMetrics struct{}

func (noopMetrics) RecordMetrics(c *gin.Context, start time.Time) {}

// =============================================================================
// Test helpers
// =============================================================================

func createTestContext(method, path string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	c.Request = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func setAuthPayload(c *gin.Context, customerID int64) {
	c.Set(authPayloadKey, &domain.TokenPayload{CustomerID: customerID})
}
