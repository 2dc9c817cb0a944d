package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/core/domain"
)

func setupCustomerHandler(customers *mockCustomerService, tickets *mockTicketService) *CustomerHandler {
	if tickets == nil {
		tickets = &mockTicketService{}
	}
	return NewCustomerHandler(customers, tickets, noopLogger{}, noopMetrics{})
}

func TestCreateCustomer_Created(t *testing.T) {
	service := &mockCustomerService{
		createCustomerFunc: func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
			customer.ID = 1
			return customer, nil
		},
	}
	handler := setupCustomerHandler(service, nil)

	w, c := createTestContext("POST", "/customers", CustomerRequest{
		Name:     "John Doe",
		Email:    "john@email.com",
		Phone:    "555-123-4567",
		Password: "secret",
	})
	handler.CreateCustomer(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("CreateCustomer() status = %d, want %d", w.Code, http.StatusCreated)
	}

	var resp CustomerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.ID != 1 || resp.Email != "john@email.com" {
		t.Errorf("CreateCustomer() response = %+v", resp)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("CreateCustomer() response must not echo the password")
	}
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	service := &mockCustomerService{
		createCustomerFunc: func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := setupCustomerHandler(service, nil)

	w, c := createTestContext("POST", "/customers", CustomerRequest{
		Name:     "John Doe",
		Email:    "john@email.com",
		Phone:    "555-123-4567",
		Password: "secret",
	})
	handler.CreateCustomer(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("CreateCustomer() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreateCustomer_MalformedJSON(t *testing.T) {
	handler := setupCustomerHandler(&mockCustomerService{}, nil)

	w, c := createTestContext("POST", "/customers", nil)
	handler.CreateCustomer(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("CreateCustomer() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	service := &mockCustomerService{
		getCustomerByIDFunc: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return nil, domain.ErrCustomerNotFound
		},
	}
	handler := setupCustomerHandler(service, nil)

	w, c := createTestContext("GET", "/customers/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	handler.GetCustomer(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("GetCustomer() status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUpdateCustomer_NoToken(t *testing.T) {
	handler := setupCustomerHandler(&mockCustomerService{}, nil)

	w, c := createTestContext("PUT", "/customers/3", domain.CustomerPatch{})
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	handler.UpdateCustomer(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("UpdateCustomer() status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestUpdateCustomer_WrongOwner(t *testing.T) {
	handler := setupCustomerHandler(&mockCustomerService{}, nil)

	name := "Eve"
	w, c := createTestContext("PUT", "/customers/3", domain.CustomerPatch{Name: &name})
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	setAuthPayload(c, 8)
	handler.UpdateCustomer(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("UpdateCustomer() status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestUpdateCustomer_Owner(t *testing.T) {
	service := &mockCustomerService{
		updateCustomerFunc: func(ctx context.Context, id int64, patch *domain.CustomerPatch) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: *patch.Name, Email: "john@email.com", Phone: "555-123-4567"}, nil
		},
	}
	handler := setupCustomerHandler(service, nil)

	name := "John Q. Doe"
	w, c := createTestContext("PUT", "/customers/3", domain.CustomerPatch{Name: &name})
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	setAuthPayload(c, 3)
	handler.UpdateCustomer(c)

	if w.Code != http.StatusOK {
		t.Fatalf("UpdateCustomer() status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp CustomerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Name != name {
		t.Errorf("UpdateCustomer() name = %q, want %q", resp.Name, name)
	}
}

func TestDeleteCustomer_WrongOwner(t *testing.T) {
	handler := setupCustomerHandler(&mockCustomerService{}, nil)

	w, c := createTestContext("DELETE", "/customers/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	setAuthPayload(c, 8)
	handler.DeleteCustomer(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("DeleteCustomer() status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestDeleteCustomer_Owner(t *testing.T) {
	service := &mockCustomerService{
		deleteCustomerFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	handler := setupCustomerHandler(service, nil)

	w, c := createTestContext("DELETE", "/customers/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	setAuthPayload(c, 3)
	handler.DeleteCustomer(c)

	if w.Code != http.StatusOK {
		t.Fatalf("DeleteCustomer() status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp DeleteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Message == "" {
		t.Error("DeleteCustomer() should confirm the deletion")
	}
}

func TestLoginHandler_Success(t *testing.T) {
	service := &mockCustomerService{
		loginFunc: func(ctx context.Context, email, password string) (string, error) {
			return "signed-token", nil
		},
	}
	handler := setupCustomerHandler(service, nil)

	w, c := createTestContext("POST", "/customers/login", LoginRequest{
		Email:    "john@email.com",
		Password: "secret",
	})
	handler.Login(c)

	if w.Code != http.StatusOK {
		t.Fatalf("Login() status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Status != "success" || resp.AuthToken != "signed-token" || resp.Message == "" {
		t.Errorf("Login() response = %+v", resp)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	service := &mockCustomerService{
		loginFunc: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := setupCustomerHandler(service, nil)

	w, c := createTestContext("POST", "/customers/login", LoginRequest{
		Email:    "john@email.com",
		Password: "wrong",
	})
	handler.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Login() status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	var resp loginFailureResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Messages != "Invalid username or password" {
		t.Errorf("Login() failure body = %+v", resp)
	}
}

func TestLoginHandler_BackendFailure(t *testing.T) {
	service := &mockCustomerService{
		loginFunc: func(ctx context.Context, email, password string) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		},
	}
	handler := setupCustomerHandler(service, nil)

	w, c := createTestContext("POST", "/customers/login", LoginRequest{
		Email:    "john@email.com",
		Password: "secret",
	})
	handler.Login(c)

	// An infrastructure failure is not a credential failure.
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Login() status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "Invalid username or password") {
		t.Error("Login() must not report a backend outage as bad credentials")
	}
}

func TestMyTickets_ScopedToCaller(t *testing.T) {
	tickets := &mockTicketService{
		listTicketsByCustomerIDFunc: func(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error) {
			if customerID != 5 {
				t.Errorf("ListTicketsByCustomerID() customerID = %d, want 5", customerID)
			}
			return []*domain.ServiceTicket{}, nil
		},
	}
	handler := setupCustomerHandler(&mockCustomerService{}, tickets)

	w, c := createTestContext("GET", "/customers/my-tickets", nil)
	setAuthPayload(c, 5)
	handler.MyTickets(c)

	if w.Code != http.StatusOK {
		t.Errorf("MyTickets() status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestMyTickets_NoToken(t *testing.T) {
	handler := setupCustomerHandler(&mockCustomerService{}, &mockTicketService{})

	w, c := createTestContext("GET", "/customers/my-tickets", nil)
	handler.MyTickets(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("MyTickets() status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
