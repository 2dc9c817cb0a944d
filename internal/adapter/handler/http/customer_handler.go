package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/core/domain"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type CustomerHandler struct {
	customerService ports.CustomerService
	ticketService   ports.TicketService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

type CustomerRequest struct {
	Name     string `json:"name" binding:"required" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"john@email.com"`
	Phone    string `json:"phone" binding:"required" example:"555-123-4567"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@email.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type LoginResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	AuthToken string `json:"auth_token"`
}

type loginFailureResponse struct {
	Messages string `json:"messages"`
}

type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

func NewCustomerHandler(
	customerService ports.CustomerService,
	ticketService ports.TicketService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		ticketService:   ticketService,
		logger:          logger,
		metrics:         metrics,
	}
}

func newCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}
}

// pageParams reads page/per_page query values, defaulting to the first page
// of ten.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil {
		perPage = 10
	}
	return page, perPage
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// @Summary Create customer
// @Description Registers a new customer. The email must not be in use.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CustomerRequest true "Customer data"
// @Success 201 {object} CustomerResponse "Customer created"
// @Failure 400 {object} errorResponse "Validation failure or duplicate email"
// @Failure 429 {object} errorResponse "Rate limit exceeded"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create customer", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	customer := &domain.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}

	created, err := h.customerService.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, newCustomerResponse(created))
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {array} CustomerResponse "Customer list"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, perPage := pageParams(c)
	customers, err := h.customerService.ListCustomers(c.Request.Context(), page, perPage)
	if err != nil {
		newErrorResponse(c, statusForError(err), "Failed to list customers")
		return
	}

	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = newCustomerResponse(customer)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} CustomerResponse "Customer found"
// @Failure 404 {object} errorResponse "Customer not found"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		newErrorResponse(c, statusForError(err), "Customer not found")
		return
	}

	c.JSON(http.StatusOK, newCustomerResponse(customer))
}

// @Summary Update customer
// @Description Partial update. Only the caller's own record can be changed.
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body domain.CustomerPatch true "Fields to update"
// @Success 200 {object} CustomerResponse "Customer updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Not the owner"
// @Failure 404 {object} errorResponse "Customer not found"
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if payload.CustomerID != id {
		h.logger.Warn("Access denied to update customer", map[string]interface{}{
			"requester_id": payload.CustomerID,
			"customer_id":  id,
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	var patch domain.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Error("Failed JSON parse in update customer", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &patch)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, newCustomerResponse(updated))
}

// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} DeleteResponse "Customer deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Not the owner"
// @Failure 404 {object} errorResponse "Customer not found"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if payload.CustomerID != id {
		h.logger.Warn("Access denied to delete customer", map[string]interface{}{
			"requester_id": payload.CustomerID,
			"customer_id":  id,
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Message: "Customer deleted successfully"})
}

// @Summary Customer login
// @Description Exchanges email and password for a bearer token.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Token issued"
// @Failure 401 {object} loginFailureResponse "Invalid credentials"
// @Failure 500 {object} errorResponse "Login failed"
// @Router /customers/login [post]
func (h *CustomerHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	token, err := h.customerService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, loginFailureResponse{
				Messages: "Invalid username or password",
			})
			return
		}
		newErrorResponse(c, statusForError(err), "Login failed")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Status:    "success",
		Message:   "Successfully logged in",
		AuthToken: token,
	})
}

// @Summary My tickets
// @Description Lists the service tickets owned by the authenticated customer.
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Success 200 {array} TicketResponse "Ticket list"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /customers/my-tickets [get]
func (h *CustomerHandler) MyTickets(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tickets, err := h.ticketService.ListTicketsByCustomerID(c.Request.Context(), payload.CustomerID)
	if err != nil {
		newErrorResponse(c, statusForError(err), "Failed to list tickets")
		return
	}

	responses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = newTicketResponse(ticket)
	}
	c.JSON(http.StatusOK, responses)
}
