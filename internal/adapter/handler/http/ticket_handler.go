package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/core/domain"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type TicketHandler struct {
	ticketService ports.TicketService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

type TicketRequest struct {
	VIN         string    `json:"vin" binding:"required" example:"1234567890ABCDEFG"`
	ServiceDate time.Time `json:"service_date" binding:"required" example:"2024-01-15T10:00:00Z"`
	ServiceDesc string    `json:"service_desc" binding:"required" example:"Oil change and tire rotation"`
	CustomerID  int64     `json:"customer_id" binding:"required" example:"1"`
}

type EditMechanicsRequest struct {
	AddIDs    []int64 `json:"add_ids"`
	RemoveIDs []int64 `json:"remove_ids"`
}

type TicketResponse struct {
	ID          int64              `json:"id"`
	VIN         string             `json:"vin"`
	ServiceDate time.Time          `json:"service_date"`
	ServiceDesc string             `json:"service_desc"`
	CustomerID  int64              `json:"customer_id"`
	Mechanics   []MechanicResponse `json:"mechanics"`
	Parts       []PartResponse     `json:"parts"`
}

func NewTicketHandler(
	ticketService ports.TicketService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		logger:        logger,
		metrics:       metrics,
	}
}

func newTicketResponse(ticket *domain.ServiceTicket) TicketResponse {
	mechanics := make([]MechanicResponse, len(ticket.Mechanics))
	for i := range ticket.Mechanics {
		mechanics[i] = newMechanicResponse(&ticket.Mechanics[i])
	}
	parts := make([]PartResponse, len(ticket.Parts))
	for i := range ticket.Parts {
		parts[i] = newPartResponse(&ticket.Parts[i])
	}
	return TicketResponse{
		ID:          ticket.ID,
		VIN:         ticket.VIN,
		ServiceDate: ticket.ServiceDate,
		ServiceDesc: ticket.ServiceDesc,
		CustomerID:  ticket.CustomerID,
		Mechanics:   mechanics,
		Parts:       parts,
	}
}

// @Summary Create service ticket
// @Tags service_tickets
// @Accept json
// @Produce json
// @Param request body TicketRequest true "Ticket data"
// @Success 201 {object} TicketResponse "Ticket created"
// @Failure 400 {object} errorResponse "Validation failure"
// @Failure 404 {object} errorResponse "Owning customer not found"
// @Router /service_tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create ticket", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ticket := &domain.ServiceTicket{
		VIN:         req.VIN,
		ServiceDate: req.ServiceDate,
		ServiceDesc: req.ServiceDesc,
		CustomerID:  req.CustomerID,
	}

	created, err := h.ticketService.CreateTicket(c.Request.Context(), ticket)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, newTicketResponse(created))
}

// @Summary List service tickets
// @Tags service_tickets
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {array} TicketResponse "Ticket list"
// @Router /service_tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, perPage := pageParams(c)
	tickets, err := h.ticketService.ListTickets(c.Request.Context(), page, perPage)
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

// @Summary Get service ticket
// @Tags service_tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} TicketResponse "Ticket found"
// @Failure 404 {object} errorResponse "Ticket not found"
// @Router /service_tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	ticket, err := h.ticketService.GetTicketByID(c.Request.Context(), id)
	if err != nil {
		newErrorResponse(c, statusForError(err), "Ticket not found")
		return
	}

	c.JSON(http.StatusOK, newTicketResponse(ticket))
}

// @Summary Delete service ticket
// @Description Removes the ticket together with its mechanic and part links.
// @Tags service_tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} DeleteResponse "Ticket deleted"
// @Failure 404 {object} errorResponse "Ticket not found"
// @Router /service_tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), id); err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Message: "Ticket deleted successfully"})
}

// @Summary Assign mechanic to ticket
// @Description Idempotent: assigning an already assigned mechanic is a no-op.
// @Tags service_tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Param mechanicID path int true "Mechanic ID"
// @Success 200 {object} TicketResponse "Ticket with current assignments"
// @Failure 404 {object} errorResponse "Ticket or mechanic not found"
// @Router /service_tickets/{id}/assign-mechanic/{mechanicID} [put]
func (h *TicketHandler) AssignMechanic(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ticketID, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}
	mechanicID, ok := pathID(c, "mechanicID")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid mechanic ID")
		return
	}

	ticket, err := h.ticketService.AssignMechanic(c.Request.Context(), ticketID, mechanicID)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, newTicketResponse(ticket))
}

// @Summary Remove mechanic from ticket
// @Description Fails with 404 when the mechanic is not assigned to the ticket.
// @Tags service_tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Param mechanicID path int true "Mechanic ID"
// @Success 200 {object} TicketResponse "Ticket with current assignments"
// @Failure 404 {object} errorResponse "Ticket or assignment not found"
// @Router /service_tickets/{id}/remove-mechanic/{mechanicID} [put]
func (h *TicketHandler) RemoveMechanic(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ticketID, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}
	mechanicID, ok := pathID(c, "mechanicID")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid mechanic ID")
		return
	}

	ticket, err := h.ticketService.RemoveMechanic(c.Request.Context(), ticketID, mechanicID)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, newTicketResponse(ticket))
}

// @Summary Edit ticket mechanics
// @Description Batch add/remove of mechanic assignments; removals run first.
// @Tags service_tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body EditMechanicsRequest true "Ids to add and remove"
// @Success 200 {object} TicketResponse "Ticket with current assignments"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Ticket not found"
// @Router /service_tickets/{id}/edit [put]
func (h *TicketHandler) EditMechanics(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ticketID, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	var req EditMechanicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in edit mechanics", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ticket, err := h.ticketService.EditMechanics(c.Request.Context(), ticketID, req.AddIDs, req.RemoveIDs)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, newTicketResponse(ticket))
}

// @Summary Add part to ticket
// @Description Idempotent: re-adding an attached part is a no-op.
// @Tags service_tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Param partID path int true "Part ID"
// @Success 200 {object} TicketResponse "Ticket with current parts"
// @Failure 404 {object} errorResponse "Ticket or part not found"
// @Router /service_tickets/{id}/add-part/{partID} [put]
func (h *TicketHandler) AddPart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ticketID, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}
	partID, ok := pathID(c, "partID")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid part ID")
		return
	}

	ticket, err := h.ticketService.AddPart(c.Request.Context(), ticketID, partID)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, newTicketResponse(ticket))
}
