package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/core/domain"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type MechanicHandler struct {
	mechanicService ports.MechanicService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

type MechanicRequest struct {
	Name   string  `json:"name" binding:"required" example:"Jane Smith"`
	Email  string  `json:"email" binding:"required,email" example:"jane@email.com"`
	Phone  string  `json:"phone" binding:"required" example:"555-987-6543"`
	Salary float64 `json:"salary" example:"50000"`
}

type MechanicResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Salary float64 `json:"salary"`
}

type MechanicRankResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	TicketCount int64  `json:"ticket_count"`
}

func NewMechanicHandler(
	mechanicService ports.MechanicService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *MechanicHandler {
	return &MechanicHandler{
		mechanicService: mechanicService,
		logger:          logger,
		metrics:         metrics,
	}
}

func newMechanicResponse(mechanic *domain.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:     mechanic.ID,
		Name:   mechanic.Name,
		Email:  mechanic.Email,
		Phone:  mechanic.Phone,
		Salary: mechanic.Salary,
	}
}

// @Summary Create mechanic
// @Tags mechanics
// @Accept json
// @Produce json
// @Param request body MechanicRequest true "Mechanic data"
// @Success 201 {object} MechanicResponse "Mechanic created"
// @Failure 400 {object} errorResponse "Validation failure or duplicate email"
// @Failure 429 {object} errorResponse "Rate limit exceeded"
// @Router /mechanics [post]
func (h *MechanicHandler) CreateMechanic(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req MechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create mechanic", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	mechanic := &domain.Mechanic{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Salary: req.Salary,
	}

	created, err := h.mechanicService.CreateMechanic(c.Request.Context(), mechanic)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, newMechanicResponse(created))
}

// @Summary List mechanics
// @Tags mechanics
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {array} MechanicResponse "Mechanic list"
// @Router /mechanics [get]
func (h *MechanicHandler) ListMechanics(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, perPage := pageParams(c)
	mechanics, err := h.mechanicService.ListMechanics(c.Request.Context(), page, perPage)
	if err != nil {
		newErrorResponse(c, statusForError(err), "Failed to list mechanics")
		return
	}

	responses := make([]MechanicResponse, len(mechanics))
	for i, mechanic := range mechanics {
		responses[i] = newMechanicResponse(mechanic)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get mechanic
// @Tags mechanics
// @Produce json
// @Param id path int true "Mechanic ID"
// @Success 200 {object} MechanicResponse "Mechanic found"
// @Failure 404 {object} errorResponse "Mechanic not found"
// @Router /mechanics/{id} [get]
func (h *MechanicHandler) GetMechanic(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid mechanic ID")
		return
	}

	mechanic, err := h.mechanicService.GetMechanicByID(c.Request.Context(), id)
	if err != nil {
		newErrorResponse(c, statusForError(err), "Mechanic not found")
		return
	}

	c.JSON(http.StatusOK, newMechanicResponse(mechanic))
}

// @Summary Update mechanic
// @Tags mechanics
// @Accept json
// @Produce json
// @Param id path int true "Mechanic ID"
// @Param request body domain.MechanicPatch true "Fields to update"
// @Success 200 {object} MechanicResponse "Mechanic updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Mechanic not found"
// @Router /mechanics/{id} [put]
func (h *MechanicHandler) UpdateMechanic(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid mechanic ID")
		return
	}

	var patch domain.MechanicPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Error("Failed JSON parse in update mechanic", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.mechanicService.UpdateMechanic(c.Request.Context(), id, &patch)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, newMechanicResponse(updated))
}

// @Summary Delete mechanic
// @Description Removes the mechanic and its ticket assignments.
// @Tags mechanics
// @Produce json
// @Param id path int true "Mechanic ID"
// @Success 200 {object} DeleteResponse "Mechanic deleted"
// @Failure 404 {object} errorResponse "Mechanic not found"
// @Router /mechanics/{id} [delete]
func (h *MechanicHandler) DeleteMechanic(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid mechanic ID")
		return
	}

	if err := h.mechanicService.DeleteMechanic(c.Request.Context(), id); err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Message: "Mechanic deleted successfully"})
}

// @Summary Most active mechanics
// @Description Ranks mechanics by the number of tickets assigned to them.
// @Tags mechanics
// @Produce json
// @Success 200 {array} MechanicRankResponse "Ranked mechanics"
// @Router /mechanics/most-active [get]
func (h *MechanicHandler) MostActive(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ranks, err := h.mechanicService.MostActiveMechanics(c.Request.Context())
	if err != nil {
		newErrorResponse(c, statusForError(err), "Failed to rank mechanics")
		return
	}

	responses := make([]MechanicRankResponse, len(ranks))
	for i, rank := range ranks {
		responses[i] = MechanicRankResponse{
			ID:          rank.Mechanic.ID,
			Name:        rank.Mechanic.Name,
			Email:       rank.Mechanic.Email,
			TicketCount: rank.TicketCount,
		}
	}
	c.JSON(http.StatusOK, responses)
}
