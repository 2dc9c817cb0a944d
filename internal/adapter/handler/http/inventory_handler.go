package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/core/domain"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type PartHandler struct {
	partService ports.PartService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type PartRequest struct {
	Name  string  `json:"name" binding:"required" example:"Brake pad"`
	Price float64 `json:"price" example:"49.99"`
}

type PartResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func NewPartHandler(
	partService ports.PartService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *PartHandler {
	return &PartHandler{
		partService: partService,
		logger:      logger,
		metrics:     metrics,
	}
}

func newPartResponse(part *domain.Part) PartResponse {
	return PartResponse{
		ID:    part.ID,
		Name:  part.Name,
		Price: part.Price,
	}
}

// @Summary Create inventory part
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body PartRequest true "Part data"
// @Success 201 {object} PartResponse "Part created"
// @Failure 400 {object} errorResponse "Validation failure"
// @Router /inventory [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req PartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create part", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	part := &domain.Part{
		Name:  req.Name,
		Price: req.Price,
	}

	created, err := h.partService.CreatePart(c.Request.Context(), part)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, newPartResponse(created))
}

// @Summary List inventory parts
// @Tags inventory
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {array} PartResponse "Part list"
// @Router /inventory [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, perPage := pageParams(c)
	parts, err := h.partService.ListParts(c.Request.Context(), page, perPage)
	if err != nil {
		newErrorResponse(c, statusForError(err), "Failed to list parts")
		return
	}

	responses := make([]PartResponse, len(parts))
	for i, part := range parts {
		responses[i] = newPartResponse(part)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get inventory part
// @Tags inventory
// @Produce json
// @Param id path int true "Part ID"
// @Success 200 {object} PartResponse "Part found"
// @Failure 404 {object} errorResponse "Part not found"
// @Router /inventory/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid part ID")
		return
	}

	part, err := h.partService.GetPartByID(c.Request.Context(), id)
	if err != nil {
		newErrorResponse(c, statusForError(err), "Part not found")
		return
	}

	c.JSON(http.StatusOK, newPartResponse(part))
}

// @Summary Update inventory part
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Part ID"
// @Param request body domain.PartPatch true "Fields to update"
// @Success 200 {object} PartResponse "Part updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Part not found"
// @Router /inventory/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid part ID")
		return
	}

	var patch domain.PartPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Error("Failed JSON parse in update part", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.partService.UpdatePart(c.Request.Context(), id, &patch)
	if err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, newPartResponse(updated))
}

// @Summary Delete inventory part
// @Tags inventory
// @Produce json
// @Param id path int true "Part ID"
// @Success 200 {object} DeleteResponse "Part deleted"
// @Failure 404 {object} errorResponse "Part not found"
// @Router /inventory/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := pathID(c, "id")
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid part ID")
		return
	}

	if err := h.partService.DeletePart(c.Request.Context(), id); err != nil {
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Message: "Part deleted"})
}
