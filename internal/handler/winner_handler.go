package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/pkg/response"
)

type winnerService interface {
	List(ctx context.Context, filter models.WinnerFilter) ([]models.Winner, error)
	Create(ctx context.Context, w models.Winner) (*models.Winner, error)
	Update(ctx context.Context, id string, w models.Winner) (*models.Winner, error)
	Delete(ctx context.Context, id string) error
}

// WinnerHandler exposes the winners collection.
type WinnerHandler struct {
	service winnerService
}

// NewWinnerHandler constructs a WinnerHandler.
func NewWinnerHandler(service winnerService) *WinnerHandler {
	return &WinnerHandler{service: service}
}

// List godoc
// @Summary List winners
// @Description Winners ordered newest first
// @Tags Winners
// @Produce json
// @Param thisWeek query bool false "Only this week's winners"
// @Success 200 {object} response.Envelope
// @Router /winners [get]
func (h *WinnerHandler) List(c *gin.Context) {
	thisWeek, err := boolQuery(c, "thisWeek")
	if err != nil {
		response.Error(c, err)
		return
	}
	winners, err := h.service.List(c.Request.Context(), models.WinnerFilter{ThisWeekOnly: thisWeek})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, winners)
}

// Create godoc
// @Summary Add a winner
// @Tags Winners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.Winner true "Winner"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /winners [post]
func (h *WinnerHandler) Create(c *gin.Context) {
	var req models.Winner
	if err := bindJSON(c, &req, "winner"); err != nil {
		response.Error(c, err)
		return
	}
	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Update a winner
// @Tags Winners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Winner ID"
// @Param payload body models.Winner true "Winner"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /winners/{id} [put]
func (h *WinnerHandler) Update(c *gin.Context) {
	var req models.Winner
	if err := bindJSON(c, &req, "winner"); err != nil {
		response.Error(c, err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, updated)
}

// Delete godoc
// @Summary Delete a winner
// @Tags Winners
// @Security BearerAuth
// @Param id path string true "Winner ID"
// @Success 204
// @Router /winners/{id} [delete]
func (h *WinnerHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
