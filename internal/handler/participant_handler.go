package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/pkg/response"
)

type participantService interface {
	List(ctx context.Context, filter models.ParticipantFilter) ([]models.Participant, error)
	Create(ctx context.Context, p models.Participant) (*models.Participant, error)
	Update(ctx context.Context, id string, p models.Participant) (*models.Participant, error)
	Delete(ctx context.Context, id string) error
}

// ParticipantHandler exposes activity participants.
type ParticipantHandler struct {
	service participantService
}

// NewParticipantHandler constructs a ParticipantHandler.
func NewParticipantHandler(service participantService) *ParticipantHandler {
	return &ParticipantHandler{service: service}
}

// List godoc
// @Summary List participants
// @Tags Participants
// @Produce json
// @Param activityId query string false "Activity ID"
// @Param rollNumber query string false "Roll number"
// @Success 200 {object} response.Envelope
// @Router /participants [get]
func (h *ParticipantHandler) List(c *gin.Context) {
	filter := models.ParticipantFilter{
		ActivityID: strings.TrimSpace(c.Query("activityId")),
		RollNumber: strings.TrimSpace(c.Query("rollNumber")),
	}
	participants, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, participants)
}

// Create godoc
// @Summary Register a participant
// @Tags Participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.Participant true "Participant"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /participants [post]
func (h *ParticipantHandler) Create(c *gin.Context) {
	var req models.Participant
	if err := bindJSON(c, &req, "participant"); err != nil {
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
// @Summary Update a participant
// @Tags Participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participant ID"
// @Param payload body models.Participant true "Participant"
// @Success 200 {object} response.Envelope
// @Router /participants/{id} [put]
func (h *ParticipantHandler) Update(c *gin.Context) {
	var req models.Participant
	if err := bindJSON(c, &req, "participant"); err != nil {
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
// @Summary Delete a participant
// @Tags Participants
// @Security BearerAuth
// @Param id path string true "Participant ID"
// @Success 204
// @Router /participants/{id} [delete]
func (h *ParticipantHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
