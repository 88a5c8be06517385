package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/pkg/response"
)

type activityService interface {
	List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	Get(ctx context.Context, id string) (*models.Activity, error)
	Create(ctx context.Context, a models.Activity) (*models.Activity, error)
	Update(ctx context.Context, id string, a models.Activity) (*models.Activity, error)
	AddPhoto(ctx context.Context, id, ref string) (*models.Activity, error)
	Delete(ctx context.Context, id string) error
}

// AddPhotoRequest carries the reference of an already uploaded photo.
type AddPhotoRequest struct {
	URL string `json:"url" binding:"required"`
}

// ActivityHandler exposes activities.
type ActivityHandler struct {
	service activityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(service activityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List godoc
// @Summary List activities
// @Description Upcoming activities soonest first, then completed ones most recent first
// @Tags Activities
// @Produce json
// @Param status query string false "upcoming or completed"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	filter := models.ActivityFilter{Status: models.ActivityStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))}
	activities, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, activities)
}

// Get godoc
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /activities/{id} [get]
func (h *ActivityHandler) Get(c *gin.Context) {
	activity, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, activity)
}

// Create godoc
// @Summary Add an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.Activity true "Activity"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req models.Activity
	if err := bindJSON(c, &req, "activity"); err != nil {
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
// @Summary Update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param payload body models.Activity true "Activity"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /activities/{id} [put]
func (h *ActivityHandler) Update(c *gin.Context) {
	var req models.Activity
	if err := bindJSON(c, &req, "activity"); err != nil {
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

// AddPhoto godoc
// @Summary Attach a photo to an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param payload body AddPhotoRequest true "Uploaded photo reference"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /activities/{id}/photos [post]
func (h *ActivityHandler) AddPhoto(c *gin.Context) {
	var req AddPhotoRequest
	if err := bindJSON(c, &req, "photo"); err != nil {
		response.Error(c, err)
		return
	}
	updated, err := h.service.AddPhoto(c.Request.Context(), c.Param("id"), req.URL)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, updated)
}

// Delete godoc
// @Summary Delete an activity
// @Tags Activities
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 204
// @Router /activities/{id} [delete]
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
