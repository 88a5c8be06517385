package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/pkg/response"
)

type galleryService interface {
	List(ctx context.Context) ([]models.GalleryImage, error)
	Create(ctx context.Context, img models.GalleryImage) (*models.GalleryImage, error)
	Update(ctx context.Context, id string, img models.GalleryImage) (*models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

// GalleryHandler exposes gallery images.
type GalleryHandler struct {
	service galleryService
}

// NewGalleryHandler constructs a GalleryHandler.
func NewGalleryHandler(service galleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// List godoc
// @Summary List gallery images
// @Description Most recently added first
// @Tags Gallery
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, images)
}

// Create godoc
// @Summary Add a gallery image
// @Tags Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.GalleryImage true "Image"
// @Success 201 {object} response.Envelope
// @Router /gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req models.GalleryImage
	if err := bindJSON(c, &req, "gallery image"); err != nil {
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
// @Summary Update a gallery image
// @Tags Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Param payload body models.GalleryImage true "Image"
// @Success 200 {object} response.Envelope
// @Router /gallery/{id} [put]
func (h *GalleryHandler) Update(c *gin.Context) {
	var req models.GalleryImage
	if err := bindJSON(c, &req, "gallery image"); err != nil {
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
// @Summary Delete a gallery image
// @Tags Gallery
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 204
// @Router /gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
