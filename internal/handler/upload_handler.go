package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
	"github.com/campus-showcase/showcase-api/pkg/response"
)

type uploadService interface {
	Upload(ctx context.Context, category, originalName string, size int64, r io.Reader) (string, error)
}

// UploadResponse is the reference of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadHandler accepts image uploads.
type UploadHandler struct {
	service  uploadService
	maxBytes int64
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(service uploadService, maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &UploadHandler{service: service, maxBytes: maxBytes}
}

// Upload godoc
// @Summary Upload an image
// @Description Stores the image and returns the reference under which it is served
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param category path string true "winners, activities, posters or gallery"
// @Param file formData file true "Image"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Router /uploads/{category} [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+64*1024)
	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(c, appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d bytes", h.maxBytes)))
			return
		}
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, `multipart field "file" is required`))
		return
	}
	if header.Size > h.maxBytes {
		response.Error(c, appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d bytes", h.maxBytes)))
		return
	}
	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read upload"))
		return
	}
	defer file.Close()

	ref, err := h.service.Upload(c.Request.Context(), c.Param("category"), header.Filename, header.Size, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, UploadResponse{URL: ref})
}
