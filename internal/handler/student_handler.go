package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/service"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
	"github.com/campus-showcase/showcase-api/pkg/response"
)

type studentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, pin string) (*models.Student, error)
	Create(ctx context.Context, student models.Student) (*models.Student, error)
	Update(ctx context.Context, pin string, student models.Student) (*models.Student, error)
	Delete(ctx context.Context, pin string) error
	BulkImport(ctx context.Context, text string) (*service.ImportResult, error)
}

// StudentHandler exposes the student roster.
type StudentHandler struct {
	service        studentService
	maxImportBytes int64
}

// NewStudentHandler constructs a StudentHandler. Imports larger than
// maxImportBytes are refused.
func NewStudentHandler(service studentService, maxImportBytes int64) *StudentHandler {
	if maxImportBytes <= 0 {
		maxImportBytes = 2 * 1024 * 1024
	}
	return &StudentHandler{service: service, maxImportBytes: maxImportBytes}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// Get godoc
// @Summary Get a student by PIN
// @Tags Students
// @Produce json
// @Param pin path string true "Student PIN"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{pin} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.service.Get(c.Request.Context(), c.Param("pin"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Create godoc
// @Summary Add a student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.Student true "Student"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req models.Student
	if err := bindJSON(c, &req, "student"); err != nil {
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
// @Summary Update a student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pin path string true "Student PIN"
// @Param payload body models.Student true "Student"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /students/{pin} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req models.Student
	if err := bindJSON(c, &req, "student"); err != nil {
		response.Error(c, err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), c.Param("pin"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, updated)
}

// Delete godoc
// @Summary Delete a student
// @Tags Students
// @Security BearerAuth
// @Param pin path string true "Student PIN"
// @Success 204
// @Router /students/{pin} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("pin")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Import godoc
// @Summary Bulk import students
// @Description Accepts CSV text (PIN, Name, Branch, Year, Section) as the request body or as a multipart "file"
// @Tags Students
// @Accept text/csv,multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file false "Roster file"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Router /students/import [post]
func (h *StudentHandler) Import(c *gin.Context) {
	text, err := h.readRoster(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.BulkImport(c.Request.Context(), text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

func (h *StudentHandler) readRoster(c *gin.Context) (string, error) {
	tooLarge := appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("roster exceeds %d bytes", h.maxImportBytes))
	if c.Request.ContentLength > h.maxImportBytes {
		return "", tooLarge
	}

	var src io.Reader = c.Request.Body
	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if mediaType == "multipart/form-data" {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImportBytes+64*1024)
		header, err := c.FormFile("file")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return "", tooLarge
			}
			return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, `multipart field "file" is required`)
		}
		if header.Size > h.maxImportBytes {
			return "", tooLarge
		}
		file, err := header.Open()
		if err != nil {
			return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read roster file")
		}
		defer file.Close()
		src = file
	}

	data, err := io.ReadAll(io.LimitReader(src, h.maxImportBytes+1))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read roster")
	}
	if int64(len(data)) > h.maxImportBytes {
		return "", tooLarge
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "roster is empty")
	}
	return string(data), nil
}
