package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-showcase/showcase-api/pkg/response"
)

type versionSource interface {
	Versions() map[string]uint64
}

// ChangeHandler lets polling clients detect collection changes.
type ChangeHandler struct {
	source versionSource
}

// NewChangeHandler constructs a ChangeHandler.
func NewChangeHandler(source versionSource) *ChangeHandler {
	return &ChangeHandler{source: source}
}

// Versions godoc
// @Summary Collection versions
// @Description Change counter per collection; a client refetches a collection when its counter moves
// @Tags Changes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /changes [get]
func (h *ChangeHandler) Versions(c *gin.Context) {
	response.OK(c, h.source.Versions())
}
