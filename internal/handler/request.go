package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

// bindJSON decodes the request body into dest, reporting malformed payloads
// as validation errors.
func bindJSON(c *gin.Context, dest interface{}, what string) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+what+" payload")
	}
	return nil
}

// boolQuery parses an optional boolean query parameter.
func boolQuery(c *gin.Context, name string) (bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, appErrors.Clone(appErrors.ErrValidation, name+" must be true or false")
	}
	return v, nil
}
