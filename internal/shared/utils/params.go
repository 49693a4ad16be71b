package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

// ParseUintParam reads a positive numeric path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, errors.NewValidationError("Geçersiz parametre", name+" is required")
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("Geçersiz parametre", name+" must be a positive integer")
	}
	return uint(v), nil
}
