package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/logger"
	"github.com/yigit/studentrecords/internal/pkg/validation"
)

var registerRules sync.Once

// ensureRules installs the custom binding rules on first use
func ensureRules() {
	registerRules.Do(func() {
		if err := validation.RegisterWithGin(); err != nil {
			logger.Error().Err(err).Msg("Failed to register custom validation rules")
		}
	})
}

// BindJSON binds and validates the request body into obj. On failure it
// writes a 422 response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	ensureRules()
	if err := c.ShouldBindJSON(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

// ParseInt64Param reads a positive integer path parameter. On failure it
// writes a 422 response and returns false.
func ParseInt64Param(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || value <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithField(name).
			WithDetails(name + " must be a positive integer")
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return value, true
}
