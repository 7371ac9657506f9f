package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the error envelope
func HandleAPIError(c *gin.Context, err error) {
	var detail *dto.ErrorDetail
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, notFoundMessage(err))
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, conflictMessage(err))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAwardStudentNotExists):
		status = http.StatusUnprocessableEntity
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithField("studentAccount").
			WithDetails("studentAccount does not match any student")
	case errors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusUnprocessableEntity
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(err.Error())
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Unhandled error")
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" && status != http.StatusInternalServerError {
		detail.Message = customErr.Message
		if customErr.Details != nil {
			detail.Details = customErr.Details
		}
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return "Student not found"
	case errors.Is(err, apperrors.ErrAwardNotFound):
		return "Award not found"
	default:
		return "Resource not found"
	}
}

func conflictMessage(err error) string {
	if errors.Is(err, apperrors.ErrAccountAlreadyExists) {
		return "Student account already exists"
	}
	return "Resource already exists"
}

// Recovery turns panics into a logged 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Recovered from panic")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	})
}
