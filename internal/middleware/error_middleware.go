package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/dberrors"
	"github.com/yigit/collegehub/internal/pkg/logger"
)

// HandleAPIError maps err to a status code and writes the standard error body.
// Server-side failures are logged; their details never reach the client.
func HandleAPIError(c *gin.Context, err error) {
	status, resp := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, resp)
}

func errorResponse(err error) (int, *dto.ErrorResponse) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		return http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidID, "Invalid ID format")
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeBadRequest, messageOr(err, "Bad request"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		resp := dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Validation failed")
		if details, ok := apperrors.Details(err); ok {
			return http.StatusBadRequest, resp.WithDetails(details)
		}
		return http.StatusBadRequest, resp.WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, dto.NewErrorResponse(dto.ErrorCodeServiceUnavailable, "Service unavailable")
	case errors.Is(err, apperrors.ErrCurrencyUnavailable):
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeExternalServiceError, "Failed to fetch currency rates")
	case dberrors.IsTimeout(err):
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeDatabaseError, "Database query timed out")
	default:
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOr returns the client-facing message carried by err, capitalized, or fallback
func messageOr(err error, fallback string) string {
	msg, ok := apperrors.Message(err)
	if !ok {
		return fallback
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
