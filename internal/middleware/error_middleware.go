package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/retriever-essentials/pantry/internal/app/models/dto"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
	"github.com/retriever-essentials/pantry/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. Every
// handler funnels its errors through here so the wire contract stays in one
// place: the body is always {"error": ..., "details": ...}.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()
	var details interface{}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			message = custom.Message
		}
		if custom.Details != nil {
			details = custom.Details
		}
	}

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		message = "Internal server error"
		details = nil
	}

	resp := dto.NewErrorResponse(message)
	if details != nil {
		resp = resp.WithDetails(details)
	}
	c.AbortWithStatusJSON(status, resp)
}

func statusForError(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrItemNotFound,
		apperrors.ErrVendorNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrInsufficientStock,
		apperrors.ErrWrongMeasurementType,
		apperrors.ErrSignoutLimitExceeded,
		apperrors.ErrMissingStatus,
		apperrors.ErrVendorHasItems,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrItemAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrUserIDExists,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict):
		return http.StatusConflict
	case apperrors.Is(err, apperrors.ErrInvalidCredentials,
		apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
