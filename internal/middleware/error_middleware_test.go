package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"item not found", apperrors.ErrItemNotFound, http.StatusNotFound},
		{"vendor not found", apperrors.ErrVendorNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"insufficient stock", apperrors.ErrInsufficientStock, http.StatusBadRequest},
		{"wrong measurement type", apperrors.ErrWrongMeasurementType, http.StatusBadRequest},
		{"signout limit", apperrors.ErrSignoutLimitExceeded, http.StatusBadRequest},
		{"missing status", apperrors.ErrMissingStatus, http.StatusBadRequest},
		{"vendor has items", apperrors.ErrVendorHasItems, http.StatusBadRequest},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"item exists", apperrors.ErrItemAlreadyExists, http.StatusConflict},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestStatusForErrorUnwrapsWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("%w: item CHK-001", apperrors.ErrInsufficientStock)
	assert.Equal(t, http.StatusBadRequest, statusForError(wrapped))

	custom := apperrors.NewCustomError(apperrors.ErrVendorNotFound, "Vendor with ID 42 not found")
	assert.Equal(t, http.StatusNotFound, statusForError(custom))
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrItemNotFound, "Item with ID CHK-001 not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Item with ID CHK-001 not found"}`, rec.Body.String())
}

func TestHandleAPIErrorMasksInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}
