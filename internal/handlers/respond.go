package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func newErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Timestamp: time.Now()}
}

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrAmountMismatch),
		errors.Is(err, apperrors.ErrProjectMismatch):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body, hiding internals behind a generic
// message for unexpected errors.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = fallback
	}
	c.JSON(status, newErrorResponse(msg))
}
