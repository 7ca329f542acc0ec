package response

import (
	"errors"
	"net/http"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/validator"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Upstream failures carry the server's own message verbatim when it
	// sent one; action-specific fallbacks are chosen at the call site.
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			NotFound(w, apiErr.Error())
		case http.StatusConflict:
			Conflict(w, apiErr.Error())
		case http.StatusUnauthorized, http.StatusForbidden:
			Unauthorized(w, apiErr.Error())
		default:
			BadGateway(w, apiErr.Error())
		}
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

// HandleActionError is HandleError with a fallback message for upstream
// failures that carried no usable server text (e.g. clock-in submissions).
func HandleActionError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		apiErr.Message = fallback
	}
	HandleError(w, err)
}
