package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is a non-2xx upstream response. Message carries the server's own
// error text verbatim when the body had one, and is empty otherwise so the
// caller can substitute an action-specific fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// ServerMessage returns the verbatim upstream error text for err, or the
// given fallback when the response carried none.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// errorMessage digs the human-readable message out of an error body. Both
// {"error": {"message": ...}} and flat {"message": ...} shapes exist in the
// wild.
func errorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return envelope.Message
}
