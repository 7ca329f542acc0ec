package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/validator"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleError_ValidationErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "month must be between 1 and 12", resp.Error.Details["month"])
}

func TestHandleError_UpstreamStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		upstreamStatus int
		wantStatus     int
		wantCode       string
	}{
		{"not found", http.StatusNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", http.StatusConflict, http.StatusConflict, "CONFLICT"},
		{"unauthorized", http.StatusUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", http.StatusForbidden, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"server error becomes bad gateway", http.StatusInternalServerError, http.StatusBadGateway, "UPSTREAM_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, &upstream.APIError{StatusCode: tt.upstreamStatus, Message: "server said no"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			// The upstream's own message is passed through verbatim.
			assert.Equal(t, "server said no", resp.Error.Message)
		})
	}
}

func TestHandleError_AttendanceSentinels(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleError(rec, attendance.ErrAlreadyClockedIn)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	HandleError(rec, attendance.ErrNotClockedIn)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleError_UnknownErrorIsInternal(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	// Internal details never leak to the client.
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
}

func TestHandleActionError_FallbackOnlyWhenServerSilent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleActionError(rec, &upstream.APIError{StatusCode: http.StatusBadGateway}, "Clock-in failed, please try again")
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Clock-in failed, please try again", resp.Error.Message)

	rec = httptest.NewRecorder()
	HandleActionError(rec, &upstream.APIError{StatusCode: http.StatusConflict, Message: "Already clocked in"}, "Clock-in failed, please try again")
	resp = decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Already clocked in", resp.Error.Message)
}
