package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdash/hrdash-gateway-go/internal/calendar"
	attendanceDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/holiday"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/sse"
	"github.com/hrdash/hrdash-gateway-go/internal/session"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

// stubHolidayService serves a fixed holiday list without the snapshot cache.
type stubHolidayService struct {
	holidays []holiday.Holiday
}

func (s *stubHolidayService) Year(ctx context.Context, calendarID string, year int) ([]holiday.Holiday, error) {
	return s.holidays, nil
}

func (s *stubHolidayService) Refresh(ctx context.Context) error { return nil }

func mustDate(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func claimsContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newFakeUpstream(t *testing.T, api http.HandlerFunc) *upstream.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/", api)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return upstream.NewClient(upstream.Config{
		BaseURL:      server.URL,
		TokenURL:     server.URL + "/oauth/token",
		ClientID:     "gateway",
		ClientSecret: "secret",
		Timeout:      5 * time.Second,
	})
}

func TestAttendanceService_MonthGrid_Success(t *testing.T) {
	t.Parallel()

	client := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/attendance":
			w.Write([]byte(`{"data":[
				{"id":"rec-1","employee_id":"emp-1","date":"2024-02-01","status":"present"},
				{"id":"rec-2","employee_id":"emp-1","date":"2024-02-14","status":"present"}
			]}`))
		case "/leave/calendar":
			w.Write([]byte(`{"data":[]}`))
		default:
			http.NotFound(w, r)
		}
	})

	holidaySvc := &stubHolidayService{holidays: []holiday.Holiday{
		{Name: "Valentine Shutdown", Date: mustDate(t, "2024-02-14"), Kind: holiday.KindNational},
	}}
	sessions := session.NewRegistry(sse.NewHub(), nil)
	t.Cleanup(sessions.Shutdown)

	svc := NewAttendanceService(client, holidaySvc, sessions, "default")

	view, err := svc.MonthGrid(claimsContext(t, "emp-1"), attendanceDomain.MonthFilter{Year: 2024, Month: 2})
	require.NoError(t, err)

	// February 2024 starts on a Thursday and has 29 days.
	assert.Equal(t, 4, view.Padding)
	require.Len(t, view.Cells, 4+29)

	feb14 := view.Cells[4+13]
	assert.Equal(t, "2024-02-14", feb14.Date)
	// Holiday wins over the attendance record on the same day.
	assert.Equal(t, "holiday", string(feb14.Status))
	require.NotNil(t, feb14.Holiday)
	assert.Equal(t, "Valentine Shutdown", feb14.Holiday.Name)
}

func TestAttendanceService_MonthGrid_MissingClaims(t *testing.T) {
	t.Parallel()

	client := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	sessions := session.NewRegistry(sse.NewHub(), nil)
	t.Cleanup(sessions.Shutdown)

	svc := NewAttendanceService(client, &stubHolidayService{}, sessions, "")

	_, err := svc.MonthGrid(context.Background(), attendanceDomain.MonthFilter{Year: 2024, Month: 2})
	assert.Error(t, err)
}

func TestAttendanceService_MonthGrid_InvalidMonth(t *testing.T) {
	t.Parallel()

	client := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	sessions := session.NewRegistry(sse.NewHub(), nil)
	t.Cleanup(sessions.Shutdown)

	svc := NewAttendanceService(client, &stubHolidayService{}, sessions, "")

	_, err := svc.MonthGrid(claimsContext(t, "emp-1"), attendanceDomain.MonthFilter{Year: 2024, Month: 13})
	assert.Error(t, err)
}

func TestAttendanceService_Status_ResumesOpenSession(t *testing.T) {
	t.Parallel()

	clockIn := time.Now().Add(-10 * time.Minute).UTC().Format(time.RFC3339)
	client := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"rec-1","employee_id":"emp-1","date":"` + time.Now().Format("2006-01-02") + `","status":"present","first_clock_in":"` + clockIn + `"}
		]}`))
	})

	sessions := session.NewRegistry(sse.NewHub(), nil)
	t.Cleanup(sessions.Shutdown)

	svc := NewAttendanceService(client, &stubHolidayService{}, sessions, "")

	status, err := svc.Status(claimsContext(t, "emp-1"))
	require.NoError(t, err)

	assert.True(t, status.HasOpenSession)
	assert.Equal(t, "clocked_in", status.SessionState)
	assert.False(t, status.CanClockIn)
	assert.True(t, status.CanClockOut)
	// Roughly ten minutes elapsed, derived from the clock-in timestamp.
	assert.InDelta(t, 600, status.ElapsedSeconds, 5)
}

func TestAttendanceService_ClockIn_Success(t *testing.T) {
	t.Parallel()

	client := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"rec-1","employee_id":"emp-1","date":"2024-02-15","status":"present","first_clock_in":"2024-02-15T09:00:00Z"}`))
	})

	sessions := session.NewRegistry(sse.NewHub(), nil)
	t.Cleanup(sessions.Shutdown)

	svc := NewAttendanceService(client, &stubHolidayService{}, sessions, "")

	result, err := svc.ClockIn(claimsContext(t, "emp-1"))
	require.NoError(t, err)

	assert.Equal(t, "rec-1", result.Record.ID)
	assert.Equal(t, "clocked_in", result.SessionState)
}

func TestAttendanceService_ClockIn_UpstreamRejects(t *testing.T) {
	t.Parallel()

	client := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"message":"Already clocked in for today"}}`))
	})

	sessions := session.NewRegistry(sse.NewHub(), nil)
	t.Cleanup(sessions.Shutdown)

	svc := NewAttendanceService(client, &stubHolidayService{}, sessions, "")

	_, err := svc.ClockIn(claimsContext(t, "emp-1"))
	require.Error(t, err)
	assert.Equal(t, "Already clocked in for today", upstream.ServerMessage(err, ""))

	// The rejected submission must not start a local session.
	tick := sessions.Snapshot("emp-1")
	assert.Equal(t, "not_clocked_in", string(tick.State))
}
