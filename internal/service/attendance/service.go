package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/hrdash/hrdash-gateway-go/internal/calendar"
	attendanceDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	holidayDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/holiday"
	leaveDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
	"github.com/hrdash/hrdash-gateway-go/internal/grid"
	"github.com/hrdash/hrdash-gateway-go/internal/session"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

// Service defines the attendance-facing operations of the gateway.
type Service interface {
	// MonthGrid builds the calendar grid for the authenticated employee.
	MonthGrid(ctx context.Context, filter attendanceDomain.MonthFilter) (grid.MonthView, error)

	// Status reports today's attendance and session state, resuming a
	// running session timer from the stored record if one is open.
	Status(ctx context.Context) (attendanceDomain.StatusResponse, error)

	// ClockIn submits a clock-in upstream and starts the session timer.
	ClockIn(ctx context.Context) (attendanceDomain.ClockActionResponse, error)

	// ClockOut submits a clock-out upstream and stops the session timer.
	ClockOut(ctx context.Context) (attendanceDomain.ClockActionResponse, error)
}

type serviceImpl struct {
	client     *upstream.Client
	holidaySvc holidayDomain.HolidayService
	sessions   *session.Registry
	calendarID string
	now        func() time.Time
}

func NewAttendanceService(
	client *upstream.Client,
	holidaySvc holidayDomain.HolidayService,
	sessions *session.Registry,
	calendarID string,
) Service {
	return &serviceImpl{
		client:     client,
		holidaySvc: holidaySvc,
		sessions:   sessions,
		calendarID: calendarID,
		now:        time.Now,
	}
}

// getEmployeeID extracts employee_id from JWT claims
func getEmployeeID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id not found in claims")
	}
	return employeeID, nil
}

func (s *serviceImpl) MonthGrid(ctx context.Context, filter attendanceDomain.MonthFilter) (grid.MonthView, error) {
	if err := filter.Validate(); err != nil {
		return grid.MonthView{}, err
	}

	employeeID, err := getEmployeeID(ctx)
	if err != nil {
		return grid.MonthView{}, err
	}

	month := time.Month(filter.Month)

	var (
		records  []attendanceDomain.DayRecord
		holidays []holidayDomain.Holiday
		leaves   []leaveDomain.CalendarEntry
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.client.AttendanceMonth(gCtx, employeeID, filter.Year, month)
		return err
	})
	g.Go(func() error {
		var err error
		holidays, err = s.holidaySvc.Year(gCtx, s.calendarID, filter.Year)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.client.LeaveCalendar(gCtx, employeeID, filter.Year, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return grid.MonthView{}, err
	}

	return grid.BuildMonth(filter.Year, month, grid.Input{
		Records:  records,
		Holidays: holidays,
		Leaves:   leaves,
		Today:    calendar.DateOf(s.now()),
	}), nil
}

func (s *serviceImpl) Status(ctx context.Context) (attendanceDomain.StatusResponse, error) {
	employeeID, err := getEmployeeID(ctx)
	if err != nil {
		return attendanceDomain.StatusResponse{}, err
	}

	today := calendar.DateOf(s.now())
	rec, err := s.client.TodayAttendance(ctx, employeeID, today.String())
	if err != nil {
		return attendanceDomain.StatusResponse{}, err
	}

	// Reconstruct a running session from the stored record so a page
	// refresh does not lose the timer.
	s.sessions.Resume(employeeID, rec)
	tick := s.sessions.Snapshot(employeeID)

	open := rec != nil && rec.HasOpenSession()
	return attendanceDomain.StatusResponse{
		Today:          today.String(),
		TodayRecord:    rec,
		HasOpenSession: open,
		SessionState:   string(tick.State),
		ElapsedSeconds: tick.ElapsedSeconds,
		CanClockIn:     !open,
		CanClockOut:    open,
	}, nil
}

func (s *serviceImpl) ClockIn(ctx context.Context) (attendanceDomain.ClockActionResponse, error) {
	employeeID, err := getEmployeeID(ctx)
	if err != nil {
		return attendanceDomain.ClockActionResponse{}, err
	}

	// The submission goes upstream first; the local state machine only
	// transitions after it succeeded.
	rec, err := s.client.ClockIn(ctx, employeeID)
	if err != nil {
		return attendanceDomain.ClockActionResponse{}, err
	}

	at := s.now()
	if rec.FirstClockIn != nil {
		at = *rec.FirstClockIn
	}
	if err := s.sessions.ClockIn(employeeID, at); err != nil {
		return attendanceDomain.ClockActionResponse{}, err
	}

	tick := s.sessions.Snapshot(employeeID)
	return attendanceDomain.ClockActionResponse{
		Record:         rec,
		SessionState:   string(tick.State),
		ElapsedSeconds: tick.ElapsedSeconds,
	}, nil
}

func (s *serviceImpl) ClockOut(ctx context.Context) (attendanceDomain.ClockActionResponse, error) {
	employeeID, err := getEmployeeID(ctx)
	if err != nil {
		return attendanceDomain.ClockActionResponse{}, err
	}

	rec, err := s.client.ClockOut(ctx, employeeID)
	if err != nil {
		return attendanceDomain.ClockActionResponse{}, err
	}

	if err := s.sessions.ClockOut(employeeID); err != nil {
		return attendanceDomain.ClockActionResponse{}, err
	}

	tick := s.sessions.Snapshot(employeeID)
	return attendanceDomain.ClockActionResponse{
		Record:         rec,
		SessionState:   string(tick.State),
		ElapsedSeconds: tick.ElapsedSeconds,
	}, nil
}
