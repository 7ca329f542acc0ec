package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/holiday"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
)

// listEnvelope matches the common {"data": [...]} list wrapper. Typed
// fetchers use it for resources whose row shape is stable enough to decode
// directly; everything else goes through GetRaw and the normalizer.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// AttendanceMonth returns one employee's attendance rows for a month.
func (c *Client) AttendanceMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.DayRecord, error) {
	q := monthQuery(year, month)
	q.Set("employee_id", employeeID)

	var env listEnvelope[attendance.DayRecord]
	if err := c.do(ctx, http.MethodGet, "/attendance", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// TodayAttendance returns the employee's record for today, or nil when the
// backend has not created one yet.
func (c *Client) TodayAttendance(ctx context.Context, employeeID string, today string) (*attendance.DayRecord, error) {
	q := url.Values{}
	q.Set("employee_id", employeeID)
	q.Set("date", today)

	var env listEnvelope[attendance.DayRecord]
	if err := c.do(ctx, http.MethodGet, "/attendance", q, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	return &env.Data[0], nil
}

// Holidays returns a calendar's holidays for one year.
func (c *Client) Holidays(ctx context.Context, calendarID string, year int) ([]holiday.Holiday, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	if calendarID != "" {
		q.Set("calendar_id", calendarID)
	}

	var env listEnvelope[holiday.Holiday]
	if err := c.do(ctx, http.MethodGet, "/holidays", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// LeaveCalendar returns the leave entries touching a month. An empty
// employeeID returns the whole team's entries.
func (c *Client) LeaveCalendar(ctx context.Context, employeeID string, year int, month time.Month) ([]leave.CalendarEntry, error) {
	q := monthQuery(year, month)
	if employeeID != "" {
		q.Set("employee_id", employeeID)
	}

	var env listEnvelope[leave.CalendarEntry]
	if err := c.do(ctx, http.MethodGet, "/leave/calendar", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ClockIn submits a clock-in and returns the resulting attendance record.
func (c *Client) ClockIn(ctx context.Context, employeeID string) (attendance.DayRecord, error) {
	var rec attendance.DayRecord
	body := map[string]string{"employee_id": employeeID}
	if err := c.do(ctx, http.MethodPost, "/attendance/clock-in", nil, body, &rec); err != nil {
		return attendance.DayRecord{}, err
	}
	return rec, nil
}

// ClockOut submits a clock-out and returns the updated attendance record.
func (c *Client) ClockOut(ctx context.Context, employeeID string) (attendance.DayRecord, error) {
	var rec attendance.DayRecord
	body := map[string]string{"employee_id": employeeID}
	if err := c.do(ctx, http.MethodPost, "/attendance/clock-out", nil, body, &rec); err != nil {
		return attendance.DayRecord{}, err
	}
	return rec, nil
}

// DashboardSummary fetches the raw admin dashboard summary for normalization.
func (c *Client) DashboardSummary(ctx context.Context) (map[string]any, error) {
	return c.GetRaw(ctx, "/dashboard/summary", nil)
}

// LeaveSummary fetches the raw yearly leave summary for normalization.
func (c *Client) LeaveSummary(ctx context.Context, employeeID string, year int) (map[string]any, error) {
	q := url.Values{}
	q.Set("employee_id", employeeID)
	q.Set("year", strconv.Itoa(year))
	return c.GetRaw(ctx, "/leave/summary", q)
}

// Settlement fetches one raw FnF settlement record.
func (c *Client) Settlement(ctx context.Context, id string) (map[string]any, error) {
	return c.GetRaw(ctx, "/settlements/"+url.PathEscape(id), nil)
}

// Settlements fetches the raw settlement list page.
func (c *Client) Settlements(ctx context.Context, page, pageSize int) (map[string]any, error) {
	return c.GetRaw(ctx, "/settlements", pageQuery(page, pageSize))
}

// Tickets fetches the raw helpdesk ticket list page.
func (c *Client) Tickets(ctx context.Context, page, pageSize int) (map[string]any, error) {
	return c.GetRaw(ctx, "/tickets", pageQuery(page, pageSize))
}

func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	return q
}
