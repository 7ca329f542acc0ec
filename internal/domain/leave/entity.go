package leave

import (
	"github.com/hrdash/hrdash-gateway-go/internal/calendar"
)

// ApprovalStatus mirrors the upstream leave request lifecycle.
type ApprovalStatus string

const (
	StatusWaitingApproval ApprovalStatus = "waiting_approval"
	StatusApproved        ApprovalStatus = "approved"
	StatusRejected        ApprovalStatus = "rejected"
	StatusCancelled       ApprovalStatus = "cancelled"
)

// CalendarEntry is one leave request projected onto the calendar: an employee,
// an inclusive date range, and an optional per-date half-day refinement.
//
// TotalDays is authoritative as stored upstream. The gateway never recomputes
// it; it only redistributes the same entry across the expanded dates.
type CalendarEntry struct {
	ID           string                           `json:"id"`
	EmployeeID   string                           `json:"employee_id"`
	EmployeeName string                           `json:"employee_name,omitempty"`
	TypeCode     string                           `json:"leave_type"`
	Status       ApprovalStatus                   `json:"status"`
	StartDate    calendar.Date                    `json:"start_date"`
	EndDate      calendar.Date                    `json:"end_date"`
	TotalDays    float64                          `json:"total_days"`
	DayDetail    map[string]calendar.DaySpan      `json:"day_detail,omitempty"`
}

// Range returns the entry's inclusive date range.
func (e CalendarEntry) Range() calendar.Range {
	return calendar.Range{Start: e.StartDate, End: e.EndDate}
}

// SpanOn returns how much of the given date the entry covers. Dates without
// a DayDetail entry are full days.
func (e CalendarEntry) SpanOn(d calendar.Date) calendar.DaySpan {
	if span, ok := e.DayDetail[d.String()]; ok {
		return span
	}
	return calendar.SpanFullDay
}
