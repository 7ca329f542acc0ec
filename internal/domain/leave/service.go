package leave

import "context"

// LeaveService serves the team leave calendar.
type LeaveService interface {
	// TeamCalendar returns per-day on-leave counts and entries for a month.
	TeamCalendar(ctx context.Context, year, month int) (TeamCalendarResponse, error)
}
