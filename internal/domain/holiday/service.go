package holiday

import "context"

// HolidayService serves holiday calendars, caching upstream responses so
// calendar grids do not refetch a near-static year of holidays per render.
type HolidayService interface {
	// Year returns all holidays of a calendar for one year.
	Year(ctx context.Context, calendarID string, year int) ([]Holiday, error)

	// Refresh re-fetches the configured calendar's current year into the cache.
	Refresh(ctx context.Context) error
}
