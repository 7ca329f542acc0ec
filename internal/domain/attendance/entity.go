package attendance

import (
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/calendar"
)

// DayRecord is one attendance row per employee per date, as normalized from
// the upstream API. Records are immutable from this side: the gateway only
// reads them and submits correction requests.
type DayRecord struct {
	ID            string             `json:"id,omitempty"`
	EmployeeID    string             `json:"employee_id,omitempty"`
	Date          calendar.Date      `json:"date"`
	Status        calendar.DayStatus `json:"status"`
	FirstClockIn  *time.Time         `json:"first_clock_in,omitempty"`
	LastClockOut  *time.Time         `json:"last_clock_out,omitempty"`
	TotalHours    float64            `json:"total_hours"`
	IsRegularized bool               `json:"is_regularized"`
}

// HasOpenSession reports whether the record represents a running clock-in:
// a first clock-in with no matching clock-out.
func (r DayRecord) HasOpenSession() bool {
	return r.FirstClockIn != nil && r.LastClockOut == nil
}
