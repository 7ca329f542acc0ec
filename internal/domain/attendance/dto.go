package attendance

import (
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/pkg/validator"
)

// MonthFilter selects the month a calendar view renders.
type MonthFilter struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	now := time.Now()
	if f.Year == 0 {
		f.Year = now.Year()
	}
	if f.Month == 0 {
		f.Month = int(now.Month())
	}

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatusResponse describes today's attendance state for the self-service
// screen: whether a session is open and which actions are currently allowed.
type StatusResponse struct {
	Today          string     `json:"today"` // YYYY-MM-DD
	TodayRecord    *DayRecord `json:"today_record,omitempty"`
	HasOpenSession bool       `json:"has_open_session"`
	SessionState   string     `json:"session_state"`
	ElapsedSeconds int64      `json:"elapsed_seconds"`
	CanClockIn     bool       `json:"can_clock_in"`
	CanClockOut    bool       `json:"can_clock_out"`
}

// ClockActionResponse is returned by clock-in and clock-out submissions.
type ClockActionResponse struct {
	Record         DayRecord `json:"record"`
	SessionState   string    `json:"session_state"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
}
