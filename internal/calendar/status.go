package calendar

// DayStatus is the display status resolved for a single calendar day.
type DayStatus string

const (
	StatusPresent      DayStatus = "present"
	StatusAbsent       DayStatus = "absent"
	StatusHalfDay      DayStatus = "half_day"
	StatusWeekend      DayStatus = "weekend"
	StatusHoliday      DayStatus = "holiday"
	StatusOnLeave      DayStatus = "on_leave"
	StatusWorkFromHome DayStatus = "work_from_home"
	StatusOnDuty       DayStatus = "on_duty"

	// StatusFuture is display-only. It is never stored by the backend and
	// exists so upcoming weekdays do not render as absences.
	StatusFuture DayStatus = "future"
)

// DaySpan qualifies how much of a day a leave entry covers.
type DaySpan string

const (
	SpanFullDay    DaySpan = "full_day"
	SpanFirstHalf  DaySpan = "first_half"
	SpanSecondHalf DaySpan = "second_half"
)

// ResolveStatus combines the signals for one date into exactly one display
// status. Precedence, highest first:
//
//  1. holiday
//  2. the attendance record's own status, verbatim
//  3. weekend
//  4. future
//  5. absent
//
// Holiday and recorded leave stay visually authoritative over weekend and
// absence noise, so the ordering is fixed. recordStatus is empty when no
// attendance record exists for the date.
func ResolveStatus(recordStatus DayStatus, holiday, weekend, future bool) DayStatus {
	switch {
	case holiday:
		return StatusHoliday
	case recordStatus != "":
		return recordStatus
	case weekend:
		return StatusWeekend
	case future:
		return StatusFuture
	default:
		return StatusAbsent
	}
}
