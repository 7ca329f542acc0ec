package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar-local date with no time-of-day component.
// The zero value is not a valid date; use IsZero to check.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalizing out-of-range components the same way
// time.Date does (e.g. Feb 30 becomes Mar 1 or 2), so a constructed Date
// always holds a valid day-of-month.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String returns the ISO form "YYYY-MM-DD", the key format used by all
// per-date lookup maps.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// Next returns the following calendar day, rolling over month and year.
func (d Date) Next() Date {
	return DateOf(d.Time().AddDate(0, 0, 1))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MarshalJSON encodes the date as an ISO "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" and full ISO timestamps, and treats
// null, empty and unparseable values as the zero Date. Upstream payloads
// drift between date and datetime encodings, so this stays lenient.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) >= 10 {
		if parsed, err := ParseDate(s[:10]); err == nil {
			*d = parsed
			return nil
		}
	}
	*d = Date{}
	return nil
}

// DaysInMonth returns the number of days in the month, using day 0 of the
// next month so leap years fall out of the arithmetic.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthStart returns the first day of the month.
func MonthStart(year int, month time.Month) Date {
	return NewDate(year, month, 1)
}

// MonthEnd returns the last day of the month.
func MonthEnd(year int, month time.Month) Date {
	return NewDate(year, month, DaysInMonth(year, month))
}
