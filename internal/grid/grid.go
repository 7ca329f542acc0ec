// Package grid assembles the per-month calendar grid consumed by every
// calendar-rendering screen: attendance self-service, the profile heatmap
// and the team leave calendar.
package grid

import (
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/calendar"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/holiday"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
)

// DayCell is one cell of the month grid. Leading padding cells have a nil
// Day and empty Date so the first week aligns to its weekday column. Cells
// are built fresh per grid build and never mutated afterwards.
type DayCell struct {
	Day     *int                   `json:"day"`
	Date    string                 `json:"date,omitempty"`
	Status  calendar.DayStatus     `json:"status,omitempty"`
	Span    calendar.DaySpan       `json:"span,omitempty"`
	IsToday bool                   `json:"is_today"`
	Holiday *holiday.Holiday       `json:"holiday,omitempty"`
	Record  *attendance.DayRecord  `json:"record,omitempty"`
	Leaves  []leave.CalendarEntry  `json:"leaves,omitempty"`
}

// Input carries everything a month grid needs. Records and Holidays are
// indexed once into per-date maps; Leaves are pre-expanded with the range
// expander so the grid walk itself has no range logic.
type Input struct {
	Records  []attendance.DayRecord
	Holidays []holiday.Holiday
	Leaves   []leave.CalendarEntry
	Today    calendar.Date
}

// MonthView is the grid response served to calendar screens. Cells are in
// strictly ascending date order with padding strictly first, so consumers
// can map index directly onto a 7-column week layout.
type MonthView struct {
	Year    int       `json:"year"`
	Month   int       `json:"month"`
	Padding int       `json:"padding"`
	Cells   []DayCell `json:"cells"`
}

// BuildMonth produces the ordered grid for one month: leading nil padding
// for the weekday offset of day 1 (Sunday = 0), then one cell per day.
func BuildMonth(year int, month time.Month, in Input) MonthView {
	monthStart := calendar.MonthStart(year, month)
	monthEnd := calendar.MonthEnd(year, month)
	days := calendar.DaysInMonth(year, month)

	recordsByDate := make(map[string]*attendance.DayRecord, len(in.Records))
	for i := range in.Records {
		recordsByDate[in.Records[i].Date.String()] = &in.Records[i]
	}

	holidaysByDate := make(map[string]*holiday.Holiday, len(in.Holidays))
	for i := range in.Holidays {
		holidaysByDate[in.Holidays[i].Date.String()] = &in.Holidays[i]
	}

	// A 5-day leave request contributes a hit on each of its 5 days.
	leavesByDate := make(map[string][]leave.CalendarEntry)
	for _, entry := range in.Leaves {
		for _, d := range entry.Range().Expand(monthStart, monthEnd) {
			leavesByDate[d.String()] = append(leavesByDate[d.String()], entry)
		}
	}

	padding := int(monthStart.Weekday())
	view := MonthView{
		Year:    year,
		Month:   int(month),
		Padding: padding,
		Cells:   make([]DayCell, 0, padding+days),
	}
	for i := 0; i < padding; i++ {
		view.Cells = append(view.Cells, DayCell{})
	}

	for day := 1; day <= days; day++ {
		date := calendar.NewDate(year, month, day)
		key := date.String()

		rec := recordsByDate[key]
		hol := holidaysByDate[key]
		leaves := leavesByDate[key]

		var recordStatus calendar.DayStatus
		if rec != nil {
			recordStatus = rec.Status
		}
		status := calendar.ResolveStatus(recordStatus, hol != nil, date.IsWeekend(), date.After(in.Today))

		d := day
		cell := DayCell{
			Day:     &d,
			Date:    key,
			Status:  status,
			IsToday: date.Equal(in.Today),
			Holiday: hol,
			Record:  rec,
			Leaves:  leaves,
		}
		// Surface the half-day qualifier so a first_half entry does not read
		// as a full day off. With overlapping entries the first non-full span
		// wins; the sidebar shows the rest.
		for _, entry := range leaves {
			if span := entry.SpanOn(date); span != calendar.SpanFullDay {
				cell.Span = span
				break
			}
		}
		view.Cells = append(view.Cells, cell)
	}

	return view
}
