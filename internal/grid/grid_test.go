package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdash/hrdash-gateway-go/internal/calendar"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/holiday"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
)

func TestBuildMonthLeapFebruary(t *testing.T) {
	// 2024-02-01 is a Thursday, so the grid starts with 4 padding cells
	// and February 2024 has 29 days.
	view := BuildMonth(2024, time.February, Input{
		Today: calendar.NewDate(2024, time.February, 15),
	})

	assert.Equal(t, 4, view.Padding)
	require.Len(t, view.Cells, 4+29)

	for i := 0; i < 4; i++ {
		assert.Nil(t, view.Cells[i].Day, "padding cell %d must have nil day", i)
		assert.Empty(t, view.Cells[i].Date)
	}
	require.NotNil(t, view.Cells[4].Day)
	assert.Equal(t, 1, *view.Cells[4].Day)
	assert.Equal(t, "2024-02-01", view.Cells[4].Date)

	last := view.Cells[len(view.Cells)-1]
	require.NotNil(t, last.Day)
	assert.Equal(t, 29, *last.Day)
}

func TestBuildMonthCellsAscending(t *testing.T) {
	view := BuildMonth(2024, time.June, Input{Today: calendar.NewDate(2024, time.June, 10)})

	prev := ""
	for _, cell := range view.Cells {
		if cell.Day == nil {
			assert.Empty(t, prev, "padding must come strictly before day cells")
			continue
		}
		if prev != "" {
			assert.Greater(t, cell.Date, prev, "cells must be in ascending date order")
		}
		prev = cell.Date
	}
}

func TestBuildMonthStatuses(t *testing.T) {
	today := calendar.NewDate(2024, time.February, 15)
	view := BuildMonth(2024, time.February, Input{
		Records: []attendance.DayRecord{
			{Date: calendar.NewDate(2024, time.February, 14), Status: calendar.StatusPresent},
			{Date: calendar.NewDate(2024, time.February, 13), Status: calendar.StatusWorkFromHome},
		},
		Holidays: []holiday.Holiday{
			{Name: "Founders Day", Date: calendar.NewDate(2024, time.February, 14), Kind: holiday.KindNational},
		},
		Today: today,
	})

	cellFor := func(day int) DayCell {
		for _, c := range view.Cells {
			if c.Day != nil && *c.Day == day {
				return c
			}
		}
		t.Fatalf("no cell for day %d", day)
		return DayCell{}
	}

	// Holiday strictly dominates the attendance record on the same date.
	feb14 := cellFor(14)
	assert.Equal(t, calendar.StatusHoliday, feb14.Status)
	require.NotNil(t, feb14.Holiday)
	assert.Equal(t, "Founders Day", feb14.Holiday.Name)

	assert.Equal(t, calendar.StatusWorkFromHome, cellFor(13).Status)
	assert.Equal(t, calendar.StatusWeekend, cellFor(10).Status) // Saturday
	assert.Equal(t, calendar.StatusFuture, cellFor(16).Status)
	assert.Equal(t, calendar.StatusAbsent, cellFor(12).Status) // past weekday, no record

	assert.True(t, cellFor(15).IsToday)
	assert.False(t, cellFor(14).IsToday)
}

func TestBuildMonthExpandsLeaveRanges(t *testing.T) {
	entry := leave.CalendarEntry{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		TypeCode:   "casual",
		Status:     leave.StatusApproved,
		StartDate:  calendar.NewDate(2024, time.March, 4),
		EndDate:    calendar.NewDate(2024, time.March, 8),
		TotalDays:  4.5,
		DayDetail: map[string]calendar.DaySpan{
			"2024-03-08": calendar.SpanFirstHalf,
		},
	}
	view := BuildMonth(2024, time.March, Input{
		Leaves: []leave.CalendarEntry{entry},
		Today:  calendar.NewDate(2024, time.March, 31),
	})

	hits := 0
	for _, cell := range view.Cells {
		if len(cell.Leaves) > 0 {
			hits++
			assert.Equal(t, "lr-1", cell.Leaves[0].ID)
		}
	}
	assert.Equal(t, 5, hits, "a 5-day leave must hit 5 cells")

	// The half day carries its qualifier; the full days stay unqualified.
	for _, cell := range view.Cells {
		switch cell.Date {
		case "2024-03-08":
			assert.Equal(t, calendar.SpanFirstHalf, cell.Span)
		case "2024-03-04":
			assert.Empty(t, cell.Span)
		}
	}
}

func TestBuildTeamMonthCountsAndDedup(t *testing.T) {
	mar4 := calendar.NewDate(2024, time.March, 4)
	mar5 := calendar.NewDate(2024, time.March, 5)
	entries := []leave.CalendarEntry{
		{ID: "a", EmployeeID: "emp-1", StartDate: mar4, EndDate: mar5},
		{ID: "a-dup", EmployeeID: "emp-1", StartDate: mar4, EndDate: mar5}, // duplicated backend row
		{ID: "b", EmployeeID: "emp-2", StartDate: mar4, EndDate: mar4},
	}

	resp := BuildTeamMonth(2024, time.March, entries)
	require.Len(t, resp.Days, 31)

	day4 := resp.Days[3]
	assert.Equal(t, "2024-03-04", day4.Date)
	assert.Equal(t, 2, day4.Count, "two distinct employees on leave")
	assert.Len(t, day4.Entries, 2, "duplicate (employee, start) rows collapse to one")

	day5 := resp.Days[4]
	assert.Equal(t, 1, day5.Count)

	assert.Equal(t, 0, resp.Days[10].Count)
	assert.Empty(t, resp.Days[10].Entries)
}
