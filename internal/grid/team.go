package grid

import (
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/calendar"
	"github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
)

// BuildTeamMonth aggregates leave entries into the team calendar view: for
// every day of the month, how many employees are away and which entries put
// them there.
//
// Pathological backend states can repeat the same entry, so entries are
// deduplicated by (employee id, range start). Distinct employees sharing a
// date are always kept.
func BuildTeamMonth(year int, month time.Month, entries []leave.CalendarEntry) leave.TeamCalendarResponse {
	monthStart := calendar.MonthStart(year, month)
	monthEnd := calendar.MonthEnd(year, month)

	type dedupKey struct {
		employeeID string
		start      string
	}
	seen := make(map[dedupKey]struct{}, len(entries))
	deduped := make([]leave.CalendarEntry, 0, len(entries))
	for _, e := range entries {
		k := dedupKey{employeeID: e.EmployeeID, start: e.StartDate.String()}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, e)
	}

	byDate := make(map[string][]leave.CalendarEntry)
	for _, entry := range deduped {
		for _, d := range entry.Range().Expand(monthStart, monthEnd) {
			byDate[d.String()] = append(byDate[d.String()], entry)
		}
	}

	resp := leave.TeamCalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  make([]leave.TeamDay, 0, calendar.DaysInMonth(year, month)),
	}
	for d := monthStart; !d.After(monthEnd); d = d.Next() {
		dayEntries := byDate[d.String()]
		employees := make(map[string]struct{}, len(dayEntries))
		for _, e := range dayEntries {
			employees[e.EmployeeID] = struct{}{}
		}
		resp.Days = append(resp.Days, leave.TeamDay{
			Date:    d.String(),
			Count:   len(employees),
			Entries: dayEntries,
		})
	}
	return resp
}
