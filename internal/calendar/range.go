package calendar

// Range is an inclusive closed interval [Start, End] of calendar dates.
// Start == End is a single-day range, which is how half-day leave arrives.
type Range struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

// Contains reports whether d falls inside the range.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Expand clips the range to [monthStart, monthEnd] and walks it day by day,
// returning one Date per day in ascending order. A range that does not
// intersect the window, including the malformed start > end case, expands to
// nil rather than looping; clipping bounds the walk to at most one month of
// iterations.
func (r Range) Expand(monthStart, monthEnd Date) []Date {
	start := r.Start
	if start.Before(monthStart) {
		start = monthStart
	}
	end := r.End
	if end.After(monthEnd) {
		end = monthEnd
	}
	if start.After(end) {
		return nil
	}

	var days []Date
	for d := start; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days
}
