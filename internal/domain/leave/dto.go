package leave

// SummaryRow is one leave type's usage within a yearly summary.
type SummaryRow struct {
	LeaveType      string  `json:"leave_type"`
	TotalUsed      float64 `json:"total_used"`
	TotalPending   float64 `json:"total_pending"`
	TotalAvailable float64 `json:"total_available"`
}

// Summary is the normalized yearly leave summary for one employee.
type Summary struct {
	Year int          `json:"year"`
	Rows []SummaryRow `json:"rows"`
}

// TeamDay aggregates who is on leave on a single date across the team.
// Count is the number of distinct employees, Entries the deduplicated set
// backing it. This is a distinct presentation mode from the single-employee
// calendar, which resolves one status per day instead.
type TeamDay struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Count   int             `json:"count"`
	Entries []CalendarEntry `json:"entries"`
}

// TeamCalendarResponse is the full-month team leave view.
type TeamCalendarResponse struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []TeamDay `json:"days"`
}
