package dashboard

import "github.com/hrdash/hrdash-gateway-go/internal/domain/leave"

// Summary is the normalized admin dashboard summary. Every numeric field
// defaults to 0 when the upstream payload omits or renames it, so the cards
// render zeros instead of failing.
type Summary struct {
	TotalEmployees   int64 `json:"total_employees"`
	PresentToday     int64 `json:"present_today"`
	OnLeaveToday     int64 `json:"on_leave_today"`
	PendingApprovals int64 `json:"pending_approvals"`
	OpenTickets      int64 `json:"open_tickets"`
}

// DashboardResponse combines the panels fetched for the landing screen.
type DashboardResponse struct {
	Summary      Summary       `json:"summary"`
	LeaveSummary leave.Summary `json:"leave_summary"`
}
