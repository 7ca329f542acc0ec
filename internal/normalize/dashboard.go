package normalize

import (
	"github.com/hrdash/hrdash-gateway-go/internal/domain/dashboard"
)

// DashboardSummary normalizes the admin dashboard summary payload.
//
// Alias table (first match wins):
//
//	total_employees   <- total_employees, employee_count
//	present_today     <- present_today, today_present
//	on_leave_today    <- on_leave_today, today_on_leave
//	pending_approvals <- pending_approvals, pending_leave_requests
//	open_tickets      <- open_tickets, tickets_open
func DashboardSummary(raw map[string]any) dashboard.Summary {
	if raw == nil {
		return dashboard.Summary{}
	}
	return dashboard.Summary{
		TotalEmployees:   int64(pickNumber(raw, "total_employees", "employee_count")),
		PresentToday:     int64(pickNumber(raw, "present_today", "today_present")),
		OnLeaveToday:     int64(pickNumber(raw, "on_leave_today", "today_on_leave")),
		PendingApprovals: int64(pickNumber(raw, "pending_approvals", "pending_leave_requests")),
		OpenTickets:      int64(pickNumber(raw, "open_tickets", "tickets_open")),
	}
}
