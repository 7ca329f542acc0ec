package normalize

import (
	"github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
)

// LeaveSummary normalizes the yearly leave summary payload. Rows arrive
// under "by_type" in current deployments and "data" in older ones; row
// fields alias the same way:
//
//	leave_type      <- leave_type_name, leave_type
//	total_used      <- total_days, total_used
//	total_pending   <- total_pending, pending
//	total_available <- total_available, available, balance
func LeaveSummary(raw map[string]any, year int) leave.Summary {
	summary := leave.Summary{Year: year, Rows: []leave.SummaryRow{}}
	if raw == nil {
		return summary
	}
	for _, row := range pickObjects(raw, "by_type", "data") {
		summary.Rows = append(summary.Rows, leave.SummaryRow{
			LeaveType:      pickString(row, "leave_type_name", "leave_type"),
			TotalUsed:      pickNumber(row, "total_days", "total_used"),
			TotalPending:   pickNumber(row, "total_pending", "pending"),
			TotalAvailable: pickNumber(row, "total_available", "available", "balance"),
		})
	}
	return summary
}
