package dashboard

import (
	"context"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
)

// DashboardService aggregates the normalized dashboard panels.
type DashboardService interface {
	// GetDashboard returns the combined landing-screen payload.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// GetSummary returns the normalized admin summary cards.
	GetSummary(ctx context.Context) (Summary, error)

	// GetLeaveSummary returns the authenticated employee's yearly leave
	// summary. An empty year string means the current year.
	GetLeaveSummary(ctx context.Context, year string) (leave.Summary, error)
}
