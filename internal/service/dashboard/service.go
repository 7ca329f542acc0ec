package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	dashboardDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/dashboard"
	leaveDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
	"github.com/hrdash/hrdash-gateway-go/internal/normalize"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

type serviceImpl struct {
	client *upstream.Client
}

func NewDashboardService(client *upstream.Client) dashboardDomain.DashboardService {
	return &serviceImpl{client: client}
}

// getEmployeeID extracts employee_id from JWT claims
func (s *serviceImpl) getEmployeeID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id not found in claims")
	}
	return employeeID, nil
}

// parseYear parses a year string, defaulting to the current year.
func parseYear(year string) int {
	now := time.Now()
	if year == "" {
		return now.Year()
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 2000 || y > 2100 {
		return now.Year()
	}
	return y
}

func (s *serviceImpl) GetDashboard(ctx context.Context) (*dashboardDomain.DashboardResponse, error) {
	var (
		summary      dashboardDomain.Summary
		leaveSummary leaveDomain.Summary
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.GetSummary(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		leaveSummary, err = s.GetLeaveSummary(gCtx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboardDomain.DashboardResponse{
		Summary:      summary,
		LeaveSummary: leaveSummary,
	}, nil
}

func (s *serviceImpl) GetSummary(ctx context.Context) (dashboardDomain.Summary, error) {
	raw, err := s.client.DashboardSummary(ctx)
	if err != nil {
		return dashboardDomain.Summary{}, err
	}
	return normalize.DashboardSummary(raw), nil
}

func (s *serviceImpl) GetLeaveSummary(ctx context.Context, year string) (leaveDomain.Summary, error) {
	employeeID, err := s.getEmployeeID(ctx)
	if err != nil {
		return leaveDomain.Summary{}, err
	}

	y := parseYear(year)
	raw, err := s.client.LeaveSummary(ctx, employeeID, y)
	if err != nil {
		return leaveDomain.Summary{}, err
	}
	return normalize.LeaveSummary(raw, y), nil
}
