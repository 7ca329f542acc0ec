package leave

import (
	"context"
	"time"

	leaveDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
	"github.com/hrdash/hrdash-gateway-go/internal/grid"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

type serviceImpl struct {
	client *upstream.Client
	now    func() time.Time
}

func NewLeaveService(client *upstream.Client) leaveDomain.LeaveService {
	return &serviceImpl{client: client, now: time.Now}
}

func (s *serviceImpl) TeamCalendar(ctx context.Context, year, month int) (leaveDomain.TeamCalendarResponse, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	entries, err := s.client.LeaveCalendar(ctx, "", year, time.Month(month))
	if err != nil {
		return leaveDomain.TeamCalendarResponse{}, err
	}

	return grid.BuildTeamMonth(year, time.Month(month), entries), nil
}
