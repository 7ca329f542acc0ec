package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	holidayDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/holiday"
	"github.com/hrdash/hrdash-gateway-go/internal/repository/postgresql"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

const snapshotKind = "holidays"

type serviceImpl struct {
	client     *upstream.Client
	snapshots  postgresql.SnapshotRepository
	calendarID string
	maxAge     time.Duration
}

// NewHolidayService builds the snapshot-cached holiday service. calendarID
// is the calendar refreshed by the background job; maxAge bounds how stale a
// cached year may get before Year refetches it.
func NewHolidayService(
	client *upstream.Client,
	snapshots postgresql.SnapshotRepository,
	calendarID string,
	maxAge time.Duration,
) holidayDomain.HolidayService {
	return &serviceImpl{
		client:     client,
		snapshots:  snapshots,
		calendarID: calendarID,
		maxAge:     maxAge,
	}
}

func scopeKey(calendarID string, year int) string {
	if calendarID == "" {
		calendarID = "default"
	}
	return fmt.Sprintf("%s/%d", calendarID, year)
}

func (s *serviceImpl) Year(ctx context.Context, calendarID string, year int) ([]holidayDomain.Holiday, error) {
	key := scopeKey(calendarID, year)

	if payload, ok, err := s.snapshots.Get(ctx, snapshotKind, key, s.maxAge); err != nil {
		// A broken cache degrades to an upstream fetch, not a failure.
		slog.Warn("holiday snapshot read failed", "key", key, "error", err)
	} else if ok {
		var holidays []holidayDomain.Holiday
		if err := json.Unmarshal(payload, &holidays); err == nil {
			return holidays, nil
		}
		slog.Warn("holiday snapshot payload corrupt, refetching", "key", key)
	}

	return s.fetchAndStore(ctx, calendarID, year)
}

func (s *serviceImpl) Refresh(ctx context.Context) error {
	year := time.Now().Year()
	_, err := s.fetchAndStore(ctx, s.calendarID, year)
	return err
}

func (s *serviceImpl) fetchAndStore(ctx context.Context, calendarID string, year int) ([]holidayDomain.Holiday, error) {
	holidays, err := s.client.Holidays(ctx, calendarID, year)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(holidays); err == nil {
		if err := s.snapshots.Put(ctx, snapshotKind, scopeKey(calendarID, year), payload); err != nil {
			slog.Warn("holiday snapshot write failed", "error", err)
		}
	}
	return holidays, nil
}
