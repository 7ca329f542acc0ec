package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/holiday"
)

// HolidayJobs keeps the holiday calendar snapshot warm so grid requests
// never block on the upstream calendar endpoint.
type HolidayJobs struct {
	holidaySvc holiday.HolidayService
	interval   time.Duration
}

func NewHolidayJobs(holidaySvc holiday.HolidayService, interval time.Duration) *HolidayJobs {
	return &HolidayJobs{
		holidaySvc: holidaySvc,
		interval:   interval,
	}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_holiday_calendar", j.interval, j.RefreshHolidayCalendar)
}

func (j *HolidayJobs) RefreshHolidayCalendar(ctx context.Context) error {
	if err := j.holidaySvc.Refresh(ctx); err != nil {
		return err
	}

	slog.Debug("Cron: holiday calendar snapshot refreshed")
	return nil
}
