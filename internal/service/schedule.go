package service

import (
	"context"
	"time"

	"altoque/internal/adapter/sheetdb"
	"altoque/internal/cache"
	"altoque/internal/domain"
)

// ScheduleCacheKey holds the enabled schedule slots.
var ScheduleCacheKey = cache.GenerateCacheKey("sheet", "schedule", "rows")

// ScheduleService serves the weekly class timetable.
type ScheduleService interface {
	Slots(ctx context.Context) ([]domain.ScheduleSlot, error)
	Week(ctx context.Context) ([]domain.DaySchedule, error)
	Invalidate(ctx context.Context) error
}

type scheduleService struct {
	rows *sheetCache[domain.ScheduleSlot]
}

func NewScheduleService(reader domain.SheetReader, c domain.Cache, endpoint string, ttl time.Duration) ScheduleService {
	return &scheduleService{
		rows: &sheetCache[domain.ScheduleSlot]{
			reader:    reader,
			cache:     c,
			endpoint:  endpoint,
			setting:   "SHEETDB_SCHEDULE_ENDPOINT",
			key:       ScheduleCacheKey,
			ttl:       ttl,
			normalize: sheetdb.NormalizeScheduleRows,
		},
	}
}

func (s *scheduleService) Slots(ctx context.Context) ([]domain.ScheduleSlot, error) {
	return s.rows.load(ctx)
}

func (s *scheduleService) Week(ctx context.Context) ([]domain.DaySchedule, error) {
	slots, err := s.rows.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupByDay(slots), nil
}

func (s *scheduleService) Invalidate(ctx context.Context) error {
	return s.rows.invalidate(ctx)
}
