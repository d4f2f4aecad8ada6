package service

import (
	"context"
	"errors"
	"time"

	"sabor-autentico/stats-svc/internal/domain"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type StatsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewStatsService(store StoreInterface) *StatsService {
	return &StatsService{store: store, now: time.Now}
}

// Daily returns the counters for date, defaulting to today in UTC.
func (s *StatsService) Daily(ctx context.Context, date string) (domain.DailyStats, error) {
	if date == "" {
		date = s.now().UTC().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		return domain.DailyStats{}, ErrInvalidDate
	}
	return s.store.Daily(ctx, date)
}

func (s *StatsService) Reviews(ctx context.Context) (domain.ReviewStats, error) {
	return s.store.Reviews(ctx)
}
