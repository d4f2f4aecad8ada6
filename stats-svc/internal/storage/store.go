package storage

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"sabor-autentico/stats-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	reviewsKey   = "stats:reviews"
	dailyTTL     = 30 * 24 * time.Hour
	revenueField = "revenue"
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func DailyKey(date string) string {
	return "stats:daily:" + date
}

// RecordEvent bumps the day's counter for the event type and, for order
// events, the per-status counter. Confirmed orders add to the day's revenue.
// Review events also feed the rating histogram.
func (s *Store) RecordEvent(ctx context.Context, event domain.SiteEvent) error {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	key := DailyKey(ts.UTC().Format(time.DateOnly))

	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, event.Type, 1)
	if event.Type == domain.EventOrderStatusChanged && event.Status != "" {
		pipe.HIncrBy(ctx, key, "order_status:"+event.Status, 1)
		if event.Status == "confirmed" {
			pipe.HIncrByFloat(ctx, key, revenueField, event.Total)
		}
	}
	pipe.Expire(ctx, key, dailyTTL)

	if event.Type == domain.EventReviewSubmitted && event.Rating >= 1 && event.Rating <= 5 {
		pipe.HIncrBy(ctx, reviewsKey, strconv.Itoa(event.Rating), 1)
		pipe.HIncrBy(ctx, reviewsKey, "count", 1)
		pipe.HIncrBy(ctx, reviewsKey, "sum", int64(event.Rating))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record %s event: %w", event.Type, err)
	}
	return nil
}

func (s *Store) Daily(ctx context.Context, date string) (domain.DailyStats, error) {
	values, err := s.rdb.HGetAll(ctx, DailyKey(date)).Result()
	if err != nil {
		return domain.DailyStats{}, err
	}

	stats := domain.DailyStats{Date: date, Counters: map[string]int64{}}
	for field, raw := range values {
		if field == revenueField {
			revenue, _ := strconv.ParseFloat(raw, 64)
			stats.Revenue = math.Round(revenue*100) / 100
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		stats.Counters[field] = n
	}
	return stats, nil
}

func (s *Store) Reviews(ctx context.Context) (domain.ReviewStats, error) {
	values, err := s.rdb.HGetAll(ctx, reviewsKey).Result()
	if err != nil {
		return domain.ReviewStats{}, err
	}

	stats := domain.ReviewStats{Distribution: map[string]int64{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}}
	var sum int64
	for field, raw := range values {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			continue
		}
		switch field {
		case "count":
			stats.Count = n
		case "sum":
			sum = n
		default:
			if _, ok := stats.Distribution[field]; ok {
				stats.Distribution[field] = n
			}
		}
	}
	if stats.Count > 0 {
		stats.Average = math.Round(float64(sum)/float64(stats.Count)*100) / 100
	}
	return stats, nil
}
