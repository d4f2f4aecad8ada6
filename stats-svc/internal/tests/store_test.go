package tests

import (
	"context"
	"testing"
	"time"

	"sabor-autentico/stats-svc/internal/domain"
	"sabor-autentico/stats-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventDay = time.Date(2025, 3, 10, 21, 15, 0, 0, time.UTC)

func setupStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewStore(rdb), mr
}

func TestStore_RecordOrderEvents(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	for _, status := range []string{"confirmed", "preparing", "onway", "delivered"} {
		require.NoError(t, store.RecordEvent(ctx, domain.SiteEvent{
			Type: domain.EventOrderStatusChanged, SessionID: "s1", OrderID: "o1",
			Status: status, Total: 43.88, Timestamp: eventDay,
		}))
	}
	require.NoError(t, store.RecordEvent(ctx, domain.SiteEvent{
		Type: domain.EventOrderStatusChanged, Status: "confirmed", Total: 17.96, Timestamp: eventDay,
	}))

	stats, err := store.Daily(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Counters[domain.EventOrderStatusChanged])
	assert.Equal(t, int64(2), stats.Counters["order_status:confirmed"])
	assert.Equal(t, int64(1), stats.Counters["order_status:delivered"])
	assert.Equal(t, 61.84, stats.Revenue)

	ttl := mr.TTL(storage.DailyKey("2025-03-10"))
	assert.Equal(t, 30*24*time.Hour, ttl)
}

func TestStore_RecordFormEvents(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordEvent(ctx, domain.SiteEvent{Type: domain.EventReservationReceived, Timestamp: eventDay}))
	require.NoError(t, store.RecordEvent(ctx, domain.SiteEvent{Type: domain.EventContactReceived, Timestamp: eventDay}))
	require.NoError(t, store.RecordEvent(ctx, domain.SiteEvent{Type: domain.EventContactReceived, Timestamp: eventDay.Add(4 * time.Hour)}))

	today, err := store.Daily(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		domain.EventReservationReceived: 1,
		domain.EventContactReceived:     1,
	}, today.Counters)

	tomorrow, err := store.Daily(ctx, "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, int64(1), tomorrow.Counters[domain.EventContactReceived])
}

func TestStore_ReviewHistogram(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	for _, rating := range []int{5, 5, 4, 5, 4, 3} {
		require.NoError(t, store.RecordEvent(ctx, domain.SiteEvent{
			Type: domain.EventReviewSubmitted, Rating: rating, Timestamp: eventDay,
		}))
	}

	stats, err := store.Reviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Count)
	assert.Equal(t, 4.33, stats.Average)
	assert.Equal(t, map[string]int64{"1": 0, "2": 0, "3": 1, "4": 2, "5": 3}, stats.Distribution)
}

func TestStore_EmptyStats(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	daily, err := store.Daily(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, daily.Counters)
	assert.Equal(t, 0.0, daily.Revenue)

	reviews, err := store.Reviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reviews.Count)
	assert.Equal(t, 0.0, reviews.Average)
}

func TestStore_RedisDown(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	err := store.RecordEvent(context.Background(), domain.SiteEvent{Type: domain.EventContactReceived, Timestamp: eventDay})
	assert.Error(t, err)
}
