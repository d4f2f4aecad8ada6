package service

import (
	"context"

	"sabor-autentico/stats-svc/internal/domain"
	"sabor-autentico/stats-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordEvent(ctx context.Context, event domain.SiteEvent) error
	Daily(ctx context.Context, date string) (domain.DailyStats, error)
	Reviews(ctx context.Context) (domain.ReviewStats, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StatsServiceInterface interface {
	Daily(ctx context.Context, date string) (domain.DailyStats, error)
	Reviews(ctx context.Context) (domain.ReviewStats, error)
}

var (
	_ StoreInterface        = (*storage.Store)(nil)
	_ MessageReader         = (*kafka.Reader)(nil)
	_ StatsServiceInterface = (*StatsService)(nil)
)
