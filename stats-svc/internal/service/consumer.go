package service

import (
	"context"
	"encoding/json"
	"time"

	"sabor-autentico/stats-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

const readRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads site events until ctx is done.
func (c *Consumer) Start(ctx context.Context) error {
	log.Info().Msg("starting site event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error().Err(err).Msg("error reading message")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var event domain.SiteEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Warn().Err(err).Msg("error unmarshaling site event")
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

// ProcessEvent records a known event. Unknown types are skipped.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.SiteEvent) {
	if !event.Known() {
		log.Debug().Str("type", event.Type).Msg("skipping unknown event type")
		return
	}

	if err := c.Store.RecordEvent(ctx, event); err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("session_id", event.SessionID).Msg("error recording event")
		return
	}

	log.Debug().Str("type", event.Type).Str("order_id", event.OrderID).Str("status", event.Status).Msg("event recorded")
}
