package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sabor-autentico/site-svc/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	DefaultQueueSize = 256
	writeTimeout     = 5 * time.Second
)

var ErrQueueFull = errors.New("site event queue is full")

// KafkaPublisher queues events in memory and writes them from Run, so callers
// never wait on the broker.
type KafkaPublisher struct {
	Writer *kafka.Writer
	queue  chan kafka.Message
}

func NewKafkaPublisher(writer *kafka.Writer, queueSize int) *KafkaPublisher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &KafkaPublisher{
		Writer: writer,
		queue:  make(chan kafka.Message, queueSize),
	}
}

// Publish queues the event keyed by session so one visitor's events stay
// ordered. It fails fast with ErrQueueFull instead of blocking.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.SiteEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: payload,
	}
	select {
	case p.queue <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Run writes queued events until ctx is done. Write failures are logged and
// the event is dropped.
func (p *KafkaPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-p.queue:
			p.write(msg)
		}
	}
}

func (p *KafkaPublisher) Pending() int {
	return len(p.queue)
}

func (p *KafkaPublisher) write(msg kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := p.Writer.WriteMessages(ctx, msg); err != nil {
		log.Warn().Err(err).Str("session_id", string(msg.Key)).Msg("failed to write site event")
	}
}
