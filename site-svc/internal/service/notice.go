package service

import (
	"strings"
	"sync"
	"time"

	"sabor-autentico/site-svc/internal/clock"
	"sabor-autentico/site-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	ReservationNoticeTTL = 5 * time.Second
	ContactNoticeTTL     = 3 * time.Second
)

// Notice holds the last submitted form of one kind and hides it once its ttl
// elapses. A new submission replaces the visible one and restarts the timer.
type Notice[T any] struct {
	clock clock.Clock
	ttl   time.Duration

	mu      sync.Mutex
	current *domain.Confirmation[T]
	timer   clock.Timer
}

func NewNotice[T any](clk clock.Clock, ttl time.Duration) *Notice[T] {
	return &Notice[T]{clock: clk, ttl: ttl}
}

func (n *Notice[T]) Show(record T) domain.Confirmation[T] {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	code := strings.ToUpper(uuid.NewString()[:8])
	confirmation := domain.Confirmation[T]{
		Code:       code,
		Record:     record,
		ShownUntil: n.clock.Now().Add(n.ttl),
	}
	n.current = &confirmation
	n.timer = n.clock.AfterFunc(n.ttl, func() { n.hide(code) })
	return confirmation
}

// Current returns the visible confirmation, if any.
func (n *Notice[T]) Current() (domain.Confirmation[T], bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		var zero domain.Confirmation[T]
		return zero, false
	}
	return *n.current, true
}

func (n *Notice[T]) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

func (n *Notice[T]) hide(code string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != nil && n.current.Code == code {
		n.current = nil
		n.timer = nil
	}
}
