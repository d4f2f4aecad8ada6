package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"sabor-autentico/site-svc/internal/clock"
	"sabor-autentico/site-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 2 * time.Second

// OrderTracker drives one session's order through the delivery lifecycle.
// Transitions after confirmation are scheduled on the clock and applied only
// if they move the status forward and belong to the current generation.
type OrderTracker struct {
	sessionID string
	clock     clock.Clock
	publisher EventPublisher
	qr        QRGenerator

	mu         sync.Mutex
	status     domain.OrderStatus
	order      *domain.Order
	qrPNG      []byte
	timers     []clock.Timer
	generation int
	stopped    bool
}

func NewOrderTracker(sessionID string, clk clock.Clock, publisher EventPublisher, qr QRGenerator) *OrderTracker {
	return &OrderTracker{
		sessionID: sessionID,
		clock:     clk,
		publisher: publisher,
		qr:        qr,
		status:    domain.StatusCart,
	}
}

func (t *OrderTracker) Status() domain.OrderStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// BeginCheckout moves from cart to checkout. Calling it while already in
// checkout is a no-op.
func (t *OrderTracker) BeginCheckout(cartLen int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.status {
	case domain.StatusCheckout:
		return nil
	case domain.StatusCart:
	default:
		return ErrOrderInProgress
	}
	if cartLen == 0 {
		return ErrEmptyCart
	}
	t.status = domain.StatusCheckout
	return nil
}

// Place confirms an order built from lines and schedules its progression.
func (t *OrderTracker) Place(lines []domain.CartLine, delivery domain.DeliveryInfo) (*domain.Order, error) {
	if err := validateDelivery(&delivery); err != nil {
		return nil, err
	}

	t.mu.Lock()
	if t.status != domain.StatusCart && t.status != domain.StatusCheckout {
		t.mu.Unlock()
		return nil, ErrOrderInProgress
	}
	if len(lines) == 0 {
		t.mu.Unlock()
		return nil, ErrEmptyCart
	}

	id := uuid.NewString()
	order := &domain.Order{
		ID:          id,
		Status:      domain.StatusConfirmed,
		Lines:       lines,
		Totals:      domain.ComputeTotals(lines),
		Delivery:    delivery,
		ConfirmedAt: t.clock.Now(),
	}

	t.generation++
	gen := t.generation
	t.status = domain.StatusConfirmed
	t.order = order
	t.qrPNG = nil
	t.stopTimersLocked()
	t.timers = []clock.Timer{
		t.clock.AfterFunc(domain.PreparingAfter, func() { t.advance(gen, domain.StatusPreparing) }),
		t.clock.AfterFunc(domain.OnWayAfter, func() { t.advance(gen, domain.StatusOnWay) }),
		t.clock.AfterFunc(domain.DeliveredAfter, func() { t.advance(gen, domain.StatusDelivered) }),
	}
	snapshot := *order
	t.mu.Unlock()

	t.attachQRCode(gen, id)

	log.Info().Str("session_id", t.sessionID).Str("order_id", id).
		Float64("total", snapshot.Totals.Total).Msg("order confirmed")
	t.publishStatus(id, domain.StatusConfirmed, snapshot.Totals.Total)

	return t.Current(), nil
}

// Reset starts a new order. From delivered it reports true so the caller
// clears the cart; from checkout the cart is kept. In-flight orders cannot
// be reset.
func (t *OrderTracker) Reset() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.status {
	case domain.StatusDelivered:
		t.generation++
		t.stopTimersLocked()
		t.status = domain.StatusCart
		t.order = nil
		t.qrPNG = nil
		return true, nil
	case domain.StatusCheckout:
		t.status = domain.StatusCart
		return false, nil
	case domain.StatusCart:
		return false, nil
	default:
		return false, ErrOrderNotResettable
	}
}

// Current returns a copy of the placed order, or nil before placement.
func (t *OrderTracker) Current() *domain.Order {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentLocked()
}

func (t *OrderTracker) View() domain.OrderView {
	t.mu.Lock()
	defer t.mu.Unlock()

	view := domain.OrderView{
		Status:   t.status,
		Message:  domain.MessageFor(t.status),
		Progress: domain.ProgressIndex(t.status),
		Steps:    domain.ProgressSteps,
		CanReset: !t.status.InFlight(),
		Order:    t.currentLocked(),
	}
	if t.order != nil && t.status.InFlight() {
		eta := t.order.ConfirmedAt.Add(domain.DeliveredAfter)
		view.EstimatedAt = &eta
	}
	return view
}

// QRCode returns the PNG for the current order.
func (t *OrderTracker) QRCode(orderID string) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.order == nil || t.order.ID != orderID || len(t.qrPNG) == 0 {
		return nil, ErrOrderNotFound
	}
	return t.qrPNG, nil
}

// Stop cancels every pending transition. The tracker ignores late callbacks afterwards.
func (t *OrderTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	t.generation++
	t.stopTimersLocked()
}

func (t *OrderTracker) advance(gen int, next domain.OrderStatus) {
	t.mu.Lock()
	if t.stopped || gen != t.generation || t.order == nil || next.Rank() <= t.status.Rank() {
		t.mu.Unlock()
		return
	}
	t.status = next
	t.order.Status = next
	orderID := t.order.ID
	total := t.order.Totals.Total
	t.mu.Unlock()

	log.Info().Str("session_id", t.sessionID).Str("order_id", orderID).
		Str("status", string(next)).Msg("order status changed")
	t.publishStatus(orderID, next, total)
}

func (t *OrderTracker) attachQRCode(gen int, orderID string) {
	if t.qr == nil {
		return
	}
	png, err := t.qr.Generate(orderID)
	if err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("failed to generate order QR code")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation || t.order == nil {
		return
	}
	t.qrPNG = png
	t.order.QRCode = fmt.Sprintf("/api/orders/%s/qrcode", orderID)
}

func (t *OrderTracker) publishStatus(orderID string, status domain.OrderStatus, total float64) {
	publishEvent(t.publisher, domain.SiteEvent{
		Type:      domain.EventOrderStatusChanged,
		SessionID: t.sessionID,
		OrderID:   orderID,
		Status:    string(status),
		Total:     total,
		Timestamp: t.clock.Now(),
	})
}

func (t *OrderTracker) currentLocked() *domain.Order {
	if t.order == nil {
		return nil
	}
	cp := *t.order
	cp.Lines = append([]domain.CartLine(nil), t.order.Lines...)
	return &cp
}

func (t *OrderTracker) stopTimersLocked() {
	for _, timer := range t.timers {
		timer.Stop()
	}
	t.timers = nil
}

func validateDelivery(d *domain.DeliveryInfo) error {
	d.Address = strings.TrimSpace(d.Address)
	d.Phone = strings.TrimSpace(d.Phone)
	if d.PaymentMethod == "" {
		d.PaymentMethod = domain.PaymentCard
	}
	return validateStruct(context.Background(), d)
}

// publishEvent is best-effort. A nil publisher disables it.
func publishEvent(publisher EventPublisher, event domain.SiteEvent) {
	if publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Str("session_id", event.SessionID).
			Msg("failed to publish site event")
	}
}
