package service

import (
	"sync"

	"sabor-autentico/site-svc/internal/clock"
	"sabor-autentico/site-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

// Session is everything one visitor has built up: cart, order, reviews and
// visible form confirmations. It is discarded as a whole.
type Session struct {
	ID string

	clock     clock.Clock
	publisher EventPublisher

	mu   sync.Mutex
	cart *domain.Cart

	orders       *OrderTracker
	reviews      *ReviewBoard
	reservations *Notice[domain.Reservation]
	contact      *Notice[domain.ContactMessage]
}

func NewSession(id string, deps SessionDeps) *Session {
	clk := deps.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	return &Session{
		ID:           id,
		clock:        clk,
		publisher:    deps.Publisher,
		cart:         domain.NewCart(),
		orders:       NewOrderTracker(id, clk, deps.Publisher, deps.QR),
		reviews:      NewReviewBoard(id, clk, deps.Publisher),
		reservations: NewNotice[domain.Reservation](clk, ReservationNoticeTTL),
		contact:      NewNotice[domain.ContactMessage](clk, ContactNoticeTTL),
	}
}

func (s *Session) Orders() *OrderTracker                     { return s.orders }
func (s *Session) Reviews() *ReviewBoard                     { return s.reviews }
func (s *Session) Reservations() *Notice[domain.Reservation] { return s.reservations }
func (s *Session) Contact() *Notice[domain.ContactMessage]   { return s.contact }

// CartView is the cart as rendered: lines in insertion order and derived totals.
type CartView struct {
	Lines  []domain.CartLine `json:"lines"`
	Totals domain.CartTotals `json:"totals"`
}

func (s *Session) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartViewLocked()
}

func (s *Session) AddToCart(item domain.MenuItem) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(item)
	return s.cartViewLocked()
}

func (s *Session) UpdateCartQuantity(id string, quantity int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.UpdateQuantity(id, quantity)
	return s.cartViewLocked()
}

func (s *Session) RemoveFromCart(id string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Remove(id)
	return s.cartViewLocked()
}

func (s *Session) ClearCart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	return s.cartViewLocked()
}

func (s *Session) BeginCheckout() error {
	s.mu.Lock()
	n := s.cart.Len()
	s.mu.Unlock()

	return s.orders.BeginCheckout(n)
}

// PlaceOrder confirms the current cart contents. The cart itself is left
// untouched until the visitor starts a new order.
func (s *Session) PlaceOrder(delivery domain.DeliveryInfo) (*domain.Order, error) {
	s.mu.Lock()
	lines := s.cart.Lines()
	s.mu.Unlock()

	return s.orders.Place(lines, delivery)
}

func (s *Session) ResetOrder() (domain.OrderView, error) {
	s.mu.Lock()
	clearCart, err := s.orders.Reset()
	if err == nil && clearCart {
		s.cart.Clear()
	}
	s.mu.Unlock()

	if err != nil {
		return domain.OrderView{}, err
	}
	return s.orders.View(), nil
}

func (s *Session) ReservationOptions() ReservationOptions {
	return NewReservationOptions(s.clock.Now())
}

func (s *Session) Reserve(r domain.Reservation) (domain.Confirmation[domain.Reservation], error) {
	if err := ValidateReservation(&r, s.clock.Now()); err != nil {
		return domain.Confirmation[domain.Reservation]{}, err
	}
	confirmation := s.reservations.Show(r)

	log.Info().Str("session_id", s.ID).Str("code", confirmation.Code).
		Str("date", r.Date).Str("time", r.Time).Int("guests", r.Guests).Msg("reservation received")
	publishEvent(s.publisher, domain.SiteEvent{
		Type:      domain.EventReservationReceived,
		SessionID: s.ID,
		Timestamp: s.clock.Now(),
	})
	return confirmation, nil
}

func (s *Session) SendContact(m domain.ContactMessage) (domain.Confirmation[domain.ContactMessage], error) {
	if err := ValidateContact(&m); err != nil {
		return domain.Confirmation[domain.ContactMessage]{}, err
	}
	confirmation := s.contact.Show(m)

	log.Info().Str("session_id", s.ID).Str("code", confirmation.Code).
		Str("subject", m.Subject).Msg("contact message received")
	publishEvent(s.publisher, domain.SiteEvent{
		Type:      domain.EventContactReceived,
		SessionID: s.ID,
		Timestamp: s.clock.Now(),
	})
	return confirmation, nil
}

// Close stops every pending timer owned by the session.
func (s *Session) Close() {
	s.orders.Stop()
	s.reservations.Stop()
	s.contact.Stop()
}

func (s *Session) cartViewLocked() CartView {
	return CartView{Lines: s.cart.Lines(), Totals: s.cart.Totals()}
}
