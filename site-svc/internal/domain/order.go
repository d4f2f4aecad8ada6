package domain

import "time"

type OrderStatus string

const (
	StatusCart      OrderStatus = "cart"
	StatusCheckout  OrderStatus = "checkout"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusOnWay     OrderStatus = "onway"
	StatusDelivered OrderStatus = "delivered"
)

var statusOrder = map[OrderStatus]int{
	StatusCart:      0,
	StatusCheckout:  1,
	StatusConfirmed: 2,
	StatusPreparing: 3,
	StatusOnWay:     4,
	StatusDelivered: 5,
}

// Rank is the position of the status in the linear order lifecycle.
func (s OrderStatus) Rank() int {
	if r, ok := statusOrder[s]; ok {
		return r
	}
	return -1
}

// InFlight reports whether an order has been placed and is not yet delivered.
func (s OrderStatus) InFlight() bool {
	return s == StatusConfirmed || s == StatusPreparing || s == StatusOnWay
}

// Simulated fulfilment delays, measured from confirmation.
const (
	PreparingAfter = 2 * time.Second
	OnWayAfter     = 8 * time.Second
	DeliveredAfter = 15 * time.Second
)

// ProgressSteps are the statuses shown on the order progress bar.
var ProgressSteps = []OrderStatus{StatusConfirmed, StatusPreparing, StatusOnWay, StatusDelivered}

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

type DeliveryInfo struct {
	Address       string        `json:"address" validate:"required"`
	Phone         string        `json:"phone" validate:"required"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"oneof=card cash transfer"`
	Notes         string        `json:"notes,omitempty"`
}

type Order struct {
	ID          string       `json:"id"`
	Status      OrderStatus  `json:"status"`
	Lines       []CartLine   `json:"lines"`
	Totals      CartTotals   `json:"totals"`
	Delivery    DeliveryInfo `json:"delivery"`
	ConfirmedAt time.Time    `json:"confirmed_at"`
	QRCode      string       `json:"qr_code,omitempty"`
}

type StatusMessage struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

var statusMessages = map[OrderStatus]StatusMessage{
	StatusConfirmed: {
		Title:   "¡Pedido Confirmado!",
		Message: "Hemos recibido tu orden y comenzaremos a prepararla pronto.",
	},
	StatusPreparing: {
		Title:   "Preparando tu Pedido",
		Message: "Nuestros chefs están preparando tu deliciosa comida.",
	},
	StatusOnWay: {
		Title:   "En Camino",
		Message: "Tu pedido está en camino. Tiempo estimado: 15 minutos.",
	},
	StatusDelivered: {
		Title:   "¡Entregado!",
		Message: "¡Disfruta tu comida! Gracias por elegir Sabor Auténtico.",
	},
}

// MessageFor returns the banner text for a placed order, or nil before placement.
func MessageFor(status OrderStatus) *StatusMessage {
	if msg, ok := statusMessages[status]; ok {
		return &msg
	}
	return nil
}

// OrderView is what the delivery section renders for the current order state.
type OrderView struct {
	Status      OrderStatus    `json:"status"`
	Message     *StatusMessage `json:"message,omitempty"`
	Progress    int            `json:"progress"`
	Steps       []OrderStatus  `json:"steps"`
	CanReset    bool           `json:"can_reset"`
	Order       *Order         `json:"order,omitempty"`
	EstimatedAt *time.Time     `json:"estimated_delivery_at,omitempty"`
}

// ProgressIndex is the index of status within ProgressSteps, -1 before confirmation.
func ProgressIndex(status OrderStatus) int {
	for i, s := range ProgressSteps {
		if s == status {
			return i
		}
	}
	return -1
}
