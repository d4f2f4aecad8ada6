package domain

import "time"

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type MenuItem struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
}

type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Date    string `json:"date"`
	Comment string `json:"comment" validate:"required"`
	Dish    string `json:"dish,omitempty"`
	Helpful int    `json:"helpful"`
}

type ReviewSummary struct {
	Average      float64        `json:"average"`
	Count        int            `json:"count"`
	Distribution map[string]int `json:"distribution"`
}

// Reservation and ContactMessage use the option-list tags registered by the
// service validator (timeslot, guests, occasion, subject, notpast).
type Reservation struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02,notpast"`
	Time            string `json:"time" validate:"required,timeslot"`
	Guests          int    `json:"guests" validate:"guests"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Occasion        string `json:"occasion,omitempty" validate:"omitempty,occasion"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required,subject"`
	Message string `json:"message" validate:"required"`
}

// Confirmation is a submitted form shown back to the visitor until ShownUntil.
type Confirmation[T any] struct {
	Code       string    `json:"code"`
	Record     T         `json:"record"`
	ShownUntil time.Time `json:"shown_until"`
}

// Site event types published to the event stream.
const (
	EventOrderStatusChanged  = "order_status_changed"
	EventReviewSubmitted     = "review_submitted"
	EventReservationReceived = "reservation_received"
	EventContactReceived     = "contact_received"
)

type SiteEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	OrderID   string    `json:"order_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Total     float64   `json:"total,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
