package domain

import "time"

const (
	EventOrderStatusChanged  = "order_status_changed"
	EventReviewSubmitted     = "review_submitted"
	EventReservationReceived = "reservation_received"
	EventContactReceived     = "contact_received"
)

// SiteEvent mirrors the message the site service publishes.
type SiteEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	OrderID   string    `json:"order_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Total     float64   `json:"total,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e SiteEvent) Known() bool {
	switch e.Type {
	case EventOrderStatusChanged, EventReviewSubmitted, EventReservationReceived, EventContactReceived:
		return true
	}
	return false
}

type DailyStats struct {
	Date     string           `json:"date"`
	Counters map[string]int64 `json:"counters"`
	Revenue  float64          `json:"revenue"`
}

type ReviewStats struct {
	Count        int64            `json:"count"`
	Average      float64          `json:"average"`
	Distribution map[string]int64 `json:"distribution"`
}
