package service

import (
	"context"
	"strings"
	"time"

	"sabor-autentico/site-svc/internal/domain"
)

const (
	MinGuests     = 1
	MaxGuests     = 12
	DefaultGuests = 2
)

var (
	TimeSlots = []string{
		"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
		"14:00", "14:30", "19:00", "19:30", "20:00", "20:30",
		"21:00", "21:30", "22:00", "22:30",
	}
	Occasions = []string{
		"Cena romántica",
		"Cumpleaños",
		"Aniversario",
		"Reunión de negocios",
		"Celebración familiar",
		"Cita especial",
		"Otro",
	}
)

type ContactSubject struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var ContactSubjects = []ContactSubject{
	{Value: "reserva", Label: "Consulta sobre Reservas"},
	{Value: "delivery", Label: "Consulta sobre Delivery"},
	{Value: "menu", Label: "Preguntas sobre el Menú"},
	{Value: "evento", Label: "Eventos Especiales"},
	{Value: "sugerencia", Label: "Sugerencias"},
	{Value: "otro", Label: "Otro"},
}

type ReservationOptions struct {
	TimeSlots     []string `json:"time_slots"`
	Occasions     []string `json:"occasions"`
	MinGuests     int      `json:"min_guests"`
	MaxGuests     int      `json:"max_guests"`
	DefaultGuests int      `json:"default_guests"`
	MinDate       string   `json:"min_date"`
}

func NewReservationOptions(now time.Time) ReservationOptions {
	return ReservationOptions{
		TimeSlots:     TimeSlots,
		Occasions:     Occasions,
		MinGuests:     MinGuests,
		MaxGuests:     MaxGuests,
		DefaultGuests: DefaultGuests,
		MinDate:       now.UTC().Format(time.DateOnly),
	}
}

// ValidateReservation applies the form's required fields and option lists.
// Guests defaults to two when omitted.
func ValidateReservation(r *domain.Reservation, now time.Time) error {
	trimAll(&r.Date, &r.Time, &r.Name, &r.Email, &r.Phone, &r.Occasion, &r.SpecialRequests)
	if r.Guests == 0 {
		r.Guests = DefaultGuests
	}
	return validateStruct(context.WithValue(context.Background(), nowKey{}, now), r)
}

func ValidateContact(m *domain.ContactMessage) error {
	trimAll(&m.Name, &m.Email, &m.Subject, &m.Message)
	return validateStruct(context.Background(), m)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
