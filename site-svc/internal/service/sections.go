package service

import (
	"sabor-autentico/site-svc/internal/domain"
)

const (
	SectionHome         = "home"
	SectionMenu         = "menu"
	SectionReservations = "reservations"
	SectionDelivery     = "delivery"
	SectionReviews      = "reviews"
	SectionContact      = "contact"
)

type NavEntry struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

var navigation = []NavEntry{
	{ID: SectionHome, Label: "Inicio"},
	{ID: SectionMenu, Label: "Carta"},
	{ID: SectionReservations, Label: "Reservas"},
	{ID: SectionDelivery, Label: "Delivery"},
	{ID: SectionReviews, Label: "Reseñas"},
	{ID: SectionContact, Label: "Contacto"},
}

type HeroStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HomeContent struct {
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Background string     `json:"background"`
	Stats      []HeroStat `json:"stats"`
	Features   []Feature  `json:"features"`
}

type MenuContent struct {
	Categories []domain.Category `json:"categories"`
	Items      []domain.MenuItem `json:"items"`
	CartCount  int               `json:"cart_count"`
}

type ReservationsContent struct {
	Options      ReservationOptions                       `json:"options"`
	Confirmation *domain.Confirmation[domain.Reservation] `json:"confirmation,omitempty"`
}

type DeliveryContent struct {
	Cart  CartView         `json:"cart"`
	Order domain.OrderView `json:"order"`
}

type ReviewsContent struct {
	Reviews []domain.Review      `json:"reviews"`
	Summary domain.ReviewSummary `json:"summary"`
}

type OpeningHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type ContactContent struct {
	Address      []string                                    `json:"address"`
	Phones       []string                                    `json:"phones"`
	Emails       []string                                    `json:"emails"`
	Hours        []OpeningHours                              `json:"hours"`
	Subjects     []ContactSubject                            `json:"subjects"`
	Confirmation *domain.Confirmation[domain.ContactMessage] `json:"confirmation,omitempty"`
}

type SectionView struct {
	Section    string     `json:"section"`
	Navigation []NavEntry `json:"navigation"`
	Content    any        `json:"content"`
}

var homeContent = HomeContent{
	Title:      "Sabor Auténtico",
	Subtitle:   "Descubre una experiencia culinaria única donde cada plato cuenta una historia. Cocina gourmet con ingredientes frescos y técnicas tradicionales.",
	Background: "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg?auto=compress&cs=tinysrgb&w=1920&h=1280&fit=crop",
	Stats: []HeroStat{
		{Value: "4.9", Label: "Calificación"},
		{Value: "30", Label: "Min Delivery"},
		{Value: "5+", Label: "Premios"},
	},
	Features: []Feature{
		{Title: "Chef Experimentado", Description: "Más de 15 años de experiencia en cocina internacional"},
		{Title: "Servicio Rápido", Description: "Delivery en 30 minutos o tu pedido es gratis"},
		{Title: "Delivery Gratis", Description: "Envío gratuito en pedidos mayores a $25"},
		{Title: "Calidad Premium", Description: "Ingredientes frescos y de la mejor calidad"},
		{Title: "Hecho con Amor", Description: "Cada plato preparado con pasión y dedicación"},
		{Title: "Ambiente Familiar", Description: "Perfecto para reuniones familiares y celebraciones"},
	},
}

var contactInfo = ContactContent{
	Address: []string{"123 Gourmet Street", "Downtown, Ciudad 12345", "Entre Av. Principal y Calle Central"},
	Phones:  []string{"+1 (555) 123-4567", "WhatsApp: +1 (555) 123-4568"},
	Emails:  []string{"info@saborautentico.com", "reservas@saborautentico.com"},
	Hours: []OpeningHours{
		{Days: "Lunes - Jueves", Hours: "11:00 AM - 10:00 PM"},
		{Days: "Viernes - Sábado", Hours: "11:00 AM - 11:00 PM"},
		{Days: "Domingo", Hours: "12:00 PM - 9:00 PM"},
	},
	Subjects: ContactSubjects,
}

// SectionSelector renders one page section from the visitor's session.
type SectionSelector struct {
	Menu MenuServiceInterface
}

func NewSectionSelector(menu MenuServiceInterface) *SectionSelector {
	return &SectionSelector{Menu: menu}
}

// Render builds the named section. Unknown names fall back to home.
func (s *SectionSelector) Render(name string, session *Session) SectionView {
	var content any
	switch name {
	case SectionMenu:
		content = MenuContent{
			Categories: s.Menu.Categories(),
			Items:      s.Menu.Items("", "all"),
			CartCount:  session.Cart().Totals.ItemCount,
		}
	case SectionReservations:
		c := ReservationsContent{Options: session.ReservationOptions()}
		if conf, ok := session.Reservations().Current(); ok {
			c.Confirmation = &conf
		}
		content = c
	case SectionDelivery:
		content = DeliveryContent{Cart: session.Cart(), Order: session.Orders().View()}
	case SectionReviews:
		content = ReviewsContent{Reviews: session.Reviews().List(), Summary: session.Reviews().Summary()}
	case SectionContact:
		c := contactInfo
		if conf, ok := session.Contact().Current(); ok {
			c.Confirmation = &conf
		}
		content = c
	default:
		name = SectionHome
		content = homeContent
	}

	return SectionView{
		Section:    name,
		Navigation: navFor(name),
		Content:    content,
	}
}

func navFor(active string) []NavEntry {
	nav := make([]NavEntry, len(navigation))
	for i, entry := range navigation {
		entry.Active = entry.ID == active
		nav[i] = entry
	}
	return nav
}
