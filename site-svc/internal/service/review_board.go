package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"sabor-autentico/site-svc/internal/clock"
	"sabor-autentico/site-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

func SeedReviews() []domain.Review {
	return []domain.Review{
		{ID: "1", Name: "María González", Rating: 5, Date: "2024-01-15", Dish: "Filete de Res Wellington", Helpful: 12,
			Comment: "Increíble experiencia gastronómica. El filete Wellington estaba perfecto y el servicio fue excepcional. Definitivamente volveremos para celebrar nuestro próximo aniversario."},
		{ID: "2", Name: "Carlos Ruiz", Rating: 5, Date: "2024-01-12", Dish: "Salmón a la Parrilla", Helpful: 8,
			Comment: "El mejor salmón que he probado en años. La presentación fue impecable y los sabores perfectamente balanceados. El ambiente es muy acogedor."},
		{ID: "3", Name: "Ana Martínez", Rating: 4, Date: "2024-01-10", Dish: "Risotto de Hongos Trufados", Helpful: 6,
			Comment: "Excelente carta vegetariana. El risotto de hongos trufados fue una revelación. Solo le faltó un poco más de trufa, pero en general muy satisfecha."},
		{ID: "4", Name: "Roberto Silva", Rating: 5, Date: "2024-01-08", Dish: "Tiramisú Clásico", Helpful: 15,
			Comment: "Celebramos aquí el cumpleaños de mi esposa y todo fue perfecto. El tiramisú casero fue el broche de oro perfecto para una noche memorable."},
		{ID: "5", Name: "Lucía Hernández", Rating: 4, Date: "2024-01-05", Dish: "Cóctel Signature", Helpful: 4,
			Comment: "El servicio de delivery fue muy rápido y la comida llegó caliente. Los cócteles están muy bien preparados. Solo sugiero mejorar el empaque para los postres."},
	}
}

// ReviewBoard is a session's review list, newest first.
type ReviewBoard struct {
	sessionID string
	clock     clock.Clock
	publisher EventPublisher

	mu      sync.Mutex
	reviews []domain.Review
}

func NewReviewBoard(sessionID string, clk clock.Clock, publisher EventPublisher) *ReviewBoard {
	return &ReviewBoard{
		sessionID: sessionID,
		clock:     clk,
		publisher: publisher,
		reviews:   SeedReviews(),
	}
}

func (b *ReviewBoard) List() []domain.Review {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.Review, len(b.reviews))
	copy(out, b.reviews)
	return out
}

const DefaultRating = 5

// Submit prepends a review stamped with the current time. Only the name,
// rating, comment and dish of the input are used; a missing rating counts as five stars.
func (b *ReviewBoard) Submit(in domain.Review) (domain.Review, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Comment = strings.TrimSpace(in.Comment)
	in.Dish = strings.TrimSpace(in.Dish)
	if in.Rating == 0 {
		in.Rating = DefaultRating
	}
	if err := validateStruct(context.Background(), &in); err != nil {
		return domain.Review{}, err
	}

	now := b.clock.Now()

	b.mu.Lock()
	id := now.UnixMilli()
	for b.indexLocked(strconv.FormatInt(id, 10)) >= 0 {
		id++
	}
	review := domain.Review{
		ID:      strconv.FormatInt(id, 10),
		Name:    in.Name,
		Rating:  in.Rating,
		Date:    now.UTC().Format("2006-01-02"),
		Comment: in.Comment,
		Dish:    in.Dish,
	}
	b.reviews = append([]domain.Review{review}, b.reviews...)
	b.mu.Unlock()

	log.Info().Str("session_id", b.sessionID).Str("review_id", review.ID).Int("rating", review.Rating).Msg("review submitted")
	publishEvent(b.publisher, domain.SiteEvent{
		Type:      domain.EventReviewSubmitted,
		SessionID: b.sessionID,
		Rating:    review.Rating,
		Timestamp: now,
	})
	return review, nil
}

func (b *ReviewBoard) MarkHelpful(id string) (domain.Review, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexLocked(id)
	if i < 0 {
		return domain.Review{}, ErrReviewNotFound
	}
	b.reviews[i].Helpful++
	return b.reviews[i], nil
}

func (b *ReviewBoard) Summary() domain.ReviewSummary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Summarize(b.reviews)
}

// Summarize computes the average rating rounded to two decimals and the
// count of reviews per star.
func Summarize(reviews []domain.Review) domain.ReviewSummary {
	summary := domain.ReviewSummary{
		Count:        len(reviews),
		Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
	}
	if len(reviews) == 0 {
		return summary
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			summary.Distribution[strconv.Itoa(r.Rating)]++
		}
	}
	summary.Average = domain.Round2(float64(sum) / float64(len(reviews)))
	return summary
}

func (b *ReviewBoard) indexLocked(id string) int {
	for i := range b.reviews {
		if b.reviews[i].ID == id {
			return i
		}
	}
	return -1
}
