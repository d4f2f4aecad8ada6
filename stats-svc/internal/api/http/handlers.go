package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"sabor-autentico/stats-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	Stats service.StatsServiceInterface
}

func NewHandler(stats service.StatsServiceInterface) *Handler {
	return &Handler{Stats: stats}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")
	r.HandleFunc("/api/stats/daily", h.getDaily).Methods("GET")
	r.HandleFunc("/api/stats/reviews", h.getReviews).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Daily(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("failed to load daily stats")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Reviews(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load review stats")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
