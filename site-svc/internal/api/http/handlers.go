package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"sabor-autentico/site-svc/internal/domain"
	"sabor-autentico/site-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Sessions service.SessionRegistry
	Sections *service.SectionSelector
}

func NewHandler(menu service.MenuServiceInterface, sessions service.SessionRegistry) *Handler {
	return &Handler{
		Menu:     menu,
		Sessions: sessions,
		Sections: service.NewSectionSelector(menu),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(SessionMiddleware(h.Sessions))

	api.HandleFunc("/sections/{name}", h.getSection).Methods("GET")

	api.HandleFunc("/menu", h.getMenu).Methods("GET")
	api.HandleFunc("/menu/items/{id}", h.getMenuItem).Methods("GET")

	api.HandleFunc("/cart", h.getCart).Methods("GET")
	api.HandleFunc("/cart", h.clearCart).Methods("DELETE")
	api.HandleFunc("/cart/items", h.addToCart).Methods("POST")
	api.HandleFunc("/cart/items/{id}", h.updateCartQuantity).Methods("PUT")
	api.HandleFunc("/cart/items/{id}", h.removeFromCart).Methods("DELETE")

	api.HandleFunc("/orders/checkout", h.beginCheckout).Methods("POST")
	api.HandleFunc("/orders", h.placeOrder).Methods("POST")
	api.HandleFunc("/orders/current", h.getCurrentOrder).Methods("GET")
	api.HandleFunc("/orders/current/reset", h.resetOrder).Methods("POST")
	api.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	api.HandleFunc("/reviews", h.listReviews).Methods("GET")
	api.HandleFunc("/reviews", h.submitReview).Methods("POST")
	api.HandleFunc("/reviews/{id}/helpful", h.markHelpful).Methods("POST")

	api.HandleFunc("/reservations/options", h.getReservationOptions).Methods("GET")
	api.HandleFunc("/reservations", h.submitReservation).Methods("POST")
	api.HandleFunc("/reservations/confirmation", h.getReservationConfirmation).Methods("GET")

	api.HandleFunc("/contact", h.submitContact).Methods("POST")
	api.HandleFunc("/contact/confirmation", h.getContactConfirmation).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	view := h.Sections.Render(mux.Vars(r)["name"], sessionFrom(r))
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.Menu.Categories(),
		"items":      h.Menu.Items(q.Get("category"), q.Get("diet")),
	})
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Item(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Cart())
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	item, err := h.Menu.Item(payload.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionFrom(r).AddToCart(item))
}

func (h *Handler) updateCartQuantity(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if payload.Quantity == nil {
		http.Error(w, "Missing quantity", http.StatusBadRequest)
		return
	}

	cart := sessionFrom(r).UpdateCartQuantity(mux.Vars(r)["id"], *payload.Quantity)
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).RemoveFromCart(mux.Vars(r)["id"]))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).ClearCart())
}

func (h *Handler) beginCheckout(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if err := session.BeginCheckout(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Orders().View())
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var delivery domain.DeliveryInfo
	if err := json.NewDecoder(r.Body).Decode(&delivery); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	session := sessionFrom(r)
	if _, err := session.PlaceOrder(delivery); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session.Orders().View())
}

func (h *Handler) getCurrentOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Orders().View())
}

func (h *Handler) resetOrder(w http.ResponseWriter, r *http.Request) {
	view, err := sessionFrom(r).ResetOrder()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := sessionFrom(r).Orders().QRCode(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	board := sessionFrom(r).Reviews()
	writeJSON(w, http.StatusOK, service.ReviewsContent{
		Reviews: board.List(),
		Summary: board.Summary(),
	})
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	created, err := sessionFrom(r).Reviews().Submit(review)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) markHelpful(w http.ResponseWriter, r *http.Request) {
	review, err := sessionFrom(r).Reviews().MarkHelpful(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) getReservationOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).ReservationOptions())
}

func (h *Handler) submitReservation(w http.ResponseWriter, r *http.Request) {
	var reservation domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	confirmation, err := sessionFrom(r).Reserve(reservation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, confirmation)
}

func (h *Handler) getReservationConfirmation(w http.ResponseWriter, r *http.Request) {
	confirmation, ok := sessionFrom(r).Reservations().Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, confirmation)
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var message domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	confirmation, err := sessionFrom(r).SendContact(message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, confirmation)
}

func (h *Handler) getContactConfirmation(w http.ResponseWriter, r *http.Request) {
	confirmation, ok := sessionFrom(r).Contact().Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, confirmation)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidField),
		errors.Is(err, service.ErrInvalidRating):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrOrderInProgress),
		errors.Is(err, service.ErrOrderNotResettable):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error().Err(err).Msg("request failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
