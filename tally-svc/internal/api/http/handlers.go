package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"autobus-caisse/tally-svc/internal/domain"
	"autobus-caisse/tally-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Tally service.TallyInterface
}

func NewHandler(svc service.TallyInterface) *Handler {
	return &Handler{Tally: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "tally-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/tally/today", h.getToday).Methods("GET")
	r.HandleFunc("/api/tally/{date}", h.getDate).Methods("GET")
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	tally, err := h.Tally.Today(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tally)
}

func (h *Handler) getDate(w http.ResponseWriter, r *http.Request) {
	tally, err := h.Tally.ForDate(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tally)
}
