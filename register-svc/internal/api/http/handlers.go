package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"autobus-caisse/register-svc/internal/domain"
	"autobus-caisse/register-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Register service.RegisterServiceInterface
	Location *time.Location
}

func NewHandler(register service.RegisterServiceInterface, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		Register: register,
		Location: loc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/catalog", h.getCatalog).Methods("GET")

	r.HandleFunc("/api/order", h.getOrder).Methods("GET")
	r.HandleFunc("/api/order", h.clearOrder).Methods("DELETE")
	r.HandleFunc("/api/order/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/order/items/last", h.removeLastItem).Methods("DELETE")
	r.HandleFunc("/api/order/wines", h.addWine).Methods("POST")
	r.HandleFunc("/api/order/pay", h.pay).Methods("POST")

	r.HandleFunc("/api/transactions", h.getTransactions).Methods("GET")
	r.HandleFunc("/api/transactions/{id}", h.getTransaction).Methods("GET")
	r.HandleFunc("/api/transactions/{id}", h.voidTransaction).Methods("DELETE")
	r.HandleFunc("/api/transactions/{id}/cancel", h.cancelTransaction).Methods("POST")
	r.HandleFunc("/api/transactions/{id}/receipt", h.getReceipt).Methods("GET")

	r.HandleFunc("/api/stats", h.getStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "register-svc",
		"policy":    h.Register.Policy(),
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Register.Catalog(r.URL.Query().Get("q")))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newOrderView(h.Register.CurrentOrder()))
}

type addItemRequest struct {
	Name string `json:"name"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := h.Register.AddItem(req.Name); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newOrderView(h.Register.CurrentOrder()))
}

type addWineRequest struct {
	Name        string      `json:"name"`
	Subcategory string      `json:"subcategory"`
	Tier        domain.Tier `json:"tier"`
}

func (h *Handler) addWine(w http.ResponseWriter, r *http.Request) {
	var req addWineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := h.Register.AddWine(req.Name, req.Subcategory, req.Tier); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newOrderView(h.Register.CurrentOrder()))
}

func (h *Handler) removeLastItem(w http.ResponseWriter, r *http.Request) {
	h.Register.RemoveLastItem()
	writeJSON(w, http.StatusOK, newOrderView(h.Register.CurrentOrder()))
}

func (h *Handler) clearOrder(w http.ResponseWriter, r *http.Request) {
	h.Register.ClearOrder()
	w.WriteHeader(http.StatusNoContent)
}

type payRequest struct {
	Method domain.PaymentMethod `json:"method"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tx, recorded, err := h.Register.Pay(r.Context(), req.Method)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !recorded {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, h.newTransactionView(tx))
}

func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	txs := h.Register.Transactions()
	views := make([]transactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, h.newTransactionView(tx))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.Register.Transaction(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.newTransactionView(tx))
}

// Removing an unknown transaction is not an error for the register, so both
// routes answer 204 whatever the outcome.
func (h *Handler) voidTransaction(w http.ResponseWriter, r *http.Request) {
	h.Register.Void(r.Context(), mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) cancelTransaction(w http.ResponseWriter, r *http.Request) {
	h.Register.Cancel(r.Context(), mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	png, err := h.Register.Receipt(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newStatsView(h.Register.Statistics()))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrUnknownTier),
		errors.Is(err, domain.ErrInvalidPaymentMethod):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrTransactionNotFound):
		http.Error(w, "Transaction not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
