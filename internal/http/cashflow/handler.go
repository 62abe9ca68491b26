package cashflow

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmafra/gestor/internal/cashflow"
)

type Handler struct {
	svc *cashflow.Service
}

func NewHandler(svc *cashflow.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Get("/monthly", h.monthly)
	r.Get("/categories", h.categories)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Type          cashflow.Type   `json:"type"`
	Description   string          `json:"description"`
	Amount        int64           `json:"amount"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Recurring     bool            `json:"recurring"`
	PaymentMethod string          `json:"payment_method"`
	Status        cashflow.Status `json:"status"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx := h.svc.Create(cashflow.CreateParams{
		Type:          req.Type,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          req.Date,
		Category:      req.Category,
		Recurring:     req.Recurring,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := cashflow.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(cashflow.Type(s))
	}

	if s := r.URL.Query().Get("date"); s != "" {
		filter.Date = new(s)
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = new(s)
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(cashflow.Status(s))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(h.svc.List(filter))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	txs := h.svc.List(cashflow.ListFilter{})

	resp := summaryResponse{
		Income:  cashflow.TotalByType(txs, cashflow.TypeIncome),
		Expense: cashflow.TotalByType(txs, cashflow.TypeExpense),
		Balance: cashflow.Balance(txs),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	buckets := cashflow.MonthlyBuckets(h.svc.List(cashflow.ListFilter{}))

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(buckets); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	typ := cashflow.Type(r.URL.Query().Get("type"))

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCategoryList(cashflow.CategoriesFor(typ))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, ok := h.svc.Get(id)
	if !ok {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTransactionRequest struct {
	Type          *cashflow.Type   `json:"type,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Amount        *int64           `json:"amount,omitempty"`
	Date          *string          `json:"date,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Recurring     *bool            `json:"recurring,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Status        *cashflow.Status `json:"status,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, ok := h.svc.Update(id, cashflow.UpdateParams{
		Type:          req.Type,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          req.Date,
		Category:      req.Category,
		Recurring:     req.Recurring,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
	})
	if !ok {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	h.svc.Delete(id)

	w.WriteHeader(http.StatusNoContent)
}
