package export

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions.csv", h.transactions)
	r.Get("/monthly.csv", h.monthly)
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	filter := cashflow.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(cashflow.Type(s))
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(cashflow.Status(s))
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	if err := h.svc.Transactions(w, filter); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="monthly.csv"`)

	if err := h.svc.Monthly(w); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
