package campaign

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmafra/gestor/internal/campaign"
)

type Handler struct {
	svc *campaign.Service
}

func NewHandler(svc *campaign.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createCampaignRequest struct {
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	Budget    int64  `json:"budget"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := h.svc.Create(campaign.CreateParams{
		Name:      req.Name,
		Platform:  req.Platform,
		Budget:    req.Budget,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(c); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.svc.List()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, ok := h.svc.Get(id)
	if !ok {
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(c); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCampaignRequest struct {
	Name        *string  `json:"name,omitempty"`
	Platform    *string  `json:"platform,omitempty"`
	Budget      *int64   `json:"budget,omitempty"`
	Spent       *int64   `json:"spent,omitempty"`
	ROI         *float64 `json:"roi,omitempty"`
	Clicks      *int     `json:"clicks,omitempty"`
	Conversions *int     `json:"conversions,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, ok := h.svc.Update(id, campaign.UpdateParams{
		Name:        req.Name,
		Platform:    req.Platform,
		Budget:      req.Budget,
		Spent:       req.Spent,
		ROI:         req.ROI,
		Clicks:      req.Clicks,
		Conversions: req.Conversions,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if !ok {
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(c); err != nil {
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
