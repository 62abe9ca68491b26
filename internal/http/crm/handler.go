package crm

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmafra/gestor/internal/crm"
)

type Handler struct {
	pipeline *crm.Pipeline
}

func NewHandler(pipeline *crm.Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/pipeline", h.stages)
	r.Get("/pipeline/counts", h.counts)
	r.Post("/clients", h.create)
	r.Get("/clients/{id}", h.get)
	r.Patch("/clients/{id}", h.update)
	r.Delete("/clients/{id}", h.delete)
	r.Post("/clients/{id}/move", h.move)
}

func (h *Handler) stages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.pipeline.Stages()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) counts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.pipeline.StageCounts()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Value   int64  `json:"value"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := h.pipeline.CreateClient(crm.CreateParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Value:   req.Value,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(c); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, ok := h.pipeline.FindClient(id)
	if !ok {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(c); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateClientRequest struct {
	Name        *string      `json:"name,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	Company     *string      `json:"company,omitempty"`
	Status      *string      `json:"status,omitempty"`
	Value       *int64       `json:"value,omitempty"`
	LastContact *string      `json:"last_contact,omitempty"`
	Stage       *crm.StageID `json:"stage,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, ok := h.pipeline.UpdateClient(id, crm.UpdateParams{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Status:      req.Status,
		Value:       req.Value,
		LastContact: req.LastContact,
		Stage:       req.Stage,
	})
	if !ok {
		http.Error(w, "client not found", http.StatusNotFound)
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

	h.pipeline.DeleteClient(id)

	w.WriteHeader(http.StatusNoContent)
}

type moveClientRequest struct {
	Stage crm.StageID `json:"stage"`
}

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req moveClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !crm.ValidStage(req.Stage) {
		http.Error(w, "invalid stage", http.StatusBadRequest)
		return
	}

	c, ok := h.pipeline.MoveToStage(id, req.Stage)
	if !ok {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(c); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
