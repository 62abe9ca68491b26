package deadline

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmafra/gestor/internal/deadline"
)

type Handler struct {
	svc *deadline.Service
}

func NewHandler(svc *deadline.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createDeadlineRequest struct {
	Title      string            `json:"title"`
	DueDate    string            `json:"due_date"`
	Priority   deadline.Priority `json:"priority"`
	Status     string            `json:"status"`
	AssignedTo string            `json:"assigned_to"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d := h.svc.Create(deadline.CreateParams{
		Title:      req.Title,
		DueDate:    req.DueDate,
		Priority:   req.Priority,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(d); err != nil {
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

	d, ok := h.svc.Get(id)
	if !ok {
		http.Error(w, "deadline not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(d); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateDeadlineRequest struct {
	Title      *string            `json:"title,omitempty"`
	DueDate    *string            `json:"due_date,omitempty"`
	Priority   *deadline.Priority `json:"priority,omitempty"`
	Status     *string            `json:"status,omitempty"`
	AssignedTo *string            `json:"assigned_to,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, ok := h.svc.Update(id, deadline.UpdateParams{
		Title:      req.Title,
		DueDate:    req.DueDate,
		Priority:   req.Priority,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
	})
	if !ok {
		http.Error(w, "deadline not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(d); err != nil {
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
