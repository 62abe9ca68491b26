package prefs

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmafra/gestor/internal/prefs"
)

type Handler struct {
	svc *prefs.Service
}

func NewHandler(svc *prefs.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/dark-mode", h.setDarkMode)
	r.Put("/project-status", h.setProjectStatus)
}

type prefsResponse struct {
	DarkMode      bool                `json:"dark_mode"`
	ProjectStatus []prefs.StatusCount `json:"project_status"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	resp := prefsResponse{
		DarkMode:      h.svc.DarkMode(),
		ProjectStatus: h.svc.ProjectStatus(),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type darkModeRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) setDarkMode(w http.ResponseWriter, r *http.Request) {
	var req darkModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.svc.SetDarkMode(req.Enabled)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setProjectStatus(w http.ResponseWriter, r *http.Request) {
	var counts []prefs.StatusCount
	if err := json.NewDecoder(r.Body).Decode(&counts); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.svc.SetProjectStatus(counts)

	w.WriteHeader(http.StatusNoContent)
}
