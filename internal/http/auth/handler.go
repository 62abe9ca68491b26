package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmafra/gestor/internal/auth"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/signup", h.signUp)
	r.Post("/signin", h.signIn)
	r.Post("/signout", h.signOut)
	r.Get("/me", h.me)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.svc.SignUp(req.Email, req.Password)
	if err != nil {
		// Auth failures are deliberately indistinguishable.
		http.Error(w, auth.ErrAuthentication.Error(), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(userResponse{ID: user.ID.String(), Email: user.Email}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type signInResponse struct {
	Token string `json:"token"`
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.svc.SignIn(req.Email, req.Password)
	if err != nil {
		http.Error(w, auth.ErrAuthentication.Error(), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(signInResponse{Token: token}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		http.Error(w, auth.ErrAuthentication.Error(), http.StatusUnauthorized)
		return
	}

	if err := h.svc.SignOut(token); err != nil {
		http.Error(w, auth.ErrAuthentication.Error(), http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		http.Error(w, auth.ErrAuthentication.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.svc.CurrentUser(token)
	if err != nil {
		http.Error(w, auth.ErrAuthentication.Error(), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(userResponse{ID: user.ID.String(), Email: user.Email}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return token, found && token != ""
}
