package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

// Middleware gates a route subtree: requests without a valid bearer token
// get a generic 401, everything else proceeds with the user in context.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			http.Error(w, ErrAuthentication.Error(), http.StatusUnauthorized)
			return
		}

		user, err := s.CurrentUser(token)
		if err != nil {
			http.Error(w, ErrAuthentication.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, user)))
	})
}

// UserFromContext returns the authenticated principal placed by the
// middleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(contextKey{}).(*User)
	return user, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}
