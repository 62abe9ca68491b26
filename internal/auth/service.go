// Package auth is the gate in front of the dashboard: sign-up, sign-in,
// sign-out and current-user lookup over locally stored accounts. Every
// failure surfaces as the same generic error; callers never learn whether
// the email, the password or the token was the problem.
package auth

import (
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrAuthentication is the only error the gate exposes.
var ErrAuthentication = errors.New("authentication failed")

// ErrNotFound is returned by repositories when no user matches.
var ErrNotFound = errors.New("user not found")

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type UserRepository interface {
	FindByEmail(email string) (*User, error)
	CreateUser(user *User) error
}

const minPasswordLen = 6

type Service struct {
	repo   UserRepository
	secret []byte
	ttl    time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry
}

// NewService builds the gate. An empty secret gets replaced by a random
// one, which invalidates all sessions on restart.
func NewService(repo UserRepository, secret string, ttl time.Duration) *Service {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		rand.Read(key)
	}

	return &Service{
		repo:    repo,
		secret:  key,
		ttl:     ttl,
		revoked: make(map[string]time.Time),
	}
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *Service) SignUp(email, password string) (*User, error) {
	if email == "" || len(password) < minPasswordLen {
		return nil, ErrAuthentication
	}

	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, ErrAuthentication
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrAuthentication
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, ErrAuthentication
	}

	return user, nil
}

func (s *Service) SignIn(email, password string) (string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", ErrAuthentication
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrAuthentication
	}

	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", ErrAuthentication
	}

	return token, nil
}

// SignOut revokes the token's session id until the token would have
// expired on its own.
func (s *Service) SignOut(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return ErrAuthentication
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneRevoked()
	s.revoked[claims.ID] = claims.ExpiresAt.Time

	return nil
}

// CurrentUser resolves the authenticated principal behind a token, or
// ErrAuthentication for anything invalid, expired or signed out.
func (s *Service) CurrentUser(token string) (*User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, ErrAuthentication
	}

	s.mu.Lock()

	_, signedOut := s.revoked[claims.ID]

	s.mu.Unlock()

	if signedOut {
		return nil, ErrAuthentication
	}

	user, err := s.repo.FindByEmail(claims.Email)
	if err != nil {
		return nil, ErrAuthentication
	}

	return user, nil
}

func (s *Service) parse(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.ExpiresAt == nil {
		return nil, ErrAuthentication
	}

	return claims, nil
}

// pruneRevoked drops revocation entries for tokens that have expired
// anyway. Caller must hold the mutex.
func (s *Service) pruneRevoked() {
	now := time.Now()

	for jti, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, jti)
		}
	}
}
