// Package store persists user accounts as one JSON snapshot in the local
// key-value store, like every other collection.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmafra/gestor/internal/auth"
	"github.com/dmafra/gestor/internal/kv"
)

const storageKey = "users"

type Store struct {
	mu sync.Mutex
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

func (s *Store) FindByEmail(email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.load() {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, auth.ErrNotFound
}

func (s *Store) CreateUser(user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := append(s.load(), *user)

	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("serializing users: %w", err)
	}

	if err := s.kv.Set(storageKey, string(raw)); err != nil {
		return fmt.Errorf("persisting users: %w", err)
	}

	return nil
}

// load reads the snapshot; absent or corrupt data is an empty account
// list.
func (s *Store) load() []auth.User {
	raw, ok := s.kv.Get(storageKey)
	if !ok {
		return nil
	}

	var users []auth.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil
	}

	return users
}
