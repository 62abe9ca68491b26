// Package collection implements the persistence pattern shared by every
// entity kind: an ordered in-memory list mirrored as one JSON snapshot in
// the local key-value store, rewritten in full on every mutation.
package collection

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dmafra/gestor/internal/kv"
)

// Entity is any record managed by a Collection.
type Entity interface {
	EntityID() int
}

// Collection owns the canonical list for one entity kind. Mutations are
// last-write-wins at whole-collection granularity: each one rewrites the
// full snapshot under the collection's key.
type Collection[T Entity] struct {
	mu       sync.Mutex
	store    kv.Store
	key      string
	defaults []T

	items  []T
	loaded bool
}

func New[T Entity](store kv.Store, key string, defaults []T) *Collection[T] {
	return &Collection[T]{
		store:    store,
		key:      key,
		defaults: defaults,
	}
}

// Load reads the persisted snapshot, replacing the in-memory list. An
// absent or unparsable snapshot falls back to the collection's defaults;
// Load never fails.
func (c *Collection[T]) Load() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.load()

	return c.copyItems()
}

func (c *Collection[T]) load() {
	c.loaded = true
	c.items = append([]T(nil), c.defaults...)

	raw, ok := c.store.Get(c.key)
	if !ok {
		return
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Corrupt snapshots are treated as no data.
		slog.Warn("discarding unparsable snapshot", "key", c.key, "error", err)
		return
	}

	c.items = items
}

// List returns the current in-memory state.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded()

	return c.copyItems()
}

// Get returns the record with the given identifier.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded()

	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Create appends the record built for the next identifier and persists the
// collection. The identifier is one past the highest currently in use, and
// never below 1.
func (c *Collection[T]) Create(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded()

	item := build(c.nextID())
	c.items = append(c.items, item)
	c.persist()

	return item
}

// Update replaces the record with the given identifier by apply's result.
// apply must leave the identifier unchanged. A missing identifier is a
// silent no-op reported through the second return value.
func (c *Collection[T]) Update(id int, apply func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded()

	for i, item := range c.items {
		if item.EntityID() != id {
			continue
		}

		c.items[i] = apply(item)
		c.persist()

		return c.items[i], true
	}

	var zero T

	return zero, false
}

// Remove filters out the record with the given identifier. Removing an
// absent identifier is a no-op, so Remove is idempotent.
func (c *Collection[T]) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded()

	kept := c.items[:0]

	for _, item := range c.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(c.items) {
		return
	}

	c.items = kept
	c.persist()
}

func (c *Collection[T]) ensureLoaded() {
	if !c.loaded {
		c.load()
	}
}

func (c *Collection[T]) nextID() int {
	max := 0

	for _, item := range c.items {
		if item.EntityID() > max {
			max = item.EntityID()
		}
	}

	return max + 1
}

func (c *Collection[T]) persist() {
	if c.items == nil {
		c.items = []T{}
	}

	raw, err := json.Marshal(c.items)
	if err != nil {
		slog.Error("failed to serialize collection", "key", c.key, "error", err)
		return
	}

	// A failed write leaves the persisted snapshot stale until the next
	// successful one; the in-memory list stays authoritative.
	if err := c.store.Set(c.key, string(raw)); err != nil {
		slog.Error("failed to persist collection", "key", c.key, "error", err)
	}
}

func (c *Collection[T]) copyItems() []T {
	return append([]T(nil), c.items...)
}
