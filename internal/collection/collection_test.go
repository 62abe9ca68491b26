package collection_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/collection"
	"github.com/dmafra/gestor/internal/kv"
)

type note struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func (n note) EntityID() int { return n.ID }

func newNote(title string) func(id int) note {
	return func(id int) note {
		return note{ID: id, Title: title}
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	c := collection.New[note](kv.NewMemory(), "notes", nil)

	for i := range 5 {
		got := c.Create(newNote(fmt.Sprintf("note %d", i)))
		assert.Equal(t, i+1, got.ID)
	}

	seen := map[int]bool{}
	for _, n := range c.List() {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
}

func TestCreateAfterDeleteReusesMaxPlusOne(t *testing.T) {
	c := collection.New[note](kv.NewMemory(), "notes", nil)

	c.Create(newNote("a"))
	b := c.Create(newNote("b"))
	c.Create(newNote("c"))

	c.Remove(3)

	got := c.Create(newNote("d"))
	assert.Equal(t, 3, got.ID, "id is max+1 over the current records, not a counter")

	c.Remove(1)
	c.Remove(2)
	c.Remove(3)
	c.Remove(b.ID)

	got = c.Create(newNote("e"))
	assert.Equal(t, 1, got.ID, "ids restart once the collection is empty")
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := kv.NewMemory()

	c := collection.New[note](store, "notes", nil)
	c.Create(newNote("first"))
	c.Create(newNote("second"))
	c.Update(1, func(n note) note {
		n.Title = "first, edited"
		return n
	})
	c.Remove(2)

	want := c.List()

	// A fresh collection over the same store reproduces the state at the
	// last mutation.
	reloaded := collection.New[note](store, "notes", nil)
	assert.Equal(t, want, reloaded.Load())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	defaults := []note{{ID: 1, Title: ""}}

	t.Run("absent", func(t *testing.T) {
		c := collection.New[note](kv.NewMemory(), "notes", defaults)
		assert.Equal(t, defaults, c.Load())
	})

	t.Run("unparsable", func(t *testing.T) {
		store := kv.NewMemory()
		require.NoError(t, store.Set("notes", "{not json"))

		c := collection.New[note](store, "notes", defaults)
		assert.Equal(t, defaults, c.Load())
	})
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	c := collection.New[note](kv.NewMemory(), "notes", nil)
	c.Create(newNote("only"))

	before := c.List()

	_, ok := c.Update(99, func(n note) note {
		n.Title = "changed"
		return n
	})

	assert.False(t, ok)
	assert.Equal(t, before, c.List())
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := collection.New[note](kv.NewMemory(), "notes", nil)
	c.Create(newNote("a"))
	c.Create(newNote("b"))

	c.Remove(1)
	once := c.List()

	c.Remove(1)
	assert.Equal(t, once, c.List())
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := collection.New[note](kv.NewMemory(), "notes", nil)

	titles := []string{"z", "a", "m"}
	for _, title := range titles {
		c.Create(newNote(title))
	}

	got := c.List()
	require.Len(t, got, 3)

	for i, title := range titles {
		assert.Equal(t, title, got[i].Title)
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := collection.New[note](kv.NewMemory(), "notes", nil)
	c.Create(newNote("original"))

	items := c.List()
	items[0].Title = "mutated"

	assert.Equal(t, "original", c.List()[0].Title)
}
