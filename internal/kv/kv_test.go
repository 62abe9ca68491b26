package kv_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/kv"
)

func TestStores(t *testing.T) {
	sqliteStore, err := kv.Open(filepath.Join(t.TempDir(), "kv_test.db"))
	require.NoError(t, err)

	t.Cleanup(func() { sqliteStore.Close() })

	stores := map[string]kv.Store{
		"memory": kv.NewMemory(),
		"sqlite": sqliteStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			_, ok := store.Get("missing")
			assert.False(t, ok)

			require.NoError(t, store.Set("clients", `[{"id":1}]`))

			got, ok := store.Get("clients")
			assert.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, got)

			// Set replaces the whole value.
			require.NoError(t, store.Set("clients", `[]`))

			got, ok = store.Get("clients")
			assert.True(t, ok)
			assert.Equal(t, `[]`, got)

			require.NoError(t, store.Remove("clients"))

			_, ok = store.Get("clients")
			assert.False(t, ok)

			// Removing an absent key is a no-op.
			require.NoError(t, store.Remove("clients"))
		})
	}
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv_test.db")

	store, err := kv.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("darkMode", "true"))
	require.NoError(t, store.Close())

	reopened, err := kv.Open(path)
	require.NoError(t, err)

	t.Cleanup(func() { reopened.Close() })

	got, ok := reopened.Get("darkMode")
	assert.True(t, ok)
	assert.Equal(t, "true", got)
}
