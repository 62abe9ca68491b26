package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/client"
	"github.com/dmafra/gestor/internal/kv"
)

func TestCreate_DefaultsStatusToActive(t *testing.T) {
	svc := client.NewService(kv.NewMemory())

	c := svc.Create(client.CreateParams{Name: "Maria", Email: "maria@email.com", Project: "Site"})

	assert.Equal(t, "Ativo", c.Status)
	assert.Equal(t, 2, c.ID) // the placeholder record holds id 1
}

func TestUpdate_PartialEdit(t *testing.T) {
	svc := client.NewService(kv.NewMemory())

	c := svc.Create(client.CreateParams{Name: "Maria", Project: "Site"})

	got, ok := svc.Update(c.ID, client.UpdateParams{Status: new("Inativo")})
	require.True(t, ok)

	assert.Equal(t, "Inativo", got.Status)
	assert.Equal(t, "Maria", got.Name)
	assert.Equal(t, "Site", got.Project)
}

func TestDirectoryPersistsAcrossInstances(t *testing.T) {
	store := kv.NewMemory()

	first := client.NewService(store)
	created := first.Create(client.CreateParams{Name: "Maria"})

	second := client.NewService(store)
	got, ok := second.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Maria", got.Name)
}
