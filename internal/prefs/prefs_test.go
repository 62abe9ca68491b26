package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/kv"
	"github.com/dmafra/gestor/internal/prefs"
)

func TestDarkMode(t *testing.T) {
	svc := prefs.NewService(kv.NewMemory())

	assert.False(t, svc.DarkMode())

	svc.SetDarkMode(true)
	assert.True(t, svc.DarkMode())
}

func TestMonthlyCacheRoundTrip(t *testing.T) {
	svc := prefs.NewService(kv.NewMemory())

	assert.Nil(t, svc.MonthlyCache())

	buckets := []cashflow.MonthBucket{{Period: "2024-01", Income: 100, Expense: 40, Profit: 60}}
	svc.SetMonthlyCache(buckets)

	assert.Equal(t, buckets, svc.MonthlyCache())
}

func TestProjectStatusDefaults(t *testing.T) {
	store := kv.NewMemory()
	svc := prefs.NewService(store)

	counts := svc.ProjectStatus()
	require.Len(t, counts, 4)
	assert.Equal(t, "Em Andamento", counts[0].Name)
	assert.Zero(t, counts[0].Value)

	counts[0].Value = 3
	svc.SetProjectStatus(counts)

	assert.Equal(t, 3, svc.ProjectStatus()[0].Value)
}

func TestCorruptPreferenceFallsBack(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set("projectStatus", "{broken"))

	svc := prefs.NewService(store)
	assert.Len(t, svc.ProjectStatus(), 4)
}
