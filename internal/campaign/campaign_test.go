package campaign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/campaign"
	"github.com/dmafra/gestor/internal/kv"
)

func TestCreate_CountersStartAtZero(t *testing.T) {
	svc := campaign.NewService(kv.NewMemory())

	c := svc.Create(campaign.CreateParams{
		Name:      "Lançamento",
		Platform:  "Google Ads",
		Budget:    100000,
		StartDate: "2024-04-01",
		EndDate:   "2024-04-30",
	})

	assert.Equal(t, "Ativo", c.Status)
	assert.Zero(t, c.Spent)
	assert.Zero(t, c.ROI)
	assert.Zero(t, c.Clicks)
	assert.Zero(t, c.Conversions)
}

func TestUpdate_Counters(t *testing.T) {
	svc := campaign.NewService(kv.NewMemory())

	c := svc.Create(campaign.CreateParams{Name: "Lançamento", Budget: 100000})

	got, ok := svc.Update(c.ID, campaign.UpdateParams{
		Spent:       new(int64(25000)),
		Clicks:      new(1200),
		Conversions: new(34),
		ROI:         new(2.4),
	})
	require.True(t, ok)

	assert.Equal(t, int64(25000), got.Spent)
	assert.Equal(t, 1200, got.Clicks)
	assert.Equal(t, 34, got.Conversions)
	assert.InDelta(t, 2.4, got.ROI, 0.001)

	// Fields not mentioned keep their values.
	assert.Equal(t, "Lançamento", got.Name)
	assert.Equal(t, int64(100000), got.Budget)
}

func TestDefaults_Placeholder(t *testing.T) {
	svc := campaign.NewService(kv.NewMemory())

	all := svc.List()
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, "Ativo", all[0].Status)
}
