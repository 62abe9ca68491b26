package cashflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/kv"
)

func TestService_CreateDefaultsStatus(t *testing.T) {
	svc := cashflow.NewService(kv.NewMemory())

	tx := svc.Create(cashflow.CreateParams{
		Type:        cashflow.TypeIncome,
		Description: "Projeto site",
		Amount:      150000,
		Date:        "2024-03-10",
	})

	assert.Equal(t, 1, tx.ID)
	assert.Equal(t, cashflow.StatusCompleted, tx.Status)
}

func TestService_ListFilter(t *testing.T) {
	svc := cashflow.NewService(kv.NewMemory())

	svc.Create(cashflow.CreateParams{Type: cashflow.TypeIncome, Description: "a", Amount: 100, Date: "2024-01-05", Category: "Serviços"})
	svc.Create(cashflow.CreateParams{Type: cashflow.TypeExpense, Description: "b", Amount: 50, Date: "2024-01-05", Category: "Marketing"})
	svc.Create(cashflow.CreateParams{Type: cashflow.TypeIncome, Description: "c", Amount: 70, Date: "2024-02-01", Category: "Serviços", Status: cashflow.StatusPending})

	type testCase struct {
		name    string
		filter  cashflow.ListFilter
		wantIDs []int
	}

	income := cashflow.TypeIncome
	pending := cashflow.StatusPending
	date := "2024-01-05"
	category := "Serviços"

	tests := []testCase{
		{name: "all", filter: cashflow.ListFilter{}, wantIDs: []int{1, 2, 3}},
		{name: "by type", filter: cashflow.ListFilter{Type: &income}, wantIDs: []int{1, 3}},
		{name: "by date", filter: cashflow.ListFilter{Date: &date}, wantIDs: []int{1, 2}},
		{name: "by category and status", filter: cashflow.ListFilter{Category: &category, Status: &pending}, wantIDs: []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.List(tt.filter)

			ids := make([]int, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_UpdateMergesFields(t *testing.T) {
	svc := cashflow.NewService(kv.NewMemory())

	tx := svc.Create(cashflow.CreateParams{
		Type:          cashflow.TypeExpense,
		Description:   "Hospedagem",
		Amount:        9900,
		Date:          "2024-04-01",
		Category:      "Infraestrutura",
		PaymentMethod: "Pix",
	})

	amount := int64(12900)
	status := cashflow.StatusPending

	updated, ok := svc.Update(tx.ID, cashflow.UpdateParams{Amount: &amount, Status: &status})
	require.True(t, ok)

	assert.Equal(t, int64(12900), updated.Amount)
	assert.Equal(t, cashflow.StatusPending, updated.Status)
	// Untouched fields survive the merge.
	assert.Equal(t, "Hospedagem", updated.Description)
	assert.Equal(t, "Pix", updated.PaymentMethod)
}

func TestService_PersistsAcrossInstances(t *testing.T) {
	store := kv.NewMemory()

	svc := cashflow.NewService(store)
	svc.Create(cashflow.CreateParams{Type: cashflow.TypeIncome, Description: "x", Amount: 10, Date: "2024-01-01"})
	svc.Delete(99) // no-op

	again := cashflow.NewService(store)
	got := again.List(cashflow.ListFilter{})

	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].Description)
}
