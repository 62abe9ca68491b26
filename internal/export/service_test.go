package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/export"
	"github.com/dmafra/gestor/internal/kv"
)

func seededService(t *testing.T) *cashflow.Service {
	t.Helper()

	svc := cashflow.NewService(kv.NewMemory())

	svc.Create(cashflow.CreateParams{
		Type:        cashflow.TypeIncome,
		Description: "Projeto site",
		Amount:      150000,
		Date:        "2024-01-05",
		Category:    "projects",
	})
	svc.Create(cashflow.CreateParams{
		Type:        cashflow.TypeExpense,
		Description: "Anúncios",
		Amount:      8990,
		Date:        "2024-01-20",
		Category:    "marketing",
	})
	svc.Create(cashflow.CreateParams{
		Type:        cashflow.TypeIncome,
		Description: "Consultoria",
		Amount:      50000,
		Date:        "2024-02-10",
		Status:      cashflow.StatusPending,
	})

	return svc
}

func TestTransactions(t *testing.T) {
	var buf bytes.Buffer

	err := export.NewService(seededService(t)).Transactions(&buf, cashflow.ListFilter{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "id,date,type,description,category,amount,payment_method,status")
	assert.Contains(t, out, "1,2024-01-05,income,Projeto site,projects,1500.00,,completed")
	assert.Contains(t, out, "2,2024-01-20,expense,Anúncios,marketing,89.90,,completed")
}

func TestTransactions_Filtered(t *testing.T) {
	var buf bytes.Buffer

	expense := cashflow.TypeExpense
	err := export.NewService(seededService(t)).Transactions(&buf, cashflow.ListFilter{Type: &expense})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Anúncios")
	assert.NotContains(t, out, "Projeto site")
}

func TestMonthly(t *testing.T) {
	var buf bytes.Buffer

	err := export.NewService(seededService(t)).Monthly(&buf)
	require.NoError(t, err)

	// The pending February income does not open a bucket.
	assert.Equal(t, "month,income,expense,profit\n2024-01,1500.00,89.90,1410.10\n", buf.String())
}
