package cashflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/cashflow"
)

func sampleTransactions() []cashflow.Transaction {
	return []cashflow.Transaction{
		{ID: 1, Type: cashflow.TypeIncome, Amount: 100, Status: cashflow.StatusCompleted, Date: "2024-01-05"},
		{ID: 2, Type: cashflow.TypeExpense, Amount: 40, Status: cashflow.StatusCompleted, Date: "2024-01-20"},
		{ID: 3, Type: cashflow.TypeIncome, Amount: 999, Status: cashflow.StatusPending, Date: "2024-02-01"},
	}
}

func TestTotalByType(t *testing.T) {
	txs := sampleTransactions()

	assert.Equal(t, int64(100), cashflow.TotalByType(txs, cashflow.TypeIncome), "pending income excluded")
	assert.Equal(t, int64(40), cashflow.TotalByType(txs, cashflow.TypeExpense))
	assert.Equal(t, int64(60), cashflow.Balance(txs))
}

func TestTotalByTypeAndStatus(t *testing.T) {
	txs := sampleTransactions()

	assert.Equal(t, int64(999), cashflow.TotalByTypeAndStatus(txs, cashflow.TypeIncome, cashflow.StatusPending))
	assert.Equal(t, int64(0), cashflow.TotalByTypeAndStatus(txs, cashflow.TypeExpense, cashflow.StatusCancelled))
}

func TestMonthlyBuckets(t *testing.T) {
	buckets := cashflow.MonthlyBuckets(sampleTransactions())

	// The pending February income creates no bucket.
	require.Len(t, buckets, 1)
	assert.Equal(t, cashflow.MonthBucket{
		Period:  "2024-01",
		Income:  100,
		Expense: 40,
		Profit:  60,
	}, buckets[0])
}

func TestMonthlyBucketsOrderedAscending(t *testing.T) {
	txs := []cashflow.Transaction{
		{ID: 1, Type: cashflow.TypeIncome, Amount: 10, Status: cashflow.StatusCompleted, Date: "2024-03-01"},
		{ID: 2, Type: cashflow.TypeIncome, Amount: 20, Status: cashflow.StatusCompleted, Date: "2023-12-31"},
		{ID: 3, Type: cashflow.TypeExpense, Amount: 5, Status: cashflow.StatusCompleted, Date: "2024-03-15"},
	}

	buckets := cashflow.MonthlyBuckets(txs)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2023-12", buckets[0].Period)
	assert.Equal(t, "2024-03", buckets[1].Period)
	assert.Equal(t, int64(5), buckets[1].Profit)
}

func TestMonthlyBucketsSkipsUnparsableDates(t *testing.T) {
	txs := []cashflow.Transaction{
		{ID: 1, Type: cashflow.TypeIncome, Amount: 10, Status: cashflow.StatusCompleted, Date: "not-a-date"},
		{ID: 2, Type: cashflow.TypeIncome, Amount: 30, Status: cashflow.StatusCompleted, Date: "2024-05-02"},
	}

	buckets := cashflow.MonthlyBuckets(txs)

	require.Len(t, buckets, 1)
	assert.Equal(t, int64(30), buckets[0].Income)
}

func TestMonthlyBucketsEmptyInput(t *testing.T) {
	assert.Empty(t, cashflow.MonthlyBuckets(nil))
}
