package cashflow

import (
	"sort"
	"time"
)

// MonthBucket is one period of the monthly income/expense/profit series.
type MonthBucket struct {
	Period  string `json:"month"` // YYYY-MM
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Profit  int64  `json:"profit"`
}

// TotalByTypeAndStatus sums the amounts of transactions matching both the
// type and the status.
func TotalByTypeAndStatus(txs []Transaction, typ Type, status Status) int64 {
	var total int64

	for _, t := range txs {
		if t.Type == typ && t.Status == status {
			total += t.Amount
		}
	}

	return total
}

// TotalByType sums completed transactions of the given type, the only
// status counted in financial totals.
func TotalByType(txs []Transaction, typ Type) int64 {
	return TotalByTypeAndStatus(txs, typ, StatusCompleted)
}

// Balance is completed income minus completed expenses.
func Balance(txs []Transaction) int64 {
	return TotalByType(txs, TypeIncome) - TotalByType(txs, TypeExpense)
}

// MonthlyBuckets groups completed transactions into ascending year-month
// buckets. Transactions with unparsable dates are skipped, and pending or
// cancelled transactions create no bucket; the result is best effort and
// the function never fails.
func MonthlyBuckets(txs []Transaction) []MonthBucket {
	byPeriod := make(map[string]*MonthBucket)

	for _, t := range txs {
		if t.Status != StatusCompleted {
			continue
		}

		date, err := time.Parse(time.DateOnly, t.Date)
		if err != nil {
			continue
		}

		period := date.Format("2006-01")

		bucket, ok := byPeriod[period]
		if !ok {
			bucket = &MonthBucket{Period: period}
			byPeriod[period] = bucket
		}

		switch t.Type {
		case TypeIncome:
			bucket.Income += t.Amount
		case TypeExpense:
			bucket.Expense += t.Amount
		}

		bucket.Profit = bucket.Income - bucket.Expense
	}

	buckets := make([]MonthBucket, 0, len(byPeriod))
	for _, b := range byPeriod {
		buckets = append(buckets, *b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period < buckets[j].Period
	})

	return buckets
}
