// Package export writes the ledger out as CSV, either raw transactions or
// the per-month income/expense analysis. Amounts are formatted in reais
// with a decimal point so spreadsheets parse them as numbers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dmafra/gestor/internal/cashflow"
)

// Service handles CSV export of the cash-flow ledger.
type Service struct {
	transactions *cashflow.Service
}

func NewService(txService *cashflow.Service) *Service {
	return &Service{transactions: txService}
}

var transactionHeader = []string{"id", "date", "type", "description", "category", "amount", "payment_method", "status"}

// Transactions writes all transactions matching the filter, in insertion
// order, one CSV row each.
func (s *Service) Transactions(w io.Writer, filter cashflow.ListFilter) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(transactionHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, t := range s.transactions.List(filter) {
		row := []string{
			strconv.Itoa(t.ID),
			t.Date,
			string(t.Type),
			t.Description,
			t.Category,
			formatAmount(t.Amount),
			t.PaymentMethod,
			string(t.Status),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %d: %w", t.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

var monthlyHeader = []string{"month", "income", "expense", "profit"}

// Monthly writes the month-by-month analysis in ascending period order.
func (s *Service) Monthly(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(monthlyHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, b := range cashflow.MonthlyBuckets(s.transactions.List(cashflow.ListFilter{})) {
		row := []string{
			b.Period,
			formatAmount(b.Income),
			formatAmount(b.Expense),
			formatAmount(b.Profit),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing month %s: %w", b.Period, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// formatAmount renders cents as a fixed two-decimal value.
func formatAmount(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
