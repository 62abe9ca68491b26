// Package importer reads bank statement CSV exports and produces
// cash-flow create params. Header names are matched case-insensitively in
// Portuguese or English, and the column order is free.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/encoding"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

var (
	dateHeaders        = []string{"data", "date", "data mov."}
	descriptionHeaders = []string{"descrição", "descricao", "description", "histórico", "historico"}
	amountHeaders      = []string{"valor", "amount", "montante"}
)

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// Parse reads a statement and returns one create-params entry per data
// row. Negative amounts become expenses with a positive amount; every
// imported transaction starts as completed.
func (s *Service) Parse(r io.Reader) ([]cashflow.CreateParams, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = sniffDelimiter(string(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no statement header found: expected date, description and amount columns")
	}

	var params []cashflow.CreateParams

	for i, row := range rows[headerIdx+1:] {
		if isBlank(row) {
			continue
		}

		p, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", headerIdx+i+2, err)
		}

		params = append(params, p)
	}

	return params, nil
}

// columns holds the indexes of the three recognized fields.
type columns struct {
	date        int
	description int
	amount      int
}

func findHeader(rows [][]string) (columns, int, bool) {
	for idx, row := range rows {
		cols := columns{date: -1, description: -1, amount: -1}

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))

			switch {
			case matchesAny(name, dateHeaders):
				cols.date = i
			case matchesAny(name, descriptionHeaders):
				cols.description = i
			case matchesAny(name, amountHeaders):
				cols.amount = i
			}
		}

		if cols.date >= 0 && cols.description >= 0 && cols.amount >= 0 {
			return cols, idx, true
		}
	}

	return columns{}, 0, false
}

func parseRow(cols columns, row []string) (cashflow.CreateParams, error) {
	if len(row) <= cols.date || len(row) <= cols.description || len(row) <= cols.amount {
		return cashflow.CreateParams{}, fmt.Errorf("short row: %d fields", len(row))
	}

	date, err := parseDate(strings.TrimSpace(row[cols.date]))
	if err != nil {
		return cashflow.CreateParams{}, err
	}

	cents, err := parseAmountCents(row[cols.amount])
	if err != nil {
		return cashflow.CreateParams{}, err
	}

	typ := cashflow.TypeIncome
	if cents < 0 {
		typ = cashflow.TypeExpense
		cents = -cents
	}

	return cashflow.CreateParams{
		Type:        typ,
		Description: strings.TrimSpace(row[cols.description]),
		Amount:      cents,
		Date:        date,
		Status:      cashflow.StatusCompleted,
	}, nil
}

// parseDate normalizes any accepted layout to YYYY-MM-DD.
func parseDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly), nil
		}
	}

	return "", fmt.Errorf("unrecognized date %q", s)
}

func matchesAny(name string, candidates []string) bool {
	for _, c := range candidates {
		if name == c {
			return true
		}
	}

	return false
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// sniffDelimiter picks ';' when the first line has more semicolons than
// commas, which covers Brazilian bank exports.
func sniffDelimiter(raw string) rune {
	line, _, _ := strings.Cut(raw, "\n")

	if strings.Count(line, ";") >= strings.Count(line, ",") {
		return ';'
	}

	return ','
}
