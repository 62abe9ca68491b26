package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmountCents parses a statement amount into cents. Accepts both the
// Brazilian format ("1.234,56", optionally prefixed with "R$") and the
// plain decimal-point format ("1234.56").
func parseAmountCents(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.ReplaceAll(clean, " ", "")

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
