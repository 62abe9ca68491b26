package view

import (
	"fmt"
	"time"
)

// FormatAmount formats an amount stored as cents into a human-readable string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("R$ %.2f", float64(cents)/100.0)
}

// Today returns the current date in YYYY-MM-DD.
func Today() string {
	return time.Now().Format(time.DateOnly)
}
