package services

import (
	"fmt"
	"strings"
)

// FormatEUR formats a float64 amount using Italian euro notation: thousands
// separated by dots, decimal comma, always 2 decimal places
// (e.g. € 1.234.567,89).
func FormatEUR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "€ " + groupThousands(intPart) + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts dots every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}

// FormatPct formats an optional percentage delta with sign and 2 decimals;
// a nil delta renders as a dash.
func FormatPct(delta *float64) string {
	if delta == nil {
		return "—"
	}
	return fmt.Sprintf("%+.2f%%", *delta)
}
