// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a currency amount with separators and cents.
// e.g., 1266.714 -> "$1,266.71"
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(math.Round(v * 100))
	s := fmt.Sprintf("$%s.%02d", FormatNumber(cents/100), cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// FormatMoneyWhole formats a currency amount rounded to whole units.
// e.g., 206016.4 -> "$206,016"
func FormatMoneyWhole(v float64) string {
	return "$" + FormatNumber(int64(math.Round(v)))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a value already expressed in percent.
// e.g., 34.56 -> "34.6%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRatio formats a dimensionless ratio.
// e.g., 0.824 -> "0.82x"
func FormatRatio(r float64) string {
	return fmt.Sprintf("%.2fx", r)
}

// FormatYearFraction formats a decimal year count.
// e.g., 11.8 -> "11.8 yr"
func FormatYearFraction(y float64) string {
	return fmt.Sprintf("%.1f yr", y)
}

// FormatMonth formats an absolute month number as "month N (year Y.Y)".
func FormatMonth(month int) string {
	return fmt.Sprintf("month %d (year %.1f)", month, float64(month)/12)
}
