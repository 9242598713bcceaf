// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/sipdash/internal/model"
)

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

// FormatReturnBadge renders "+273% Returns", or "" when the percentage is undefined.
func FormatReturnBadge(s model.Summary) string {
	if !s.ReturnPercentOK {
		return ""
	}
	return fmt.Sprintf("%+d%% Returns", s.ReturnPercent)
}

// FormatReturnPercent renders the percentage for tables, "n/a" when undefined.
func FormatReturnPercent(s model.Summary) string {
	if !s.ReturnPercentOK {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", s.ReturnPercent)
}

// FormatMonthYear renders e.g. "July 2024".
func FormatMonthYear(t time.Time) string {
	return t.Format("January 2006")
}

// FormatPeriods renders a period count, e.g. "1 month", "7 months".
func FormatPeriods(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
