package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
)

// formatMoney formats money as "$X,XXX.XX" with comma separators
func formatMoney(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)

	// Split at decimal point
	dotPos := len(s) - 3
	intPart := s[:dotPos]
	decPart := s[dotPos:]

	// Add commas to integer part
	result := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}

	prefix := "$"
	if negative {
		prefix = "-$"
	}
	return prefix + string(result) + decPart
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// statusBadge renders the open-late state with its check mark
func statusBadge(h domain.Hours) string {
	if h == domain.OpenLate {
		return openLateStyle.Render(h.String() + " ✅")
	}
	return closesEarlyStyle.Render(h.String() + " ❌")
}

// parseAmount reads a number typed into a form field
func parseAmount(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// resultLine styles a result message green or red
func resultLine(ok bool, msg string) string {
	if ok {
		return successStyle.Render("  " + msg)
	}
	return errorStyle.Render("  " + msg)
}
