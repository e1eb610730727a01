package parser

import (
	"strconv"
	"strings"
)

// parseAmount converts a statement amount like "1,234.56" or "₹1,234.56"
// to a float64.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, "INR", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space

	if s == "" || s == "-" {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}

// formatAmount renders an amount the way it appears in the CSV output:
// two decimals, no thousands separators.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// sanitizeDescription trims a narration and replaces commas with spaces so
// downstream comma-splits of CSV rows stay aligned with the schema.
func sanitizeDescription(s string) string {
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Join(strings.Fields(s), " ")
}

// containsIgnoreCase reports whether substr occurs in text, ignoring case.
func containsIgnoreCase(text, substr string) bool {
	return substr != "" && strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}
