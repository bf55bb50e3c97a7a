package utils

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeFloat coerces user-entered numeric text to a float64. Athletes
// type on Japanese keyboards, so full-width digits ("６５.５") are folded to
// ASCII via NFKC before parsing. Empty or unparsable input yields 0;
// required fields are gated with a > 0 check at the handler instead.
func NormalizeFloat(text string) float64 {
	s := strings.TrimSpace(norm.NFKC.String(text))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatFloat renders a float the way the sheet stores it: no exponent, no
// trailing zeros.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
