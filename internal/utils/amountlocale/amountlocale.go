// Package amountlocale parses user-entered decimal amounts that may use a
// comma or a dot as the decimal separator, tolerating thousands separators
// like "1.234,56".
package amountlocale

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Validation messages surfaced on the gross amount field.
const (
	MsgEnterAmount = "Enter amount"
	MsgInvalid     = "Enter valid amount greater than 0"
)

// Normalize rewrites raw into a dot-decimal string: the first comma becomes
// a dot, then every dot except the last remaining one is stripped.
// "1.234,56" -> "1234.56". Idempotent for strings with at most one
// separator.
func Normalize(raw string) string {
	s := strings.Replace(raw, ",", ".", 1)
	last := strings.LastIndex(s, ".")
	if last < 0 {
		return s
	}
	return strings.ReplaceAll(s[:last], ".", "") + s[last:]
}

// Parse normalizes raw and parses it as a decimal. Malformed input yields
// decimal.Zero and ok=false; Parse never panics.
func Parse(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(Normalize(strings.TrimSpace(raw)))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOrZero is Parse for preview-only computations: malformed input
// deliberately degrades to zero instead of surfacing an error.
func ParseOrZero(raw string) decimal.Decimal {
	d, _ := Parse(raw)
	return d
}

// Validate returns the validation message for raw, or "" when raw is a
// well-formed amount strictly greater than zero. Zero and negative amounts
// are invalid.
func Validate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgEnterAmount
	}
	d, ok := Parse(raw)
	if !ok || !d.IsPositive() {
		return MsgInvalid
	}
	return ""
}
