package summary

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// NotAvailable is displayed for missing values.
const NotAvailable = "N/A"

// FormatMagnitude scales v with a B/M/K suffix at 2 decimals; values below 1000
// are printed as-is with 2 decimals.
func FormatMagnitude(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// FormatOptional is FormatMagnitude with "N/A" for a nil value.
func FormatOptional(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return FormatMagnitude(*v)
}

// CardValue formats a raw record field for a summary card. Missing or
// non-numeric fields show "N/A"; fractional literals below 1 keep 6 decimals
// so that small rates stay readable.
func CardValue(field gjson.Result) string {
	if field.Type != gjson.Number {
		return NotAvailable
	}
	v := field.Float()
	if isFractionalLiteral(field.Raw) && v < 1 {
		return fmt.Sprintf("%.6f", v)
	}
	return FormatMagnitude(v)
}

func isFractionalLiteral(raw string) bool {
	return strings.ContainsAny(raw, ".eE")
}
