package render

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// enIN formats plain integers with Indian digit grouping (1,00,000).
var enIN = message.NewPrinter(language.MustParse("en-IN"))

// FormatNumber renders a value using Indian-system abbreviations:
// crores (Cr) above 1e7, lakhs (L) above 1e5, thousands (K) above 1e3.
// NaN renders as "--".
func FormatNumber(v float64) string {
	if math.IsNaN(v) {
		return "--"
	}
	switch {
	case v >= 1e7:
		return fmt.Sprintf("%.2f Cr", v/1e7)
	case v >= 1e5:
		return fmt.Sprintf("%.2f L", v/1e5)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return enIN.Sprintf("%d", int64(math.Round(v)))
	}
}

// FormatCurrency renders a rupee amount with Indian-system abbreviations.
func FormatCurrency(v float64) string {
	return "₹" + FormatNumber(v)
}

// FormatCrore renders a monetary amount in crores with two decimals, the
// fixed unit used by the fiscal-risk metric card and map popups.
func FormatCrore(v float64) string {
	return fmt.Sprintf("₹%.2f Cr", v/1e7)
}

// FormatPercent renders a [0,1] ratio as a percentage with one decimal.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}
