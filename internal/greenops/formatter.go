package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Dutch locale: period thousand separators, comma decimals.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.Dutch)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18.248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given precision and separators.
// Example: FormatFloat(1234.567, 1) returns "1.234,6".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}
	return printer.Sprintf("%.*f", precision, f)
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold use comma-separated format; values at
// or above it use "~X,X miljoen", and beyond BillionThreshold "~X,X miljard".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%s miljard", FormatFloat(n/BillionThreshold, 1))
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%s miljoen", FormatFloat(n/LargeNumberThreshold, 1))
	}
	return FormatNumber(int64(math.Round(n)))
}
