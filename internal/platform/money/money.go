// Package money renders prices the way the store displays them.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Norwegian)

// FormatNOK renders an amount as whole kroner with Norwegian digit
// grouping, e.g. "2 499 NOK".
func FormatNOK(amount float64) string {
	return printer.Sprintf("%d NOK", int64(math.Round(amount)))
}
