// Package format renders amounts for display with a currency symbol and
// locale-aware thousands separators. Formatting never affects arithmetic;
// calculators pass raw numbers through untouched.
package format

import (
	"fmt"
	"math"

	"github.com/calchub/calchub/pkg/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Amount returns the amount with the currency symbol and two decimals,
// e.g. "₹ 1,234.56" or "-$ 1,234.56".
func Amount(c currency.Currency, amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	return sign(amount) + c.Symbol + " " + formatted
}

// WholeAmount returns the amount rounded to whole units with the currency
// symbol, e.g. "₹ 12,500".
func WholeAmount(c currency.Currency, amount float64) string {
	formatted := printer.Sprintf("%d", int64(math.Round(math.Abs(amount))))
	return sign(amount) + c.Symbol + " " + formatted
}

// Number returns the bare amount with separators and the given number of
// decimals, no symbol.
func Number(amount float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), amount)
}

func sign(amount float64) string {
	if amount < 0 {
		return "-"
	}
	return ""
}
