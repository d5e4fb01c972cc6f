// Package money holds the currency, receipt-number and phone helpers shared
// by handlers, exports and reminder templates.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount as Indian rupees with lakh/crore digit grouping
// and no paise, e.g. ₹1,00,000.
func Format(amount float64) string {
	return printer.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
