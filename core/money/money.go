// Package money formats prices for display. Stored amounts are never rounded
// or otherwise changed by formatting.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbol is appended to every formatted amount.
const Symbol = "₺"

// Formatter renders amounts with the locale's grouping and decimal marks.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for the BCP 47 locale, falling back to
// Turkish when it does not parse.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Turkish
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Number formats v with at most three fraction digits, e.g. 1234.5 → "1.234,5".
func (f *Formatter) Number(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Price formats v followed by the currency symbol, e.g. "12.500₺".
func (f *Formatter) Price(v float64) string {
	return f.Number(v) + Symbol
}

var turkish = NewFormatter("tr")

// Format renders v in the Turkish locale with the currency symbol.
func Format(v float64) string {
	return turkish.Price(v)
}
