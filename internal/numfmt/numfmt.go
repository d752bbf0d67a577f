// Package numfmt renders amounts, currency and percentages for a locale.
// Grouping and separators come from the CLDR data in golang.org/x/text, so
// en-IN groups in lakhs and crores (1,00,000.00) while de-DE uses 100.000,00.
package numfmt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults render rupees with Indian digit grouping
const (
	DefaultLocale         = "en-IN"
	DefaultCurrencySymbol = "₹"
)

// MaxHintFractionDigits bounds the fraction shown by Hint
const MaxHintFractionDigits = 8

// ParseLocale parses a BCP 47 tag such as "en-IN"
func ParseLocale(tag string) (language.Tag, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	return t, nil
}

// Format renders values for display
type Format struct {
	Symbol string
	Locale language.Tag
}

// Default returns the rupee format for en-IN
func Default() Format {
	return Format{Symbol: DefaultCurrencySymbol, Locale: language.MustParse(DefaultLocale)}
}

// ForLocale builds a Format from a locale tag and currency symbol
func ForLocale(tag, symbol string) (Format, error) {
	t, err := ParseLocale(tag)
	if err != nil {
		return Format{}, err
	}
	return Format{Symbol: symbol, Locale: t}, nil
}

func (f Format) sprint(v any, opts ...number.Option) string {
	return message.NewPrinter(f.Locale).Sprint(number.Decimal(v, opts...))
}

// Amount renders d grouped with exactly two decimal places, e.g. "1,41,000.00".
// d is rounded half away from zero before it reaches the printer.
func (f Format) Amount(d decimal.Decimal) string {
	return f.sprint(d.Round(2).InexactFloat64(), number.Scale(2))
}

// Currency renders d as an amount prefixed with the currency symbol
func (f Format) Currency(d decimal.Decimal) string {
	amount := f.Amount(d)
	if strings.HasPrefix(amount, "-") {
		return "-" + f.Symbol + amount[1:]
	}
	return f.Symbol + amount
}

// Percent renders d with two decimal places and a percent sign
func (f Format) Percent(d decimal.Decimal) string {
	return f.Amount(d) + "%"
}

// Hint renders a principal as typed, grouped but without forcing decimals.
// It is used for live helper text under an amount field.
func (f Format) Hint(d decimal.Decimal) string {
	return f.Symbol + " " + f.sprint(d.InexactFloat64(), number.MaxFractionDigits(MaxHintFractionDigits))
}
