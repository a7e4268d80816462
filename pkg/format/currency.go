// Package format renders currency amounts for display.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// RupeeSymbol prefixes amounts rendered by Currency.
	RupeeSymbol = "₹"

	// DefaultLocale groups digits in lakhs and crores.
	DefaultLocale = "en-IN"
)

// ParseLocale returns the language tag for locale, or DefaultLocale when
// locale is empty.
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return tag, nil
}

// NewPrinter returns a printer grouping digits the way locale does. An empty
// or unparseable locale falls back to DefaultLocale.
func NewPrinter(locale string) *message.Printer {
	tag, err := ParseLocale(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return message.NewPrinter(tag)
}

// Currency returns a rupee string grouped by p (e.g., "-₹12,34,567.89" for en-IN).
func Currency(p *message.Printer, amount float64) string {
	return signed(p, amount, RupeeSymbol)
}

// WesternCurrency returns an amount grouped in thousands behind symbol (e.g., "-$1,234,567.89").
func WesternCurrency(amount float64, symbol string) string {
	return signed(message.NewPrinter(language.English), amount, symbol)
}

// Percent returns a percentage with two decimals (e.g., "8.50%").
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// signed puts the minus sign ahead of the symbol.
func signed(p *message.Printer, amount float64, symbol string) string {
	formatted := p.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}
