// Package words spells out numbers and currency amounts in English using the
// Indian numbering system (thousand, lakh, crore, arab).
package words

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Default currency unit names.
const (
	Rupees = "Rupees"
	Paise  = "Paise"
)

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// scales are the Indian grouping units, largest first.
var scales = []struct {
	value uint64
	name  string
}{
	{1000000000, "Arab"},
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

// Convert spells out n, e.g. 1234567 is "Twelve Lakh Thirty Four Thousand
// Five Hundred Sixty Seven".
func Convert(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + spell(uint64(-n))
	}
	return spell(uint64(n))
}

func spell(n uint64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return ones[n]
	case n < 100:
		return join(tens[n/10], ones[n%10])
	}
	for _, scale := range scales {
		if n >= scale.value {
			return join(spell(n/scale.value)+" "+scale.name, spell(n%scale.value))
		}
	}
	return ""
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}

// Amount narrates a rupee amount, e.g. 1500.50 is "One Thousand Five Hundred
// Rupees and Fifty Paise Only". The amount is rounded to the paisa first and
// the paise clause is left out when it is zero.
func Amount(amount float64) string {
	return AmountIn(amount, Rupees, Paise)
}

// AmountIn narrates amount using the given major and minor unit names.
// Non-finite amounts and amounts too large to count yield "".
func AmountIn(amount float64, major, minor string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) >= math.MaxInt64/100 {
		return ""
	}

	value := decimal.NewFromFloat(amount).Round(2)
	var b strings.Builder
	if value.IsNegative() {
		b.WriteString("Minus ")
		value = value.Abs()
	}

	whole := value.IntPart()
	fraction := value.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	b.WriteString(Convert(whole))
	b.WriteString(" ")
	b.WriteString(major)
	if fraction > 0 {
		b.WriteString(" and ")
		b.WriteString(Convert(fraction))
		b.WriteString(" ")
		b.WriteString(minor)
	}
	b.WriteString(" Only")
	return b.String()
}
