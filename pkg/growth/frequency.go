// Package growth projects the maturity of fixed deposits, recurring deposits,
// SIPs, PPF, lump sums, EPF balances and inflation-adjusted costs.
package growth

import "strings"

// Frequency is the number of compounding periods per year.
type Frequency int

// Supported compounding frequencies.
const (
	Yearly     Frequency = 1
	HalfYearly Frequency = 2
	Quarterly  Frequency = 4
	Monthly    Frequency = 12
)

// DefaultFrequency is used by deposit products when no frequency is given.
const DefaultFrequency = Quarterly

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case Yearly, HalfYearly, Quarterly, Monthly:
		return true
	}
	return false
}

func (f Frequency) String() string {
	switch f {
	case Yearly:
		return "yearly"
	case HalfYearly:
		return "half-yearly"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	}
	return "unknown"
}

// resolve maps the zero value to the default and rejects anything else that
// is not a supported frequency.
func (f Frequency) resolve() (Frequency, bool) {
	if f == 0 {
		return DefaultFrequency, true
	}
	return f, f.Valid()
}

// ParseFrequency converts a frequency name into a Frequency. An empty name
// yields the default.
func ParseFrequency(name string) (Frequency, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultFrequency, true
	case "yearly", "annually", "annual":
		return Yearly, true
	case "half-yearly", "halfyearly", "semi-annually", "semiannual":
		return HalfYearly, true
	case "quarterly":
		return Quarterly, true
	case "monthly":
		return Monthly, true
	}
	return 0, false
}
