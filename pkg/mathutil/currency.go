// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round2 rounds a value half away from zero to two decimals, i.e. to represent
// real currency. The value is first taken at its shortest decimal form so that
// inputs like 1.005 round to 1.01 rather than drifting on their binary
// representation. Non-finite values are returned unchanged.
func Round2(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	rounded := decimal.NewFromFloat(val).Round(constants.DecimalPlaces).InexactFloat64()
	if rounded == 0 {
		// normalise negative zero
		return 0
	}
	return rounded
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// IsPositive reports whether val is more than a paisa above zero.
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// MonthlyRate converts an annual percentage rate into a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / constants.MonthlyRateDivisor
}
