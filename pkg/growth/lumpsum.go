package growth

import (
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// FixedDeposit projects principal held for tenureMonths at annualRatePercent
// compounded freq times a year. A zero freq means quarterly.
func FixedDeposit(principal, annualRatePercent float64, tenureMonths int, freq Frequency) Projection {
	freq, ok := freq.resolve()
	if !ok || !validInputs(principal, annualRatePercent, float64(tenureMonths)) {
		return Projection{}
	}
	n := int(freq)
	years := float64(tenureMonths) / constants.MonthsPerYear
	return lumpSumProjection(principal, principal*growthFactor(periodicRate(annualRatePercent, n), float64(n)*years))
}

// FixedDepositYearly breaks a fixed deposit down year by year, compounding the
// running balance. A trailing partial year gets its own row.
func FixedDepositYearly(principal, annualRatePercent float64, tenureMonths int, freq Frequency) []YearRow {
	freq, ok := freq.resolve()
	if !ok || !validInputs(principal, annualRatePercent, float64(tenureMonths)) {
		return []YearRow{}
	}
	n := int(freq)
	rate := periodicRate(annualRatePercent, n)

	rows := make([]YearRow, 0, (tenureMonths+constants.MonthsPerYear-1)/constants.MonthsPerYear)
	balance := principal
	for year, remaining := 1, tenureMonths; remaining > 0; year++ {
		months := remaining
		if months > constants.MonthsPerYear {
			months = constants.MonthsPerYear
		}
		opening := balance
		balance *= growthFactor(rate, float64(n)*float64(months)/constants.MonthsPerYear)
		rows = append(rows, yearRow(year, principal, opening, balance, 0))
		remaining -= months
	}
	return rows
}

// CompoundInterest projects principal over a possibly fractional number of
// years compounded freq times a year.
func CompoundInterest(principal, annualRatePercent, years float64, freq Frequency) Projection {
	freq, ok := freq.resolve()
	if !ok || !validInputs(principal, annualRatePercent, years) {
		return Projection{}
	}
	n := int(freq)
	return lumpSumProjection(principal, principal*growthFactor(periodicRate(annualRatePercent, n), float64(n)*years))
}

// SimpleInterest projects principal earning interest only on itself.
func SimpleInterest(principal, annualRatePercent, years float64) Projection {
	if !validInputs(principal, annualRatePercent, years) {
		return Projection{}
	}
	interest := mathutil.ApplyPercentage(principal, annualRatePercent) * years
	return lumpSumProjection(principal, principal+interest)
}

// Lumpsum projects a one-time investment compounded yearly.
func Lumpsum(principal, annualRatePercent float64, years int) Projection {
	if !validInputs(principal, annualRatePercent, float64(years)) {
		return Projection{}
	}
	return lumpSumProjection(principal, principal*growthFactor(periodicRate(annualRatePercent, 1), float64(years)))
}

// LumpsumYearly breaks a lump-sum investment down year by year.
func LumpsumYearly(principal, annualRatePercent float64, years int) []YearRow {
	return FixedDepositYearly(principal, annualRatePercent, years*constants.MonthsPerYear, Yearly)
}
