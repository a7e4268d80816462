package growth

import (
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// RecurringDeposit projects a fixed monthly deposit compounded quarterly.
// Each deposit earns interest from the start of the quarter it falls in, so
// the maturity is summed deposit by deposit rather than taken from a closed
// form annuity. The quarter count rounds tenureMonths up to whole quarters.
func RecurringDeposit(monthlyDeposit, annualRatePercent float64, tenureMonths int) Projection {
	if !validInputs(monthlyDeposit, annualRatePercent, float64(tenureMonths)) {
		return Projection{}
	}
	quarterlyRate := annualRatePercent / constants.QuarterlyRateDivisor
	totalQuarters := (tenureMonths + 2) / constants.MonthsPerQuarter

	maturity := 0.0
	for month := 1; month <= tenureMonths; month++ {
		quarter := (month-1)/constants.MonthsPerQuarter + 1
		quartersRemaining := totalQuarters - quarter + 1
		maturity += monthlyDeposit * growthFactor(quarterlyRate, float64(quartersRemaining))
	}
	return depositProjection(monthlyDeposit, monthlyDeposit*float64(tenureMonths), maturity)
}

// SIP projects a monthly systematic investment with each instalment invested
// at the start of its month.
func SIP(monthlyInvestment, expectedReturnPercent float64, years int) Projection {
	if !validInputs(monthlyInvestment, expectedReturnPercent, float64(years)) {
		return Projection{}
	}
	months := years * constants.MonthsPerYear
	maturity := annuityDue(monthlyInvestment, periodicRate(expectedReturnPercent, constants.MonthsPerYear), months)
	return depositProjection(monthlyInvestment, monthlyInvestment*float64(months), maturity)
}

// SIPYearly breaks a SIP down year by year by compounding the running value
// one month at a time.
func SIPYearly(monthlyInvestment, expectedReturnPercent float64, years int) []YearRow {
	rows, _ := stepUpSchedule(monthlyInvestment, expectedReturnPercent, years, 0)
	return rows
}

// StepUpSIP projects a SIP whose monthly instalment rises by stepUpPercent at
// the start of every year after the first.
func StepUpSIP(monthlyInvestment, expectedReturnPercent float64, years int, stepUpPercent float64) (Projection, []YearRow) {
	if stepUpPercent < 0 || !mathutil.IsFinite(stepUpPercent) {
		return Projection{}, []YearRow{}
	}
	rows, maturity := stepUpSchedule(monthlyInvestment, expectedReturnPercent, years, stepUpPercent)
	if len(rows) == 0 {
		return Projection{}, rows
	}
	invested := 0.0
	instalment := monthlyInvestment
	for year := 1; year <= years; year++ {
		invested += instalment * constants.MonthsPerYear
		instalment += mathutil.ApplyPercentage(instalment, stepUpPercent)
	}
	return depositProjection(monthlyInvestment, invested, maturity), rows
}

func stepUpSchedule(monthlyInvestment, expectedReturnPercent float64, years int, stepUpPercent float64) ([]YearRow, float64) {
	if !validInputs(monthlyInvestment, expectedReturnPercent, float64(years)) {
		return []YearRow{}, 0
	}
	rate := periodicRate(expectedReturnPercent, constants.MonthsPerYear)

	rows := make([]YearRow, 0, years)
	value, invested := 0.0, 0.0
	instalment := monthlyInvestment
	for year := 1; year <= years; year++ {
		opening := value
		for month := 0; month < constants.MonthsPerYear; month++ {
			value = (value + instalment) * (1 + rate)
		}
		added := instalment * constants.MonthsPerYear
		invested += added
		rows = append(rows, yearRow(year, invested, opening, value, added))
		instalment += mathutil.ApplyPercentage(instalment, stepUpPercent)
	}
	return rows, value
}

// PPF projects a Public Provident Fund account with one deposit at the start
// of every year compounded yearly.
func PPF(yearlyDeposit, annualRatePercent float64, years int) Projection {
	if !validInputs(yearlyDeposit, annualRatePercent, float64(years)) {
		return Projection{}
	}
	maturity := annuityDue(yearlyDeposit, periodicRate(annualRatePercent, 1), years)
	return depositProjection(yearlyDeposit, yearlyDeposit*float64(years), maturity)
}

// PPFYearly breaks a PPF account down year by year.
func PPFYearly(yearlyDeposit, annualRatePercent float64, years int) []YearRow {
	if !validInputs(yearlyDeposit, annualRatePercent, float64(years)) {
		return []YearRow{}
	}
	rate := periodicRate(annualRatePercent, 1)

	rows := make([]YearRow, 0, years)
	balance := 0.0
	for year := 1; year <= years; year++ {
		opening := balance
		balance = (balance + yearlyDeposit) * (1 + rate)
		rows = append(rows, yearRow(year, yearlyDeposit*float64(year), opening, balance, yearlyDeposit))
	}
	return rows
}
