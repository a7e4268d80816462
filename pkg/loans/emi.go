// Package loans provides EMI, amortization and loan adjustment calculations.
package loans

import (
	"math"

	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// LoanTerms holds the inputs shared by every loan calculation.
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TenureMonths      int     `json:"tenureMonths"`
}

// Valid reports whether the terms describe a loan that can be amortized.
// A zero rate is allowed; negative or non-finite values are not.
func (t LoanTerms) Valid() bool {
	return mathutil.IsFinite(t.Principal) && mathutil.IsFinite(t.AnnualRatePercent) &&
		t.Principal > 0 && t.AnnualRatePercent >= 0 && t.TenureMonths > 0
}

// EMIResult holds the equated monthly instalment and the totals it implies.
type EMIResult struct {
	EMI           float64 `json:"emi"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalInterest float64 `json:"totalInterest"`
}

// ComputeEMI returns the rounded monthly instalment that retires principal over
// tenureMonths at annualRatePercent. Invalid input yields 0.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) float64 {
	terms := LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TenureMonths: tenureMonths}
	if !terms.Valid() {
		return 0
	}
	return mathutil.Round2(annuityPayment(principal, mathutil.MonthlyRate(annualRatePercent), tenureMonths))
}

// ComputeTotalAmount returns the total paid over the tenure at a fixed EMI.
func ComputeTotalAmount(emi float64, tenureMonths int) float64 {
	return mathutil.Round2(emi * float64(tenureMonths))
}

// ComputeTotalInterest returns the interest component of totalAmount.
func ComputeTotalInterest(principal, totalAmount float64) float64 {
	return mathutil.Round2(totalAmount - principal)
}

// CalculateEMI bundles the EMI with its total payment and total interest.
func CalculateEMI(principal, annualRatePercent float64, tenureMonths int) EMIResult {
	emi := ComputeEMI(principal, annualRatePercent, tenureMonths)
	if emi == 0 {
		return EMIResult{}
	}
	total := ComputeTotalAmount(emi, tenureMonths)
	return EMIResult{
		EMI:           emi,
		TotalAmount:   total,
		TotalInterest: ComputeTotalInterest(principal, total),
	}
}

// annuityPayment is the unrounded closed-form instalment for a periodic rate.
func annuityPayment(principal, periodicRate float64, periods int) float64 {
	if periodicRate == 0 {
		return principal / float64(periods)
	}
	factor := math.Pow(1+periodicRate, float64(periods))
	return principal * periodicRate * factor / (factor - 1)
}

// presentValue is the principal a payment stream of periods instalments can retire.
func presentValue(payment, periodicRate float64, periods int) float64 {
	if periodicRate == 0 {
		return payment * float64(periods)
	}
	factor := math.Pow(1+periodicRate, float64(periods))
	return payment * (factor - 1) / (periodicRate * factor)
}

// projectBalance is the outstanding balance after paying emi for months periods.
func projectBalance(principal, periodicRate, emi float64, months int) float64 {
	if periodicRate == 0 {
		return principal - emi*float64(months)
	}
	growth := math.Pow(1+periodicRate, float64(months))
	return principal*growth - emi*(growth-1)/periodicRate
}
