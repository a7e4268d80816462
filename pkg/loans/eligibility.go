package loans

import (
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// EligibilityResult is the largest loan a borrower's income can service.
type EligibilityResult struct {
	IsValid       bool    `json:"isValid"`
	FOIRPercent   float64 `json:"foirPercent"`
	EligibleEMI   float64 `json:"eligibleEmi"`
	MaxLoanAmount float64 `json:"maxLoanAmount"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}

// Eligibility sizes a loan from the share of monthlyIncome allowed for fixed
// obligations (foirPercent, defaulting when not positive) less the EMIs the
// borrower already pays.
func Eligibility(monthlyIncome, existingEMI, annualRatePercent float64, tenureMonths int, foirPercent float64) EligibilityResult {
	if foirPercent <= 0 || foirPercent > constants.PercentageMultiplier {
		foirPercent = constants.DefaultFOIRPercent
	}
	if !mathutil.IsFinite(monthlyIncome) || !mathutil.IsFinite(existingEMI) || monthlyIncome <= 0 ||
		existingEMI < 0 || annualRatePercent < 0 || tenureMonths <= 0 {
		return EligibilityResult{FOIRPercent: foirPercent}
	}

	eligibleEMI := mathutil.Round2(mathutil.ApplyPercentage(monthlyIncome, foirPercent) - existingEMI)
	if !mathutil.IsPositive(eligibleEMI) {
		return EligibilityResult{FOIRPercent: foirPercent}
	}

	maxLoan := mathutil.Round2(presentValue(eligibleEMI, mathutil.MonthlyRate(annualRatePercent), tenureMonths))
	total := ComputeTotalAmount(eligibleEMI, tenureMonths)
	return EligibilityResult{
		IsValid:       true,
		FOIRPercent:   foirPercent,
		EligibleEMI:   eligibleEMI,
		MaxLoanAmount: maxLoan,
		TotalPayment:  total,
		TotalInterest: ComputeTotalInterest(maxLoan, total),
	}
}
