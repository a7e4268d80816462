package loans

import (
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// AmortizationEntry holds the values for a given payment period.
type AmortizationEntry struct {
	Period           int     `json:"period"`
	BeginningBalance float64 `json:"beginningBalance"`
	EMI              float64 `json:"emi"`
	PrincipalPortion float64 `json:"principalPortion"`
	InterestPortion  float64 `json:"interestPortion"`
	EndingBalance    float64 `json:"endingBalance"`
}

// AmortizationSchedule is the full month-by-month breakdown of a loan.
// TotalAmount is the sum of the realised per-period EMIs, which differs from
// EMI × tenure by whatever the final period absorbed.
type AmortizationSchedule struct {
	Terms         LoanTerms           `json:"terms"`
	EMI           float64             `json:"emi"`
	TotalAmount   float64             `json:"totalAmount"`
	TotalInterest float64             `json:"totalInterest"`
	Entries       []AmortizationEntry `json:"entries"`
}

// YearSummary rolls up one 12-period window of a schedule.
type YearSummary struct {
	Year             int     `json:"year"`
	PrincipalPaid    float64 `json:"principalPaid"`
	InterestPaid     float64 `json:"interestPaid"`
	TotalPaid        float64 `json:"totalPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// BuildSchedule generates the amortization schedule for a loan. Each period's
// interest and principal are rounded before the balance is reduced. The period
// whose EMI would cover more than the balance, at the latest the final one,
// pays off exactly what remains, so the schedule ends at zero and the principal
// portions sum to the principal. Invalid terms yield an empty schedule.
func BuildSchedule(principal, annualRatePercent float64, tenureMonths int) AmortizationSchedule {
	terms := LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TenureMonths: tenureMonths}
	if !terms.Valid() {
		return AmortizationSchedule{Terms: terms, Entries: []AmortizationEntry{}}
	}

	emi := ComputeEMI(principal, annualRatePercent, tenureMonths)
	rate := mathutil.MonthlyRate(annualRatePercent)

	entries := make([]AmortizationEntry, 0, tenureMonths)
	balance := principal
	totalPaid := 0.0
	for period := 1; period <= tenureMonths; period++ {
		interest := mathutil.Round2(balance * rate)
		payment := emi
		principalPortion := mathutil.Round2(emi - interest)
		if period == tenureMonths || principalPortion >= balance {
			// pay off what is left; later periods carry nothing
			principalPortion = balance
			payment = mathutil.Round2(balance + interest)
		}
		ending := mathutil.Max(0, mathutil.Round2(balance-principalPortion))

		entries = append(entries, AmortizationEntry{
			Period:           period,
			BeginningBalance: balance,
			EMI:              payment,
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			EndingBalance:    ending,
		})
		totalPaid += payment
		balance = ending
	}

	totalAmount := mathutil.Round2(totalPaid)
	return AmortizationSchedule{
		Terms:         terms,
		EMI:           emi,
		TotalAmount:   totalAmount,
		TotalInterest: mathutil.Round2(totalAmount - principal),
		Entries:       entries,
	}
}

// YearlySummary buckets a schedule into consecutive 12-period windows. The
// final window may be shorter when the tenure is not a whole number of years.
func YearlySummary(schedule AmortizationSchedule) []YearSummary {
	summaries := make([]YearSummary, 0, (len(schedule.Entries)+constants.MonthsPerYear-1)/constants.MonthsPerYear)
	for start := 0; start < len(schedule.Entries); start += constants.MonthsPerYear {
		end := start + constants.MonthsPerYear
		if end > len(schedule.Entries) {
			end = len(schedule.Entries)
		}
		window := schedule.Entries[start:end]

		var principalPaid, interestPaid, totalPaid float64
		for _, entry := range window {
			principalPaid += entry.PrincipalPortion
			interestPaid += entry.InterestPortion
			totalPaid += entry.EMI
		}
		summaries = append(summaries, YearSummary{
			Year:             start/constants.MonthsPerYear + 1,
			PrincipalPaid:    mathutil.Round2(principalPaid),
			InterestPaid:     mathutil.Round2(interestPaid),
			TotalPaid:        mathutil.Round2(totalPaid),
			RemainingBalance: window[len(window)-1].EndingBalance,
		})
	}
	return summaries
}
