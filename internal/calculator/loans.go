package calculator

import (
	"fmt"

	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/datetime"
	"github.com/iwvelando/finance-calculator/pkg/loans"
	"github.com/iwvelando/finance-calculator/pkg/words"
)

const invalidLoanMessage = "principal and tenure must be positive and the rate must not be negative"

var scheduleColumns = []Column{
	{Name: "Opening Balance", Unit: UnitCurrency},
	{Name: "EMI", Unit: UnitCurrency},
	{Name: "Principal", Unit: UnitCurrency},
	{Name: "Interest", Unit: UnitCurrency},
	{Name: "Closing Balance", Unit: UnitCurrency},
}

var yearlyColumns = []Column{
	{Name: "Principal Paid", Unit: UnitCurrency},
	{Name: "Interest Paid", Unit: UnitCurrency},
	{Name: "Total Paid", Unit: UnitCurrency},
	{Name: "Remaining Balance", Unit: UnitCurrency},
}

func loanTerms(calc config.Calculation) loans.LoanTerms {
	return loans.LoanTerms{Principal: calc.Principal, AnnualRatePercent: calc.Rate, TenureMonths: calc.TenureMonths}
}

func calcEMI(calc config.Calculation) Result {
	if !loanTerms(calc).Valid() {
		return invalid(invalidLoanMessage)
	}
	r := loans.CalculateEMI(calc.Principal, calc.Rate, calc.TenureMonths)
	return Result{
		Valid: true,
		Summary: []Field{
			money("Loan Amount", calc.Principal),
			percent("Interest Rate", calc.Rate),
			months("Tenure", calc.TenureMonths),
			money("Monthly EMI", r.EMI),
			money("Total Interest", r.TotalInterest),
			money("Total Amount", r.TotalAmount),
		},
		Words:  words.Amount(r.EMI),
		Detail: r,
	}
}

type amortizationDetail struct {
	Schedule loans.AmortizationSchedule `json:"schedule"`
	Yearly   []loans.YearSummary        `json:"yearly"`
}

func calcAmortization(calc config.Calculation) Result {
	if !loanTerms(calc).Valid() {
		return invalid(invalidLoanMessage)
	}
	schedule := loans.BuildSchedule(calc.Principal, calc.Rate, calc.TenureMonths)
	yearly := loans.YearlySummary(schedule)

	result := Result{
		Valid: true,
		Summary: []Field{
			money("Loan Amount", calc.Principal),
			percent("Interest Rate", calc.Rate),
			months("Tenure", calc.TenureMonths),
			money("Monthly EMI", schedule.EMI),
			money("Total Interest", schedule.TotalInterest),
			money("Total Amount", schedule.TotalAmount),
		},
		Detail: amortizationDetail{Schedule: schedule, Yearly: yearly},
	}

	var labels []string
	if calc.StartDate != "" {
		var err error
		labels, err = datetime.MonthLabels(calc.StartDate, len(schedule.Entries))
		if err != nil {
			labels = nil
			result.Message = fmt.Sprintf("start date ignored: %v", err)
		}
	}

	monthly := Table{Title: "Monthly Schedule", Columns: scheduleColumns, Rows: make([]Row, 0, len(schedule.Entries))}
	for i, entry := range schedule.Entries {
		label := fmt.Sprintf("%d", entry.Period)
		if labels != nil {
			label = labels[i]
		}
		monthly.Rows = append(monthly.Rows, Row{
			Label:  label,
			Values: []float64{entry.BeginningBalance, entry.EMI, entry.PrincipalPortion, entry.InterestPortion, entry.EndingBalance},
		})
	}

	annual := Table{Title: "Yearly Summary", Columns: yearlyColumns, Rows: make([]Row, 0, len(yearly))}
	for _, year := range yearly {
		annual.Rows = append(annual.Rows, Row{
			Label:  fmt.Sprintf("Year %d", year.Year),
			Values: []float64{year.PrincipalPaid, year.InterestPaid, year.TotalPaid, year.RemainingBalance},
		})
	}

	result.Tables = []Table{annual, monthly}
	return result
}

func prepaymentSummary(calc config.Calculation, r loans.PrepaymentResult) []Field {
	return []Field{
		money("Original EMI", r.OriginalEMI),
		months("Prepayment Month", calc.PrepaymentMonth),
		money("Balance Before Prepayment", r.BalanceAtPrepayment),
		money("Prepayment", calc.PrepaymentAmount),
		money("Balance After Prepayment", r.BalanceAfterPrepay),
		months("Remaining Months", r.RemainingMonths),
	}
}

const invalidPrepaymentMessage = "prepayment must be positive and fall within the loan tenure"

func calcPrepaymentEMI(calc config.Calculation) Result {
	r := loans.PrepayReduceEMI(calc.Principal, calc.Rate, calc.TenureMonths, calc.PrepaymentAmount, calc.PrepaymentMonth)
	if !r.IsValid {
		return invalid(invalidPrepaymentMessage)
	}
	result := Result{Valid: true, Summary: prepaymentSummary(calc, r), Detail: r}
	if r.Settled {
		result.Message = "the prepayment settles the loan"
	} else if r.NewEMI != nil {
		result.Summary = append(result.Summary, money("New EMI", *r.NewEMI))
	}
	result.Summary = append(result.Summary,
		money("Original Total Interest", r.OriginalTotalInterest),
		money("New Total Interest", r.NewTotalInterest),
		money("Interest Saved", r.InterestSaved),
	)
	return result
}

func calcPrepaymentTenure(calc config.Calculation) Result {
	r := loans.PrepayReduceTenure(calc.Principal, calc.Rate, calc.TenureMonths, calc.PrepaymentAmount, calc.PrepaymentMonth)
	if !r.IsValid {
		return invalid(invalidPrepaymentMessage)
	}
	result := Result{Valid: true, Summary: prepaymentSummary(calc, r), Detail: r}
	switch {
	case r.Settled:
		result.Message = "the prepayment settles the loan"
	case r.NewTenureMonths == nil:
		result.Message = "the EMI no longer covers the monthly interest, tenure cannot be reduced"
	default:
		result.Summary = append(result.Summary,
			months("New Tenure", *r.NewTenureMonths),
			months("Tenure Reduction", r.TenureReduction),
		)
	}
	result.Summary = append(result.Summary,
		money("Original Total Interest", r.OriginalTotalInterest),
		money("New Total Interest", r.NewTotalInterest),
		money("Interest Saved", r.InterestSaved),
	)
	return result
}

func calcMoratorium(calc config.Calculation) Result {
	r := loans.Moratorium(calc.Principal, calc.Rate, calc.TenureMonths, calc.MoratoriumMonths)
	if !r.IsValid {
		return invalid("principal and tenure must be positive and neither the rate nor the moratorium may be negative")
	}
	result := Result{
		Valid: true,
		Summary: []Field{
			money("Original EMI", r.OriginalEMI),
			months("Moratorium", calc.MoratoriumMonths),
			money("Interest Accrued", r.InterestAccrued),
			money("Principal After Moratorium", r.PrincipalAfterMoratorium),
			money("New EMI", r.NewEMI),
		},
		Detail: r,
	}
	if r.ExtendedTenureMonths != nil {
		result.Summary = append(result.Summary, months("Tenure At Original EMI", *r.ExtendedTenureMonths))
	}
	result.Summary = append(result.Summary,
		money("Original Total Interest", r.OriginalTotalInterest),
		money("New Total Interest", r.NewTotalInterest),
		money("Additional Interest", r.AdditionalInterest),
	)
	return result
}

func calcRateChange(calc config.Calculation) Result {
	r := loans.RateChange(calc.Principal, calc.Rate, calc.NewRate, calc.TenureMonths, calc.AfterMonths)
	if !r.IsValid {
		return invalid("rates must not be negative and the change must fall within the loan tenure")
	}
	result := Result{
		Valid: true,
		Summary: []Field{
			percent("Original Rate", calc.Rate),
			percent("New Rate", calc.NewRate),
			money("Outstanding Balance", r.OutstandingBalance),
			months("Remaining Months", r.RemainingMonths),
			money("Original EMI", r.OriginalEMI),
			money("New EMI", r.NewEMI),
			money("EMI Difference", r.EMIDifference),
		},
		Detail: r,
	}
	if r.NewTenureMonths != nil {
		result.Summary = append(result.Summary, months("Tenure At Original EMI", *r.NewTenureMonths))
	}
	result.Summary = append(result.Summary,
		money("Original Total Interest", r.OriginalTotalInterest),
		money("New Total Interest", r.NewTotalInterest),
		money("Interest Difference", r.InterestDifference),
	)
	return result
}

func calcEligibility(calc config.Calculation) Result {
	r := loans.Eligibility(calc.MonthlyIncome, calc.ExistingEMI, calc.Rate, calc.TenureMonths, calc.FOIRPercent)
	if !r.IsValid {
		return invalid("income must cover existing EMIs within the allowed obligation ratio")
	}
	return Result{
		Valid: true,
		Summary: []Field{
			money("Monthly Income", calc.MonthlyIncome),
			money("Existing EMIs", calc.ExistingEMI),
			percent("FOIR", r.FOIRPercent),
			money("Eligible EMI", r.EligibleEMI),
			money("Maximum Loan", r.MaxLoanAmount),
			money("Total Interest", r.TotalInterest),
			money("Total Payment", r.TotalPayment),
		},
		Words:  words.Amount(r.MaxLoanAmount),
		Detail: r,
	}
}
