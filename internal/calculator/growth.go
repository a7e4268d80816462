package calculator

import (
	"fmt"

	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/growth"
)

const invalidGrowthMessage = "amount, rate and term must all be positive"

var growthColumns = []Column{
	{Name: "Invested", Unit: UnitCurrency},
	{Name: "Opening Balance", Unit: UnitCurrency},
	{Name: "Interest", Unit: UnitCurrency},
	{Name: "Closing Balance", Unit: UnitCurrency},
}

func growthTable(rows []growth.YearRow) Table {
	table := Table{Title: "Yearly Growth", Columns: growthColumns, Rows: make([]Row, 0, len(rows))}
	for _, row := range rows {
		table.Rows = append(table.Rows, Row{
			Label:  fmt.Sprintf("Year %d", row.Year),
			Values: []float64{row.Invested, row.OpeningBalance, row.Interest, row.ClosingBalance},
		})
	}
	return table
}

// lumpSumResult reports a one-off investment. Engines return a zero
// projection for input they reject.
func lumpSumResult(calc config.Calculation, p growth.Projection, term Field, rows []growth.YearRow) Result {
	if p.MaturityAmount <= 0 {
		return invalid(invalidGrowthMessage)
	}
	result := Result{
		Valid: true,
		Summary: []Field{
			money("Principal", p.Contribution),
			percent("Interest Rate", calc.Rate),
			term,
			money("Maturity Amount", p.MaturityAmount),
			money("Interest Earned", p.Returns),
		},
		Words:  amountWords(p.MaturityAmount),
		Detail: p,
	}
	if len(rows) > 0 {
		result.Tables = []Table{growthTable(rows)}
	}
	return result
}

// depositResult reports a product funded by repeated deposits.
func depositResult(calc config.Calculation, label string, p growth.Projection, term Field, rows []growth.YearRow) Result {
	if p.MaturityAmount <= 0 {
		return invalid(invalidGrowthMessage)
	}
	result := Result{
		Valid: true,
		Summary: []Field{
			money(label, p.Contribution),
			percent("Interest Rate", calc.Rate),
			term,
			money("Total Invested", p.TotalContributed),
			money("Maturity Amount", p.MaturityAmount),
			money("Returns", p.Returns),
		},
		Words:  amountWords(p.MaturityAmount),
		Detail: p,
	}
	if len(rows) > 0 {
		result.Tables = []Table{growthTable(rows)}
	}
	return result
}

func frequency(calc config.Calculation) (growth.Frequency, bool) {
	return growth.ParseFrequency(calc.Frequency)
}

func calcFixedDeposit(calc config.Calculation) Result {
	freq, ok := frequency(calc)
	if !ok {
		return invalid(fmt.Sprintf("unknown compounding frequency %q", calc.Frequency))
	}
	p := growth.FixedDeposit(calc.Principal, calc.Rate, calc.TenureMonths, freq)
	rows := growth.FixedDepositYearly(calc.Principal, calc.Rate, calc.TenureMonths, freq)
	result := lumpSumResult(calc, p, months("Tenure", calc.TenureMonths), rows)
	if result.Valid {
		result.Summary = append(result.Summary, text("Compounding", freq.String()))
	}
	return result
}

func calcRecurringDeposit(calc config.Calculation) Result {
	p := growth.RecurringDeposit(calc.Amount, calc.Rate, calc.TenureMonths)
	return depositResult(calc, "Monthly Deposit", p, months("Tenure", calc.TenureMonths), nil)
}

func calcSIP(calc config.Calculation) Result {
	n := int(calc.Years)
	p := growth.SIP(calc.Amount, calc.Rate, n)
	return depositResult(calc, "Monthly Investment", p, years("Period", float64(n)), growth.SIPYearly(calc.Amount, calc.Rate, n))
}

func calcStepUpSIP(calc config.Calculation) Result {
	n := int(calc.Years)
	p, rows := growth.StepUpSIP(calc.Amount, calc.Rate, n, calc.StepUpPercent)
	result := depositResult(calc, "Starting Monthly Investment", p, years("Period", float64(n)), rows)
	if result.Valid {
		result.Summary = append(result.Summary, percent("Annual Step-Up", calc.StepUpPercent))
	}
	return result
}

func calcPPF(calc config.Calculation) Result {
	n := int(calc.Years)
	p := growth.PPF(calc.Amount, calc.Rate, n)
	return depositResult(calc, "Yearly Deposit", p, years("Period", float64(n)), growth.PPFYearly(calc.Amount, calc.Rate, n))
}

func calcLumpsum(calc config.Calculation) Result {
	n := int(calc.Years)
	p := growth.Lumpsum(calc.Principal, calc.Rate, n)
	return lumpSumResult(calc, p, years("Period", float64(n)), growth.LumpsumYearly(calc.Principal, calc.Rate, n))
}

func calcSimpleInterest(calc config.Calculation) Result {
	p := growth.SimpleInterest(calc.Principal, calc.Rate, calc.Years)
	return lumpSumResult(calc, p, years("Period", calc.Years), nil)
}

func calcCompoundInterest(calc config.Calculation) Result {
	freq, ok := frequency(calc)
	if !ok {
		return invalid(fmt.Sprintf("unknown compounding frequency %q", calc.Frequency))
	}
	p := growth.CompoundInterest(calc.Principal, calc.Rate, calc.Years, freq)
	result := lumpSumResult(calc, p, years("Period", calc.Years), nil)
	if result.Valid {
		result.Summary = append(result.Summary, text("Compounding", freq.String()))
	}
	return result
}

var epfColumns = []Column{
	{Name: "Monthly Salary", Unit: UnitCurrency},
	{Name: "Employee Share", Unit: UnitCurrency},
	{Name: "Employer Share", Unit: UnitCurrency},
	{Name: "Interest", Unit: UnitCurrency},
	{Name: "Closing Balance", Unit: UnitCurrency},
}

func calcEPF(calc config.Calculation) Result {
	r := growth.EPF(growth.EPFInput{
		MonthlySalary:               calc.Amount,
		CurrentAge:                  calc.Age,
		RetirementAge:               calc.RetirementAge,
		EmployeeContributionPercent: calc.EmployeeContributionPercent,
		EmployerContributionPercent: calc.EmployerContributionPercent,
		AnnualIncreasePercent:       calc.AnnualIncreasePercent,
		AnnualRatePercent:           calc.Rate,
		CurrentBalance:              calc.CurrentBalance,
	})
	if !r.IsValid {
		return invalid("salary and age must be positive and retirement must be after the current age")
	}

	table := Table{Title: "Yearly Balance", Columns: epfColumns, Rows: make([]Row, 0, len(r.Yearly))}
	for _, year := range r.Yearly {
		table.Rows = append(table.Rows, Row{
			Label:  fmt.Sprintf("Age %d", year.Age),
			Values: []float64{year.MonthlySalary, year.EmployeeContribution, year.EmployerContribution, year.Interest, year.ClosingBalance},
		})
	}

	return Result{
		Valid: true,
		Summary: []Field{
			money("Monthly Salary", calc.Amount),
			percent("Interest Rate", calc.Rate),
			years("Years To Retirement", float64(r.Years)),
			money("Employee Contribution", r.TotalEmployeeContribution),
			money("Employer Contribution", r.TotalEmployerContribution),
			money("Interest Earned", r.TotalInterest),
			money("Maturity Amount", r.MaturityAmount),
		},
		Words:  amountWords(r.MaturityAmount),
		Tables: []Table{table},
		Detail: r,
	}
}

func calcInflation(calc config.Calculation) Result {
	n := int(calc.Years)
	r := growth.Inflation(calc.Amount, calc.Rate, n)
	if r.FutureCost <= 0 {
		return invalid(invalidGrowthMessage)
	}
	return Result{
		Valid: true,
		Summary: []Field{
			money("Current Amount", r.CurrentAmount),
			percent("Inflation Rate", calc.Rate),
			years("Period", float64(n)),
			money("Future Cost", r.FutureCost),
			money("Cost Increase", r.CostIncrease),
			money("Purchasing Power", r.PurchasingPower),
			money("Value Lost", r.ValueLost),
		},
		Detail: r,
	}
}
