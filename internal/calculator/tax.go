package calculator

import (
	"fmt"

	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/tax"
)

var slabColumns = []Column{
	{Name: "From", Unit: UnitCurrency},
	{Name: "Rate", Unit: UnitPercent},
	{Name: "Tax On Lower Slabs", Unit: UnitCurrency},
}

func calcIncomeTax(calc config.Calculation) Result {
	newRegime := calc.Regime != tax.RegimeOld
	r := tax.IncomeTaxWithDeductions(calc.Amount, calc.Deductions, newRegime)
	if r.GrossIncome <= 0 {
		return invalid("income must be positive and deductions must not be negative")
	}

	slabs := tax.Slabs(newRegime)
	table := Table{Title: fmt.Sprintf("Slabs (%s regime)", r.Regime), Columns: slabColumns, Rows: make([]Row, 0, len(slabs))}
	for _, slab := range slabs {
		table.Rows = append(table.Rows, Row{
			Label:  slab.Label,
			Values: []float64{slab.Lower, slab.RatePercent, slab.BaseTax},
		})
	}

	return Result{
		Valid: true,
		Summary: []Field{
			text("Regime", r.Regime),
			money("Gross Income", r.GrossIncome),
			money("Deductions", r.Deductions),
			money("Taxable Income", r.TaxableIncome),
			text("Slab", r.SlabLabel),
			money("Income Tax", r.TaxBeforeCess),
			money("Cess", r.Cess),
			money("Total Tax", r.TaxPayable),
			percent("Effective Rate", r.EffectiveRatePercent),
			money("Net Income", r.NetIncome),
		},
		Words:  amountWords(r.TaxPayable),
		Tables: []Table{table},
		Detail: r,
	}
}

const invalidRateMessage = "amount must not be negative and the rate must be between 0 and 100"

func calcGST(calc config.Calculation) Result {
	if calc.Amount < 0 || calc.Rate < 0 || calc.Rate > 100 {
		return invalid(invalidRateMessage)
	}
	var r tax.GSTResult
	if calc.Inclusive {
		r = tax.GSTFromTotal(calc.Amount, calc.Rate, calc.InterState)
	} else {
		r = tax.GSTFromBase(calc.Amount, calc.Rate, calc.InterState)
	}

	summary := []Field{
		money("Base Amount", r.BaseAmount),
		percent("GST Rate", r.RatePercent),
		money("GST", r.TaxAmount),
	}
	if r.InterState {
		summary = append(summary, money("IGST", r.IGST))
	} else {
		summary = append(summary, money("CGST", r.CGST), money("SGST", r.SGST))
	}
	summary = append(summary, money("Total Amount", r.TotalAmount))

	return Result{Valid: true, Summary: summary, Words: amountWords(r.TotalAmount), Detail: r}
}

func calcVAT(calc config.Calculation) Result {
	if calc.Amount < 0 || calc.Rate < 0 || calc.Rate > 100 {
		return invalid(invalidRateMessage)
	}
	var r tax.VATResult
	if calc.Inclusive {
		r = tax.VATFromTotal(calc.Amount, calc.Rate)
	} else {
		r = tax.VATFromBase(calc.Amount, calc.Rate)
	}
	return Result{
		Valid: true,
		Summary: []Field{
			money("Base Amount", r.BaseAmount),
			percent("VAT Rate", r.RatePercent),
			money("VAT", r.TaxAmount),
			money("Total Amount", r.TotalAmount),
		},
		Words:  amountWords(r.TotalAmount),
		Detail: r,
	}
}

func calcGratuity(calc config.Calculation) Result {
	var r tax.GratuityResult
	if calc.ServiceMonths > 0 {
		r = tax.GratuityForService(calc.Amount, int(calc.Years), calc.ServiceMonths)
	} else {
		r = tax.Gratuity(calc.Amount, calc.Years)
	}
	if r.MonthlySalary <= 0 {
		return invalid("salary and years of service must be positive")
	}

	result := Result{
		Valid: true,
		Summary: []Field{
			money("Monthly Salary", r.MonthlySalary),
			years("Service", r.ServiceYears),
			money("Gratuity", r.Amount),
		},
		Words:  amountWords(r.Amount),
		Detail: r,
	}
	switch {
	case r.Capped:
		result.Message = "gratuity is capped at the statutory limit"
	case !r.MeetsMinimumService:
		result.Message = fmt.Sprintf("less than %d years of service, gratuity is payable only on death or disablement", tax.MinimumGratuityService)
	}
	return result
}

func calcAPY(calc config.Calculation) Result {
	r := tax.APY(calc.Age, calc.PensionAmount)
	if !r.IsValid {
		return invalid(r.ErrorMessage)
	}
	return Result{
		Valid: true,
		Summary: []Field{
			count("Entry Age", r.EntryAge),
			money("Monthly Pension", float64(r.PensionAmount)),
			money("Monthly Contribution", r.MonthlyContribution),
			years("Years To Retirement", float64(r.YearsToRetirement)),
			money("Total Contribution", r.TotalContribution),
			money("Corpus Returned To Nominee", r.CorpusReturnToNominee),
		},
		Detail: r,
	}
}
