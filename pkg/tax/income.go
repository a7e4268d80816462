// Package tax computes Indian income tax, GST and VAT, gratuity and Atal
// Pension Yojana contributions.
package tax

import (
	"math"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// Regime names.
const (
	RegimeNew = "new"
	RegimeOld = "old"
)

// Slab is one income bracket. Income above Lower and up to and including
// Upper is taxed at RatePercent on top of BaseTax, the tax due on everything
// below Lower.
type Slab struct {
	Lower       float64
	Upper       float64
	RatePercent float64
	BaseTax     float64
	Label       string
}

// newRegimeSlabs and oldRegimeSlabs are ordered by ascending Upper and are
// searched first-match-wins.
var newRegimeSlabs = []Slab{
	{Lower: 0, Upper: 300000, RatePercent: 0, BaseTax: 0, Label: "Up to 3,00,000 (Nil)"},
	{Lower: 300000, Upper: 700000, RatePercent: 5, BaseTax: 0, Label: "3,00,001 to 7,00,000 (5%)"},
	{Lower: 700000, Upper: 1000000, RatePercent: 10, BaseTax: 20000, Label: "7,00,001 to 10,00,000 (10%)"},
	{Lower: 1000000, Upper: 1200000, RatePercent: 15, BaseTax: 50000, Label: "10,00,001 to 12,00,000 (15%)"},
	{Lower: 1200000, Upper: 1500000, RatePercent: 20, BaseTax: 80000, Label: "12,00,001 to 15,00,000 (20%)"},
	{Lower: 1500000, Upper: math.Inf(1), RatePercent: 30, BaseTax: 140000, Label: "Above 15,00,000 (30%)"},
}

var oldRegimeSlabs = []Slab{
	{Lower: 0, Upper: 250000, RatePercent: 0, BaseTax: 0, Label: "Up to 2,50,000 (Nil)"},
	{Lower: 250000, Upper: 500000, RatePercent: 5, BaseTax: 0, Label: "2,50,001 to 5,00,000 (5%)"},
	{Lower: 500000, Upper: 1000000, RatePercent: 20, BaseTax: 12500, Label: "5,00,001 to 10,00,000 (20%)"},
	{Lower: 1000000, Upper: math.Inf(1), RatePercent: 30, BaseTax: 112500, Label: "Above 10,00,000 (30%)"},
}

// Slabs returns a copy of the slab table for a regime.
func Slabs(newRegime bool) []Slab {
	table := oldRegimeSlabs
	if newRegime {
		table = newRegimeSlabs
	}
	return append([]Slab(nil), table...)
}

// TaxResult is the income tax due for one year.
type TaxResult struct {
	Regime               string  `json:"regime"`
	GrossIncome          float64 `json:"grossIncome"`
	Deductions           float64 `json:"deductions"`
	TaxableIncome        float64 `json:"taxableIncome"`
	TaxBeforeCess        float64 `json:"taxBeforeCess"`
	Cess                 float64 `json:"cess"`
	TaxPayable           float64 `json:"taxPayable"`
	EffectiveRatePercent float64 `json:"effectiveRatePercent"`
	NetIncome            float64 `json:"netIncome"`
	SlabLabel            string  `json:"slabLabel"`
}

// IncomeTax computes the tax on income under the new or old regime,
// including cess.
func IncomeTax(income float64, newRegime bool) TaxResult {
	return IncomeTaxWithDeductions(income, 0, newRegime)
}

// IncomeTaxWithDeductions computes tax on gross income less deductions. The
// effective rate and net income are measured against the gross income.
func IncomeTaxWithDeductions(grossIncome, deductions float64, newRegime bool) TaxResult {
	regime := RegimeOld
	if newRegime {
		regime = RegimeNew
	}
	if !mathutil.IsFinite(grossIncome) || !mathutil.IsFinite(deductions) || grossIncome <= 0 || deductions < 0 {
		return TaxResult{Regime: regime}
	}

	taxable := mathutil.Max(0, grossIncome-deductions)
	slab := findSlab(Slabs(newRegime), taxable)

	tax := slab.BaseTax + mathutil.ApplyPercentage(taxable-slab.Lower, slab.RatePercent)
	cess := mathutil.ApplyPercentage(tax, constants.CessPercent)
	payable := mathutil.Round2(tax + cess)

	return TaxResult{
		Regime:               regime,
		GrossIncome:          mathutil.Round2(grossIncome),
		Deductions:           mathutil.Round2(deductions),
		TaxableIncome:        mathutil.Round2(taxable),
		TaxBeforeCess:        mathutil.Round2(tax),
		Cess:                 mathutil.Round2(cess),
		TaxPayable:           payable,
		EffectiveRatePercent: mathutil.Round2(mathutil.CalculatePercentage(payable, grossIncome)),
		NetIncome:            mathutil.Round2(grossIncome - payable),
		SlabLabel:            slab.Label,
	}
}

func findSlab(slabs []Slab, income float64) Slab {
	for _, slab := range slabs {
		if income <= slab.Upper {
			return slab
		}
	}
	return slabs[len(slabs)-1]
}
