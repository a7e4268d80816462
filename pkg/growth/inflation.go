package growth

import "github.com/iwvelando/finance-calculator/pkg/mathutil"

// InflationResult compares today's amount with its future equivalent.
type InflationResult struct {
	CurrentAmount   float64 `json:"currentAmount"`
	FutureCost      float64 `json:"futureCost"`
	PurchasingPower float64 `json:"purchasingPower"`
	CostIncrease    float64 `json:"costIncrease"`
	ValueLost       float64 `json:"valueLost"`
}

// Inflation projects what amount will cost after years of inflation at
// annualRatePercent, and what amount held in cash will then be worth in
// today's money.
func Inflation(amount, annualRatePercent float64, years int) InflationResult {
	if !validInputs(amount, annualRatePercent, float64(years)) {
		return InflationResult{}
	}
	factor := growthFactor(periodicRate(annualRatePercent, 1), float64(years))
	future := mathutil.Round2(amount * factor)
	power := mathutil.Round2(amount / factor)
	return InflationResult{
		CurrentAmount:   mathutil.Round2(amount),
		FutureCost:      future,
		PurchasingPower: power,
		CostIncrease:    mathutil.Round2(future - amount),
		ValueLost:       mathutil.Round2(amount - power),
	}
}
