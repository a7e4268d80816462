package growth

import (
	"math"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// Projection is the maturity of a lump-sum or deposit based product.
// Contribution is the principal for lump sums and the periodic deposit for
// deposit based products, which also report TotalContributed.
type Projection struct {
	Contribution     float64 `json:"contribution"`
	TotalContributed float64 `json:"totalContributed,omitempty"`
	MaturityAmount   float64 `json:"maturityAmount"`
	Returns          float64 `json:"returns"`
}

// YearRow is one year of an iterative growth breakdown.
type YearRow struct {
	Year           int     `json:"year"`
	Invested       float64 `json:"invested"`
	OpeningBalance float64 `json:"openingBalance"`
	Interest       float64 `json:"interest"`
	ClosingBalance float64 `json:"closingBalance"`
}

// periodicRate converts an annual percentage into the rate for one of
// periodsPerYear compounding periods.
func periodicRate(annualRatePercent float64, periodsPerYear int) float64 {
	return annualRatePercent / constants.PercentageMultiplier / float64(periodsPerYear)
}

// growthFactor is (1+rate)^periods, the compound-growth primitive every
// product is built on.
func growthFactor(rate, periods float64) float64 {
	return math.Pow(1+rate, periods)
}

// annuityDue is the future value of periods deposits made at the start of
// each period. A zero rate falls back to plain accumulation.
func annuityDue(deposit, rate float64, periods int) float64 {
	if rate == 0 {
		return deposit * float64(periods)
	}
	return deposit * (growthFactor(rate, float64(periods)) - 1) / rate * (1 + rate)
}

// validInputs applies the common guard: amounts and rates strictly positive,
// at least one period, and everything finite.
func validInputs(amount, annualRatePercent float64, periods float64) bool {
	return mathutil.IsFinite(amount) && mathutil.IsFinite(annualRatePercent) && mathutil.IsFinite(periods) &&
		amount > 0 && annualRatePercent > 0 && periods > 0
}

func lumpSumProjection(principal, maturity float64) Projection {
	maturity = mathutil.Round2(maturity)
	return Projection{
		Contribution:   mathutil.Round2(principal),
		MaturityAmount: maturity,
		Returns:        mathutil.Round2(maturity - principal),
	}
}

func depositProjection(deposit, totalContributed, maturity float64) Projection {
	maturity = mathutil.Round2(maturity)
	totalContributed = mathutil.Round2(totalContributed)
	return Projection{
		Contribution:     mathutil.Round2(deposit),
		TotalContributed: totalContributed,
		MaturityAmount:   maturity,
		Returns:          mathutil.Round2(maturity - totalContributed),
	}
}

func yearRow(year int, invested, opening, closing, added float64) YearRow {
	return YearRow{
		Year:           year,
		Invested:       mathutil.Round2(invested),
		OpeningBalance: mathutil.Round2(opening),
		Interest:       mathutil.Round2(closing - opening - added),
		ClosingBalance: mathutil.Round2(closing),
	}
}
