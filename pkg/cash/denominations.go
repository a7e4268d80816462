// Package cash counts banknote denominations and converts amounts between
// currencies at a caller-supplied rate.
package cash

import (
	"sort"

	"github.com/iwvelando/finance-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// IndianDenominations are the rupee notes and coins in circulation, largest first.
var IndianDenominations = []float64{500, 200, 100, 50, 20, 10, 5, 2, 1}

// DenominationItem is a count of notes or coins of one face value.
type DenominationItem struct {
	Value float64 `json:"value" yaml:"value"`
	Count int     `json:"count" yaml:"count"`
}

// DenominationLine is one counted face value and what it adds up to.
type DenominationLine struct {
	Value  float64 `json:"value"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// DenominationSummary is the result of counting a pile of cash.
type DenominationSummary struct {
	Lines       []DenominationLine `json:"lines"`
	TotalCount  int                `json:"totalCount"`
	TotalAmount float64            `json:"totalAmount"`
}

// Count totals the given denominations. Items with a non-positive value or
// count are left out. Lines are ordered by face value, largest first.
func Count(items []DenominationItem) DenominationSummary {
	summary := DenominationSummary{Lines: []DenominationLine{}}
	total := decimal.Zero
	for _, item := range items {
		if item.Count <= 0 || item.Value <= 0 || !mathutil.IsFinite(item.Value) {
			continue
		}
		amount := decimal.NewFromFloat(item.Value).Mul(decimal.NewFromInt(int64(item.Count)))
		summary.Lines = append(summary.Lines, DenominationLine{
			Value:  item.Value,
			Count:  item.Count,
			Amount: amount.Round(2).InexactFloat64(),
		})
		summary.TotalCount += item.Count
		total = total.Add(amount)
	}
	sort.SliceStable(summary.Lines, func(i, j int) bool {
		return summary.Lines[i].Value > summary.Lines[j].Value
	})
	summary.TotalAmount = total.Round(2).InexactFloat64()
	return summary
}

// Breakdown splits amount greedily into the fewest notes of the given face
// values, IndianDenominations when values is empty. The part of amount no
// face value can cover is returned as the remainder.
func Breakdown(amount float64, values []float64) ([]DenominationItem, float64) {
	if !mathutil.IsFinite(amount) || amount <= 0 {
		return []DenominationItem{}, 0
	}
	if len(values) == 0 {
		values = IndianDenominations
	}
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 && mathutil.IsFinite(v) {
			sorted = append(sorted, v)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	remaining := decimal.NewFromFloat(amount).Round(2)
	items := []DenominationItem{}
	for _, v := range sorted {
		face := decimal.NewFromFloat(v)
		count := remaining.Div(face).Floor()
		if count.IsZero() {
			continue
		}
		items = append(items, DenominationItem{Value: v, Count: int(count.IntPart())})
		remaining = remaining.Sub(face.Mul(count))
	}
	return items, remaining.InexactFloat64()
}

// Convert converts amount into another currency at rate units per unit of
// amount. A non-positive rate yields 0.
func Convert(amount, rate float64) float64 {
	if !mathutil.IsFinite(amount) || !mathutil.IsFinite(rate) || rate <= 0 {
		return 0
	}
	return mathutil.Round2(amount * rate)
}
