package calculator

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/cash"
	"github.com/iwvelando/finance-calculator/pkg/words"
)

func amountWords(amount float64) string {
	return words.Amount(amount)
}

func calcWords(calc config.Calculation) Result {
	if math.IsNaN(calc.Amount) || math.IsInf(calc.Amount, 0) {
		return invalid("amount must be a finite number")
	}
	return Result{
		Valid:   true,
		Summary: []Field{money("Amount", calc.Amount)},
		Words:   amountWords(calc.Amount),
	}
}

var denominationColumns = []Column{
	{Name: "Count", Unit: UnitCount},
	{Name: "Amount", Unit: UnitCurrency},
}

type denominationDetail struct {
	cash.DenominationSummary
	Remainder float64 `json:"remainder,omitempty"`
}

// calcDenomination counts the configured notes, or when none are given splits
// Amount into the fewest Indian notes and coins.
func calcDenomination(calc config.Calculation) Result {
	items := calc.Denominations
	remainder := 0.0
	if len(items) == 0 {
		if calc.Amount <= 0 {
			return invalid("either denominations or a positive amount is required")
		}
		items, remainder = cash.Breakdown(calc.Amount, nil)
	}

	summary := cash.Count(items)
	if summary.TotalCount == 0 {
		return invalid("no notes or coins with a positive count and value")
	}

	table := Table{Title: "Denominations", Columns: denominationColumns, Rows: make([]Row, 0, len(summary.Lines))}
	for _, line := range summary.Lines {
		table.Rows = append(table.Rows, Row{
			Label:  fmt.Sprintf("%g", line.Value),
			Values: []float64{float64(line.Count), line.Amount},
		})
	}

	result := Result{
		Valid: true,
		Summary: []Field{
			count("Notes And Coins", summary.TotalCount),
			money("Total", summary.TotalAmount),
		},
		Words:  amountWords(summary.TotalAmount),
		Tables: []Table{table},
		Detail: denominationDetail{DenominationSummary: summary, Remainder: remainder},
	}
	if remainder > 0 {
		result.Summary = append(result.Summary, money("Remainder", remainder))
	}
	return result
}

// calcCurrencyConvert converts Amount rupees at ExchangeRate units of Currency
// per rupee.
func calcCurrencyConvert(calc config.Calculation) Result {
	if calc.ExchangeRate <= 0 || calc.Amount < 0 {
		return invalid("exchange rate must be positive and the amount must not be negative")
	}
	converted := cash.Convert(calc.Amount, calc.ExchangeRate)
	target := strings.ToUpper(strings.TrimSpace(calc.Currency))
	if target == "" {
		target = "converted"
	}
	return Result{
		Valid: true,
		Summary: []Field{
			money("Amount", calc.Amount),
			{Label: "Exchange Rate", Value: calc.ExchangeRate, Unit: UnitRate},
			{Label: "Converted Amount", Value: converted, Unit: target},
		},
		Words:  amountWords(calc.Amount),
		Detail: map[string]float64{"amount": calc.Amount, "exchangeRate": calc.ExchangeRate, "convertedAmount": converted},
	}
}
