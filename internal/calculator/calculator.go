// Package calculator runs configured calculations through the finance engines
// and collects their outcomes as display-ready results.
package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"go.uber.org/zap"
)

var (
	// ErrUnsupportedType is returned for a calculation type with no handler.
	ErrUnsupportedType = errors.New("unsupported calculation type")

	// ErrMissingName is returned for a calculation without a name.
	ErrMissingName = errors.New("calculation name is required")
)

// Field units understood by the output formatters.
const (
	UnitCurrency = "INR"
	UnitPercent  = "%"
	UnitMonths   = "months"
	UnitYears    = "years"
	UnitCount    = "count"
	UnitRate     = "rate"
)

// Field is one labelled value of a result. Text fields carry no Value.
type Field struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Text  string  `json:"text,omitempty" yaml:"text,omitempty"`
}

// Column names a table column and the unit of its values.
type Column struct {
	Name string `json:"name" yaml:"name"`
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Row is one labelled line of a table.
type Row struct {
	Label  string    `json:"label" yaml:"label"`
	Values []float64 `json:"values" yaml:"values"`
}

// Table is a breakdown attached to a result, e.g. an amortization schedule.
type Table struct {
	Title   string   `json:"title" yaml:"title"`
	Columns []Column `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Result holds the outcome of one calculation. Detail is the engine's own
// result value for API consumers.
type Result struct {
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"`
	Valid   bool    `json:"valid" yaml:"valid"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
	Summary []Field `json:"summary" yaml:"summary"`
	Words   string  `json:"words,omitempty" yaml:"words,omitempty"`
	Tables  []Table `json:"tables,omitempty" yaml:"tables,omitempty"`
	Detail  any     `json:"detail,omitempty" yaml:"-"`
}

type handler func(calc config.Calculation) Result

var registry = map[string]handler{
	constants.TypeEMI:              calcEMI,
	constants.TypeAmortization:     calcAmortization,
	constants.TypePrepaymentEMI:    calcPrepaymentEMI,
	constants.TypePrepaymentTenure: calcPrepaymentTenure,
	constants.TypeMoratorium:       calcMoratorium,
	constants.TypeRateChange:       calcRateChange,
	constants.TypeEligibility:      calcEligibility,
	constants.TypeFD:               calcFixedDeposit,
	constants.TypeRD:               calcRecurringDeposit,
	constants.TypeSIP:              calcSIP,
	constants.TypeStepUpSIP:        calcStepUpSIP,
	constants.TypePPF:              calcPPF,
	constants.TypeLumpsum:          calcLumpsum,
	constants.TypeEPF:              calcEPF,
	constants.TypeInflation:        calcInflation,
	constants.TypeSimpleInterest:   calcSimpleInterest,
	constants.TypeCompoundInterest: calcCompoundInterest,
	constants.TypeIncomeTax:        calcIncomeTax,
	constants.TypeGST:              calcGST,
	constants.TypeVAT:              calcVAT,
	constants.TypeGratuity:         calcGratuity,
	constants.TypeAPY:              calcAPY,
	constants.TypeWords:            calcWords,
	constants.TypeDenomination:     calcDenomination,
	constants.TypeCurrencyConvert:  calcCurrencyConvert,
}

// Types lists the supported calculation types in display order.
func Types() []string {
	return append([]string(nil), constants.CalculationTypes...)
}

// Supported reports whether calcType has a handler.
func Supported(calcType string) bool {
	_, ok := registry[calcType]
	return ok
}

// Calculate runs a single calculation. Engine-level problems with the inputs
// are reported on the result, not as an error.
func Calculate(calc config.Calculation) (Result, error) {
	if strings.TrimSpace(calc.Name) == "" {
		return Result{}, ErrMissingName
	}
	h, ok := registry[calc.Type]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedType, calc.Type)
	}

	result := h(calc)
	result.Name = calc.Name
	result.Type = calc.Type
	if result.Summary == nil {
		result.Summary = []Field{}
	}
	return result, nil
}

// Run processes every enabled calculation in order.
func Run(logger *zap.Logger, calculations []config.Calculation) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(calculations))
	for _, calc := range calculations {
		if calc.Disabled {
			logger.Debug(fmt.Sprintf("skipping calculation %s because it is disabled", calc.Name),
				zap.String("op", "calculator.Run"),
			)
			continue
		}

		result, err := Calculate(calc)
		if err != nil {
			return results, fmt.Errorf("calculation %q: %w", calc.Name, err)
		}
		if !result.Valid {
			logger.Warn("calculation inputs produced no result",
				zap.String("op", "calculator.Run"),
				zap.String("name", calc.Name),
				zap.String("type", calc.Type),
				zap.String("message", result.Message),
			)
		} else {
			logger.Debug("calculation complete",
				zap.String("op", "calculator.Run"),
				zap.String("name", calc.Name),
				zap.String("type", calc.Type),
			)
		}
		results = append(results, result)
	}

	return results, nil
}

func money(label string, value float64) Field {
	return Field{Label: label, Value: value, Unit: UnitCurrency}
}

func percent(label string, value float64) Field {
	return Field{Label: label, Value: value, Unit: UnitPercent}
}

func months(label string, value int) Field {
	return Field{Label: label, Value: float64(value), Unit: UnitMonths}
}

func years(label string, value float64) Field {
	return Field{Label: label, Value: value, Unit: UnitYears}
}

func count(label string, value int) Field {
	return Field{Label: label, Value: float64(value), Unit: UnitCount}
}

func text(label, value string) Field {
	return Field{Label: label, Text: value}
}

func invalid(message string) Result {
	return Result{Message: message, Summary: []Field{}}
}
