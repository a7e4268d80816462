package validation

import (
	"fmt"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/datetime"
	"github.com/iwvelando/finance-calculator/pkg/growth"
)

// CalculationInputs are the parameters of a calculation that can be checked
// without running it.
type CalculationInputs struct {
	Name         string
	Type         string
	Rate         float64
	NewRate      float64
	TenureMonths int
	StartDate    string
	Frequency    string
}

// IsSupportedType reports whether calcType names a known calculation.
func IsSupportedType(calcType string) bool {
	for _, t := range constants.CalculationTypes {
		if t == calcType {
			return true
		}
	}
	return false
}

// UsesWholeYears reports whether a calculation type counts its term in whole years.
func UsesWholeYears(calcType string) bool {
	switch calcType {
	case constants.TypeSIP, constants.TypeStepUpSIP, constants.TypePPF,
		constants.TypeLumpsum, constants.TypeInflation:
		return true
	}
	return false
}

// ValidateCalculationInputs returns warnings for inputs that are accepted but
// probably not what the user meant.
func ValidateCalculationInputs(in CalculationInputs) []string {
	var warnings []string

	if in.Rate > constants.HighRateWarningPercent {
		warnings = append(warnings, fmt.Sprintf("Calculation '%s' has an unusually high rate of %.2f%%", in.Name, in.Rate))
	}
	if in.Type == constants.TypeRateChange && in.NewRate == in.Rate {
		warnings = append(warnings, fmt.Sprintf("Calculation '%s' changes the rate to the same value %.2f%%", in.Name, in.Rate))
	}
	if in.TenureMonths > constants.LongTenureWarningMonths {
		warnings = append(warnings, fmt.Sprintf("Calculation '%s' has a tenure of %d months, longer than %d",
			in.Name, in.TenureMonths, constants.LongTenureWarningMonths))
	}
	if in.StartDate != "" {
		if err := datetime.ValidateMonth(in.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' start date ignored: %v", in.Name, err))
		}
	}
	if in.Frequency != "" {
		if _, ok := growth.ParseFrequency(in.Frequency); !ok {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' has unknown frequency '%s'", in.Name, in.Frequency))
		}
	}

	return warnings
}
