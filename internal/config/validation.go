package config

import (
	"fmt"
	"math"

	"github.com/iwvelando/finance-calculator/pkg/validation"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Nothing reported here stops the calculations from running.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Calculations) == 0 {
		return append(warnings, "no calculations configured")
	}

	seen := make(map[string]bool, len(c.Calculations))
	for _, calc := range c.Calculations {
		if calc.Name != "" {
			if seen[calc.Name] {
				warnings = append(warnings, fmt.Sprintf("Calculation name '%s' is used more than once", calc.Name))
			}
			seen[calc.Name] = true
		}
		if calc.Disabled {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' is disabled and will be skipped", calc.Name))
			continue
		}
		if !validation.IsSupportedType(calc.Type) {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' has unsupported type '%s'", calc.Name, calc.Type))
			continue
		}
		warnings = append(warnings, validation.ValidateCalculationInputs(validation.CalculationInputs{
			Name:         calc.Name,
			Type:         calc.Type,
			Rate:         calc.Rate,
			NewRate:      calc.NewRate,
			TenureMonths: calc.TenureMonths,
			StartDate:    calc.StartDate,
			Frequency:    calc.Frequency,
		})...)
		if calc.Years != math.Trunc(calc.Years) && validation.UsesWholeYears(calc.Type) {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' uses whole years only, %.2f will be truncated to %d",
				calc.Name, calc.Years, int(calc.Years)))
		}
	}

	return warnings
}
