package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/finance-calculator/pkg/constants"
)

func TestIsSupportedType(t *testing.T) {
	for _, calcType := range constants.CalculationTypes {
		if !IsSupportedType(calcType) {
			t.Errorf("IsSupportedType(%s) = false, expected true", calcType)
		}
	}
	for _, calcType := range []string{"", "EMI", "mortgage"} {
		if IsSupportedType(calcType) {
			t.Errorf("IsSupportedType(%s) = true, expected false", calcType)
		}
	}
}

func TestUsesWholeYears(t *testing.T) {
	if !UsesWholeYears(constants.TypeSIP) {
		t.Errorf("UsesWholeYears(sip) = false, expected true")
	}
	if UsesWholeYears(constants.TypeCompoundInterest) {
		t.Errorf("UsesWholeYears(compound-interest) = true, expected false")
	}
}

func TestValidateCalculationInputs(t *testing.T) {
	tests := []struct {
		name          string
		inputs        CalculationInputs
		expectWarns   int
		expectContain string
	}{
		{
			name:        "Clean loan",
			inputs:      CalculationInputs{Name: "home", Type: constants.TypeEMI, Rate: 8.5, TenureMonths: 240, StartDate: "2025-01"},
			expectWarns: 0,
		},
		{
			name:          "High rate",
			inputs:        CalculationInputs{Name: "card", Type: constants.TypeEMI, Rate: 42, TenureMonths: 12},
			expectWarns:   1,
			expectContain: "unusually high",
		},
		{
			name:          "Long tenure",
			inputs:        CalculationInputs{Name: "forever", Type: constants.TypeAmortization, Rate: 8, TenureMonths: 720},
			expectWarns:   1,
			expectContain: "720 months",
		},
		{
			name:          "Bad start date",
			inputs:        CalculationInputs{Name: "home", Type: constants.TypeAmortization, Rate: 8, TenureMonths: 12, StartDate: "01/2025"},
			expectWarns:   1,
			expectContain: "start date ignored",
		},
		{
			name:          "Unknown frequency",
			inputs:        CalculationInputs{Name: "fd", Type: constants.TypeFD, Rate: 7, Frequency: "weekly"},
			expectWarns:   1,
			expectContain: "unknown frequency",
		},
		{
			name:          "Rate change to same rate",
			inputs:        CalculationInputs{Name: "reset", Type: constants.TypeRateChange, Rate: 9, NewRate: 9, TenureMonths: 60},
			expectWarns:   1,
			expectContain: "same value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateCalculationInputs(tt.inputs)
			if len(warnings) != tt.expectWarns {
				t.Fatalf("ValidateCalculationInputs() returned %d warnings, expected %d: %v", len(warnings), tt.expectWarns, warnings)
			}
			if tt.expectContain != "" && !strings.Contains(warnings[0], tt.expectContain) {
				t.Errorf("warning %q does not mention %q", warnings[0], tt.expectContain)
			}
		})
	}
}
