package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/finance-calculator/internal/calculator"
	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/output"
	"github.com/iwvelando/finance-calculator/pkg/testutil"
	"github.com/iwvelando/finance-calculator/pkg/words"
	"go.uber.org/zap"
)

const testConfigPath = "../test_config.yaml"

// runTestConfig loads and runs the shared configuration exactly as main() does.
func runTestConfig(t *testing.T) []calculator.Result {
	t.Helper()

	conf, err := config.LoadConfiguration(testConfigPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	results, err := calculator.Run(zap.NewNop(), conf.Calculations)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return results
}

// TestMainIntegrationBaseline checks the known figures produced for the shared configuration
func TestMainIntegrationBaseline(t *testing.T) {
	results := runTestConfig(t)

	expectedCalculations := []string{
		"car loan",
		"short loan schedule",
		"monthly sip",
		"salary tax",
		"invoice gst",
		"cash till",
	}
	if len(results) != len(expectedCalculations) {
		t.Fatalf("Expected %d calculations, got %d", len(expectedCalculations), len(results))
	}
	for i, expected := range expectedCalculations {
		if results[i].Name != expected {
			t.Errorf("Calculation %d name = %s, expected %s", i, results[i].Name, expected)
		}
		if !results[i].Valid {
			t.Errorf("Calculation %s is not valid: %s", expected, results[i].Message)
		}
	}

	tests := []struct {
		calculation string
		label       string
		expected    float64
	}{
		{"car loan", "Monthly EMI", 8791.59},
		{"short loan schedule", "Monthly EMI", 8791.59},
		{"monthly sip", "Maturity Amount", 2323390.76},
		{"salary tax", "Total Tax", 52000},
		{"invoice gst", "CGST", 90},
		{"invoice gst", "SGST", 90},
		{"cash till", "Total", 1880},
	}
	for _, tt := range tests {
		t.Run(tt.calculation+"/"+tt.label, func(t *testing.T) {
			result := testutil.FindResult(results, tt.calculation)
			if result == nil {
				t.Fatalf("calculation %s not found", tt.calculation)
			}
			field := testutil.FindField(result, tt.label)
			if field == nil {
				t.Fatalf("field %s not found on %s", tt.label, tt.calculation)
			}
			if field.Value != tt.expected {
				t.Errorf("%s = %.2f, expected %.2f", tt.label, field.Value, tt.expected)
			}
		})
	}

	if result := testutil.FindResult(results, "retired plan"); result != nil {
		t.Errorf("disabled calculation was run: %+v", result)
	}
}

// TestScheduleLabels checks that a start date labels every schedule row by month
func TestScheduleLabels(t *testing.T) {
	results := runTestConfig(t)
	result := testutil.FindResult(results, "short loan schedule")
	if result == nil {
		t.Fatal("short loan schedule not found")
	}
	if len(result.Tables) != 2 {
		t.Fatalf("len(Tables) = %d, expected yearly and monthly tables", len(result.Tables))
	}

	monthly := result.Tables[1]
	if len(monthly.Rows) != 12 {
		t.Fatalf("len(monthly rows) = %d, expected 12", len(monthly.Rows))
	}
	if first, last := monthly.Rows[0].Label, monthly.Rows[11].Label; first != "2025-04" || last != "2026-03" {
		t.Errorf("schedule runs %s to %s, expected 2025-04 to 2026-03", first, last)
	}
}

// TestPrettyOutput checks the rendered report for the shared configuration
func TestPrettyOutput(t *testing.T) {
	results := runTestConfig(t)

	var buf bytes.Buffer
	output.WritePretty(&buf, results, "en-IN")
	report := buf.String()

	for _, expected := range []string{
		"--- Results for calculation car loan (emi) ---",
		"--- Results for calculation cash till (denomination) ---",
		"In words: " + words.Amount(8791.59),
		"₹23,23,390.76",
	} {
		if !strings.Contains(report, expected) {
			t.Errorf("report missing %q", expected)
		}
	}
	if strings.Contains(report, "retired plan") {
		t.Errorf("report includes a disabled calculation")
	}
}

// TestCsvOutput checks that every CSV line carries the same number of columns
func TestCsvOutput(t *testing.T) {
	results := runTestConfig(t)

	csv := output.CsvString(results)
	lines := strings.Split(strings.TrimSuffix(csv, "\n"), "\n")
	if lines[0] != `"calculation","type","section","label","column","value","unit"` {
		t.Fatalf("unexpected CSV header: %s", lines[0])
	}
	for i, line := range lines[1:] {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Errorf("line %d is not fully quoted: %s", i+1, line)
		}
	}
	if !strings.Contains(csv, `"salary tax","income-tax","summary","Total Tax","","52000.00","INR"`) {
		t.Errorf("CSV missing the income tax total")
	}
}

// TestConfigurationWarnings checks that the shared configuration only warns about the disabled entry
func TestConfigurationWarnings(t *testing.T) {
	conf, err := config.LoadConfiguration(testConfigPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 1 {
		t.Fatalf("ValidateConfiguration() = %v, expected a single warning", warnings)
	}
	if !strings.Contains(warnings[0], "retired plan") {
		t.Errorf("warning = %q, expected it to name the disabled calculation", warnings[0])
	}
}
