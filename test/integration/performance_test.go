package integration

import (
	"testing"
	"time"

	"github.com/iwvelando/finance-calculator/internal/calculator"
	"github.com/iwvelando/finance-calculator/internal/config"
	"go.uber.org/zap"
)

// TestPerformance tests performance characteristics
func TestPerformance(t *testing.T) {
	logger := zap.NewNop()

	start := time.Now()
	conf, err := config.LoadConfiguration(testConfigPath)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	loadTime := time.Since(start)

	start = time.Now()
	results, err := calculator.Run(logger, conf.Calculations)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	runTime := time.Since(start)

	t.Logf("Performance metrics:")
	t.Logf("  Config load time: %v", loadTime)
	t.Logf("  Calculation time: %v", runTime)
	t.Logf("  Results: %d", len(results))

	if runTime > 5*time.Second {
		t.Errorf("Calculations took too long: %v", runTime)
	}
}

// TestLongScheduleMemory runs the longest schedules repeatedly
func TestLongScheduleMemory(t *testing.T) {
	calc := config.Calculation{
		Name:         "thirty year mortgage",
		Type:         "amortization",
		Principal:    7500000,
		Rate:         8.75,
		TenureMonths: 360,
		StartDate:    "2025-01",
	}

	for i := 0; i < 100; i++ {
		result, err := calculator.Calculate(calc)
		if err != nil {
			t.Fatalf("Calculate() iteration %d error = %v", i, err)
		}
		if len(result.Tables) != 2 || len(result.Tables[0].Rows) != 30 || len(result.Tables[1].Rows) != 360 {
			t.Fatalf("iteration %d produced unexpected tables", i)
		}
	}
}

func BenchmarkAmortization(b *testing.B) {
	calc := config.Calculation{Name: "home", Type: "amortization", Principal: 2500000, Rate: 8.5, TenureMonths: 240}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = calculator.Calculate(calc)
	}
}

func BenchmarkRun(b *testing.B) {
	calculations := []config.Calculation{
		{Name: "car", Type: "emi", Principal: 100000, Rate: 10, TenureMonths: 12},
		{Name: "sip", Type: "sip", Amount: 10000, Rate: 12, Years: 10},
		{Name: "tax", Type: "income-tax", Amount: 1000000},
	}
	logger := zap.NewNop()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = calculator.Run(logger, calculations)
	}
}
