package loans

import (
	"fmt"
	"math"
	"testing"
)

// referencePayment is a single row from a published amortization table for a
// 175,000 loan at 4.5% over 360 months.
type referencePayment struct {
	Period    int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

func getReferenceSchedule() []referencePayment {
	return []referencePayment{
		{1, 886.70, 230.45, 656.25, 174769.55},
		{2, 886.70, 231.31, 655.39, 174538.24},
		{3, 886.70, 232.18, 654.52, 174306.06},
		{4, 886.70, 233.05, 653.65, 174073.00},
		{5, 886.70, 233.93, 652.77, 173839.08},
		{6, 886.70, 234.80, 651.90, 173604.28},
		{12, 886.70, 240.14, 646.56, 172176.85},
		{24, 886.70, 251.17, 635.53, 169224.01},
		{60, 886.70, 287.40, 599.30, 159526.36},
		{120, 886.70, 359.76, 526.94, 140156.51},
		{240, 886.70, 563.75, 322.95, 85557.02},
		{359, 886.70, 880.09, 6.61, 883.39},
		{360, 886.70, 883.39, 3.31, 0.00},
	}
}

func TestBuildScheduleAgainstReference(t *testing.T) {
	schedule := BuildSchedule(175000, 4.5, 360)
	if len(schedule.Entries) != 360 {
		t.Fatalf("BuildSchedule() produced %d entries, expected 360", len(schedule.Entries))
	}

	tolerance := 0.50
	for _, ref := range getReferenceSchedule() {
		entry := schedule.Entries[ref.Period-1]
		t.Run(fmt.Sprintf("Period_%d", ref.Period), func(t *testing.T) {
			if entry.Period != ref.Period {
				t.Errorf("Period = %d, expected %d", entry.Period, ref.Period)
			}
			if math.Abs(entry.EMI-ref.Payment) > tolerance {
				t.Errorf("EMI mismatch: got %.2f, expected %.2f", entry.EMI, ref.Payment)
			}
			if math.Abs(entry.PrincipalPortion-ref.Principal) > tolerance {
				t.Errorf("Principal mismatch: got %.2f, expected %.2f", entry.PrincipalPortion, ref.Principal)
			}
			if math.Abs(entry.InterestPortion-ref.Interest) > tolerance {
				t.Errorf("Interest mismatch: got %.2f, expected %.2f", entry.InterestPortion, ref.Interest)
			}
			if math.Abs(entry.EndingBalance-ref.Balance) > tolerance {
				t.Errorf("Balance mismatch: got %.2f, expected %.2f", entry.EndingBalance, ref.Balance)
			}
		})
	}
}

func TestBuildScheduleFirstPeriod(t *testing.T) {
	schedule := BuildSchedule(100000, 10, 12)
	first := schedule.Entries[0]

	if first.BeginningBalance != 100000 {
		t.Errorf("BeginningBalance = %.2f, expected 100000", first.BeginningBalance)
	}
	if first.InterestPortion != 833.33 {
		t.Errorf("InterestPortion = %.2f, expected 833.33", first.InterestPortion)
	}
	if first.PrincipalPortion != 7958.26 {
		t.Errorf("PrincipalPortion = %.2f, expected 7958.26", first.PrincipalPortion)
	}
	if first.EndingBalance != 92041.74 {
		t.Errorf("EndingBalance = %.2f, expected 92041.74", first.EndingBalance)
	}
}

func TestBuildScheduleInvariants(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		tenureMonths      int
	}{
		{"One year loan", 100000, 10, 12},
		{"Home loan", 2500000, 8.5, 240},
		{"Zero rate", 1200, 0, 12},
		{"Uneven zero rate", 1000, 0, 3},
		{"Single period", 5000, 12, 1},
		{"Short odd tenure", 75000, 13.25, 17},
		{"Tiny loan", 0.05, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := BuildSchedule(tt.principal, tt.annualRatePercent, tt.tenureMonths)

			if len(schedule.Entries) != tt.tenureMonths {
				t.Fatalf("BuildSchedule() produced %d entries, expected %d", len(schedule.Entries), tt.tenureMonths)
			}

			last := schedule.Entries[len(schedule.Entries)-1]
			if last.EndingBalance != 0 {
				t.Errorf("final EndingBalance = %v, expected exactly 0", last.EndingBalance)
			}

			principalSum := 0.0
			paymentSum := 0.0
			for _, entry := range schedule.Entries {
				if entry.EndingBalance < 0 {
					t.Errorf("period %d EndingBalance = %.2f, expected non-negative", entry.Period, entry.EndingBalance)
				}
				if math.Abs(entry.BeginningBalance-entry.PrincipalPortion-entry.EndingBalance) > 0.011 {
					t.Errorf("period %d: %.2f - %.2f != %.2f", entry.Period,
						entry.BeginningBalance, entry.PrincipalPortion, entry.EndingBalance)
				}
				principalSum += entry.PrincipalPortion
				paymentSum += entry.EMI
			}

			tolerance := 0.01 * float64(tt.tenureMonths)
			if math.Abs(principalSum-tt.principal) > tolerance {
				t.Errorf("sum of principal portions = %.2f, expected %.2f", principalSum, tt.principal)
			}
			if math.Abs(schedule.TotalAmount-paymentSum) > 0.001 {
				t.Errorf("TotalAmount = %.2f, expected sum of EMIs %.2f", schedule.TotalAmount, paymentSum)
			}
			if math.Abs(schedule.TotalInterest-(schedule.TotalAmount-tt.principal)) > 0.006 {
				t.Errorf("TotalInterest = %.2f, expected %.2f", schedule.TotalInterest, schedule.TotalAmount-tt.principal)
			}
		})
	}
}

func TestBuildScheduleEarlyPayoff(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		tenureMonths      int
		paidOffAfter      int
	}{
		{"Zero rate tiny loan", 0.05, 0, 10, 5},
		{"Tiny loan interest rounds away", 0.05, 10, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := BuildSchedule(tt.principal, tt.annualRatePercent, tt.tenureMonths)
			if len(schedule.Entries) != tt.tenureMonths {
				t.Fatalf("BuildSchedule() produced %d entries, expected %d", len(schedule.Entries), tt.tenureMonths)
			}

			principalSum := 0.0
			for _, entry := range schedule.Entries {
				principalSum += entry.PrincipalPortion
				if entry.Period > tt.paidOffAfter && (entry.EMI != 0 || entry.PrincipalPortion != 0 || entry.BeginningBalance != 0) {
					t.Errorf("period %d = %+v, expected nothing left to pay", entry.Period, entry)
				}
			}
			if math.Abs(principalSum-tt.principal) > 1e-9 {
				t.Errorf("sum of principal portions = %.4f, expected %.2f", principalSum, tt.principal)
			}
			if schedule.TotalAmount != tt.principal || schedule.TotalInterest != 0 {
				t.Errorf("totals = (%.2f, %.2f), expected (%.2f, 0)", schedule.TotalAmount, schedule.TotalInterest, tt.principal)
			}
		})
	}
}

func TestBuildScheduleZeroRateTotals(t *testing.T) {
	schedule := BuildSchedule(1200, 0, 12)
	if schedule.TotalAmount != 1200 || schedule.TotalInterest != 0 {
		t.Errorf("zero rate totals = (%.2f, %.2f), expected (1200, 0)", schedule.TotalAmount, schedule.TotalInterest)
	}
	for _, entry := range schedule.Entries {
		if entry.EMI != 100 || entry.InterestPortion != 0 {
			t.Errorf("period %d = %+v, expected EMI 100 and no interest", entry.Period, entry)
		}
	}
}

func TestBuildScheduleInvalidInput(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		tenureMonths      int
	}{
		{"Zero principal", 0, 10, 12},
		{"Negative rate", 1000, -2, 12},
		{"Zero tenure", 1000, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := BuildSchedule(tt.principal, tt.annualRatePercent, tt.tenureMonths)
			if len(schedule.Entries) != 0 {
				t.Errorf("BuildSchedule() produced %d entries, expected none", len(schedule.Entries))
			}
			if schedule.EMI != 0 || schedule.TotalAmount != 0 || schedule.TotalInterest != 0 {
				t.Errorf("BuildSchedule() totals = %+v, expected zeros", schedule)
			}
		})
	}
}

func TestYearlySummary(t *testing.T) {
	schedule := BuildSchedule(300000, 9, 30)
	summaries := YearlySummary(schedule)

	if len(summaries) != 3 {
		t.Fatalf("YearlySummary() returned %d years, expected 3", len(summaries))
	}

	principalPaid := 0.0
	for i, year := range summaries {
		if year.Year != i+1 {
			t.Errorf("Year = %d, expected %d", year.Year, i+1)
		}
		if math.Abs(year.TotalPaid-(year.PrincipalPaid+year.InterestPaid)) > 0.011 {
			t.Errorf("year %d TotalPaid %.2f != principal %.2f + interest %.2f",
				year.Year, year.TotalPaid, year.PrincipalPaid, year.InterestPaid)
		}
		principalPaid += year.PrincipalPaid
	}

	if summaries[0].RemainingBalance != schedule.Entries[11].EndingBalance {
		t.Errorf("year 1 RemainingBalance = %.2f, expected %.2f",
			summaries[0].RemainingBalance, schedule.Entries[11].EndingBalance)
	}
	if summaries[2].RemainingBalance != 0 {
		t.Errorf("final RemainingBalance = %.2f, expected 0", summaries[2].RemainingBalance)
	}
	if math.Abs(principalPaid-300000) > 0.05 {
		t.Errorf("principal paid across years = %.2f, expected 300000", principalPaid)
	}
}

func TestYearlySummaryEmptySchedule(t *testing.T) {
	summaries := YearlySummary(BuildSchedule(0, 10, 12))
	if len(summaries) != 0 {
		t.Errorf("YearlySummary() of empty schedule returned %d years", len(summaries))
	}
}
