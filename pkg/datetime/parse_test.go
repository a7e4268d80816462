package datetime

import (
	"testing"
)

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"Valid month", "2025-01", false},
		{"Month out of range", "2025-13", true},
		{"Full date", "2025-01-15", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMonth(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMonth(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
		wantErr  bool
	}{
		{"Add multiple years", "2025-01", 24, "2027-01", false},
		{"Cross year boundary forward", "2025-06", 8, "2026-02", false},
		{"Cross year boundary backward", "2025-06", -8, "2024-10", false},
		{"Zero months", "2025-06", 0, "2025-06", false},
		{"Invalid date", "June 2025", 1, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if tt.wantErr {
				if err == nil {
					t.Errorf("OffsetDate() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("OffsetDate() error = %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("OffsetDate() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestMonthLabels(t *testing.T) {
	labels, err := MonthLabels("2025-11", 4)
	if err != nil {
		t.Fatalf("MonthLabels() error = %v", err)
	}
	expected := []string{"2025-11", "2025-12", "2026-01", "2026-02"}
	if len(labels) != len(expected) {
		t.Fatalf("MonthLabels() returned %d labels, expected %d", len(labels), len(expected))
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("MonthLabels()[%d] = %s, expected %s", i, labels[i], expected[i])
		}
	}

	if _, err := MonthLabels("bad", 3); err == nil {
		t.Errorf("MonthLabels() expected error for invalid start")
	}
	if empty, err := MonthLabels("2025-01", -1); err != nil || len(empty) != 0 {
		t.Errorf("MonthLabels() with negative count = %v, %v", empty, err)
	}
}
