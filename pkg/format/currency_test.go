package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		amount   float64
		expected string
	}{
		{"Small amount", "en-IN", 999.5, "₹999.50"},
		{"Thousand", "en-IN", 1000, "₹1,000.00"},
		{"Lakh", "en-IN", 123456.78, "₹1,23,456.78"},
		{"Crore", "en-IN", 12345678.9, "₹1,23,45,678.90"},
		{"Negative", "en-IN", -2500000, "-₹25,00,000.00"},
		{"Zero", "en-IN", 0, "₹0.00"},
		{"Negative rounding to zero", "en-IN", -0.001, "₹0.00"},
		{"Default locale", "", 123456.78, "₹1,23,456.78"},
		{"Western grouping", "en-US", 12345678.9, "₹12,345,678.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Currency(NewPrinter(tt.locale), tt.amount); result != tt.expected {
				t.Errorf("Currency(%s, %v) = %q, expected %q", tt.locale, tt.amount, result, tt.expected)
			}
		})
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		expected string
		wantErr  bool
	}{
		{"Empty uses default", "", "en-IN", false},
		{"Hindi", "hi-IN", "hi-IN", false},
		{"Malformed", "!!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := ParseLocale(tt.locale)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLocale(%q) error = %v, wantErr %v", tt.locale, err, tt.wantErr)
			}
			if !tt.wantErr && tag.String() != tt.expected {
				t.Errorf("ParseLocale(%q) = %s, expected %s", tt.locale, tag, tt.expected)
			}
		})
	}
}

func TestWesternCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Millions", 1234567.891, "$1,234,567.89"},
		{"Negative", -1234.5, "-$1,234.50"},
		{"Hundreds", 12, "$12.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := WesternCurrency(tt.amount, "$"); result != tt.expected {
				t.Errorf("WesternCurrency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if result := Percent(8.5); result != "8.50%" {
		t.Errorf("Percent() = %q, expected %q", result, "8.50%")
	}
}
