// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/finance-calculator/internal/calculator"
)

// FindResult finds a calculation result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []calculator.Result, name string) *calculator.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// FindField finds a summary field by label on a result.
// Returns a pointer to the field if found, nil otherwise.
func FindField(result *calculator.Result, label string) *calculator.Field {
	if result == nil {
		return nil
	}
	for i := range result.Summary {
		if result.Summary[i].Label == label {
			return &result.Summary[i]
		}
	}
	return nil
}
