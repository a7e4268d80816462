// Package datetime provides month arithmetic for labelling payment schedules.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/finance-calculator/pkg/constants"
)

const (
	// DateTimeLayout is the month format accepted for start dates and used for
	// schedule labels.
	DateTimeLayout = constants.DateTimeLayout
)

// ValidateMonth checks that date is a YYYY-MM month.
func ValidateMonth(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", date, err)
	}
	return nil
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthLabels returns count consecutive YYYY-MM labels starting at start, one
// per instalment of a schedule.
func MonthLabels(start string, count int) ([]string, error) {
	if err := ValidateMonth(start); err != nil {
		return nil, err
	}
	if count < 0 {
		count = 0
	}
	labels := make([]string, count)
	for i := range labels {
		label, err := OffsetDate(start, DateTimeLayout, i)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}
