// Package validation checks calculation batches and report settings before
// anything is computed.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/format"
)

// OutputFormats lists the report formats the CLI can write.
var OutputFormats = []string{constants.OutputFormatPretty, constants.OutputFormatCSV}

// ValidateOutput checks the report format and the number-grouping locale.
// An empty locale is accepted and means en-IN.
func ValidateOutput(outputFormat, locale string) error {
	supported := false
	for _, f := range OutputFormats {
		if f == outputFormat {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("expected output format of %s, got %q", strings.Join(OutputFormats, " or "), outputFormat)
	}
	if _, err := format.ParseLocale(locale); err != nil {
		return fmt.Errorf("output locale: %w", err)
	}
	return nil
}
