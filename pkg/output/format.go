// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/finance-calculator/internal/calculator"
	"github.com/iwvelando/finance-calculator/pkg/format"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
// Numbers are grouped the way locale does; an empty locale means en-IN.
func PrettyFormat(results []calculator.Result, locale string) {
	WritePretty(os.Stdout, results, locale)
}

// WritePretty writes the human-readable report to w.
func WritePretty(w io.Writer, results []calculator.Result, locale string) {
	p := format.NewPrinter(locale)
	for i, result := range results {
		_, _ = fmt.Fprintf(w, "--- Results for calculation %s (%s) ---\n", result.Name, result.Type)
		if result.Message != "" {
			_, _ = fmt.Fprintf(w, "Note: %s\n", result.Message)
		}

		width := 0
		for _, field := range result.Summary {
			if len(field.Label) > width {
				width = len(field.Label)
			}
		}
		for _, field := range result.Summary {
			_, _ = fmt.Fprintf(w, "%-*s | %s\n", width, field.Label, fieldValue(p, field))
		}
		if result.Words != "" {
			_, _ = fmt.Fprintf(w, "In words: %s\n", result.Words)
		}

		for _, table := range result.Tables {
			writePrettyTable(w, p, table)
		}
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

func writePrettyTable(w io.Writer, p *message.Printer, table calculator.Table) {
	_, _ = fmt.Fprintf(w, "\n%s\n", table.Title)

	header := make([]string, 0, len(table.Columns)+1)
	header = append(header, "")
	for _, column := range table.Columns {
		header = append(header, column.Name)
	}
	lines := [][]string{header}
	for _, row := range table.Rows {
		line := make([]string, 0, len(row.Values)+1)
		line = append(line, row.Label)
		for j, value := range row.Values {
			unit := ""
			if j < len(table.Columns) {
				unit = table.Columns[j].Unit
			}
			line = append(line, cellValue(p, value, unit))
		}
		lines = append(lines, line)
	}

	widths := make([]int, len(header))
	for _, line := range lines {
		for j, cell := range line {
			if j < len(widths) && len([]rune(cell)) > widths[j] {
				widths[j] = len([]rune(cell))
			}
		}
	}

	for n, line := range lines {
		cells := make([]string, len(line))
		for j, cell := range line {
			pad := 0
			if j < len(widths) {
				pad = widths[j] - len([]rune(cell))
			}
			if j == 0 {
				cells[j] = cell + strings.Repeat(" ", pad)
			} else {
				cells[j] = strings.Repeat(" ", pad) + cell
			}
		}
		_, _ = fmt.Fprintf(w, "%s\n", strings.Join(cells, " | "))
		if n == 0 {
			separators := make([]string, len(widths))
			for j, width := range widths {
				separators[j] = strings.Repeat("_", width)
			}
			_, _ = fmt.Fprintf(w, "%s\n", strings.Join(separators, " | "))
		}
	}
}

func fieldValue(p *message.Printer, field calculator.Field) string {
	if field.Text != "" {
		return field.Text
	}
	switch field.Unit {
	case calculator.UnitMonths:
		return p.Sprintf("%d months", int64(field.Value))
	case calculator.UnitYears:
		return p.Sprintf("%v years", field.Value)
	}
	return cellValue(p, field.Value, field.Unit)
}

func cellValue(p *message.Printer, value float64, unit string) string {
	switch unit {
	case calculator.UnitCurrency:
		return format.Currency(p, value)
	case calculator.UnitPercent:
		return format.Percent(value)
	case calculator.UnitCount, calculator.UnitMonths:
		return p.Sprintf("%d", int64(value))
	case calculator.UnitYears:
		return p.Sprintf("%v", value)
	case calculator.UnitRate:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case "":
		return p.Sprintf("%.2f", value)
	}
	// any other unit is a foreign currency code
	return format.WesternCurrency(value, unit+" ")
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []calculator.Result) {
	WriteCsv(os.Stdout, results)
}

// CsvString returns the CSV rendering of results.
func CsvString(results []calculator.Result) string {
	var b strings.Builder
	WriteCsv(&b, results)
	return b.String()
}

// WriteCsv writes one line per summary field, narration and table cell to w.
func WriteCsv(w io.Writer, results []calculator.Result) {
	writeCsvLine(w, "calculation", "type", "section", "label", "column", "value", "unit")
	for _, result := range results {
		if result.Message != "" {
			writeCsvLine(w, result.Name, result.Type, "message", "", "", result.Message, "")
		}
		for _, field := range result.Summary {
			value := field.Text
			if value == "" {
				value = csvNumber(field.Value, field.Unit)
			}
			writeCsvLine(w, result.Name, result.Type, "summary", field.Label, "", value, field.Unit)
		}
		if result.Words != "" {
			writeCsvLine(w, result.Name, result.Type, "words", "", "", result.Words, "")
		}
		for _, table := range result.Tables {
			for _, row := range table.Rows {
				for j, value := range row.Values {
					column := calculator.Column{}
					if j < len(table.Columns) {
						column = table.Columns[j]
					}
					writeCsvLine(w, result.Name, result.Type, table.Title, row.Label, column.Name, csvNumber(value, column.Unit), column.Unit)
				}
			}
		}
	}
}

func csvNumber(value float64, unit string) string {
	switch unit {
	case calculator.UnitMonths, calculator.UnitCount:
		return strconv.FormatInt(int64(value), 10)
	case calculator.UnitYears, calculator.UnitRate:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return fmt.Sprintf("%.2f", value)
}

func writeCsvLine(w io.Writer, fields ...string) {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	_, _ = fmt.Fprintf(w, "%s\n", strings.Join(quoted, ","))
}
