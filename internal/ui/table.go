// Package ui renders the task list for terminal output: aligned tables,
// ID prefix highlighting, compact ages, and the lipgloss styles shared by
// the list and chat surfaces.
package ui

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	internalstrings "github.com/tmcli/tm/internal/strings"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table. Column widths
// are measured on printable characters, so styled cells line up with plain
// ones.
func FormatTable(headers []string, rows [][]string) string {
	normalized := make([][]string, 0, len(rows)+1)
	normalized = append(normalized, normalizeRow(headers))
	for _, row := range rows {
		normalized = append(normalized, normalizeRow(row))
	}

	widths := make([]int, len(headers))
	for _, row := range normalized {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if width := ansi.PrintableRuneWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var out strings.Builder
	for _, row := range normalized {
		for i, cell := range row {
			out.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			padding := widths[i] - ansi.PrintableRuneWidth(cell)
			out.WriteString(strings.Repeat(" ", padding+2))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// TruncateTableCell limits cell width while preserving escape sequences.
func TruncateTableCell(value string) string {
	value = normalizeCell(value)
	if ansi.PrintableRuneWidth(value) <= tableCellMaxWidth {
		return value
	}
	return truncate.StringWithTail(value, tableCellMaxWidth, tableCellEllipsis)
}

func normalizeRow(row []string) []string {
	normalized := make([]string, len(row))
	for i, cell := range row {
		normalized[i] = normalizeCell(cell)
	}
	return normalized
}

// normalizeCell flattens multi-line text into a single table cell.
func normalizeCell(value string) string {
	return internalstrings.NormalizeWhitespace(value)
}
