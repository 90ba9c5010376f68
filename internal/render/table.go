// Package render provides fixed-width ASCII table rendering for reports.
// All functions are pure: output depends only on the headers, rows, widths,
// and alignments passed in.
package render

import (
	"strings"
	"unicode/utf8"
)

// Alignment controls how a cell is padded within its column.
type Alignment string

// Supported cell alignments.
const (
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
)

// DefaultPadding is the extra width added to every auto-computed column.
const DefaultPadding = 2

// Pad fits text into the given width with the requested alignment.
// Width is measured in runes, not bytes, so cells holding multi-byte
// characters (the em-dash airline format) stay aligned in a monospace font.
// Text longer than the width is truncated to exactly the width.
func Pad(text string, width int, align Alignment) string {
	length := utf8.RuneCountInString(text)
	if length > width {
		return string([]rune(text)[:width])
	}

	gap := width - length
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

// AutoWidths computes each column's width as the longest of the header and
// all cell values in that column, plus padding. Widths are rune counts, to
// match Pad. Rows shorter than the header simply contribute nothing to the
// trailing columns.
func AutoWidths(headers []string, rows [][]string, padding int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}

	for _, row := range rows {
		for i := range headers {
			if i >= len(row) {
				continue
			}
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for i := range widths {
		widths[i] += padding
	}
	return widths
}

// Table renders a bordered fixed-width table from headers, rows, explicit
// column widths, and per-column alignments. A nil aligns slice means all
// columns are left-aligned. Missing cells render as empty.
func Table(headers []string, rows [][]string, widths []int, aligns []Alignment) string {
	if aligns == nil {
		aligns = make([]Alignment, len(headers))
		for i := range aligns {
			aligns[i] = AlignLeft
		}
	}

	border := makeBorder(widths)

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, border)
	lines = append(lines, formatRow(headers, widths, aligns))
	lines = append(lines, border)
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, aligns))
	}
	lines = append(lines, border)

	return strings.Join(lines, "\n")
}

// AutoTable renders a table with auto-computed widths and default padding.
func AutoTable(headers []string, rows [][]string, aligns []Alignment) string {
	return Table(headers, rows, AutoWidths(headers, rows, DefaultPadding), aligns)
}

// MonospaceBlock wraps a table in triple backticks so chat and email channels
// render it in a monospace font.
func MonospaceBlock(table string) string {
	return "```\n" + table + "\n```"
}

// formatRow renders one table row: "| cell | cell |". Cells beyond the row's
// length render as empty columns.
func formatRow(row []string, widths []int, aligns []Alignment) string {
	cells := make([]string, len(widths))
	for i := range widths {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		cells[i] = Pad(value, widths[i], aligns[i])
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// makeBorder renders a horizontal border: "+-----+------+".
func makeBorder(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return "+-" + strings.Join(parts, "-+-") + "-+"
}
