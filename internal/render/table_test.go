package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		align Alignment
		want  string
	}{
		{name: "left pads right side", text: "ab", width: 5, align: AlignLeft, want: "ab   "},
		{name: "right pads left side", text: "ab", width: 5, align: AlignRight, want: "   ab"},
		{name: "center splits the gap", text: "ab", width: 6, align: AlignCenter, want: "  ab  "},
		{name: "center with odd gap leans left", text: "ab", width: 5, align: AlignCenter, want: " ab  "},
		{name: "exact fit unchanged", text: "abcde", width: 5, align: AlignLeft, want: "abcde"},
		{name: "overflow truncates to width", text: "abcdefgh", width: 5, align: AlignLeft, want: "abcde"},
		{name: "empty text", text: "", width: 3, align: AlignRight, want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pad(tt.text, tt.width, tt.align))
		})
	}
}

func TestAutoWidths(t *testing.T) {
	headers := []string{"Date", "Price"}
	rows := [][]string{
		{"2026-03-20", "1200.00"},
		{"2026-03-21"},
	}

	widths := AutoWidths(headers, rows, 2)

	// longest of header and cells, plus padding
	assert.Equal(t, []int{len("2026-03-20") + 2, len("1200.00") + 2}, widths)
}

func TestAutoWidths_HeaderDominates(t *testing.T) {
	widths := AutoWidths([]string{"Layover City"}, [][]string{{"ABC"}}, 2)
	assert.Equal(t, []int{len("Layover City") + 2}, widths)
}

func TestTable_Shape(t *testing.T) {
	headers := []string{"Option", "Airline", "Price"}
	rows := [][]string{
		{"1", "EY — Etihad Airways", "520.00"},
		{"2", "AC — Air Canada", "610.50"},
		{"3", "QR"},
	}

	out := AutoTable(headers, rows, []Alignment{AlignRight, AlignLeft, AlignRight})
	lines := strings.Split(out, "\n")

	// rows + header + 3 borders
	require.Len(t, lines, len(rows)+4)

	// every rendered line has the same monospace width
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(line), "line %d differs in width", i)
	}

	// border lines frame the table
	assert.True(t, strings.HasPrefix(lines[0], "+-"))
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, lines[0], lines[len(lines)-1])

	// header and data rows use the pipe delimiter
	assert.True(t, strings.HasPrefix(lines[1], "| "))
	assert.Contains(t, lines[1], " | ")
	assert.True(t, strings.HasSuffix(lines[3], " |"))
}

func TestTable_MultibyteCellsAlign(t *testing.T) {
	// an em-dash airline cell next to a bare-code cell must not shift the
	// pipe separators: widths are rune counts, not byte counts
	headers := []string{"Option", "Airline", "Price"}
	rows := [][]string{
		{"1", "EY — Etihad Airways", "520.00"},
		{"2", "QR", "610.50"},
	}

	out := AutoTable(headers, rows, []Alignment{AlignRight, AlignLeft, AlignRight})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)

	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		require.Equal(t, width, utf8.RuneCountInString(line), "line %d differs in width", i)
	}

	// the pipe separators sit at the same rune positions on every row
	var pipeAt []int
	for pos, r := range []rune(lines[1]) {
		if r == '|' {
			pipeAt = append(pipeAt, pos)
		}
	}
	for i := 2; i < len(lines)-1; i++ {
		if strings.HasPrefix(lines[i], "+-") {
			continue
		}
		for _, pos := range pipeAt {
			assert.Equal(t, '|', []rune(lines[i])[pos], "line %d pipe shifted", i)
		}
	}
}

func TestTable_MissingCellsRenderEmpty(t *testing.T) {
	out := AutoTable([]string{"A", "B"}, [][]string{{"x"}}, nil)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	// second column of the data row is all spaces
	assert.Contains(t, lines[3], "| x")
	assert.Equal(t, len(lines[0]), len(lines[3]))
}

func TestTable_FixedWidthTruncates(t *testing.T) {
	out := Table([]string{"A"}, [][]string{{"abcdefghij"}}, []int{4}, nil)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "| abcd |", lines[3])
}

func TestTable_FixedWidthTruncatesOnRuneBoundary(t *testing.T) {
	// truncation must never split a multi-byte rune mid-sequence
	out := Table([]string{"A"}, [][]string{{"ab — cd"}}, []int{4}, nil)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "| ab — |", lines[3])
	assert.True(t, utf8.ValidString(lines[3]))
}

func TestMonospaceBlock(t *testing.T) {
	assert.Equal(t, "```\ntable\n```", MonospaceBlock("table"))
}
