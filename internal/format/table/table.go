package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Split breaks each line on delim. Rows with fewer fields are padded with
// empty cells so every row has the same number of columns.
func Split(lines []string, delim string) [][]string {
	rows := make([][]string, len(lines))
	cols := 0
	for i, line := range lines {
		rows[i] = strings.Split(line, delim)
		for j := range rows[i] {
			rows[i][j] = strings.TrimSpace(rows[i][j])
		}
		if len(rows[i]) > cols {
			cols = len(rows[i])
		}
	}
	for i, row := range rows {
		for len(row) < cols {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}

// Format returns the rows padded according to the widest entry in each column.
// Trailing padding on the last column is trimmed.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := runewidth.StringWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - runewidth.StringWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
