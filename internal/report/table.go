// Package report renders the operator-facing run summary as aligned markdown tables.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a markdown table. Columns listed in Right are right-aligned.
type Table struct {
	Right   map[int]bool
	Headers []string
	Rows    [][]string
}

// Render formats the table with every column padded to its display width.
func (t *Table) Render() string {
	colCount := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	// Max display width per column; at least 3 for the "---" separator.
	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = 3
	}

	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(strings.TrimSpace(cell)); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	measure(t.Headers)

	for _, row := range t.Rows {
		measure(row)
	}

	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, t.line(t.Headers, colWidths))
	lines = append(lines, t.separator(colWidths))

	for _, row := range t.Rows {
		lines = append(lines, t.line(row, colWidths))
	}

	return strings.Join(lines, "\n")
}

func (t *Table) line(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = strings.TrimSpace(row[j])
		}

		padding := strings.Repeat(" ", max(width-runewidth.StringWidth(content), 0))

		sb.WriteString(" ")

		if t.Right[j] {
			sb.WriteString(padding + content)
		} else {
			sb.WriteString(content + padding)
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func (t *Table) separator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		if t.Right[j] {
			sb.WriteString(strings.Repeat("-", width-1) + ":")
		} else {
			sb.WriteString(strings.Repeat("-", width))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
