package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatTable lays rows out in columns padded to display width. Columns in
// rightAlign are padded on the left.
func formatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	widths := columnWidths(headers, rows)
	if len(widths) == 0 {
		return nil
	}
	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlign))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlign))
	}
	return lines
}

func columnWidths(headers []string, rows [][]string) []int {
	var widths []int
	grow := func(cells []string) {
		for i, cell := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	grow(headers)
	for _, row := range rows {
		grow(row)
	}
	return widths
}

func formatRow(row []string, widths []int, rightAlign map[int]bool) string {
	cells := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if rightAlign[i] {
			cells[i] = runewidth.FillLeft(cell, width)
		} else {
			cells[i] = runewidth.FillRight(cell, width)
		}
	}
	return strings.Join(cells, " ")
}
