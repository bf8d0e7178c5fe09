package layout

import (
	"strings"

	"github.com/ircforge/irctext"
)

// AlignTable column-aligns ragged rows: every cell is padded to the widest
// display width of its column, computed over the rows that have that
// column, and cells are joined with sep. Rows keep their own cell count.
func AlignTable(rows [][]string, sep string) []string {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	if columns == 0 {
		return []string{}
	}
	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			if w := irctext.DisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	table := make([]string, 0, len(rows))
	for _, row := range rows {
		padded := make([]string, len(row))
		for i, cell := range row {
			padded[i] = cell + strings.Repeat(" ", widths[i]-irctext.DisplayWidth(cell))
		}
		table = append(table, strings.Join(padded, sep))
	}
	return table
}
