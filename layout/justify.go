package layout

import (
	"strings"

	"github.com/ircforge/irctext"
)

// JustifiedTable greedily packs items into rows of at most width display
// columns, assuming at least minsep separating spaces between neighbours,
// then pads every multi-item row out to the full width by distributing the
// leftover space evenly between items. A remainder after integer division
// goes to the leftmost gaps, so gap widths differ by at most one space.
func JustifiedTable(items []string, width, minsep int) []string {
	rows := [][]string{{}}
	for _, item := range items {
		occupied := irctext.DisplayWidth(item)
		for _, prev := range rows[len(rows)-1] {
			occupied += irctext.DisplayWidth(prev) + minsep
		}
		if occupied <= width {
			rows[len(rows)-1] = append(rows[len(rows)-1], item)
		} else {
			rows = append(rows, []string{item})
		}
	}

	table := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(row) == 1 {
			table = append(table, row[0])
			continue
		}
		rowlength := 0
		for _, item := range row {
			rowlength += irctext.DisplayWidth(item)
		}
		sepwidth := (width - rowlength) / (len(row) - 1)
		spares := (width - rowlength) % (len(row) - 1)
		var buf strings.Builder
		buf.WriteString(row[0])
		for i, item := range row[1:] {
			buf.WriteString(strings.Repeat(" ", sepwidth))
			if i < spares {
				buf.WriteByte(' ')
			}
			buf.WriteString(item)
		}
		table = append(table, buf.String())
	}
	return table
}
