package layout

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"strings"

	"github.com/ircforge/irctext"
)

// TableConfig parameterizes NamedTable.
//
// The zero value gives a 100-column table with unlimited rows, empty
// headers and the default border colour.
type TableConfig struct {
	Size    int    // total width budget in display columns; 0 means 100
	RowMax  int    // cap on data rows; 0 means unlimited
	Header  string // header text, left-aligned
	RHeader string // additional header text, right-aligned
	Color   int    // border decoration colour index; 0 means 12 (light blue)
}

// Spacepad glues left and right together with enough spaces for the result
// to span length display columns.
func Spacepad(left, right string, length int) string {
	pad := length - irctext.DisplayWidth(left) - irctext.DisplayWidth(right)
	if pad < 0 {
		pad = 0
	}
	return left + strings.Repeat(" ", pad) + right
}

// NamedTable lays out a flat list of labels as a bordered grid table under
// a total width budget: a header row followed by divider-separated,
// width-padded data rows. The column count derives from the widest label;
// the last column is right-aligned, all others left-aligned.
//
// When a row cap is configured and exceeded, the longest remaining labels
// are removed one by one until the cap is satisfied, and the header is
// annotated with a truncation note. An empty label list yields an empty
// table.
func NamedTable(labels []string, cfg TableConfig) []string {
	if len(labels) == 0 {
		return []string{}
	}
	size := cfg.Size
	if size == 0 {
		size = 100
	}
	color := cfg.Color
	if color == 0 {
		color = 12
	}
	borderLeft := fmt.Sprintf("\x03%.2d⎢\x03", color)
	divider := fmt.Sprintf(" \x03%.2d⎪\x03 ", color)
	borderRight := fmt.Sprintf("\x03%.2d⎥\x03", color)

	results := make([]string, len(labels))
	copy(results, labels)

	biggest := widest(results)
	columns := gridColumns(size, biggest, len(results))
	rows := (len(results) + columns - 1) / columns

	rownum := ""
	if cfg.RowMax > 0 && rows > cfg.RowMax {
		// Drop the single longest remaining label until the cap holds.
		for rows > cfg.RowMax && len(results) > 1 {
			results = removeLongest(results)
			biggest = widest(results)
			columns = gridColumns(size, biggest, len(results))
			rows = (len(results) + columns - 1) / columns
		}
		rownum = fmt.Sprintf("(first %d rows) ", rows)
	}
	tracer().Debugf("irctext: grid table %d labels, %d columns, %d rows", len(results), columns, rows)

	header := Spacepad(
		fmt.Sprintf("%s\x03%.2d%s", cfg.Header, color, rownum),
		cfg.RHeader,
		columns*(biggest+3)-1,
	)
	data := []string{header}

	// An overlong header stretches the cells instead of overflowing.
	cellsize := biggest
	if hw := irctext.DisplayWidth(header); columns*(biggest+3)-1 < hw {
		cellsize = (hw-1)/columns - 1
	}

	for i := 0; i < rows; i++ {
		end := (i + 1) * columns
		if end > len(results) {
			end = len(results)
		}
		line := results[i*columns : end]
		padded := make([]string, 0, len(line))
		for index, cell := range line {
			pad := cellsize - irctext.DisplayWidth(cell)
			if pad < 0 {
				pad = 0
			}
			if index+1 == columns {
				padded = append(padded, strings.Repeat(" ", pad)+cell)
			} else {
				padded = append(padded, cell+strings.Repeat(" ", pad))
			}
		}
		data = append(data, borderLeft+strings.Join(padded, divider)+borderRight)
	}
	closeRaggedRow(data)
	return data
}

// closeRaggedRow shortens the border of an incomplete last row: the row
// above gets an underline at the cut position and the last row ends on a
// divider glyph instead of the right border.
func closeRaggedRow(data []string) {
	if len(data) <= 2 {
		return
	}
	last := []rune(data[len(data)-1])
	full := []rune(data[1])
	if len(last) >= len(full) {
		return
	}
	above := []rune(data[len(data)-2])
	cut := len(last) - 1
	if cut < 0 || cut > len(above) || len(last) < 2 {
		return
	}
	spliced := make([]rune, 0, len(above)+1)
	spliced = append(spliced, above[:cut]...)
	spliced = append(spliced, rune(irctext.Underline))
	spliced = append(spliced, above[cut:]...)
	data[len(data)-2] = string(spliced)
	data[len(data)-1] = string(last[:len(last)-2]) + " ⎪\x03"
}

// gridColumns computes how many (cell + divider) groups fit the width
// budget, at least one and at most n.
func gridColumns(size, biggest, n int) int {
	columns := (size - 2) / (biggest + 3)
	if columns > n {
		columns = n
	}
	if columns < 1 {
		columns = 1
	}
	return columns
}

func widest(labels []string) int {
	biggest := 0
	for _, label := range labels {
		if w := irctext.DisplayWidth(label); w > biggest {
			biggest = w
		}
	}
	return biggest
}

func removeLongest(labels []string) []string {
	longest, at := -1, 0
	for i, label := range labels {
		if w := irctext.DisplayWidth(label); w > longest {
			longest, at = w, i
		}
	}
	return append(labels[:at], labels[at+1:]...)
}
