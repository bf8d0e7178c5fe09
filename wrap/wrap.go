package wrap

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"github.com/ircforge/irctext"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Lines splits marked-up text into lines of at most width display columns,
// breaking at UAX#14 line break opportunities. An unbreakable fragment
// wider than the line occupies a line of its own. Existing line breaks are
// preserved; trailing whitespace of every produced line is trimmed.
//
// A width of zero or less disables wrapping and only splits on existing
// line breaks.
func Lines(s string, width int) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(s string, width int) []string {
	stripped, ends := stripMap(s)
	if width <= 0 || utf8.RuneCountInString(stripped) <= width {
		return []string{strings.TrimRight(s, " \t")}
	}
	breaks := breakPositions(stripped, width)
	lines := make([]string, 0, len(breaks))
	prev := 0
	for _, b := range breaks {
		cut := len(s)
		if b < len(stripped) {
			if b == 0 {
				continue
			}
			cut = ends[b-1]
		}
		lines = append(lines, strings.TrimRight(s[prev:cut], " \t"))
		prev = cut
	}
	if prev < len(s) {
		lines = append(lines, strings.TrimRight(s[prev:], " \t"))
	}
	return lines
}

// stripMap strips markers and combining overlines from s and returns, for
// every stripped byte, the offset just past its source bytes in s. A cut
// of the stripped text at byte b therefore maps to cutting s at ends[b-1],
// which leaves markers sitting between two lines attached to the second
// one.
func stripMap(s string) (string, []int) {
	var strip []byte
	ends := make([]int, 0, len(s))
	pos := 0
	for _, seg := range irctext.Tokenize(s) {
		if seg.Marker != nil {
			pos += len(seg.String())
			continue
		}
		text := seg.Text
		i := 0
		for i < len(text) {
			if strings.HasPrefix(text[i:], irctext.CombiningOverline) {
				i += len(irctext.CombiningOverline)
				// the overline clings to its base character
				if len(ends) > 0 {
					ends[len(ends)-1] = pos + i
				}
				continue
			}
			strip = append(strip, text[i])
			i++
			ends = append(ends, pos+i)
		}
		pos += len(text)
	}
	return string(strip), ends
}

/*
First-fit line breaking:

	1. |  SpaceLeft := LineWidth
	2. |  for each Fragment in Text
	3. |      if Width(Fragment) > SpaceLeft
	4. |           insert line break before Fragment
	5. |           SpaceLeft := LineWidth - Width(Fragment)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - Width(Fragment)
*/
func breakPositions(stripped string, width int) []int {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(stripped)))
	spaceleft := width
	breaks := make([]int, 0, 8)
	prevpos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := utf8.RuneCountInString(frag)
		if fraglen >= spaceleft {
			if linestart { // fragment is too long for a line
				pos := prevpos + len(frag)
				breaks = append(breaks, pos)
				tracer().Debugf("break @ %d", pos)
				spaceleft = width
			} else { // fragment overshoots line
				breaks = append(breaks, prevpos)
				tracer().Debugf("break @ %d", prevpos)
				spaceleft = width - fraglen
			}
		} else { // no break, just append the fragment to the current line
			spaceleft -= fraglen
			linestart = false
		}
		prevpos += len(frag)
	}
	if spaceleft < width { // we have a partial line to consume
		breaks = append(breaks, len(stripped))
	}
	return breaks
}
