package irctext

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"strings"
)

// CombiningOverline occupies storage but no display column and is therefore
// excluded from width accounting, like the control markers. It is not a
// marker itself and survives minification.
const CombiningOverline = "̅"

// Segment is one element of a tokenized message: a run of literal text, or
// a single control marker.
type Segment struct {
	Text   string  // literal text; empty for marker segments
	Marker *Marker // nil for literal text segments
}

// String returns the wire encoding of the segment.
func (seg Segment) String() string {
	if seg.Marker != nil {
		return seg.Marker.String()
	}
	return seg.Text
}

// Flatten re-serializes a segment stream. Flatten(Tokenize(s)) == s for
// every string s.
func Flatten(segs []Segment) string {
	var buf strings.Builder
	for _, seg := range segs {
		if seg.Marker != nil {
			seg.Marker.append(&buf)
		} else {
			buf.WriteString(seg.Text)
		}
	}
	return buf.String()
}

// Tokenize splits a message into literal text runs and control markers in a
// single left-to-right scan. It never fails: a colour byte whose digit tail
// does not match the grammar is emitted as a bare colour marker and the
// unparsed suffix stays literal text.
//
// Adjacent literal text is always merged, so the result alternates between
// marker segments and non-empty text segments.
func Tokenize(s string) []Segment {
	segs := make([]Segment, 0, 8)
	start := 0 // start of the pending literal run
	flush := func(end int) {
		if end > start {
			segs = append(segs, Segment{Text: s[start:end]})
		}
	}
	i := 0
	for i < len(s) {
		switch k := Kind(s[i]); k {
		case Bold, Reset, Reverse, Italics, Underline:
			flush(i)
			segs = append(segs, Segment{Marker: &Marker{Kind: k}})
			i++
			start = i
		case Color:
			flush(i)
			m := &Marker{Kind: Color}
			j := i + 1
			j = scanDigits(s, j, 2, &m.FG)
			if j < len(s) && s[j] == ',' {
				if j+1 < len(s) && isDigit(s[j+1]) {
					j = scanDigits(s, j+1, 2, &m.BG)
				} else {
					// comma without digits stays literal
					tracer().Debugf("irctext: colour marker with dangling comma at byte %d", i)
				}
			}
			segs = append(segs, Segment{Marker: m})
			i = j
			start = i
		default:
			i++
		}
	}
	flush(len(s))
	return segs
}

// scanDigits consumes up to max decimal digits of s starting at i, stores
// them in *out and returns the position after the last digit consumed.
func scanDigits(s string, i, max int, out *string) int {
	j := i
	for j < len(s) && j-i < max && isDigit(s[j]) {
		j++
	}
	*out = s[i:j]
	return j
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
