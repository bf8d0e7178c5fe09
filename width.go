package irctext

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"strings"
	"unicode/utf8"
)

// Strip removes all control markers (and combining overlines) from a
// message, leaving only the visible text. Strip shares the tokenizer's
// notion of "marker", so layout width accounting can never diverge from
// the minifier's.
func Strip(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, seg := range Tokenize(s) {
		if seg.Marker == nil {
			buf.WriteString(strings.ReplaceAll(seg.Text, CombiningOverline, ""))
		}
	}
	return buf.String()
}

// DisplayWidth is the number of display columns a message occupies: the
// codepoint count of its visible text. Markers contribute zero width.
func DisplayWidth(s string) int {
	return utf8.RuneCountInString(Strip(s))
}
