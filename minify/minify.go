package minify

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"strings"

	"github.com/ircforge/irctext"
)

// Minify rewrites and rearranges control markers to shorten a message
// without changing its rendering. Multi-line input is split on line breaks
// and each line is minified independently with a fresh render state, since
// lines travel as independent protocol frames.
//
// Minify is idempotent, preserves the render state in effect at every
// visible character, and never touches visible text.
func Minify(s string) string {
	if strings.ContainsRune(s, '\n') {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			lines[i] = minifyLine(line)
		}
		return strings.Join(lines, "\n")
	}
	return minifyLine(s)
}

// chunk is one canonicalized marker run together with the literal text
// that follows it, and the render states on either side of the run.
type chunk struct {
	canon       []irctext.Marker
	prior, post irctext.RenderState
	text        string
}

func minifyLine(s string) string {
	var state irctext.RenderState
	var run []*irctext.Marker
	var chunks []chunk

	for _, seg := range irctext.Tokenize(s) {
		if seg.Marker != nil {
			run = append(run, seg.Marker)
			continue
		}
		// A literal boundary: canonicalize the pending run. Runs after the
		// last literal never produce a chunk, which drops trailing markers
		// (style at end of line is not observable).
		prior := state
		for _, m := range run {
			state.Apply(*m)
		}
		chunks = append(chunks, chunk{canonicalRun(prior, run), prior, state, seg.Text})
		run = run[:0]
	}

	// A run that canonicalizes to nothing emits no bytes, so its literal
	// text sits directly behind the previous chunk's text in the output.
	// Merge it there before guarding, so the boundary guard sees the text
	// that actually follows each emitted marker.
	merged := chunks[:0]
	for _, c := range chunks {
		if len(c.canon) == 0 && len(merged) > 0 {
			merged[len(merged)-1].text += c.text
			continue
		}
		merged = append(merged, c)
	}

	var buf strings.Builder
	for _, c := range merged {
		appendRun(&buf, c.prior, c.post, c.canon, c.text)
		buf.WriteString(c.text)
	}
	out := shortenColors(buf.String())
	if len(out) < len(s) {
		tracer().Debugf("irctext: minified %d bytes to %d", len(s), len(out))
	}
	return out
}

// appendRun serializes a canonical marker run, guarding the boundary to the
// following literal text: a colour marker whose digit tail is not saturated
// must not be allowed to absorb literal digits (or a literal comma-digit
// pair as a background) on re-tokenization. Short components get their zero
// padding back, an omitted unchanged background is re-emitted, and a bare
// colour clear is replaced by a reset (when no toggle is live) or fenced
// with a cancelling toggle pair.
func appendRun(buf *strings.Builder, prior, post irctext.RenderState, canon []irctext.Marker, following string) {
	for i, m := range canon {
		if i == len(canon)-1 && m.Kind == irctext.Color {
			m = guardColorBoundary(prior, post, m, following, buf)
		}
		buf.WriteString(m.String())
	}
}

func guardColorBoundary(prior, post irctext.RenderState, m irctext.Marker, following string, buf *strings.Builder) irctext.Marker {
	digitNext := following != "" && isDigit(following[0])
	commaDigitNext := len(following) >= 2 && following[0] == ',' && isDigit(following[1])

	if m.FG == "" && m.BG == "" && (digitNext || commaDigitNext) {
		// bare colour clear; a reset clears the same state unless toggles live
		if !prior.Bold && !prior.Italics && !prior.Underline && !prior.Reverse {
			return irctext.Marker{Kind: irctext.Reset}
		}
		tracer().Debugf("irctext: fencing colour clear against literal digits")
		buf.WriteString(m.String())
		buf.WriteByte(byte(irctext.Reverse))
		return irctext.Marker{Kind: irctext.Reverse}
	}
	if digitNext {
		switch {
		case m.BG != "" && len(m.BG) < 2:
			m.BG = "0" + m.BG
		case m.BG == "" && m.FG != "" && len(m.FG) < 2:
			m.FG = "0" + m.FG
		}
	}
	if commaDigitNext && m.BG == "" && m.FG != "" {
		if post.BG != "" {
			// restore the omitted background so the literal comma stays literal
			m.BG = post.BG
		} else {
			buf.WriteString(m.String())
			buf.WriteByte(byte(irctext.Reverse))
			return irctext.Marker{Kind: irctext.Reverse}
		}
	}
	return m
}

// shortenColors drops the redundant leading zero of a two-digit colour
// component whenever the following character cannot extend the digit group:
// a comma, a non-digit, or the end of input.
func shortenColors(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	i := 0
	for i < len(s) {
		if irctext.Kind(s[i]) != irctext.Color {
			buf.WriteByte(s[i])
			i++
			continue
		}
		j := i + 1
		fgStart := j
		for j < len(s) && j-fgStart < 2 && isDigit(s[j]) {
			j++
		}
		fg := s[fgStart:j]
		bg := ""
		if j < len(s) && s[j] == ',' && j+1 < len(s) && isDigit(s[j+1]) {
			bgStart := j + 1
			j = bgStart
			for j < len(s) && j-bgStart < 2 && isDigit(s[j]) {
				j++
			}
			bg = s[bgStart:j]
		}
		digitBoundary := j < len(s) && isDigit(s[j])
		if len(fg) == 2 && fg[0] == '0' && (bg != "" || !digitBoundary) {
			fg = fg[1:]
		}
		if len(bg) == 2 && bg[0] == '0' && !digitBoundary {
			bg = bg[1:]
		}
		buf.WriteByte(byte(irctext.Color))
		buf.WriteString(fg)
		if bg != "" {
			buf.WriteByte(',')
			buf.WriteString(bg)
		}
		i = j
	}
	return buf.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
