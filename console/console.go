package console

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/ircforge/irctext"
	"golang.org/x/term"
)

// fgPalette maps the sixteen IRC colour indices onto ANSI foreground
// attributes: 0 white, 1 black, 2 blue, 3 green, 4 light red, 5 brown,
// 6 magenta, 7 orange, 8 yellow, 9 light green, 10 cyan, 11 light cyan,
// 12 light blue, 13 pink, 14 grey, 15 light grey.
var fgPalette = [16]color.Attribute{
	color.FgHiWhite, color.FgBlack, color.FgBlue, color.FgGreen,
	color.FgHiRed, color.FgRed, color.FgMagenta, color.FgYellow,
	color.FgHiYellow, color.FgHiGreen, color.FgCyan, color.FgHiCyan,
	color.FgHiBlue, color.FgHiMagenta, color.FgHiBlack, color.FgWhite,
}

var bgPalette = [16]color.Attribute{
	color.BgHiWhite, color.BgBlack, color.BgBlue, color.BgGreen,
	color.BgHiRed, color.BgRed, color.BgMagenta, color.BgYellow,
	color.BgHiYellow, color.BgHiGreen, color.BgCyan, color.BgHiCyan,
	color.BgHiBlue, color.BgHiMagenta, color.BgHiBlack, color.BgWhite,
}

// Attributes translates a render state into the ANSI attribute set used to
// display text under that state.
func Attributes(st irctext.RenderState) []color.Attribute {
	attrs := make([]color.Attribute, 0, 6)
	if st.Bold {
		attrs = append(attrs, color.Bold)
	}
	if st.Italics {
		attrs = append(attrs, color.Italic)
	}
	if st.Underline {
		attrs = append(attrs, color.Underline)
	}
	if st.Reverse {
		attrs = append(attrs, color.ReverseVideo)
	}
	if a, ok := paletteEntry(st.FG, &fgPalette); ok {
		attrs = append(attrs, a)
	}
	if a, ok := paletteEntry(st.BG, &bgPalette); ok {
		attrs = append(attrs, a)
	}
	return attrs
}

func paletteEntry(digits string, palette *[16]color.Attribute) (color.Attribute, bool) {
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 15 {
		// extended colour indices have no portable ANSI equivalent
		tracer().Debugf("irctext: no terminal colour for index %q", digits)
		return 0, false
	}
	return palette[n], true
}

// Fprint writes marked-up text to w, translating markers into ANSI escape
// sequences. Output honours the color package's global NoColor switch, so
// non-terminal writers receive plain visible text.
func Fprint(w io.Writer, s string) error {
	var state irctext.RenderState
	for _, seg := range irctext.Tokenize(s) {
		if seg.Marker != nil {
			state.Apply(*seg.Marker)
			continue
		}
		text := strings.ReplaceAll(seg.Text, irctext.CombiningOverline, "")
		if attrs := Attributes(state); len(attrs) > 0 {
			if _, err := color.New(attrs...).Fprint(w, text); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}

// Print renders marked-up text to stdout.
func Print(s string) error {
	return Fprint(os.Stdout, s)
}

// WidthFromTerminal returns a layout width budget derived from the current
// terminal, leaving some slack on wide terminals, or a conservative default
// of 65 columns when stdout is not interactive.
func WidthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil {
		return 65
	}
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}
