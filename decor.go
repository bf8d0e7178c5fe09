package irctext

import (
	"strings"
)

const combiningStrike = "̶"   // U+0336 combining long stroke overlay
const combiningLowLine = "̲" // U+0332 combining low line

// decorate interleaves a combining character with every rune of the visible
// text, leaving control markers untouched.
func decorate(s, combining string) string {
	var buf strings.Builder
	for _, seg := range Tokenize(s) {
		if seg.Marker != nil {
			seg.Marker.append(&buf)
			continue
		}
		for _, r := range seg.Text {
			buf.WriteString(combining)
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// Overline renders text with a combining overline on every character.
func Overline(s string) string {
	return decorate(s, CombiningOverline)
}

// Strikethrough renders text with a combining strike on every character.
func Strikethrough(s string) string {
	return decorate(s, combiningStrike)
}

// Underscore renders text with a combining low line on every character.
// Unlike the Underline marker this survives clients that ignore control
// codes.
func Underscore(s string) string {
	return decorate(s, combiningLowLine)
}

var smallcaps = map[rune]rune{
	'a': 'ᴀ', 'b': 'ʙ', 'c': 'ᴄ', 'd': 'ᴅ', 'e': 'ᴇ', 'f': 'ꜰ', 'g': 'ɢ',
	'h': 'ʜ', 'i': 'ɪ', 'j': 'ᴊ', 'k': 'ᴋ', 'l': 'ʟ', 'm': 'ᴍ', 'n': 'ɴ',
	'o': 'ᴏ', 'p': 'ᴘ', 'q': 'ǫ', 'r': 'ʀ', 's': 'ꜱ', 't': 'ᴛ', 'u': 'ᴜ',
	'v': 'ᴠ', 'w': 'ᴡ', 'x': 'x', 'y': 'ʏ', 'z': 'ᴢ',
}

// SmallCaps maps lowercase latin letters to their small-capital forms.
func SmallCaps(s string) string {
	return strings.Map(func(r rune) rune {
		if c, ok := smallcaps[r]; ok {
			return c
		}
		return r
	}, s)
}

// FullWidth maps printable ASCII to the corresponding fullwidth forms.
// The fullwidth block mirrors ASCII 0x21–0x7e at U+FF01–U+FF5E.
func FullWidth(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0x20 && r < 0x7f {
			return r - 0x21 + 0xff01
		}
		return r
	}, s)
}

// nickPalette holds the readable colour indices used for nick colouring,
// biased into the 0–15 range the colour marker understands.
var nickPalette = []int{19, 20, 22, 24, 25, 26, 27, 28, 29}

// NickColor deterministically picks a colour index for a nickname.
func NickColor(nick string) int {
	sum := 0
	for _, r := range nick {
		sum += int(r)
	}
	return nickPalette[sum%len(nickPalette)] - 16
}
