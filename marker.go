package irctext

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"strings"
)

// Kind identifies a control marker. Kinds are the reserved protocol bytes
// themselves, so serializing a marker starts with a single byte(Kind).
type Kind byte

// The reserved control bytes, fixed by the IRC protocol.
const (
	Bold      Kind = 0x02
	Color     Kind = 0x03
	Reset     Kind = 0x0f
	Reverse   Kind = 0x16
	Italics   Kind = 0x1d
	Underline Kind = 0x1f
)

// IsToggle reports whether k flips a boolean style flag.
func (k Kind) IsToggle() bool {
	return k == Bold || k == Italics || k == Underline || k == Reverse
}

func (k Kind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Color:
		return "color"
	case Reset:
		return "reset"
	case Reverse:
		return "reverse"
	case Italics:
		return "italics"
	case Underline:
		return "underline"
	}
	return "unknown"
}

// Marker is a single display instruction: a style toggle, a reset, or a
// colour change.
//
// FG and BG hold the literal decimal digit groups of a colour marker and are
// empty when the corresponding component is absent. A colour marker with
// both components absent clears both colour slots rather than leaving them
// unchanged. Digits are stored verbatim, so "04" and "4" are distinct
// stored forms of the same colour index.
type Marker struct {
	Kind   Kind
	FG, BG string
}

// append serializes m onto buf in wire form.
func (m Marker) append(buf *strings.Builder) {
	buf.WriteByte(byte(m.Kind))
	if m.Kind != Color {
		return
	}
	buf.WriteString(m.FG)
	if m.BG != "" {
		buf.WriteByte(',')
		buf.WriteString(m.BG)
	}
}

// String returns the wire encoding of m.
func (m Marker) String() string {
	var buf strings.Builder
	m.append(&buf)
	return buf.String()
}

// SameColorIndex compares two colour digit groups by numeric value, i.e.
// ignoring a redundant leading zero. Empty (unset) only equals empty.
func SameColorIndex(a, b string) bool {
	return trimColorZero(a) == trimColorZero(b)
}

func trimColorZero(d string) string {
	if len(d) == 2 && d[0] == '0' {
		return d[1:]
	}
	return d
}

// RenderState is the style and colour state resulting from replaying
// markers in order. The zero value is the initial all-clear state.
//
// FG and BG hold colour digit groups as written in the message, or "" when
// the slot is unset.
type RenderState struct {
	Bold, Italics, Underline, Reverse bool
	FG, BG                            string
}

// Apply mutates the state according to a single marker.
func (st *RenderState) Apply(m Marker) {
	switch m.Kind {
	case Bold:
		st.Bold = !st.Bold
	case Italics:
		st.Italics = !st.Italics
	case Underline:
		st.Underline = !st.Underline
	case Reverse:
		st.Reverse = !st.Reverse
	case Reset:
		*st = RenderState{}
	case Color:
		if m.FG == "" && m.BG == "" {
			st.FG, st.BG = "", ""
			return
		}
		if m.FG != "" {
			st.FG = m.FG
		}
		if m.BG != "" {
			st.BG = m.BG
		}
	}
}

// IsClear reports whether the state equals the initial state.
func (st RenderState) IsClear() bool {
	return st == RenderState{}
}

// Equivalent reports whether two states render identically. Colour slots
// are compared by numeric index, so a redundant leading zero does not
// distinguish states.
func (st RenderState) Equivalent(other RenderState) bool {
	return st.Bold == other.Bold &&
		st.Italics == other.Italics &&
		st.Underline == other.Underline &&
		st.Reverse == other.Reverse &&
		SameColorIndex(st.FG, other.FG) &&
		SameColorIndex(st.BG, other.BG)
}
