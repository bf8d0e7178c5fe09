package minify

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"github.com/ircforge/irctext"
)

// toggleOrder is the canonical emission order for surviving toggles, so
// that repeated minification normalizes identically.
var toggleOrder = [...]irctext.Kind{
	irctext.Italics, irctext.Bold, irctext.Underline, irctext.Reverse,
}

// canonicalRun reduces one maximal contiguous marker run to its minimal
// equivalent form, given the render state in effect immediately before the
// run. An empty result means the run is a no-op and may be dropped.
func canonicalRun(prior irctext.RenderState, run []*irctext.Marker) []irctext.Marker {
	// Everything before the last reset is dead. The reset itself is only
	// needed if there is live state to clear.
	needReset := false
	if i := lastReset(run); i >= 0 {
		needReset = !prior.IsClear()
		prior = irctext.RenderState{}
		run = run[i+1:]
	}

	out := make([]irctext.Marker, 0, len(run)+1)
	if needReset {
		out = append(out, irctext.Marker{Kind: irctext.Reset})
	}

	// Fold colour markers left to right into a net (fg, bg) target.
	fg, bg := prior.FG, prior.BG
	sawColor := false
	for _, m := range run {
		if m.Kind != irctext.Color {
			continue
		}
		sawColor = true
		if m.FG == "" && m.BG == "" {
			fg, bg = "", ""
			continue
		}
		if m.FG != "" {
			fg = m.FG
		}
		if m.BG != "" {
			bg = m.BG
		}
	}
	if sawColor {
		out = append(out, colorTransition(prior, fg, bg)...)
	}

	// Toggles applied an even number of times cancel; odd parity leaves
	// exactly one instance, emitted in canonical order.
	var parity [4]int
	for _, m := range run {
		for i, k := range toggleOrder {
			if m.Kind == k {
				parity[i]++
			}
		}
	}
	for i, k := range toggleOrder {
		if parity[i]%2 == 1 {
			out = append(out, irctext.Marker{Kind: k})
		}
	}
	return out
}

// colorTransition emits the minimal colour markers that move the colour
// slots from prior to (fg, bg). Components equal to the prior state are
// omitted. The grammar has no "clear one slot" form, so clearing a single
// slot while the other stays populated takes a bare clear plus a re-set.
func colorTransition(prior irctext.RenderState, fg, bg string) []irctext.Marker {
	sameFG := irctext.SameColorIndex(prior.FG, fg)
	sameBG := irctext.SameColorIndex(prior.BG, bg)
	switch {
	case sameFG && sameBG:
		return nil
	case fg == "" && bg == "":
		return []irctext.Marker{{Kind: irctext.Color}}
	case fg == "" && prior.FG != "":
		return []irctext.Marker{
			{Kind: irctext.Color},
			{Kind: irctext.Color, BG: bg},
		}
	case bg == "" && prior.BG != "":
		return []irctext.Marker{
			{Kind: irctext.Color},
			{Kind: irctext.Color, FG: fg},
		}
	}
	m := irctext.Marker{Kind: irctext.Color}
	if !sameFG {
		m.FG = fg
	}
	if !sameBG {
		m.BG = bg
	}
	return []irctext.Marker{m}
}

func lastReset(run []*irctext.Marker) int {
	for i := len(run) - 1; i >= 0; i-- {
		if run[i].Kind == irctext.Reset {
			return i
		}
	}
	return -1
}
