package layout

import (
	"github.com/ircforge/irctext"
)

// JoinUntil intercalates sep between parts for as long as the joined result
// stays within ceiling under the given measure. Parts are consumed in order
// and never reordered; the first part that would breach the ceiling stops
// the join. ok is false when not even the first part fits (or parts is
// empty), which callers must treat as "no feasible prefix" rather than an
// error.
//
// A nil measure defaults to irctext.DisplayWidth. The measure is assumed to
// be monotonically increasing under concatenation.
func JoinUntil(sep string, parts []string, ceiling int, measure func(string) int) (result string, ok bool) {
	if measure == nil {
		measure = irctext.DisplayWidth
	}
	for _, part := range parts {
		candidate := part
		if ok {
			candidate = result + sep + part
		}
		if measure(candidate) > ceiling {
			return result, ok
		}
		result, ok = candidate, true
	}
	return result, ok
}
