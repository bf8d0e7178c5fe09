/*
Package layout arranges marked-up strings into fixed-width line blocks.

All width accounting uses display width (codepoint count of the visible
text), never byte length, so embedded control markers do not disturb
alignment. Padding is always plain spaces.

Three independent engines are provided: a bordered grid table with a
computed column count, justified row packing with evenly distributed
separators, and a column-aligned table over ragged rows. JoinUntil packs a
fixed-order prefix of items under a measured size ceiling.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'irctext'
func tracer() tracing.Trace {
	return tracing.Select("irctext")
}
