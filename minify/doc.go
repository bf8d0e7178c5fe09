/*
Package minify rewrites control-marker streams into minimal equivalent form.

Minification replays a message's markers over a render state and re-emits,
for every maximal marker run, the shortest sequence that transitions the
state identically: toggles cancel pairwise, colour codes fold into one
transition, everything before a reset disappears, redundant resets and
trailing runs vanish, and colour indices lose redundant leading zeros.

The transformation is idempotent and preserves the render state in effect
at every visible character, as well as the display width of the text.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/
package minify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'irctext'
func tracer() tracing.Trace {
	return tracing.Select("irctext")
}
