/*
Package wrap splits marked-up text into protocol-safe lines.

Line breaks are placed at UAX#14 line break opportunities of the visible
text, measured in display columns; control markers carry zero width and
stay attached to the text they style. Each produced line is an independent
protocol frame: style state is not re-emitted on continuation lines, and
callers minify per line.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/
package wrap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'irctext'
func tracer() tracing.Trace {
	return tracing.Select("irctext")
}
