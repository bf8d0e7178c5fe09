/*
Package console renders marked-up IRC text on an ANSI terminal.

The preview maps marker render state to ANSI attributes: the sixteen IRC
colour indices map onto the standard and bright terminal colours, toggles
onto bold, italic, underline and reverse video. The mapping is cosmetic;
correctness contracts live in the core packages.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'irctext'
func tracer() tracing.Trace {
	return tracing.Select("irctext")
}
