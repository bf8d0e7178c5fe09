/*
Package htmltext converts inline HTML fragments into marked-up IRC text.

Only inline phrasing elements have marker equivalents: b and strong become
bold, i and em italics, u underline. Everything else contributes its
textual content unchanged; character entities are resolved. The intended
input is a paragraph-like fragment, e.g. a snippet scraped from a web
service reply.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/
package htmltext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'irctext'
func tracer() tracing.Trace {
	return tracing.Select("irctext")
}
