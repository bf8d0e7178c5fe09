/*
Package irctext handles inline display-control markers in IRC message text.

IRC clients understand a small alphabet of reserved control bytes embedded
in message bodies: style toggles (bold, italics, underline, reverse video),
a reset, and a colour code optionally followed by decimal colour indices.
Markers never nest and carry no matching close tag; rendering is a pure
left-to-right replay of markers over a six-field render state.

This package defines the marker grammar and provides a tokenizer, a render
state replayer, and display-width accounting (markers occupy bytes on the
wire but no columns on screen). Subpackages build on it:

	minify    rewrite marker streams into their minimal equivalent form
	layout    width-constrained tabular layout of marked-up strings
	wrap      line wrapping of marked-up text under a column ceiling
	console   ANSI terminal preview of marked-up text
	htmltext  conversion of inline HTML fragments into marked-up text

All operations are pure functions over immutable inputs; the package owns
no state and is safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/
package irctext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'irctext'
func tracer() tracing.Trace {
	return tracing.Select("irctext")
}

// Error is the error type for the irctext module.
type Error string

func (e Error) Error() string { return string(e) }

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")
