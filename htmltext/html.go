package htmltext

/*
BSD 3-Clause License

Copyright (c) 2024–25, the irctext authors

Please refer to the License file in the repository root.
*/

import (
	"io"
	"strings"

	"github.com/ircforge/irctext"
	"golang.org/x/net/html"
)

// markerFor maps inline HTML element names to their toggle marker.
func markerFor(name string) (irctext.Kind, bool) {
	switch name {
	case "b", "strong":
		return irctext.Bold, true
	case "i", "em":
		return irctext.Italics, true
	case "u", "ins":
		return irctext.Underline, true
	}
	return 0, false
}

// InnerText renders the textual content of an HTML element and all its
// descendents as marked-up text, the way
//
//	document.getElementById("myNode").innerText
//
// would collect it in JavaScript, with inline styling elements translated
// to toggle markers. CSS styling is not respected; clients should provide
// a paragraph-like element.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", irctext.ErrIllegalArguments
	}
	var buf strings.Builder
	collectText(n, &buf)
	return buf.String(), nil
}

func collectText(n *html.Node, buf *strings.Builder) {
	var toggle irctext.Kind
	if n.Type == html.ElementNode {
		if k, ok := markerFor(n.Data); ok {
			tracer().Debugf("irctext: html <%s> maps to %s marker", n.Data, k)
			toggle = k
			buf.WriteByte(byte(k))
		}
	} else if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, buf)
	}
	if toggle != 0 {
		// a second toggle flips the style back off
		buf.WriteByte(byte(toggle))
	}
}

// Text converts an HTML fragment into marked-up text. The fragment should
// reflect the content of a paragraph-like element.
func Text(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	for _, n := range nodes {
		collectText(n, &buf)
	}
	return buf.String(), nil
}

// Unescape resolves HTML character references in a plain string.
func Unescape(s string) string {
	return html.UnescapeString(s)
}
