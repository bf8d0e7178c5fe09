package wrap

import (
	"strings"
	"testing"

	"github.com/ircforge/irctext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLinesShortInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "irctext")
	defer teardown()
	//
	lines := Lines("short enough", 40)
	if len(lines) != 1 || lines[0] != "short enough" {
		t.Errorf("short input must pass through, got %v", lines)
	}
}

func TestLinesWidthCeiling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "irctext")
	defer teardown()
	//
	text := "the quick brown fox jumps over the lazy dog"
	lines := Lines(text, 16)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, line := range lines {
		if w := irctext.DisplayWidth(line); w > 16 {
			t.Errorf("line %q is %d columns wide, ceiling 16", line, w)
		}
	}
	joined := strings.Join(lines, " ")
	if strings.Join(strings.Fields(joined), " ") != text {
		t.Errorf("wrapping lost or reordered words: %v", lines)
	}
}

func TestLinesMarkersAreZeroWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "irctext")
	defer teardown()
	//
	text := "\x02the quick\x02 \x034brown fox jumps\x03 over the lazy dog"
	lines := Lines(text, 16)
	for _, line := range lines {
		if w := irctext.DisplayWidth(line); w > 16 {
			t.Errorf("line %q is %d display columns wide, ceiling 16", line, w)
		}
	}
	if got := strings.Join(strings.Fields(irctext.Strip(strings.Join(lines, " "))), " "); got != irctext.Strip(text) {
		t.Errorf("visible text changed under wrapping: %q", got)
	}
}

func TestLinesPreservesExistingBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "irctext")
	defer teardown()
	//
	lines := Lines("one\ntwo", 40)
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("existing breaks must survive, got %v", lines)
	}
}

func TestLinesNoWrapWithoutWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "irctext")
	defer teardown()
	//
	long := strings.Repeat("x ", 50)
	lines := Lines(long, 0)
	if len(lines) != 1 {
		t.Errorf("width 0 must disable wrapping, got %d lines", len(lines))
	}
}

func TestLinesTrimsTrailingWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "irctext")
	defer teardown()
	//
	for _, line := range Lines("padded words here   \nand more   ", 10) {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %q keeps trailing whitespace", line)
		}
	}
}
