package linebreak

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/typeline/core/codepoint"
	"github.com/npillmayer/typeline/core/ucd"
)

// A mixed bag of inputs for the scanner invariants.
var invariantSamples = []string{
	"Hello world",
	"Hello\nworld",
	"a\r\nb",
	"a\rb",
	"line one\nline two\r\nline three line four",
	"well-known problems, half-solved.",
	"🇬🇧🇩🇪🇫🇷 flags",
	"glued\u200Btogether and w\u200Dj",
	"ひらがなとカタカナ、漢字。",
	"עברית ascii עוד",
	"  leading and trailing  ",
	"numbers 3.14159 and (nested [brackets])",
	"𝄞 clef nbsp",
}

func TestBreaksMonotonicAndContained(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.linebreak")
	defer teardown()
	//
	for _, s := range invariantSamples {
		units := codepoint.Encode(s)
		breaks := collectBreaks(t, s)
		require.NotEmpty(t, breaks, "input %q", s)
		last := -1
		terminal := 0
		for _, b := range breaks {
			assert.Greater(t, b.Position, last, "positions must increase strictly in %q", s)
			assert.LessOrEqual(t, b.Position, len(units), "position past the end in %q", s)
			assert.LessOrEqual(t, b.Wrap, b.Position, "wrap beyond break position in %q", s)
			if b.Position == len(units) {
				terminal++
			}
			last = b.Position
		}
		assert.Equal(t, 1, terminal, "expected exactly one terminal break in %q", s)
	}
}

func TestWrapTrimsOnlyWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.linebreak")
	defer teardown()
	//
	for _, s := range invariantSamples {
		units := codepoint.Encode(s)
		for _, b := range collectBreaks(t, s) {
			for i := b.Wrap; i < b.Position; {
				cp, w := codepoint.Decode(units, i)
				cls := ucd.LineBreakClassFor(cp.Value())
				switch cls {
				case ucd.ClassSP, ucd.ClassBK, ucd.ClassLF, ucd.ClassCR, ucd.ClassNL:
					// trimmed region holds spaces and the terminator only
				default:
					t.Errorf("code point %v of class %s inside trimmed region [%d,%d) of %q",
						cp, cls, b.Wrap, b.Position, s)
				}
				i += w
			}
		}
	}
}

func TestNoBreakAfterZeroWidthJoiner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.linebreak")
	defer teardown()
	//
	samples := []string{
		"a\u200Db cd",
		"\u200Dstart",
		"emoji 👩\u200D🚒 sequence",
		"tail\u200D",
	}
	for _, s := range samples {
		units := codepoint.Encode(s)
		for _, b := range collectBreaks(t, s) {
			// the synthetic terminal break is always emitted, whatever ends the text
			if b.Position == 0 || b.Position >= len(units) {
				continue
			}
			cp, _ := codepoint.DecodeLast(units, b.Position)
			assert.NotEqual(t, ucd.ClassZWJ, ucd.LineBreakClassFor(cp.Value()),
				"break immediately after ZWJ at %d in %q", b.Position, s)
		}
	}
}

func TestRegionalIndicatorPairing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.linebreak")
	defer teardown()
	//
	// six regional indicators: breaks fall between pairs only
	input := "🇦🇧🇨🇩🇪🇫"
	units := codepoint.Encode(input)
	require.Len(t, units, 12)
	var positions []int
	for _, b := range collectBreaks(t, input) {
		positions = append(positions, b.Position)
	}
	assert.Equal(t, []int{4, 8, 12}, positions)
}

func TestRequiredBreaksFollowHardTerminators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.linebreak")
	defer teardown()
	//
	for _, s := range invariantSamples {
		units := codepoint.Encode(s)
		for _, b := range collectBreaks(t, s) {
			if !b.Required {
				continue
			}
			cp, _ := codepoint.DecodeLast(units, b.Position)
			cls := ucd.LineBreakClassFor(cp.Value())
			switch cls {
			case ucd.ClassBK, ucd.ClassLF, ucd.ClassNL, ucd.ClassCR:
				// a hard terminator indeed
			default:
				t.Errorf("required break at %d of %q follows %s", b.Position, s, cls)
			}
		}
	}
}
