package ucd

import (
	"testing"

	udata "github.com/benoitkugler/textlayout/unicodedata"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/bidi"
)

func TestLineBreakClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.ucd")
	defer teardown()
	//
	cases := []struct {
		r   rune
		cls LineBreakClass
	}{
		{'a', ClassAL},
		{'5', ClassNU},
		{' ', ClassSP},
		{'\n', ClassLF},
		{'\r', ClassCR},
		{'\t', ClassBA},
		{'!', ClassEX},
		{',', ClassIS},
		{'-', ClassHY},
		{'(', ClassOP},
		{')', ClassCP},
		{0x00A0, ClassGL},
		{0x2028, ClassBK},
		{0x200B, ClassZW},
		{0x200D, ClassZWJ},
		{0x05D0, ClassHL},
		{0x4E2D, ClassID},
		{0x1F1E6, ClassRI},
	}
	for i, c := range cases {
		if cls := LineBreakClassFor(c.r); cls != c.cls {
			t.Errorf("(%d) expected class of %#U to be %s, is %s", i, c.r, c.cls, cls)
		}
	}
}

func TestLineBreakClassNames(t *testing.T) {
	if ClassOP.String() != "OP" {
		t.Errorf("expected class OP to have string 'OP', has %s", ClassOP.String())
	}
	if ClassZWJ.String() != "ZWJ" {
		t.Errorf("expected class ZWJ to have string 'ZWJ', has %s", ClassZWJ.String())
	}
	if ClassXX.String() != "XX" {
		t.Errorf("expected class XX to have string 'XX', has %s", ClassXX.String())
	}
}

func TestGeneralCategories(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.ucd")
	defer teardown()
	//
	cases := []struct {
		r   rune
		cat GeneralCategory
	}{
		{'A', UppercaseLetter},
		{'a', LowercaseLetter},
		{'5', DecimalDigitNumber},
		{' ', SpaceSeparator},
		{'(', OpenPunctuation},
		{'+', MathSymbol},
		{'$', CurrencySymbol},
		{0x0301, NonSpacingMark},
		{0x4E2D, OtherLetter},
		{0x0903, SpacingCombiningMark},
	}
	for i, c := range cases {
		if cat := CategoryFor(c.r); cat != c.cat {
			t.Errorf("(%d) expected category of %#U to be %s, is %s", i, c.r, c.cat, cat)
		}
	}
	// the ASCII fast path must agree with the table lookup
	for r := rune(0); r < 128; r++ {
		if asciiCategory[r] != generalCategories[udata.LookupType(r)] {
			t.Errorf("ASCII fast path disagrees for %#U", r)
		}
	}
}

func TestGraphemeClusterClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.ucd")
	defer teardown()
	//
	cases := []struct {
		r   rune
		cls GraphemeClusterClass
	}{
		{'\r', GraphemeCR},
		{'\n', GraphemeLF},
		{0x0007, GraphemeControl},
		{0x0301, GraphemeExtend},
		{0x200D, GraphemeZWJ},
		{0x1F1E6, GraphemeRegionalIndicator},
		{0x0903, GraphemeSpacingMark},
		{0x1100, GraphemeHangulL},
		{0x1160, GraphemeHangulV},
		{0x11A8, GraphemeHangulT},
		{0xAC00, GraphemeHangulLV},
		{0xAC01, GraphemeHangulLVT},
		{0x231A, GraphemeExtendedPictographic},
		{'a', GraphemeOther},
	}
	for i, c := range cases {
		if cls := GraphemeClusterClassFor(c.r); cls != c.cls {
			t.Errorf("(%d) expected grapheme class of %#U to be %s, is %s", i, c.r, c.cls, cls)
		}
	}
}

func TestBidiClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.ucd")
	defer teardown()
	//
	if cls := BidiClassFor('a'); cls != bidi.L {
		t.Errorf("expected bidi class of 'a' to be L, is %v", cls)
	}
	if cls := BidiClassFor(0x05D0); cls != bidi.R {
		t.Errorf("expected bidi class of U+05D0 to be R, is %v", cls)
	}
	if cls := BidiClassFor(' '); cls != bidi.WS {
		t.Errorf("expected bidi class of ' ' to be WS, is %v", cls)
	}
	if cls := BidiClassFor('5'); cls != bidi.EN {
		t.Errorf("expected bidi class of '5' to be EN, is %v", cls)
	}
}
