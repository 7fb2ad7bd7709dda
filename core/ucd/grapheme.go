package ucd

import (
	"unicode"

	udata "github.com/benoitkugler/textlayout/unicodedata"
)

// GraphemeClusterClass is a grapheme-cluster break class as defined by
// UAX#29. Grapheme classes are not consumed by line breaking; they are
// declared here so that segmentation clients share one set of entry points.
type GraphemeClusterClass uint8

// Grapheme-cluster break classes of UAX#29.
const (
	GraphemeOther GraphemeClusterClass = iota
	GraphemeCR
	GraphemeLF
	GraphemeControl
	GraphemeExtend
	GraphemeZWJ
	GraphemeRegionalIndicator
	GraphemePrepend
	GraphemeSpacingMark
	GraphemeHangulL
	GraphemeHangulV
	GraphemeHangulT
	GraphemeHangulLV
	GraphemeHangulLVT
	GraphemeExtendedPictographic
)

var graphemeClassNames = [...]string{
	"Other", "CR", "LF", "Control", "Extend", "ZWJ", "RI", "Prepend",
	"SpacingMark", "L", "V", "T", "LV", "LVT", "ExtPict",
}

func (c GraphemeClusterClass) String() string {
	if int(c) >= len(graphemeClassNames) {
		return "??"
	}
	return graphemeClassNames[c]
}

// GraphemeClusterClassFor returns the UAX#29 grapheme-cluster class of r.
//
// The classification is derived from the general category, the Hangul
// syllable composition classes and the Extended_Pictographic property,
// following the derivation used by Pango's default break algorithm.
func GraphemeClusterClassFor(r rune) GraphemeClusterClass {
	switch r {
	case '\r':
		return GraphemeCR
	case '\n':
		return GraphemeLF
	case 0x200C: // ZERO WIDTH NON-JOINER
		return GraphemeExtend
	case 0x200D: // ZERO WIDTH JOINER
		return GraphemeZWJ
	}
	// Hangul syllables and jamo carry dedicated line-break classes; reuse them.
	switch LineBreakClassFor(r) {
	case ClassJL:
		return GraphemeHangulL
	case ClassJV:
		return GraphemeHangulV
	case ClassJT:
		return GraphemeHangulT
	case ClassH2:
		return GraphemeHangulLV
	case ClassH3:
		return GraphemeHangulLVT
	}
	switch udata.LookupType(r) {
	case unicode.Cc, unicode.Zl, unicode.Zp, unicode.Cs:
		return GraphemeControl
	case unicode.Cf:
		if (r >= 0x0600 && r <= 0x0605) || r == 0x06DD || r == 0x070F ||
			r == 0x08E2 || r == 0x0D4E || r == 0x110BD ||
			(r >= 0x111C2 && r <= 0x111C3) {
			return GraphemePrepend
		}
		if r >= 0xE0020 && r <= 0xE00FF { // tag characters
			return GraphemeExtend
		}
		return GraphemeControl
	case unicode.Me, unicode.Mn:
		return GraphemeExtend
	case unicode.Mc:
		return GraphemeSpacingMark
	case unicode.Sk:
		if r >= 0x1F3FB && r <= 0x1F3FF { // Fitzpatrick modifiers
			return GraphemeExtend
		}
	case unicode.So:
		if r >= 0x1F1E6 && r <= 0x1F1FF {
			return GraphemeRegionalIndicator
		}
	}
	if unicode.Is(udata.Extended_Pictographic, r) {
		return GraphemeExtendedPictographic
	}
	return GraphemeOther
}
