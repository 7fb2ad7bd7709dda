package codepoint

import (
	"fmt"

	"github.com/npillmayer/typeline/core"
	"golang.org/x/text/unicode/bidi"
)

// Codepoint is a Unicode scalar value in the range U+0000..U+10FFFF.
// Once constructed through New or the UTF-16 decoder, a Codepoint is valid:
// it is in range and outside the surrogate block.
type Codepoint rune

// Replacement is the Unicode replacement character U+FFFD. The decoder
// substitutes it for malformed UTF-16 input.
const Replacement Codepoint = 0xFFFD

const (
	maxScalar  = 0x10FFFF
	surrMin    = 0xD800 // first high surrogate
	surrLowMin = 0xDC00 // first low surrogate
	surrMax    = 0xDFFF // last low surrogate
)

// New validates n as a Unicode scalar value. Surrogate values and values
// outside U+0000..U+10FFFF are rejected with an EINVALID error.
func New(n rune) (Codepoint, error) {
	if n < 0 || n > maxScalar || (n >= surrMin && n <= surrMax) {
		tracer().Debugf("rejecting code point candidate %#x", n)
		return Replacement, core.Error(core.EINVALID, "not a Unicode scalar value: %#U", n)
	}
	return Codepoint(n), nil
}

// Value returns cp as a rune.
func (cp Codepoint) Value() rune {
	return rune(cp)
}

func (cp Codepoint) String() string {
	return fmt.Sprintf("%#U", rune(cp))
}

// IsASCII reports whether cp is in the ASCII range.
func (cp Codepoint) IsASCII() bool {
	return cp <= 0x7F
}

// IsBMP reports whether cp is in the Basic Multilingual Plane, i.e. whether
// it occupies a single UTF-16 code unit.
func (cp Codepoint) IsBMP() bool {
	return cp <= 0xFFFF
}

// IsBreakChar reports whether cp mandates the end of a line: LF, VT, FF,
// CR, NEL, LINE SEPARATOR or PARAGRAPH SEPARATOR.
func (cp Codepoint) IsBreakChar() bool {
	switch cp {
	case 0x0A, 0x0B, 0x0C, 0x0D, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// IsWhiteSpace reports whether cp is white space. ASCII answers come from
// the packed info table; other BMP code points are white space iff their
// bidi character type is WS. Code points outside the BMP answer false.
func (cp Codepoint) IsWhiteSpace() bool {
	if cp.IsASCII() {
		return asciiInfo[cp]&asciiWhiteSpace != 0
	}
	if cp.IsBMP() {
		props, _ := bidi.LookupRune(rune(cp))
		return props.Class() == bidi.WS
	}
	return false
}

// IsLetterOrDigit reports whether an ASCII cp is a letter or a decimal
// digit. Non-ASCII code points answer false; clients needing the full
// classification consult package ucd.
func (cp Codepoint) IsLetterOrDigit() bool {
	return cp.IsASCII() && asciiInfo[cp]&asciiLetterDigit != 0
}
