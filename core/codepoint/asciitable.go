package codepoint

import (
	"github.com/npillmayer/typeline/core/ucd"
)

// The packed ASCII info table. One byte per code point below U+0080:
// bit 0x80 marks white space, bit 0x40 marks letters and digits, and the
// low 5 bits hold the general category code.
const (
	asciiWhiteSpace  byte = 0x80
	asciiLetterDigit byte = 0x40
	asciiCategory    byte = 0x1F
)

var asciiInfo [128]byte

func init() {
	for i := rune(0); i < 128; i++ {
		cat := ucd.CategoryFor(i)
		b := byte(cat) & asciiCategory
		switch i {
		case 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20: // White_Space below U+0080
			b |= asciiWhiteSpace
		}
		if cat.IsLetter() || cat == ucd.DecimalDigitNumber {
			b |= asciiLetterDigit
		}
		asciiInfo[i] = b
	}
}
