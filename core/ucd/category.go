package ucd

import (
	"unicode"

	udata "github.com/benoitkugler/textlayout/unicodedata"
)

// GeneralCategory is a Unicode general category value.
type GeneralCategory uint8

// The Unicode general categories. Unassigned (Cn) is the zero value.
const (
	Unassigned              GeneralCategory = iota // Cn
	UppercaseLetter                                // Lu
	LowercaseLetter                                // Ll
	TitlecaseLetter                                // Lt
	ModifierLetter                                 // Lm
	OtherLetter                                    // Lo
	NonSpacingMark                                 // Mn
	SpacingCombiningMark                           // Mc
	EnclosingMark                                  // Me
	DecimalDigitNumber                             // Nd
	LetterNumber                                   // Nl
	OtherNumber                                    // No
	ConnectorPunctuation                           // Pc
	DashPunctuation                                // Pd
	OpenPunctuation                                // Ps
	ClosePunctuation                               // Pe
	InitialQuotePunctuation                        // Pi
	FinalQuotePunctuation                          // Pf
	OtherPunctuation                               // Po
	MathSymbol                                     // Sm
	CurrencySymbol                                 // Sc
	ModifierSymbol                                 // Sk
	OtherSymbol                                    // So
	SpaceSeparator                                 // Zs
	LineSeparator                                  // Zl
	ParagraphSeparator                             // Zp
	Control                                        // Cc
	Format                                         // Cf
	Surrogate                                      // Cs
	PrivateUse                                     // Co
)

var categoryNames = [...]string{
	"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm", "Sc", "Sk", "So", "Zs",
	"Zl", "Zp", "Cc", "Cf", "Cs", "Co",
}

func (cat GeneralCategory) String() string {
	if int(cat) >= len(categoryNames) {
		return "??"
	}
	return categoryNames[cat]
}

// IsLetter reports whether cat is one of the letter categories.
func (cat GeneralCategory) IsLetter() bool {
	switch cat {
	case UppercaseLetter, LowercaseLetter, TitlecaseLetter, ModifierLetter, OtherLetter:
		return true
	}
	return false
}

// IsMark reports whether cat is one of the combining-mark categories.
func (cat GeneralCategory) IsMark() bool {
	switch cat {
	case NonSpacingMark, SpacingCombiningMark, EnclosingMark:
		return true
	}
	return false
}

// generalCategories keys the standard-library category range tables,
// which the generated UCD lookup hands out.
var generalCategories = map[*unicode.RangeTable]GeneralCategory{
	unicode.Lu: UppercaseLetter,
	unicode.Ll: LowercaseLetter,
	unicode.Lt: TitlecaseLetter,
	unicode.Lm: ModifierLetter,
	unicode.Lo: OtherLetter,
	unicode.Mn: NonSpacingMark,
	unicode.Mc: SpacingCombiningMark,
	unicode.Me: EnclosingMark,
	unicode.Nd: DecimalDigitNumber,
	unicode.Nl: LetterNumber,
	unicode.No: OtherNumber,
	unicode.Pc: ConnectorPunctuation,
	unicode.Pd: DashPunctuation,
	unicode.Ps: OpenPunctuation,
	unicode.Pe: ClosePunctuation,
	unicode.Pi: InitialQuotePunctuation,
	unicode.Pf: FinalQuotePunctuation,
	unicode.Po: OtherPunctuation,
	unicode.Sm: MathSymbol,
	unicode.Sc: CurrencySymbol,
	unicode.Sk: ModifierSymbol,
	unicode.So: OtherSymbol,
	unicode.Zs: SpaceSeparator,
	unicode.Zl: LineSeparator,
	unicode.Zp: ParagraphSeparator,
	unicode.Cc: Control,
	unicode.Cf: Format,
	unicode.Cs: Surrogate,
	unicode.Co: PrivateUse,
}

// asciiCategory is the fast path for the bottom 128 code points.
var asciiCategory [128]GeneralCategory

func init() {
	for i := rune(0); i < 128; i++ {
		if cat, ok := generalCategories[udata.LookupType(i)]; ok {
			asciiCategory[i] = cat
		}
	}
}

// CategoryFor returns the Unicode general category of r. Unassigned code
// points (and r outside the scalar range) answer Unassigned.
func CategoryFor(r rune) GeneralCategory {
	if r >= 0 && r < 128 {
		return asciiCategory[r]
	}
	if cat, ok := generalCategories[udata.LookupType(r)]; ok {
		return cat
	}
	return Unassigned
}
