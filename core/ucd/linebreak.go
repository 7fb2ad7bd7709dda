package ucd

import (
	"unicode"

	udata "github.com/benoitkugler/textlayout/unicodedata"
)

// LineBreakClass is a line-break class as defined by UAX#14.
//
// The declaration order is significant: classes up to and including CB are
// the classes a pair table is indexed with. The classes from AI onwards are
// resolved (AI, SG, XX, SA, CJ) or handled explicitly (BK, CR, LF, NL, SP)
// before any pair-table lookup takes place.
type LineBreakClass int8

// Line-break classes of UAX#14.
const (
	ClassOP  LineBreakClass = iota // Open Punctuation
	ClassCL                        // Close Punctuation
	ClassCP                        // Close Parenthesis
	ClassQU                        // Quotation
	ClassGL                        // Non-breaking ("Glue")
	ClassNS                        // Nonstarter
	ClassEX                        // Exclamation/Interrogation
	ClassSY                        // Symbols Allowing Break After
	ClassIS                        // Infix Numeric Separator
	ClassPR                        // Prefix Numeric
	ClassPO                        // Postfix Numeric
	ClassNU                        // Numeric
	ClassAL                        // Alphabetic
	ClassHL                        // Hebrew Letter
	ClassID                        // Ideographic
	ClassIN                        // Inseparable
	ClassHY                        // Hyphen
	ClassBA                        // Break After
	ClassBB                        // Break Before
	ClassB2                        // Break Opportunity Before and After
	ClassZW                        // Zero Width Space
	ClassCM                        // Combining Mark
	ClassWJ                        // Word Joiner
	ClassH2                        // Hangul LV Syllable
	ClassH3                        // Hangul LVT Syllable
	ClassJL                        // Hangul L Jamo
	ClassJV                        // Hangul V Jamo
	ClassJT                        // Hangul T Jamo
	ClassRI                        // Regional Indicator
	ClassEB                        // Emoji Base
	ClassEM                        // Emoji Modifier
	ClassZWJ                       // Zero Width Joiner
	ClassCB                        // Contingent Break Opportunity

	ClassAI // Ambiguous (Alphabetic or Ideographic)
	ClassBK // Mandatory Break
	ClassCJ // Conditional Japanese Starter
	ClassCR // Carriage Return
	ClassLF // Line Feed
	ClassNL // Next Line
	ClassSA // Complex Context Dependent (South East Asian)
	ClassSG // Surrogate
	ClassSP // Space
	ClassXX // Unknown
)

// ClassCount is the number of line-break classes.
const ClassCount = int(ClassXX) + 1

var lineBreakClassNames = [ClassCount]string{
	"OP", "CL", "CP", "QU", "GL", "NS", "EX", "SY", "IS", "PR", "PO", "NU",
	"AL", "HL", "ID", "IN", "HY", "BA", "BB", "B2", "ZW", "CM", "WJ", "H2",
	"H3", "JL", "JV", "JT", "RI", "EB", "EM", "ZWJ", "CB", "AI", "BK", "CJ",
	"CR", "LF", "NL", "SA", "SG", "SP", "XX",
}

func (c LineBreakClass) String() string {
	if c < 0 || int(c) >= ClassCount {
		return "??"
	}
	return lineBreakClassNames[c]
}

// lineBreakClasses keys the generated UCD range tables by class.
var lineBreakClasses = map[*unicode.RangeTable]LineBreakClass{
	udata.BreakOP:  ClassOP,
	udata.BreakCL:  ClassCL,
	udata.BreakCP:  ClassCP,
	udata.BreakQU:  ClassQU,
	udata.BreakGL:  ClassGL,
	udata.BreakNS:  ClassNS,
	udata.BreakEX:  ClassEX,
	udata.BreakSY:  ClassSY,
	udata.BreakIS:  ClassIS,
	udata.BreakPR:  ClassPR,
	udata.BreakPO:  ClassPO,
	udata.BreakNU:  ClassNU,
	udata.BreakAL:  ClassAL,
	udata.BreakHL:  ClassHL,
	udata.BreakID:  ClassID,
	udata.BreakIN:  ClassIN,
	udata.BreakHY:  ClassHY,
	udata.BreakBA:  ClassBA,
	udata.BreakBB:  ClassBB,
	udata.BreakB2:  ClassB2,
	udata.BreakZW:  ClassZW,
	udata.BreakCM:  ClassCM,
	udata.BreakWJ:  ClassWJ,
	udata.BreakH2:  ClassH2,
	udata.BreakH3:  ClassH3,
	udata.BreakJL:  ClassJL,
	udata.BreakJV:  ClassJV,
	udata.BreakJT:  ClassJT,
	udata.BreakRI:  ClassRI,
	udata.BreakEB:  ClassEB,
	udata.BreakEM:  ClassEM,
	udata.BreakZWJ: ClassZWJ,
	udata.BreakCB:  ClassCB,
	udata.BreakAI:  ClassAI,
	udata.BreakBK:  ClassBK,
	udata.BreakCJ:  ClassCJ,
	udata.BreakCR:  ClassCR,
	udata.BreakLF:  ClassLF,
	udata.BreakNL:  ClassNL,
	udata.BreakSA:  ClassSA,
	udata.BreakSG:  ClassSG,
	udata.BreakSP:  ClassSP,
	udata.BreakXX:  ClassXX,
}

// LineBreakClassFor returns the UAX#14 line-break class of r, before the
// LB1 resolution of AI, SG, XX, SA and CJ. Every scalar value has a class;
// unassigned code points answer XX.
func LineBreakClassFor(r rune) LineBreakClass {
	if c, ok := lineBreakClasses[udata.LookupBreakClass(r)]; ok {
		return c
	}
	tracer().Errorf("no line-break class for %#U", r)
	return ClassXX
}
