package linebreak

import (
	"github.com/npillmayer/typeline/core/codepoint"
	"github.com/npillmayer/typeline/core/ucd"
)

// Break is one line-break opportunity found by a Scanner.
type Break struct {
	// Position is the code-unit index immediately past the break; the next
	// line starts here.
	Position int
	// Wrap is the code-unit index at which the visible content of the line
	// ends, i.e. before a BK, LF or CR terminator (CR LF counting as one) and
	// any trailing spaces. An NL terminator is not trimmed.
	Wrap int
	// Required marks a mandatory break, caused by a hard line terminator
	// (BK, NL, LF, or CR not followed by LF).
	Required bool
}

// Scanner is a single-pass cursor over a UTF-16 buffer, yielding line-break
// opportunities in strictly increasing position order. A Scanner borrows its
// input for its lifetime and must not be shared between goroutines. It is
// not restartable; scanning again means constructing a fresh Scanner.
type Scanner struct {
	units        []uint16 // input, borrowed
	pos          int      // code-unit cursor
	lastBreak    int      // position of the break emitted last
	currentClass ucd.LineBreakClass
	nextClass    ucd.LineBreakClass
	first        bool // no code point consumed yet
	done         bool
	// Exception flags, layering the rules the pair table cannot express.
	// Names follow the UAX#14 rule each flag serves.
	lb8a      bool // last accepted code point was a ZWJ
	lb21a     bool // code point before the current one was a Hebrew letter
	lb22ex    bool // combining mark with a non-base predecessor
	lb24ex    bool // leading close punctuation
	lb25ex    bool // numeric-sequence punctuation context
	lb30      bool // alphanumeric run followed by non-bracket open punctuation
	lb31      bool // open-punctuation break-opportunity context
	lb30a     int  // regional-indicator run length, mod 2
	alphaNums int  // count of AL/HL/NU code points plus trailing CM
}

// NewScanner creates a Scanner over a buffer of UTF-16 code units.
func NewScanner(units []uint16) *Scanner {
	return &Scanner{
		units:        units,
		lastBreak:    -1,
		currentClass: ucd.ClassXX,
		nextClass:    ucd.ClassXX,
		first:        true,
	}
}

// ScanString creates a Scanner over the code units of s.
func ScanString(s string) *Scanner {
	return NewScanner(codepoint.Encode(s))
}

// resolveClass returns the line-break class of r with rule LB1 applied:
// AI, SG and XX resolve to AL; SA resolves to CM for combining marks and to
// AL otherwise; CJ resolves to NS.
func resolveClass(r rune) ucd.LineBreakClass {
	cls := ucd.LineBreakClassFor(r)
	switch cls {
	case ucd.ClassAI, ucd.ClassSG, ucd.ClassXX:
		return ucd.ClassAL
	case ucd.ClassSA:
		switch ucd.CategoryFor(r) {
		case ucd.NonSpacingMark, ucd.SpacingCombiningMark:
			return ucd.ClassCM
		}
		return ucd.ClassAL
	case ucd.ClassCJ:
		return ucd.ClassNS
	}
	return cls
}

// mapFirst adjusts the class of a code point which opens a line (LB2/LB3
// boundary conditions): newlines count as hard breaks, a leading space
// behaves like a word joiner.
func mapFirst(cls ucd.LineBreakClass) ucd.LineBreakClass {
	switch cls {
	case ucd.ClassLF, ucd.ClassNL:
		return ucd.ClassBK
	case ucd.ClassSP:
		return ucd.ClassWJ
	}
	return cls
}

// read consumes the code point at the cursor into nextClass and updates the
// exception flags.
func (s *Scanner) read() {
	cp, width := codepoint.Decode(s.units, s.pos)
	cls := resolveClass(cp.Value())
	s.pos += width
	s.track(cp, cls)
	s.nextClass = cls
}

// peekClass returns the resolved class of the code point following the one
// just consumed, without advancing the cursor.
func (s *Scanner) peekClass() ucd.LineBreakClass {
	cp, _ := codepoint.Decode(s.units, s.pos)
	return resolveClass(cp.Value())
}

// track performs the per-code-point bookkeeping for the exception flags.
// prev is the class of the last accepted code point; for combining marks
// it decides whether the mark sits on a breakable base.
func (s *Scanner) track(cp codepoint.Codepoint, cls ucd.LineBreakClass) {
	prev := s.currentClass
	if prev == ucd.ClassAL || prev == ucd.ClassHL || prev == ucd.ClassNU ||
		(s.alphaNums > 0 && cls == ucd.ClassCM) {
		s.alphaNums++
	}
	if cls == ucd.ClassCM {
		switch prev {
		case ucd.ClassBK, ucd.ClassCB, ucd.ClassEX, ucd.ClassLF, ucd.ClassNL,
			ucd.ClassSP, ucd.ClassZW, ucd.ClassCR:
			s.lb22ex = true
		}
		switch prev {
		case ucd.ClassBK, ucd.ClassCB, ucd.ClassEX, ucd.ClassLF, ucd.ClassNL,
			ucd.ClassSP, ucd.ClassZW, ucd.ClassCR, ucd.ClassZWJ:
			s.lb31 = true
		}
		if s.first {
			s.lb31 = true
		}
	}
	switch cls {
	case ucd.ClassPO, ucd.ClassPR, ucd.ClassSP:
		if s.first || prev == ucd.ClassAL {
			s.lb31 = true
		}
	}
	if s.lb31 && prev != ucd.ClassPO && prev != ucd.ClassPR &&
		cls == ucd.ClassOP && cp.Value() == '(' {
		s.lb31 = false
	}
	if s.first && (cls == ucd.ClassCL || cls == ucd.ClassCP) {
		s.lb24ex = true
	}
	if s.first && (cls == ucd.ClassCL || cls == ucd.ClassIS || cls == ucd.ClassSY) {
		s.lb25ex = true
	}
	if cls == ucd.ClassSP || cls == ucd.ClassWJ || cls == ucd.ClassAL {
		switch s.peekClass() {
		case ucd.ClassCL, ucd.ClassIS, ucd.ClassSY:
			s.lb25ex = true
		}
	}
	s.lb30 = s.alphaNums > 0 && cls == ucd.ClassOP &&
		cp.Value() != '(' && cp.Value() != '[' && cp.Value() != '{'
}

// Next advances past the next break opportunity and reports it. It returns
// false once the terminal break at the end of the input has been emitted
// (immediately, for empty input), and on every call after that.
func (s *Scanner) Next() (Break, bool) {
	if s.done {
		return Break{}, false
	}
	if s.first {
		if len(s.units) == 0 {
			s.done = true
			return Break{}, false
		}
		s.read()
		firstClass := s.nextClass
		s.first = false
		s.currentClass = mapFirst(firstClass)
		s.lb8a = firstClass == ucd.ClassZWJ
		s.lb30a = 0
	}
	for s.pos < len(s.units) {
		lastPosition := s.pos
		lastClass := s.nextClass
		s.read()
		// Hard terminator consumed on a previous step: the break sits in
		// front of the code point just read.
		if s.currentClass == ucd.ClassBK ||
			(s.currentClass == ucd.ClassCR && s.nextClass != ucd.ClassLF) {
			s.currentClass = mapFirst(s.nextClass)
			return s.emit(lastPosition, true), true
		}
		// Spaces and line terminators bypass the pair table (LB6, LB7).
		switch s.nextClass {
		case ucd.ClassSP:
			continue
		case ucd.ClassBK, ucd.ClassLF, ucd.ClassNL:
			s.currentClass = ucd.ClassBK
			continue
		case ucd.ClassCR:
			s.currentClass = ucd.ClassCR
			continue
		}
		shouldBreak := false
		switch pairTable[s.currentClass][s.nextClass] {
		case directBreak:
			shouldBreak = true
		case indirectBreak:
			if s.lb31 && s.nextClass == ucd.ClassOP {
				shouldBreak = true
				s.lb31 = false
			} else if s.lb30 {
				shouldBreak = true
				s.lb30 = false
				s.alphaNums = 0
			} else if s.lb25ex &&
				(s.nextClass == ucd.ClassPR || s.nextClass == ucd.ClassNU) {
				shouldBreak = true
				s.lb25ex = false
			} else if s.lb24ex &&
				(s.nextClass == ucd.ClassPO || s.nextClass == ucd.ClassPR) {
				shouldBreak = true
				s.lb24ex = false
			} else {
				shouldBreak = lastClass == ucd.ClassSP
			}
		case combiningIndirectBreak:
			shouldBreak = lastClass == ucd.ClassSP
			if !shouldBreak {
				// LB9: the mark attaches to its base; currentClass stays.
				continue
			}
		case combiningProhibitedBreak:
			if lastClass != ucd.ClassSP {
				// currentClass deliberately stays stale here as well.
				continue
			}
		case prohibitedBreak:
			// no break
		}
		// LB22: no break before IN, except after hard breaks and spaces,
		// or after a combining mark sitting on such a position.
		if s.nextClass == ucd.ClassIN {
			switch lastClass {
			case ucd.ClassBK, ucd.ClassCB, ucd.ClassEX, ucd.ClassLF,
				ucd.ClassNL, ucd.ClassSP, ucd.ClassZW:
				// keep shouldBreak
			case ucd.ClassCM:
				if s.lb22ex {
					s.lb22ex = false
				} else {
					shouldBreak = false
				}
			default:
				shouldBreak = false
			}
		}
		// LB8a: no break after ZWJ.
		if s.lb8a {
			shouldBreak = false
		}
		// LB21a: no break after Hebrew letter + hyphen.
		if s.lb21a && (s.currentClass == ucd.ClassHY || s.currentClass == ucd.ClassBA) {
			shouldBreak = false
			s.lb21a = false
		} else {
			s.lb21a = s.currentClass == ucd.ClassHL
		}
		// LB30a: break between regional-indicator pairs, never within one.
		if s.currentClass == ucd.ClassRI {
			s.lb30a++
			if s.lb30a == 2 && s.nextClass == ucd.ClassRI {
				shouldBreak = true
				s.lb30a = 0
			}
		} else {
			s.lb30a = 0
		}
		s.currentClass = s.nextClass
		s.lb8a = s.nextClass == ucd.ClassZWJ
		if shouldBreak {
			return s.emit(lastPosition, false), true
		}
	}
	// Terminal break at the end of the input.
	s.done = true
	if s.lastBreak >= len(s.units) {
		return Break{}, false
	}
	required := s.currentClass == ucd.ClassBK ||
		(s.currentClass == ucd.ClassCR && s.nextClass != ucd.ClassLF)
	return s.emit(len(s.units), required), true
}

func (s *Scanner) emit(pos int, required bool) Break {
	s.lastBreak = pos
	b := Break{
		Position: pos,
		Wrap:     s.findPriorNonWhitespace(pos),
		Required: required,
	}
	tracer().Debugf("line break at %d (wrap %d), required=%v", b.Position, b.Wrap, b.Required)
	return b
}

// findPriorNonWhitespace steps back from a break position over a BK, LF or
// CR terminator (a CR LF sequence counts as one) and any run of spaces, and
// returns the code-unit index where the visible line content ends.
func (s *Scanner) findPriorNonWhitespace(from int) int {
	if from > 0 {
		cp, width := codepoint.DecodeLast(s.units, from)
		switch cls := ucd.LineBreakClassFor(cp.Value()); cls {
		case ucd.ClassBK, ucd.ClassLF, ucd.ClassCR:
			from -= width
			if cls == ucd.ClassLF {
				if prior, w := codepoint.DecodeLast(s.units, from); ucd.LineBreakClassFor(prior.Value()) == ucd.ClassCR {
					from -= w
				}
			}
		}
	}
	for from > 0 {
		cp, width := codepoint.DecodeLast(s.units, from)
		if ucd.LineBreakClassFor(cp.Value()) != ucd.ClassSP {
			break
		}
		from -= width
	}
	return from
}
