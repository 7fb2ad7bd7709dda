package linebreak

import (
	"github.com/npillmayer/typeline/core/ucd"
)

// breakAction classifies the join between two adjacent line-break classes.
type breakAction int8

const (
	// A break opportunity exists between the two classes.
	directBreak breakAction = iota
	// A break opportunity exists only if the classes are separated by
	// one or more spaces.
	indirectBreak
	// Indirect break across a combining mark: break only after spaces;
	// otherwise the mark attaches to its base (LB9).
	combiningIndirectBreak
	// No break across a combining mark, not even after spaces (LB14 bases).
	combiningProhibitedBreak
	// No break opportunity exists, even across spaces.
	prohibitedBreak
)

var breakActionNames = [...]string{"direct", "indirect", "comb.indirect", "comb.prohibited", "prohibited"}

func (a breakAction) String() string {
	if int(a) >= len(breakActionNames) {
		return "??"
	}
	return breakActionNames[a]
}

// Pair table shortcuts.
const (
	di = directBreak
	in = indirectBreak
	ci = combiningIndirectBreak
	cp = combiningProhibitedBreak
	pr = prohibitedBreak
)

// pairTable holds the break action for adjacent line-break classes,
// indexed [current][next]. Contents follow the example pair table of
// UAX#14 (Table 2), extended with the EB, EM, ZWJ and CB rows and columns
// of revision 37. Only the resolved classes up to and including CB are ever
// looked up; rows and columns for the classes from AI onwards stay at the
// zero value and are unreachable.
var pairTable = [ucd.ClassCount][ucd.ClassCount]breakAction{
	//           OP  CL  CP  QU  GL  NS  EX  SY  IS  PR  PO  NU  AL  HL  ID  IN  HY  BA  BB  B2  ZW  CM  WJ  H2  H3  JL  JV  JT  RI  EB  EM  ZWJ CB
	/* OP  */ {pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, cp, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr, pr},
	/* CL  */ {di, pr, pr, in, in, pr, pr, pr, pr, in, in, di, di, di, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* CP  */ {di, pr, pr, in, in, pr, pr, pr, pr, in, in, in, in, in, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* QU  */ {pr, pr, pr, in, in, in, pr, pr, pr, in, in, in, in, in, in, in, in, in, in, in, pr, ci, pr, in, in, in, in, in, in, in, in, in, in},
	/* GL  */ {in, pr, pr, in, in, in, pr, pr, pr, in, in, in, in, in, in, in, in, in, in, in, pr, ci, pr, in, in, in, in, in, in, in, in, in, in},
	/* NS  */ {di, pr, pr, in, in, in, pr, pr, pr, di, di, di, di, di, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* EX  */ {di, pr, pr, in, in, in, pr, pr, pr, di, di, di, di, di, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* SY  */ {di, pr, pr, in, in, in, pr, pr, pr, di, di, in, di, in, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* IS  */ {di, pr, pr, in, in, in, pr, pr, pr, di, di, in, in, in, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* PR  */ {in, pr, pr, in, in, in, pr, pr, pr, di, di, in, in, in, in, di, in, in, di, di, pr, ci, pr, in, in, in, in, in, di, in, in, in, di},
	/* PO  */ {in, pr, pr, in, in, in, pr, pr, pr, di, di, in, in, in, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* NU  */ {in, pr, pr, in, in, in, pr, pr, pr, in, in, in, in, in, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* AL  */ {in, pr, pr, in, in, in, pr, pr, pr, in, in, in, in, in, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* HL  */ {in, pr, pr, in, in, in, pr, pr, pr, in, in, in, in, in, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* ID  */ {di, pr, pr, in, in, in, pr, pr, pr, di, in, di, di, di, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* IN  */ {di, pr, pr, in, in, in, pr, pr, pr, di, di, di, di, di, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* HY  */ {di, pr, pr, in, di, in, pr, pr, pr, di, di, in, di, di, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* BA  */ {di, pr, pr, in, di, in, pr, pr, pr, di, di, di, di, di, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* BB  */ {in, pr, pr, in, in, in, pr, pr, pr, in, in, in, in, in, in, in, in, in, in, in, pr, ci, pr, in, in, in, in, in, in, in, in, in, in},
	/* B2  */ {di, pr, pr, in, in, in, pr, pr, pr, di, di, di, di, di, di, di, in, in, di, pr, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* ZW  */ {di, di, di, di, di, di, di, di, di, di, di, di, di, di, di, di, di, di, di, di, pr, di, di, di, di, di, di, di, di, di, di, di, di},
	/* CM  */ {in, pr, pr, in, in, in, pr, pr, pr, di, di, in, in, in, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* WJ  */ {in, pr, pr, in, in, in, pr, pr, pr, in, in, in, in, in, in, in, in, in, in, in, pr, ci, pr, in, in, in, in, in, in, in, in, in, in},
	/* H2  */ {di, pr, pr, in, in, in, pr, pr, pr, di, in, di, di, di, di, in, in, in, di, di, pr, ci, pr, di, di, di, in, in, di, di, di, in, di},
	/* H3  */ {di, pr, pr, in, in, in, pr, pr, pr, di, in, di, di, di, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, in, di, di, di, in, di},
	/* JL  */ {di, pr, pr, in, in, in, pr, pr, pr, di, in, di, di, di, di, in, in, in, di, di, pr, ci, pr, in, in, in, in, di, di, di, di, in, di},
	/* JV  */ {di, pr, pr, in, in, in, pr, pr, pr, di, in, di, di, di, di, in, in, in, di, di, pr, ci, pr, di, di, di, in, in, di, di, di, in, di},
	/* JT  */ {di, pr, pr, in, in, in, pr, pr, pr, di, in, di, di, di, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, in, di, di, di, in, di},
	/* RI  */ {di, pr, pr, in, in, in, pr, pr, pr, di, di, di, di, di, di, di, in, in, di, di, pr, ci, pr, di, di, di, di, di, in, di, di, in, di},
	/* EB  */ {di, pr, pr, in, in, in, pr, pr, pr, di, in, di, di, di, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, in, in, di},
	/* EM  */ {di, pr, pr, in, in, in, pr, pr, pr, di, in, di, di, di, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* ZWJ */ {in, pr, pr, in, in, in, pr, pr, pr, di, di, in, in, in, di, in, in, in, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
	/* CB  */ {di, pr, pr, in, in, di, pr, pr, pr, di, di, di, di, di, di, di, di, di, di, di, pr, ci, pr, di, di, di, di, di, di, di, di, in, di},
}
