package linebreak

import (
	"testing"

	"github.com/npillmayer/typeline/core/ucd"
)

func TestPairTableShape(t *testing.T) {
	// no break after open punctuation, whatever follows
	for next := ucd.ClassOP; next <= ucd.ClassCB; next++ {
		a := pairTable[ucd.ClassOP][next]
		if a != prohibitedBreak && a != combiningProhibitedBreak {
			t.Errorf("expected OP×%s to prohibit a break, is %s", next, a)
		}
	}
	// break after zero-width space, except before another ZW
	for next := ucd.ClassOP; next <= ucd.ClassCB; next++ {
		want := directBreak
		if next == ucd.ClassZW {
			want = prohibitedBreak
		}
		if a := pairTable[ucd.ClassZW][next]; a != want {
			t.Errorf("expected ZW×%s to be %s, is %s", next, want, a)
		}
	}
	// no row lets a combining mark detach from its base without spaces
	for cur := ucd.ClassOP; cur <= ucd.ClassCB; cur++ {
		if cur == ucd.ClassZW {
			continue
		}
		switch a := pairTable[cur][ucd.ClassCM]; a {
		case combiningIndirectBreak, combiningProhibitedBreak:
		default:
			t.Errorf("expected %s×CM to be a combining entry, is %s", cur, a)
		}
	}
}

func TestPairTableSpotChecks(t *testing.T) {
	cases := []struct {
		cur, next ucd.LineBreakClass
		want      breakAction
	}{
		{ucd.ClassAL, ucd.ClassAL, indirectBreak},
		{ucd.ClassAL, ucd.ClassOP, indirectBreak},
		{ucd.ClassHY, ucd.ClassAL, directBreak},
		{ucd.ClassAL, ucd.ClassHY, indirectBreak},
		{ucd.ClassNU, ucd.ClassIS, prohibitedBreak},
		{ucd.ClassIS, ucd.ClassNU, indirectBreak},
		{ucd.ClassRI, ucd.ClassRI, indirectBreak},
		{ucd.ClassEB, ucd.ClassEM, indirectBreak},
		{ucd.ClassID, ucd.ClassID, directBreak},
		{ucd.ClassB2, ucd.ClassB2, prohibitedBreak},
		{ucd.ClassSY, ucd.ClassHL, indirectBreak},
	}
	for i, c := range cases {
		if a := pairTable[c.cur][c.next]; a != c.want {
			t.Errorf("(%d) expected %s×%s to be %s, is %s", i, c.cur, c.next, c.want, a)
		}
	}
}
