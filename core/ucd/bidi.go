package ucd

import (
	"golang.org/x/text/unicode/bidi"
)

// BidiClassFor returns the bidi character type of r as defined by UAX#9.
// The only consumer inside this module is white-space classification, but
// bidi reordering clients share the same entry point.
func BidiClassFor(r rune) bidi.Class {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}
