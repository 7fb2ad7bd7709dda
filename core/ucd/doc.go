/*
Package ucd provides Unicode character property lookups for text processing.

The package answers four questions about a code point: its general category,
its UAX#14 line-break class, its UAX#29 grapheme-cluster class, and its
UAX#9 bidi character type. All lookups are total—every scalar value maps to
a defined answer—and are backed by tables generated offline from the Unicode
Character Database (via github.com/benoitkugler/textlayout/unicodedata and
golang.org/x/text/unicode/bidi). The property data tracks Unicode 13.0.0;
line-break classes follow UAX#14 revision 37.

Tables are immutable, process-wide state. There is no mutation API.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ucd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typeline.ucd'.
func tracer() tracing.Trace {
	return tracing.Select("typeline.ucd")
}
