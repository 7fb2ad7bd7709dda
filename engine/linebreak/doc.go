/*
Package linebreak implements Unicode line breaking (UAX#14).

Line breaking, also known as line wrap, determines the positions in a text
where a line may—or must—end. Finding these positions correctly for
multilingual text is governed by UAX#14 (https://www.unicode.org/reports/tr14/),
a set of more than 30 interacting rules over line-break classes.

The engine is a pair-table scanner: for each adjacent pair of resolved
line-break classes a two-dimensional table answers whether a break is
direct, indirect (possible only across spaces), prohibited, or one of two
combining-mark variants. A small set of exception flags layers the rules the
pair table cannot express (combining sequences after ZWJ, Hebrew letters
followed by hyphens, regional-indicator pairing, numeric sequences).

Typical usage:

	scanner := linebreak.ScanString("Hello world")
	for b, ok := scanner.Next(); ok; b, ok = scanner.Next() {
		// b.Position, b.Wrap, b.Required
	}

A Scanner is a single-pass cursor over an immutable UTF-16 buffer. It yields
break opportunities lazily and in strictly increasing position order,
terminating with exactly one break at the end of the text. Scanners are not
restartable and must not be shared between goroutines; scanning distinct
inputs concurrently is safe, as the underlying property tables are immutable.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linebreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typeline.linebreak'.
func tracer() tracing.Trace {
	return tracing.Select("typeline.linebreak")
}
