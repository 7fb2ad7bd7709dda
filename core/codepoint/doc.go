/*
Package codepoint implements Unicode scalar values and UTF-16 decoding.

A Codepoint is a validated scalar value in the range U+0000..U+10FFFF.
Values in the surrogate block occur only transiently while decoding UTF-16;
the public type never holds one. The package additionally provides a total
UTF-16 decoder over 16-bit code units, reading forwards and backwards, which
substitutes U+FFFD for malformed input rather than failing.

Clients of this package are text segmentation (line breaking in particular)
and the font/table subsystems of the typeline family, which all share this
codepoint surface.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codepoint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typeline.core'.
func tracer() tracing.Trace {
	return tracing.Select("typeline.core")
}
