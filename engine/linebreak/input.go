package linebreak

import (
	"github.com/npillmayer/cords"

	"github.com/npillmayer/typeline/core/codepoint"
)

// ScanCord creates a Scanner over the text of a cord, the rope structure
// paragraph text arrives in from the typesetting side. The cord's fragments
// are materialized into a single code-unit buffer up front; the scanner
// does not retain the cord.
func ScanCord(text cords.Cord) *Scanner {
	units := make([]uint16, 0, int(text.Len()))
	_ = text.EachLeaf(func(leaf cords.Leaf, pos uint64) error {
		units = append(units, codepoint.Encode(leaf.String())...)
		return nil
	})
	return NewScanner(units)
}
