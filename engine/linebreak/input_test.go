package linebreak

import (
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fragment is a minimal cord leaf for tests.
type fragment string

func (f fragment) Weight() uint64 {
	return uint64(len(f))
}

func (f fragment) String() string {
	return string(f)
}

func (f fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return fragment(f[:i]), fragment(f[i:])
}

func (f fragment) Substring(i, j uint64) []byte {
	return []byte(f)[i:j]
}

var _ cords.Leaf = fragment("")

func TestScanCord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeline.linebreak")
	defer teardown()
	//
	b := cords.NewBuilder()
	b.Append(fragment("Hello "))
	b.Append(fragment("world"))
	scanner := ScanCord(b.Cord())
	var breaks []Break
	for brk, ok := scanner.Next(); ok; brk, ok = scanner.Next() {
		breaks = append(breaks, brk)
	}
	want := []Break{
		{Position: 6, Wrap: 5, Required: false},
		{Position: 11, Wrap: 11, Required: false},
	}
	if len(breaks) != len(want) {
		t.Fatalf("expected %d breaks, have %d: %v", len(want), len(breaks), breaks)
	}
	for i := range want {
		if breaks[i] != want[i] {
			t.Errorf("break #%d: expected %v, have %v", i, want[i], breaks[i])
		}
	}
}
