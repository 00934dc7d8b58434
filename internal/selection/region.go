package selection

import "fmt"

// Region is a pair of byte offsets: Tail (where the region started) and
// Caret (the active end, where typing and movement happen). When Tail ==
// Caret the region has no extent. Either offset may equal the rope's
// length — a "past-end" position.
type Region struct {
	Tail  int
	Caret int
}

// Cursor returns a degenerate region (no extent) at offset.
func Cursor(offset int) Region {
	return Region{Tail: offset, Caret: offset}
}

// New returns a region spanning [tail, caret) in whichever direction caret
// sits relative to tail.
func New(tail, caret int) Region {
	return Region{Tail: tail, Caret: caret}
}

// IsEmpty returns true if the region has no extent.
func (r Region) IsEmpty() bool {
	return r.Tail == r.Caret
}

// Min returns min(caret, tail).
func (r Region) Min() int {
	if r.Tail < r.Caret {
		return r.Tail
	}
	return r.Caret
}

// Max returns max(caret, tail).
func (r Region) Max() int {
	if r.Tail > r.Caret {
		return r.Tail
	}
	return r.Caret
}

// Len returns the byte extent of the region.
func (r Region) Len() int {
	return r.Max() - r.Min()
}

// IsForward returns true if caret >= tail.
func (r Region) IsForward() bool {
	return r.Caret >= r.Tail
}

// IsBackward returns true if caret < tail.
func (r Region) IsBackward() bool {
	return r.Caret < r.Tail
}

// Collapse sets tail := caret.
func (r Region) Collapse() Region {
	return Region{Tail: r.Caret, Caret: r.Caret}
}

// SwapCaret swaps caret and tail.
func (r Region) SwapCaret() Region {
	return Region{Tail: r.Caret, Caret: r.Tail}
}

// ToForward reorients the region so caret >= tail.
func (r Region) ToForward() Region {
	if r.IsForward() {
		return r
	}
	return r.SwapCaret()
}

// ToBackward reorients the region so caret <= tail.
func (r Region) ToBackward() Region {
	if r.IsBackward() {
		return r
	}
	return r.SwapCaret()
}

// InheritDirection returns a copy of r oriented like from.
func (r Region) InheritDirection(from Region) Region {
	if from.IsBackward() {
		return r.ToBackward()
	}
	return r.ToForward()
}

// JumpTo sets both tail and caret to offset.
func (r Region) JumpTo(offset int) Region {
	return Region{Tail: offset, Caret: offset}
}

// ExtendTo sets caret to offset, leaving tail unchanged.
func (r Region) ExtendTo(offset int) Region {
	return Region{Tail: r.Tail, Caret: offset}
}

// Clamp clamps both offsets to [0, maxLen].
func (r Region) Clamp(maxLen int) Region {
	return Region{Tail: clamp(r.Tail, 0, maxLen), Caret: clamp(r.Caret, 0, maxLen)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Contains returns true if offset lies in [min, max).
func (r Region) Contains(offset int) bool {
	return offset >= r.Min() && offset < r.Max()
}

// ContainsInclusive returns true if offset lies in [min, max].
func (r Region) ContainsInclusive(offset int) bool {
	return offset >= r.Min() && offset <= r.Max()
}

// Overlaps returns true if r and other share at least one byte.
func (r Region) Overlaps(other Region) bool {
	return r.Min() < other.Max() && other.Min() < r.Max()
}

// Touches returns true if r and other overlap or are adjacent.
func (r Region) Touches(other Region) bool {
	return r.Min() <= other.Max() && other.Min() <= r.Max()
}

// Equals returns true if both regions have the same tail and caret.
func (r Region) Equals(other Region) bool {
	return r.Tail == other.Tail && r.Caret == other.Caret
}

// SameRange returns true if both regions cover the same [min,max), ignoring
// direction.
func (r Region) SameRange(other Region) bool {
	return r.Min() == other.Min() && r.Max() == other.Max()
}

// String renders the region for diagnostics.
func (r Region) String() string {
	if r.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", r.Caret)
	}
	arrow := "->"
	if r.IsBackward() {
		arrow = "<-"
	}
	return fmt.Sprintf("Region(%d%s%d)", r.Tail, arrow, r.Caret)
}
