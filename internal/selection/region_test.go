package selection

import "testing"

func TestRegionMinMax(t *testing.T) {
	r := Region{Tail: 10, Caret: 4}
	if r.Min() != 4 || r.Max() != 10 {
		t.Fatalf("Min/Max = %d/%d, want 4/10", r.Min(), r.Max())
	}
	if !r.IsBackward() || r.IsForward() {
		t.Fatalf("backward region misclassified")
	}
}

func TestRegionCollapseIdempotent(t *testing.T) {
	r := Region{Tail: 2, Caret: 9}
	once := r.Collapse()
	twice := once.Collapse()
	if !once.Equals(twice) {
		t.Fatalf("collapse not idempotent: %v vs %v", once, twice)
	}
	if once.Tail != 9 || once.Caret != 9 {
		t.Fatalf("collapse should set tail := caret, got %v", once)
	}
}

func TestRegionSwapCaret(t *testing.T) {
	r := Region{Tail: 3, Caret: 8}
	swapped := r.SwapCaret()
	if swapped.Tail != 8 || swapped.Caret != 3 {
		t.Fatalf("SwapCaret = %v", swapped)
	}
}

func TestRegionToForwardBackward(t *testing.T) {
	back := Region{Tail: 8, Caret: 3}
	fwd := back.ToForward()
	if !fwd.IsForward() || fwd.Min() != 3 || fwd.Max() != 8 {
		t.Fatalf("ToForward = %v", fwd)
	}
	again := fwd.ToBackward()
	if !again.IsBackward() {
		t.Fatalf("ToBackward = %v", again)
	}
}

func TestRegionClamp(t *testing.T) {
	r := Region{Tail: -5, Caret: 100}
	clamped := r.Clamp(10)
	if clamped.Tail != 0 || clamped.Caret != 10 {
		t.Fatalf("Clamp = %v", clamped)
	}
}

func TestRegionOverlapsAndTouches(t *testing.T) {
	a := Region{Tail: 0, Caret: 5}
	b := Region{Tail: 5, Caret: 10}
	if a.Overlaps(b) {
		t.Fatalf("adjacent regions should not overlap")
	}
	if !a.Touches(b) {
		t.Fatalf("adjacent regions should touch")
	}
}

func TestRegionMoveAndExtendClamp(t *testing.T) {
	r := Cursor(5)
	moved := r.Move(Right, 16, 10, 3)
	if moved.Tail != 8 || moved.Caret != 8 {
		t.Fatalf("Move = %v", moved)
	}

	extended := r.Extend(Right, 16, 10, 100)
	if extended.Tail != 5 || extended.Caret != 10 {
		t.Fatalf("Extend should clamp caret to maxLen: %v", extended)
	}
}

func TestRegionVerticalMove(t *testing.T) {
	r := Cursor(2)
	down := r.Move(Down, 16, 1000, 1)
	if down.Caret != 18 {
		t.Fatalf("Down move = %d, want 18", down.Caret)
	}
}

func TestJumpToBoundary(t *testing.T) {
	r := Cursor(20) // line 1 of a 16-byte-per-line view (offsets 16..31)
	left := r.JumpToBoundary(Left, 16, 1000)
	if left.Caret != 16 {
		t.Fatalf("left boundary = %d, want 16", left.Caret)
	}
	right := r.JumpToBoundary(Right, 16, 1000)
	if right.Caret != 31 {
		t.Fatalf("right boundary = %d, want 31", right.Caret)
	}
	up := r.JumpToBoundary(Up, 16, 1000)
	if up.Caret != 0 {
		t.Fatalf("up boundary = %d, want 0", up.Caret)
	}
	down := r.JumpToBoundary(Down, 16, 1000)
	if down.Caret != 1000 {
		t.Fatalf("down boundary = %d, want 1000", down.Caret)
	}
}
