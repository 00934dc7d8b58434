package ops

import (
	"testing"

	"github.com/dshills/tofu/internal/rope"
	"github.com/dshills/tofu/internal/selection"
)

func TestDeletionSingleRegion(t *testing.T) {
	r := rope.FromBytes([]byte("abcdef"))
	sel := selection.NewSet(selection.Region{Tail: 1, Caret: 3}) // [1,3]

	d := Deletion(r, sel)
	out, err := d.Apply(r)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out.Bytes()) != "aef" {
		t.Fatalf("got %q, want aef", out.Bytes())
	}
}

func TestDeletionCoalescesOverlappingRegions(t *testing.T) {
	r := rope.FromBytes([]byte("0123456789"))
	sel := selection.Set{
		Regions: []selection.Region{
			{Tail: 2, Caret: 5}, // [2,5]
			{Tail: 4, Caret: 7}, // [4,7], overlaps previous
		},
		Main: 0,
	}

	d := Deletion(r, sel)
	if len(d.Ops) != 1 {
		t.Fatalf("expected overlapping regions to coalesce into one op, got %d", len(d.Ops))
	}
	out, err := d.Apply(r)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out.Bytes()) != "0189" {
		t.Fatalf("got %q, want 0189", out.Bytes())
	}
}

func TestPasteAfterInsertsYankedBytes(t *testing.T) {
	// Invariant 8: yank then paste-after with the same selection inserts
	// exactly the yanked bytes immediately after each region's max.
	r := rope.FromBytes([]byte("abcdef"))
	sel := selection.NewSet(selection.Region{Tail: 0, Caret: 1}) // [0,1] == "ab"
	yanked := r.Slice(sel.MainRegion().Min(), sel.MainRegion().Max()+1)

	d, caretOffset := Paste(r, sel, [][]byte{yanked}, true, 1)
	out, err := d.Apply(r)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out.Bytes()) != "ababcdef" {
		t.Fatalf("got %q, want ababcdef", out.Bytes())
	}
	if caretOffset != len(yanked)-1 {
		t.Fatalf("caretOffset = %d, want %d", caretOffset, len(yanked)-1)
	}
}

func TestPasteBeforeInsertsBeforeMin(t *testing.T) {
	r := rope.FromBytes([]byte("xyz"))
	sel := selection.NewSet(selection.Cursor(1))

	d, _ := Paste(r, sel, [][]byte{[]byte("Q")}, false, 1)
	out, err := d.Apply(r)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out.Bytes()) != "xQyz" {
		t.Fatalf("got %q, want xQyz", out.Bytes())
	}
}

func TestPasteEmptyRegisterIsNoOp(t *testing.T) {
	r := rope.FromBytes([]byte("abc"))
	sel := selection.NewSet(selection.Cursor(0))

	d, _ := Paste(r, sel, [][]byte{{}}, true, 3)
	if !d.IsIdentity() {
		t.Fatalf("pasting an empty register entry should be a no-op delta")
	}
}

func TestPasteRepeatsContentCountTimes(t *testing.T) {
	r := rope.FromBytes([]byte("ab"))
	sel := selection.NewSet(selection.Cursor(0))

	d, caretOffset := Paste(r, sel, [][]byte{[]byte("x")}, false, 3)
	out, err := d.Apply(r)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out.Bytes()) != "xxxab" {
		t.Fatalf("got %q, want xxxab", out.Bytes())
	}
	if caretOffset != 2 {
		t.Fatalf("caretOffset = %d, want 2", caretOffset)
	}
}

func TestInsertionInsertsAtEveryCaret(t *testing.T) {
	r := rope.FromBytes([]byte("ace"))
	sel := selection.Set{
		Regions: []selection.Region{selection.Cursor(1), selection.Cursor(3)}, // before 'c' and at end
		Main:    0,
	}

	d := Insertion(r, sel, 'X', false)
	out, err := d.Apply(r)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out.Bytes()) != "aXceX" {
		t.Fatalf("got %q, want aXceX", out.Bytes())
	}
}

func TestInsertionOverwriteReplacesByteUnderCaret(t *testing.T) {
	r := rope.FromBytes([]byte("abc"))
	sel := selection.NewSet(selection.Cursor(1))

	d := Insertion(r, sel, 'Z', true)
	out, err := d.Apply(r)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out.Bytes()) != "aZc" {
		t.Fatalf("got %q, want aZc", out.Bytes())
	}
}

func TestInsertionOverwriteAtEndOfRopeInsertsInstead(t *testing.T) {
	r := rope.FromBytes([]byte("ab"))
	sel := selection.NewSet(selection.Cursor(2))

	d := Insertion(r, sel, 'Z', true)
	out, err := d.Apply(r)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out.Bytes()) != "abZ" {
		t.Fatalf("got %q, want abZ", out.Bytes())
	}
}
