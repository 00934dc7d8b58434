package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/tofu/internal/history"
	"github.com/dshills/tofu/internal/rope"
	"github.com/dshills/tofu/internal/selection"
)

func TestNewScratchIsEmptyAndNotDirty(t *testing.T) {
	b := NewScratch()
	if b.Len() != 0 {
		t.Fatalf("scratch buffer should be empty")
	}
	if b.IsDirty() {
		t.Fatalf("new buffer should not be dirty")
	}
	if b.Name() != "*scratch*" {
		t.Fatalf("Name() = %q, want *scratch*", b.Name())
	}
}

func TestApplyDeltaMarksDirtyAndTransportsSelection(t *testing.T) {
	b := NewScratch()
	b.rope = rope.FromBytes([]byte("hello"))
	b.sel = selection.NewSet(selection.Cursor(5))

	d := rope.SimpleEdit(5, 5, []byte("!"), 5)
	if _, err := b.ApplyDeltaOffsetCarets(d, 1, 0); err != nil {
		t.Fatalf("ApplyDeltaOffsetCarets: %v", err)
	}
	if !b.IsDirty() {
		t.Fatalf("buffer should be dirty after an edit")
	}
	if string(b.Rope().Bytes()) != "hello!" {
		t.Fatalf("rope = %q, want hello!", b.Rope().Bytes())
	}
	if b.Selection().MainCursorOffset() != 6 {
		t.Fatalf("caret = %d, want 6", b.Selection().MainCursorOffset())
	}
}

func TestUndoRedoThroughBuffer(t *testing.T) {
	b := NewScratch()
	b.rope = rope.FromBytes([]byte("abc"))
	b.sel = selection.NewSet(selection.Cursor(3))

	d := rope.SimpleEdit(3, 3, []byte("d"), 3)
	if _, err := b.ApplyDelta(d); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	if string(b.Rope().Bytes()) != "abcd" {
		t.Fatalf("rope = %q", b.Rope().Bytes())
	}

	if _, err := b.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if string(b.Rope().Bytes()) != "abc" {
		t.Fatalf("Undo did not restore original: %q", b.Rope().Bytes())
	}

	if _, err := b.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if string(b.Rope().Bytes()) != "abcd" {
		t.Fatalf("Redo did not restore edit: %q", b.Rope().Bytes())
	}

	if _, err := b.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if _, err := b.Undo(); err != history.ErrNothingToUndo {
		t.Fatalf("second Undo = %v, want ErrNothingToUndo", err)
	}
}

func TestYankSelectionsCopiesPerRegion(t *testing.T) {
	b := NewScratch()
	b.rope = rope.FromBytes([]byte("abcdef"))
	b.sel = selection.Set{
		Regions: []selection.Region{{Tail: 0, Caret: 1}, {Tail: 3, Caret: 4}},
		Main:    0,
	}

	b.YankSelections('a')
	reg := b.Register('a')
	if len(reg) != 2 {
		t.Fatalf("register entries = %d, want 2", len(reg))
	}
	if string(reg[0]) != "ab" || string(reg[1]) != "de" {
		t.Fatalf("register contents = %q, %q", reg[0], reg[1])
	}
}

func TestRemoveSelectionRejectsLastRegion(t *testing.T) {
	b := NewScratch()
	b.sel = selection.NewSet(selection.Cursor(0))

	if _, err := b.RemoveSelection(0); err != selection.ErrWouldEmptySelection {
		t.Fatalf("RemoveSelection on sole region = %v", err)
	}
}

func TestOverflowStyleDetectsTrailingCaret(t *testing.T) {
	b := NewScratch()
	b.rope = rope.FromBytes([]byte("ab"))
	b.sel = selection.NewSet(selection.Cursor(2)) // one past the end

	if got := b.OverflowStyle(); got != OverflowCaretAndTail {
		t.Fatalf("OverflowStyle = %v, want OverflowCaretAndTail", got)
	}
}

func TestWriteRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	b := NewScratch()
	b.rope = rope.FromBytes([]byte("persisted"))
	b.dirty = true

	if err := b.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if b.IsDirty() {
		t.Fatalf("Write should clear dirty")
	}
	if b.Path() != path {
		t.Fatalf("Write should set path on a scratch buffer")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "persisted" {
		t.Fatalf("file contents = %q", got)
	}
}

func TestCollectionDeleteCurrentReseedsScratch(t *testing.T) {
	c := NewCollection()
	c.DeleteCurrent()
	if len(c.All()) != 1 {
		t.Fatalf("collection should never be empty")
	}
	if c.Current().Name() != "*scratch*" {
		t.Fatalf("reseeded buffer should be a fresh scratch buffer")
	}
}

func TestCollectionSwitchReusesOpenBuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.bin")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := NewCollectionFromPath(path)
	if err != nil {
		t.Fatalf("NewCollectionFromPath: %v", err)
	}
	if err := c.SwitchCurrentBuffer(path); err != nil {
		t.Fatalf("SwitchCurrentBuffer: %v", err)
	}
	if len(c.All()) != 1 {
		t.Fatalf("switching to an already-open path should not duplicate it")
	}
}
