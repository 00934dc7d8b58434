package buffer

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/dshills/tofu/internal/history"
	"github.com/dshills/tofu/internal/pager"
	"github.com/dshills/tofu/internal/rope"
	"github.com/dshills/tofu/internal/selection"
)

// Errors returned by buffer operations.
var (
	ErrOutOfBounds = errors.New("buffer: offset outside the loaded window")
	ErrNoPath      = errors.New("buffer: no path associated with this buffer")
)

// InitialWindowBytes bounds how much of a newly opened file is read before
// the first redraw; subsequent scrolling grows the window through pager.
const InitialWindowBytes = 64 * 1024

// Buffer owns one document's editable state: its byte rope, selection,
// registers, undo history, dirty flag, and (for on-disk files) the window
// pager keeping the rope bounded to a slice of the file.
type Buffer struct {
	mu sync.RWMutex

	path      string
	rope      rope.Rope
	sel       selection.Set
	registers map[rune][][]byte
	dirty     bool
	hist      *history.History
	pager     *pager.Pager
}

// NewScratch returns an empty, path-less buffer.
func NewScratch() *Buffer {
	return &Buffer{
		rope:      rope.New(),
		sel:       selection.NewSet(selection.Cursor(0)),
		registers: make(map[rune][][]byte),
		hist:      history.New(0),
		pager:     pager.New(""),
	}
}

// Open reads an initial window from path and returns a windowed buffer.
func Open(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, InitialWindowBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}

	b := &Buffer{
		path:      path,
		rope:      rope.FromBytes(buf[:n]),
		sel:       selection.NewSet(selection.Cursor(0)),
		registers: make(map[rune][][]byte),
		hist:      history.New(0),
		pager:     pager.New(path),
	}
	return b, nil
}

// Name returns the buffer's display name: its path, or "*scratch*".
func (b *Buffer) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.path == "" {
		return "*scratch*"
	}
	return b.path
}

// Path returns the buffer's path, or "" for a scratch buffer.
func (b *Buffer) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}

// UpdatePathIfMissing sets the buffer's path if it doesn't already have one
// (used by `:w path` on a scratch buffer).
func (b *Buffer) UpdatePathIfMissing(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updatePathIfMissingLocked(path)
}

// updatePathIfMissingLocked is UpdatePathIfMissing without its own lock, for
// callers that already hold b.mu.
func (b *Buffer) updatePathIfMissingLocked(path string) {
	if b.path == "" {
		b.path = path
		b.pager = pager.New(path)
	}
}

// IsDirty reports whether the buffer has unsaved changes.
func (b *Buffer) IsDirty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dirty
}

// Len returns the number of bytes currently in the window.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Len()
}

// DataStartOffset returns the absolute file offset the window's byte 0
// corresponds to (always 0 for a scratch buffer).
func (b *Buffer) DataStartOffset() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pager.DataStartOffset()
}

// Rope returns the buffer's current windowed rope.
func (b *Buffer) Rope() rope.Rope {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope
}

// Selection returns the buffer's current selection set.
func (b *Buffer) Selection() selection.Set {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sel
}

// SetSelection replaces the buffer's selection set wholesale (used by
// movement operations that don't touch the rope).
func (b *Buffer) SetSelection(s selection.Set) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel = s
}

// Write writes out the buffer's full windowed content to path. Only the
// loaded window is written: a buffer that has been trimmed away from
// either end of the file does not hold the rest, matching the rope's
// window invariant rather than silently re-reading the file.
func (b *Buffer) Write(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if path == "" {
		path = b.path
	}
	if path == "" {
		return ErrNoPath
	}

	if err := os.WriteFile(path, b.rope.Bytes(), 0o644); err != nil {
		return err
	}
	b.dirty = false
	b.updatePathIfMissingLocked(path)
	return nil
}

func (b *Buffer) withinWindow(offset int) bool {
	return offset >= 0 && offset <= b.rope.Len()
}

// applyDeltaLocked applies d to the rope, folds it into history (as a
// final edit unless partial is true), and marks the buffer dirty. Caller
// holds b.mu.
func (b *Buffer) applyDeltaLocked(d rope.Delta, partial bool) (rope.Rope, error) {
	pre := b.rope
	next, err := d.Apply(pre)
	if err != nil {
		return rope.Rope{}, err
	}

	if partial {
		b.hist.NotePartial(pre, b.sel)
	} else {
		b.hist.Commit(pre, next, b.sel)
	}

	b.rope = next
	b.dirty = true
	return next, nil
}

// ApplyDelta applies a final (undo-boundary) edit and transports the
// selection through it with no caret/tail offset.
func (b *Buffer) ApplyDelta(d rope.Delta) (DirtyBytes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if d.BaseLen != b.rope.Len() {
		return DirtyBytes{}, ErrOutOfBounds
	}

	next, err := b.applyDeltaLocked(d, false)
	if err != nil {
		return DirtyBytes{}, err
	}
	b.sel = b.sel.Transform(d, 0, 0).Clamp(next.Len())
	return ChangeLength(), nil
}

// ApplyDeltaOffsetCarets applies a final edit and shifts each region's
// caret/tail by the given amounts after transport (used by insert/append
// so carets land after the bytes they just typed).
func (b *Buffer) ApplyDeltaOffsetCarets(d rope.Delta, caretOffset, tailOffset int) (DirtyBytes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if d.BaseLen != b.rope.Len() {
		return DirtyBytes{}, ErrOutOfBounds
	}

	next, err := b.applyDeltaLocked(d, false)
	if err != nil {
		return DirtyBytes{}, err
	}
	b.sel = b.sel.Transform(d, caretOffset, tailOffset).Clamp(next.Len())
	return ChangeLength(), nil
}

// ApplyIncompleteDelta applies an in-progress edit (one keystroke of a
// multi-keystroke run, e.g. typing successive hex nibbles) without closing
// the current undo step.
func (b *Buffer) ApplyIncompleteDelta(d rope.Delta) (DirtyBytes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if d.BaseLen != b.rope.Len() {
		return DirtyBytes{}, ErrOutOfBounds
	}

	next, err := b.applyDeltaLocked(d, true)
	if err != nil {
		return DirtyBytes{}, err
	}
	b.sel = b.sel.Transform(d, 0, 0).Clamp(next.Len())
	return ChangeLength(), nil
}

// CommitDelta finalizes whatever partial edit run is in progress into one
// undo step. A no-op if no run is pending.
func (b *Buffer) CommitDelta() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hist.CommitPartial(b.rope)
}

// Undo reverts the most recent undo step, restoring the selection that was
// active before it. Returns history.ErrNothingToUndo if the stack is empty.
func (b *Buffer) Undo() (DirtyBytes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, sel, err := b.hist.Undo(b.rope, b.sel)
	if err != nil {
		return DirtyBytes{}, err
	}
	b.rope = next
	b.sel = sel
	b.dirty = true
	return ChangeLength(), nil
}

// Redo reapplies the most recently undone step. Returns
// history.ErrNothingToRedo if the redo stack is empty.
func (b *Buffer) Redo() (DirtyBytes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, sel, err := b.hist.Redo(b.rope, b.sel)
	if err != nil {
		return DirtyBytes{}, err
	}
	b.rope = next
	b.sel = sel
	b.dirty = true
	return ChangeLength(), nil
}

// YankSelections copies each selection region's bytes into register reg,
// one slice per region in selection order.
func (b *Buffer) YankSelections(reg rune) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([][]byte, len(b.sel.Regions))
	for i, r := range b.sel.Regions {
		if b.rope.IsEmpty() {
			out[i] = nil
			continue
		}
		out[i] = b.rope.Slice(r.Min(), r.Max()+1)
	}
	b.registers[reg] = out
}

// Register returns the stored yank slices for reg, or nil if empty.
func (b *Buffer) Register(reg rune) [][]byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.registers[reg]
}

// RemoveSelection drops region i (wrapping modulo the region count).
func (b *Buffer) RemoveSelection(i int) (DirtyBytes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i = i % len(b.sel.Regions)
	out, err := b.sel.Remove(i)
	if err != nil {
		return DirtyBytes{}, err
	}
	b.sel = out
	return ChangeInPlace(regionRanges(b.sel.Regions)), nil
}

// RetainSelection keeps only region i (wrapping modulo the region count) as
// the sole selection.
func (b *Buffer) RetainSelection(i int) DirtyBytes {
	b.mu.Lock()
	defer b.mu.Unlock()

	i = i % len(b.sel.Regions)
	b.sel = b.sel.Retain(i)
	return ChangeInPlace(regionRanges(b.sel.Regions))
}

// SelectNext rotates the main selection index forward by count.
func (b *Buffer) SelectNext(count int) DirtyBytes {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel = b.sel.SelectNext(count)
	return ChangeInPlace([]Range{{Min: b.sel.MainRegion().Min(), Max: b.sel.MainRegion().Max()}})
}

// SelectPrev rotates the main selection index backward by count.
func (b *Buffer) SelectPrev(count int) DirtyBytes {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel = b.sel.SelectPrev(count)
	return ChangeInPlace([]Range{{Min: b.sel.MainRegion().Min(), Max: b.sel.MainRegion().Max()}})
}

// MapSelections replaces each region with f(region), rejecting the whole
// transformation if any call produces no regions.
func (b *Buffer) MapSelections(f func(selection.Region) []selection.Region) (DirtyBytes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var invalidated []Range
	for _, r := range b.sel.Regions {
		invalidated = append(invalidated, Range{Min: r.Min(), Max: r.Max()})
	}

	out, err := b.sel.MapSelections(f)
	if err != nil {
		return DirtyBytes{}, err
	}
	b.sel = out

	for _, r := range out.Regions {
		invalidated = append(invalidated, Range{Min: r.Min(), Max: r.Max()})
	}
	return ChangeInPlace(invalidated), nil
}

func regionRanges(regions []selection.Region) []Range {
	out := make([]Range, len(regions))
	for i, r := range regions {
		out[i] = Range{Min: r.Min(), Max: r.Max()}
	}
	return out
}

// OverflowSelectionStyle reports whether the last selection's caret and/or
// tail sits at the one-past-the-end overflow position, for rendering the
// trailing empty-cell caret.
type OverflowSelectionStyle int

const (
	OverflowNone OverflowSelectionStyle = iota
	OverflowCaret
	OverflowTail
	OverflowCaretAndTail
)

// OverflowStyle computes the overflow style for the last selection region.
func (b *Buffer) OverflowStyle() OverflowSelectionStyle {
	b.mu.RLock()
	defer b.mu.RUnlock()

	last := b.sel.Regions[len(b.sel.Regions)-1]
	length := b.rope.Len()
	switch {
	case last.Caret == length && last.Tail == length:
		return OverflowCaretAndTail
	case last.Caret == length:
		return OverflowCaret
	case last.Tail == length:
		return OverflowTail
	default:
		return OverflowNone
	}
}

// MaintainWindow runs one pager maintenance step given the current visible
// range, growing and possibly trimming the window. Every selection tail and
// caret is passed to the pager as a live offset, to satisfy the trim discipline.
func (b *Buffer) MaintainWindow(viewStart, viewEnd, chunkSize int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.pager.HasFile() {
		return nil
	}

	live := make([]int, 0, len(b.sel.Regions)*2)
	for _, r := range b.sel.Regions {
		live = append(live, r.Tail, r.Caret)
	}

	next, err := b.pager.Maintain(b.rope, viewStart, viewEnd, chunkSize, live)
	if err != nil {
		return err
	}
	b.rope = next
	return nil
}
