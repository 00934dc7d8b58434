package history

import (
	"errors"
	"sync"

	"github.com/dshills/tofu/internal/rope"
	"github.com/dshills/tofu/internal/selection"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("history: nothing to undo")
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// Entry is one undo/redo step: the delta to apply in each direction plus
// the selection to restore when this entry is consumed.
type Entry struct {
	Forward         rope.Delta
	Inverse         rope.Delta
	SelectionBefore selection.Set
}

// pending tracks an in-progress run of partial edits, anchored at the rope
// and selection as they were before the run began.
type pending struct {
	preRope rope.Rope
	preSel  selection.Set
}

// History is a mutex-guarded undo/redo log for one buffer.
type History struct {
	mu sync.Mutex

	undo []Entry
	redo []Entry

	pend *pending

	maxEntries int
}

// New creates a History that retains at most maxEntries undo steps. A
// non-positive maxEntries means unbounded.
func New(maxEntries int) *History {
	return &History{maxEntries: maxEntries}
}

// NotePartial records the rope/selection state at the start of a partial
// edit run, if one is not already in progress. Subsequent partial
// keystrokes mutate the buffer directly without touching history; only
// CommitPartial (or a later Commit) finalizes them into one undo step.
func (h *History) NotePartial(preRope rope.Rope, preSel selection.Set) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pend == nil {
		h.pend = &pending{preRope: preRope, preSel: preSel}
	}
}

// HasPending reports whether a partial edit run is in progress.
func (h *History) HasPending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pend != nil
}

// CommitPartial finalizes the in-progress partial run using postRope as its
// resulting state, pushing one undo step. A no-op if there is no pending
// run, or if the run produced no change.
func (h *History) CommitPartial(postRope rope.Rope) {
	h.mu.Lock()
	p := h.pend
	h.pend = nil
	h.mu.Unlock()

	if p == nil || p.preRope.Equals(postRope) {
		return
	}
	h.pushFinal(p.preRope, postRope, p.preSel)
}

// Commit records a final, atomic edit. If a partial run is in progress, it
// is coalesced into this same undo step (the run's original pre-edit state
// is used as the base, and preRope/preSelection passed here are ignored).
func (h *History) Commit(preRope, postRope rope.Rope, preSel selection.Set) {
	h.mu.Lock()
	p := h.pend
	h.pend = nil
	h.mu.Unlock()

	if p != nil {
		preRope = p.preRope
		preSel = p.preSel
	}
	if preRope.Equals(postRope) {
		return
	}
	h.pushFinal(preRope, postRope, preSel)
}

func (h *History) pushFinal(preRope, postRope rope.Rope, preSel selection.Set) {
	forward := rope.SimpleEdit(0, preRope.Len(), postRope.Bytes(), preRope.Len())
	inverse := forward.Invert(preRope)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.undo = append(h.undo, Entry{Forward: forward, Inverse: inverse, SelectionBefore: preSel})
	h.redo = nil

	if h.maxEntries > 0 && len(h.undo) > h.maxEntries {
		excess := len(h.undo) - h.maxEntries
		h.undo = h.undo[excess:]
	}
}

// Undo pops the most recent undo entry, applies its inverse to rope, and
// returns the resulting rope and the selection that was active before the
// original edit. The current (pre-undo) selection is pushed onto the redo
// stack so Redo can restore it later.
func (h *History) Undo(r rope.Rope, sel selection.Set) (rope.Rope, selection.Set, error) {
	h.mu.Lock()
	if len(h.undo) == 0 {
		h.mu.Unlock()
		return r, sel, ErrNothingToUndo
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.mu.Unlock()

	newRope, err := e.Inverse.Apply(r)
	if err != nil {
		h.mu.Lock()
		h.undo = append(h.undo, e)
		h.mu.Unlock()
		return r, sel, err
	}

	h.mu.Lock()
	h.redo = append(h.redo, Entry{Forward: e.Forward, Inverse: e.Inverse, SelectionBefore: sel})
	h.mu.Unlock()

	return newRope, e.SelectionBefore, nil
}

// Redo pops the most recent redo entry, re-applies its forward delta to
// rope, and returns the resulting rope and the selection to restore. The
// current (pre-redo) selection is pushed back onto the undo stack.
func (h *History) Redo(r rope.Rope, sel selection.Set) (rope.Rope, selection.Set, error) {
	h.mu.Lock()
	if len(h.redo) == 0 {
		h.mu.Unlock()
		return r, sel, ErrNothingToRedo
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.mu.Unlock()

	newRope, err := e.Forward.Apply(r)
	if err != nil {
		h.mu.Lock()
		h.redo = append(h.redo, e)
		h.mu.Unlock()
		return r, sel, err
	}

	h.mu.Lock()
	h.undo = append(h.undo, Entry{Forward: e.Forward, Inverse: e.Inverse, SelectionBefore: sel})
	h.mu.Unlock()

	return newRope, e.SelectionBefore, nil
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}
