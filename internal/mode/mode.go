package mode

import (
	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/key"
)

// Mode is one state of the editor's input state machine. Exactly one mode
// is active at a time; Transition consumes a key event against the active
// buffer and reports what should happen next.
type Mode interface {
	// Name is the mode's statusline label, e.g. "NORMAL", "INSERT", "NORMAL 5".
	Name() string

	// Transition handles one key event. The returned bool reports whether
	// the event was consumed; when false the mode is unchanged and
	// cmd/tofu's event loop discards the event. There is no fallback key
	// handling for unconsumed events (Ctrl-E/Ctrl-Y do not scroll the view);
	// resize events never reach Transition and only cause a redraw.
	Transition(event key.Event, buffers *buffer.Collection, bytesPerLine int) (Transition, bool)

	// TakesInput reports whether the event loop should keep reading input
	// in this mode. Only Quitting returns false.
	TakesInput() bool

	// HasHalfCursor reports whether the active caret should render as a
	// half-width cursor (hex insert/replace mid-nibble).
	HasHalfCursor() bool
}

// Kind distinguishes the variants of Transition, mirroring the
// ModeTransition enum of the system this editor's mode machine is modeled
// on: a mode's reaction to an event either changes nothing, invalidates
// some rendered bytes, swaps the active mode, or both, optionally with a
// one-line status message.
type Kind int

const (
	KindNone Kind = iota
	KindDirtyBytes
	KindNewMode
	KindModeAndDirtyBytes
	KindModeAndInfo
)

// Transition is the result of a mode handling one event.
type Transition struct {
	Kind  Kind
	Mode  Mode
	Dirty buffer.DirtyBytes
	Info  string
}

// NoChange is the Transition for an event that was consumed but produced
// no visible change (e.g. a yank).
func NoChange() Transition {
	return Transition{Kind: KindNone}
}

// DirtyTransition invalidates the given byte ranges without changing mode.
func DirtyTransition(d buffer.DirtyBytes) Transition {
	return Transition{Kind: KindDirtyBytes, Dirty: d}
}

// NewModeTransition switches the active mode with no rendering change.
func NewModeTransition(m Mode) Transition {
	return Transition{Kind: KindNewMode, Mode: m}
}

// ModeAndDirtyTransition switches mode and invalidates byte ranges.
func ModeAndDirtyTransition(m Mode, d buffer.DirtyBytes) Transition {
	return Transition{Kind: KindModeAndDirtyBytes, Mode: m, Dirty: d}
}

// ModeAndInfoTransition switches mode and sets a one-line status message.
func ModeAndInfoTransition(m Mode, info string) Transition {
	return Transition{Kind: KindModeAndInfo, Mode: m, Info: info}
}
