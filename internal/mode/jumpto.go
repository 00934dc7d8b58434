package mode

import (
	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/key"
	"github.com/dshills/tofu/internal/selection"
)

var jumpToKeys = KeyMap[selection.Direction]{
	ch('h'):              selection.Left,
	special(key.KeyLeft):  selection.Left,
	ch('j'):              selection.Down,
	special(key.KeyDown):  selection.Down,
	ch('k'):              selection.Up,
	special(key.KeyUp):    selection.Up,
	ch('l'):              selection.Right,
	special(key.KeyRight): selection.Right,
}

// JumpTo is the one-shot mode entered by 'g' (move) or 'G' (extend): the
// next direction key jumps every region's caret (and, unless Extend, its
// tail) to the corresponding line/file boundary, then control returns to
// Normal. Any other key also returns to Normal without moving anything.
type JumpTo struct {
	Extend bool
}

func (m *JumpTo) Name() string {
	if m.Extend {
		return "EXTEND"
	}
	return "JUMP"
}

func (m *JumpTo) TakesInput() bool   { return true }
func (m *JumpTo) HasHalfCursor() bool { return false }

func (m *JumpTo) Transition(event key.Event, buffers *buffer.Collection, bytesPerLine int) (Transition, bool) {
	buf := buffers.Current()

	if dir, ok := jumpToKeys.Lookup(event); ok {
		maxBytes := buf.Len()
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			if m.Extend {
				return []selection.Region{r.ExtendToBoundary(dir, bytesPerLine, maxBytes)}
			}
			return []selection.Region{r.JumpToBoundary(dir, bytesPerLine, maxBytes)}
		})
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return ModeAndDirtyTransition(NewNormal(), dirty), true
	}

	// Any other key consumes and falls back to Normal, matching the
	// original's "unbound key cancels the pending jump" behavior.
	if event.Key != key.KeyNone {
		return NewModeTransition(NewNormal()), true
	}
	return Transition{}, false
}
