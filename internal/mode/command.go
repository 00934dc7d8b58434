package mode

import (
	"fmt"
	"strings"

	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/key"
)

// commandHandler runs a parsed `:name arg` invocation against the buffer
// collection and reports the resulting transition.
type commandHandler func(buffers *buffer.Collection, arg string) Transition

var commandTable = map[string]commandHandler{
	"q":              cmdQuit,
	"quit":           cmdQuit,
	"q!":             cmdForceQuit,
	"quit!":          cmdForceQuit,
	"w":              cmdWrite,
	"write":          cmdWrite,
	"wq":             cmdWriteQuit,
	"wa":             cmdWriteAll,
	"write-all":      cmdWriteAll,
	"e":              cmdEdit,
	"edit":           cmdEdit,
	"db":             cmdDeleteBuffer,
	"db!":            cmdForceDeleteBuffer,
}

// Quitting is the terminal mode; once reached the event loop exits.
type Quitting struct{}

func (Quitting) Name() string               { return "QUITTING" }
func (Quitting) TakesInput() bool           { return false }
func (Quitting) HasHalfCursor() bool        { return false }
func (Quitting) Transition(key.Event, *buffer.Collection, int) (Transition, bool) {
	return Transition{}, false
}

func cmdQuit(buffers *buffer.Collection, _ string) Transition {
	if buffers.AnyDirtyWithPath() {
		return ModeAndInfoTransition(NewNormal(), "unsaved changes! Run :wq or :q! instead.")
	}
	return NewModeTransition(Quitting{})
}

func cmdForceQuit(*buffer.Collection, string) Transition {
	return NewModeTransition(Quitting{})
}

func cmdWrite(buffers *buffer.Collection, arg string) Transition {
	if err := buffers.Current().Write(arg); err != nil {
		return ModeAndInfoTransition(NewNormal(), fmt.Sprintf("write failed: %v", err))
	}
	return NewModeTransition(NewNormal())
}

func cmdWriteQuit(buffers *buffer.Collection, arg string) Transition {
	if err := buffers.Current().Write(arg); err != nil {
		return ModeAndInfoTransition(NewNormal(), fmt.Sprintf("write failed: %v", err))
	}
	return NewModeTransition(Quitting{})
}

func cmdWriteAll(buffers *buffer.Collection, _ string) Transition {
	if err := buffers.WriteAll(); err != nil {
		return ModeAndInfoTransition(NewNormal(), fmt.Sprintf("write failed: %v", err))
	}
	return NewModeTransition(NewNormal())
}

func cmdEdit(buffers *buffer.Collection, arg string) Transition {
	if err := buffers.SwitchCurrentBuffer(arg); err != nil {
		return ModeAndInfoTransition(NewNormal(), err.Error())
	}
	return ModeAndDirtyTransition(NewNormal(), buffer.ChangeLength())
}

func cmdDeleteBuffer(buffers *buffer.Collection, _ string) Transition {
	if cur := buffers.Current(); cur.IsDirty() && cur.Path() != "" {
		return ModeAndInfoTransition(NewNormal(), "current buffer is dirty, use :db! if you're sure")
	}
	buffers.DeleteCurrent()
	return ModeAndDirtyTransition(NewNormal(), buffer.ChangeLength())
}

func cmdForceDeleteBuffer(buffers *buffer.Collection, _ string) Transition {
	buffers.DeleteCurrent()
	return ModeAndDirtyTransition(NewNormal(), buffer.ChangeLength())
}

// Command accumulates a `:`-prefixed command line with a cursor; Enter
// invokes it, Esc cancels back to Normal.
type Command struct {
	Text   string
	Cursor int
}

// NewCommand returns an empty command line.
func NewCommand() *Command {
	return &Command{}
}

func (m *Command) Name() string              { return "COMMAND" }
func (m *Command) TakesInput() bool          { return true }
func (m *Command) HasHalfCursor() bool       { return false }

func (m *Command) Transition(event key.Event, buffers *buffer.Collection, bytesPerLine int) (Transition, bool) {
	switch {
	case event.IsEscape():
		return NewModeTransition(NewNormal()), true

	case event.IsEnter():
		return m.finish(buffers), true

	case event.IsBackspace():
		if m.Cursor == 0 {
			return NoChange(), true
		}
		text := m.Text[:m.Cursor-1] + m.Text[m.Cursor:]
		return NewModeTransition(&Command{Text: text, Cursor: m.Cursor - 1}), true

	case event.Key == key.KeyLeft && m.Cursor > 0:
		return NewModeTransition(&Command{Text: m.Text, Cursor: m.Cursor - 1}), true

	case event.Key == key.KeyRight && m.Cursor < len(m.Text):
		return NewModeTransition(&Command{Text: m.Text, Cursor: m.Cursor + 1}), true

	case event.IsRune() && event.Modifiers&^key.ModShift == key.ModNone:
		text := m.Text[:m.Cursor] + string(event.Rune) + m.Text[m.Cursor:]
		return NewModeTransition(&Command{Text: text, Cursor: m.Cursor + 1}), true
	}

	return Transition{}, false
}

func (m *Command) finish(buffers *buffer.Collection) Transition {
	name, rest, _ := strings.Cut(m.Text, " ")
	handler, ok := commandTable[name]
	if !ok {
		return ModeAndInfoTransition(NewNormal(), fmt.Sprintf("unknown command %s", name))
	}
	return handler(buffers, rest)
}
