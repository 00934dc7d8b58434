package mode

import (
	"fmt"

	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/key"
	"github.com/dshills/tofu/internal/ops"
	"github.com/dshills/tofu/internal/selection"
)

// normalAction is one command bindable in Normal mode.
type normalAction int

const (
	actionMoveLeft normalAction = iota
	actionMoveDown
	actionMoveUp
	actionMoveRight
	actionExtendLeft
	actionExtendDown
	actionExtendUp
	actionExtendRight
	actionJumpToMode
	actionExtendToMode
	actionSplitSearch
	actionCommandMode
	actionSwapCaret
	actionCollapseSelection
	actionSelectAll
	actionRetainMain
	actionRemoveMain
	actionSelectPrev
	actionSelectNext
	actionMeasure
	actionUndo
	actionRedo
	actionPaste
	actionPasteBefore
	actionDelete
	actionYank
	actionChange
	actionChangeHex
	actionInsert
	actionInsertHex
	actionAppend
	actionAppendHex
	actionReplace
	actionReplaceHex
	actionOverwrite
	actionOverwriteHex
	actionCollapseSearch
	actionCollapseSearchHex
)

var normalKeys = KeyMap[normalAction]{
	ch('h'):            actionMoveLeft,
	special(key.KeyLeft):  actionMoveLeft,
	ch('j'):            actionMoveDown,
	special(key.KeyDown):  actionMoveDown,
	ch('k'):            actionMoveUp,
	special(key.KeyUp):    actionMoveUp,
	ch('l'):            actionMoveRight,
	special(key.KeyRight): actionMoveRight,

	ch('H'): actionExtendLeft,
	ch('J'): actionExtendDown,
	ch('K'): actionExtendUp,
	ch('L'): actionExtendRight,

	ch('g'):    actionJumpToMode,
	ch('G'):    actionExtendToMode,
	alt('s'):   actionSplitSearch,
	ch(':'):    actionCommandMode,
	ch(';'):    actionCollapseSelection,
	alt(';'):   actionSwapCaret,
	ch('%'):    actionSelectAll,
	ch(' '):    actionRetainMain,
	alt(' '):   actionRemoveMain,
	ch('('):    actionSelectPrev,
	ch(')'):    actionSelectNext,
	ch('M'):    actionMeasure,
	ch('u'):    actionUndo,
	ch('U'):    actionRedo,

	ch('p'): actionPaste,
	ch('P'): actionPasteBefore,
	ch('d'): actionDelete,
	ch('y'): actionYank,
	ch('c'): actionChange,
	ch('C'): actionChangeHex,

	ch('i'): actionInsert,
	ch('I'): actionInsertHex,
	ch('a'): actionAppend,
	ch('A'): actionAppendHex,
	ch('r'): actionReplace,
	ch('R'): actionReplaceHex,
	ch('o'): actionOverwrite,
	ch('O'): actionOverwriteHex,

	ch('s'): actionCollapseSearch,
	ch('S'): actionCollapseSearchHex,
}

// Normal is the editor's default mode: keys move or transform selections,
// or enter one of the other modes.
type Normal struct {
	count Count
}

// NewNormal returns a fresh Normal mode with no pending count.
func NewNormal() *Normal {
	return &Normal{}
}

func (m *Normal) Name() string {
	if m.count.Active() {
		return fmt.Sprintf("NORMAL %d", m.count.Value())
	}
	return "NORMAL"
}

func (m *Normal) TakesInput() bool   { return true }
func (m *Normal) HasHalfCursor() bool { return false }

func (m *Normal) Transition(event key.Event, buffers *buffer.Collection, bytesPerLine int) (Transition, bool) {
	if d, ok := digitFromEvent(event); ok {
		return NewModeTransition(&Normal{count: m.count.Digit(d)}), true
	}

	action, ok := normalKeys.Lookup(event)
	if !ok {
		return Transition{}, false
	}

	buf := buffers.Current()
	count := m.count.ValueOr1()

	switch action {
	case actionMoveLeft, actionMoveDown, actionMoveUp, actionMoveRight:
		dir := directionFor(action)
		maxBytes := buf.Len()
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			return []selection.Region{r.Move(dir, bytesPerLine, maxBytes, count)}
		})
		return afterMove(dirty, err)

	case actionExtendLeft, actionExtendDown, actionExtendUp, actionExtendRight:
		dir := directionFor(action)
		maxBytes := buf.Len()
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			return []selection.Region{r.Extend(dir, bytesPerLine, maxBytes, count)}
		})
		return afterMove(dirty, err)

	case actionJumpToMode:
		if !m.count.Active() {
			return NewModeTransition(&JumpTo{Extend: false}), true
		}
		offset := m.count.Value()
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			return []selection.Region{r.JumpTo(offset)}
		})
		return afterMove(dirty, err)

	case actionExtendToMode:
		if !m.count.Active() {
			return NewModeTransition(&JumpTo{Extend: true}), true
		}
		offset := m.count.Value()
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			return []selection.Region{r.ExtendTo(offset)}
		})
		return afterMove(dirty, err)

	case actionSplitSearch:
		return NewModeTransition(&Search{Acceptor: splitAcceptor{}}), true

	case actionCommandMode:
		return NewModeTransition(NewCommand()), true

	case actionSwapCaret:
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			return []selection.Region{r.SwapCaret()}
		})
		return afterMove(dirty, err)

	case actionCollapseSelection:
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			return []selection.Region{r.Collapse()}
		})
		return afterMove(dirty, err)

	case actionSelectAll:
		buf.SetSelection(selection.SelectAll(buf.Len()))
		return NewModeTransition(NewNormal()), true

	case actionRetainMain:
		idx := buf.Selection().Main
		if m.count.Active() && m.count.Value() > 0 {
			idx = m.count.Value() - 1
		}
		dirty := buf.RetainSelection(idx)
		return ModeAndDirtyTransition(NewNormal(), dirty), true

	case actionRemoveMain:
		idx := buf.Selection().Main
		if m.count.Active() && m.count.Value() > 0 {
			idx = m.count.Value() - 1
		}
		dirty, err := buf.RemoveSelection(idx)
		return afterMove(dirty, err)

	case actionSelectPrev:
		dirty := buf.SelectPrev(count)
		return ModeAndDirtyTransition(NewNormal(), dirty), true

	case actionSelectNext:
		dirty := buf.SelectNext(count)
		return ModeAndDirtyTransition(NewNormal(), dirty), true

	case actionMeasure:
		length := buf.Selection().MainRegion().Len()
		return ModeAndInfoTransition(NewNormal(), fmt.Sprintf("%d = 0x%x bytes", length, length)), true

	case actionUndo:
		dirty, err := buf.Undo()
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), "nothing left to undo"), true
		}
		return ModeAndDirtyTransition(NewNormal(), dirty), true

	case actionRedo:
		dirty, err := buf.Redo()
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), "nothing left to redo"), true
		}
		return ModeAndDirtyTransition(NewNormal(), dirty), true

	case actionDelete:
		buf.YankSelections('"')
		if buf.Len() == 0 {
			return NoChange(), true
		}
		d := ops.Deletion(buf.Rope(), buf.Selection())
		dirty, err := buf.ApplyDelta(d)
		return afterMove(dirty, err)

	case actionChange, actionChangeHex:
		buf.YankSelections('"')
		hex := action == actionChangeHex
		if buf.Len() == 0 {
			return NewModeTransition(&Insert{Hex: hex, SubMode: InsertModeInsert}), true
		}
		d := ops.Deletion(buf.Rope(), buf.Selection())
		dirty, err := buf.ApplyDelta(d)
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return ModeAndDirtyTransition(&Insert{Hex: hex, SubMode: InsertModeInsert}, dirty), true

	case actionYank:
		buf.YankSelections('"')
		return NoChange(), true

	case actionPaste, actionPasteBefore:
		reg := buf.Register('"')
		if reg == nil {
			reg = [][]byte{{}}
		}
		d, caretOffset := ops.Paste(buf.Rope(), buf.Selection(), reg, action == actionPaste, count)
		dirty, err := buf.ApplyDeltaOffsetCarets(d, caretOffset, caretOffset)
		return afterMove(dirty, err)

	case actionInsert, actionInsertHex:
		hex := action == actionInsertHex
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			return []selection.Region{r.ToBackward()}
		})
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return ModeAndDirtyTransition(&Insert{Hex: hex, SubMode: InsertModeInsert}, dirty), true

	case actionAppend, actionAppendHex:
		hex := action == actionAppendHex
		maxBytes := buf.Len()
		dirty, err := buf.MapSelections(func(r selection.Region) []selection.Region {
			return []selection.Region{r.ToForward().Extend(selection.Right, bytesPerLine, maxBytes, 1)}
		})
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return ModeAndDirtyTransition(&Insert{Hex: hex, SubMode: InsertModeAppend}, dirty), true

	case actionReplace, actionReplaceHex:
		return NewModeTransition(&Replace{Hex: action == actionReplaceHex}), true

	case actionOverwrite, actionOverwriteHex:
		return NewModeTransition(&Insert{Hex: action == actionOverwriteHex, SubMode: InsertModeOverwrite}), true

	case actionCollapseSearch, actionCollapseSearchHex:
		return NewModeTransition(&Search{Acceptor: collapseAcceptor{}, Hex: action == actionCollapseSearchHex}), true
	}

	return Transition{}, false
}

func directionFor(action normalAction) selection.Direction {
	switch action {
	case actionMoveLeft, actionExtendLeft:
		return selection.Left
	case actionMoveDown, actionExtendDown:
		return selection.Down
	case actionMoveUp, actionExtendUp:
		return selection.Up
	default:
		return selection.Right
	}
}

// afterMove folds the common "apply a selection-only transform, reset the
// count, and report the error as a status message" pattern shared by every
// movement-family action.
func afterMove(dirty buffer.DirtyBytes, err error) (Transition, bool) {
	if err != nil {
		return ModeAndInfoTransition(NewNormal(), err.Error()), true
	}
	return ModeAndDirtyTransition(NewNormal(), dirty), true
}
