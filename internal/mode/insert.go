package mode

import (
	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/key"
	"github.com/dshills/tofu/internal/ops"
	"github.com/dshills/tofu/internal/selection"
)

// InsertSubMode distinguishes the three ways Insert mode can be entered:
// inserting before the caret, appending after it, or overwriting the byte
// under it. All three share the same key handling; only the delta they
// build for a completed byte differs.
type InsertSubMode int

const (
	InsertModeInsert InsertSubMode = iota
	InsertModeAppend
	InsertModeOverwrite
)

// Insert is the mode entered by i/I/a/A/o/O (and by c/C when there's
// something to delete first): printable keys type bytes at every caret. In
// hex sub-mode a caret-wide HexHalf holds the first nibble of a byte until
// the second completes it.
type Insert struct {
	Hex     bool
	SubMode InsertSubMode
	HexHalf *byte
}

func (m *Insert) Name() string {
	switch m.SubMode {
	case InsertModeAppend:
		return "APPEND"
	case InsertModeOverwrite:
		return "OVERWRITE"
	default:
		return "INSERT"
	}
}

func (m *Insert) TakesInput() bool    { return true }
func (m *Insert) HasHalfCursor() bool { return m.HexHalf != nil }

func (m *Insert) Transition(event key.Event, buffers *buffer.Collection, bytesPerLine int) (Transition, bool) {
	buf := buffers.Current()
	overwrite := m.SubMode == InsertModeOverwrite

	switch {
	case event.IsEscape(), event.IsEnter():
		buf.CommitDelta()
		return NewModeTransition(NewNormal()), true

	case event.IsBackspace():
		if m.HexHalf != nil {
			return NewModeTransition(&Insert{Hex: m.Hex, SubMode: m.SubMode}), true
		}
		regions := make([]selection.Region, 0, buf.Selection().Len())
		for _, r := range buf.Selection().Regions {
			if r.Caret == 0 {
				continue
			}
			regions = append(regions, selection.Cursor(r.Caret-1))
		}
		if len(regions) == 0 {
			return NoChange(), true
		}
		d := ops.Deletion(buf.Rope(), selection.FromRegions(regions, 0))
		dirty, err := buf.ApplyIncompleteDelta(d)
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return ModeAndDirtyTransition(m, dirty), true

	case m.Hex && isHexDigit(event):
		digit, _ := hexDigitValue(event.Rune)
		if m.HexHalf == nil {
			return NewModeTransition(&Insert{Hex: true, SubMode: m.SubMode, HexHalf: &digit}), true
		}
		b := (*m.HexHalf)<<4 | digit
		d := ops.Insertion(buf.Rope(), buf.Selection(), b, overwrite)
		dirty, err := buf.ApplyDeltaOffsetCarets(d, 1, 1)
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return ModeAndDirtyTransition(&Insert{Hex: true, SubMode: m.SubMode}, dirty), true

	case !m.Hex && event.IsRune():
		d := ops.Insertion(buf.Rope(), buf.Selection(), byte(event.Rune), overwrite)
		dirty, err := buf.ApplyDeltaOffsetCarets(d, 1, 1)
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return ModeAndDirtyTransition(m, dirty), true
	}

	return Transition{}, false
}

func isHexDigit(event key.Event) bool {
	if event.Key != key.KeyRune {
		return false
	}
	_, ok := hexDigitValue(event.Rune)
	return ok
}

func hexDigitValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}
