package mode

import (
	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/key"
	"github.com/dshills/tofu/internal/ops"
)

// Replace is entered by r/R: it consumes exactly one byte (text mode) or
// one hex-digit pair (hex mode) at every caret, overwriting the byte under
// each, then returns to Normal.
type Replace struct {
	Hex     bool
	HexHalf *byte
}

func (m *Replace) Name() string {
	if m.Hex {
		return "REPLACE (hex)"
	}
	return "REPLACE"
}

func (m *Replace) TakesInput() bool    { return true }
func (m *Replace) HasHalfCursor() bool { return m.HexHalf != nil }

func (m *Replace) Transition(event key.Event, buffers *buffer.Collection, bytesPerLine int) (Transition, bool) {
	buf := buffers.Current()

	if event.IsEscape() {
		return NewModeTransition(NewNormal()), true
	}

	if m.Hex {
		if !isHexDigit(event) {
			return Transition{}, false
		}
		digit, _ := hexDigitValue(event.Rune)
		if m.HexHalf == nil {
			return NewModeTransition(&Replace{Hex: true, HexHalf: &digit}), true
		}
		b := (*m.HexHalf)<<4 | digit
		d := ops.Insertion(buf.Rope(), buf.Selection(), b, true)
		dirty, err := buf.ApplyDelta(d)
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return ModeAndDirtyTransition(NewNormal(), dirty), true
	}

	if !event.IsRune() {
		return Transition{}, false
	}
	d := ops.Insertion(buf.Rope(), buf.Selection(), byte(event.Rune), true)
	dirty, err := buf.ApplyDelta(d)
	if err != nil {
		return ModeAndInfoTransition(NewNormal(), err.Error()), true
	}
	return ModeAndDirtyTransition(NewNormal(), dirty), true
}
