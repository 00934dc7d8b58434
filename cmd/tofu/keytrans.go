package main

import (
	"github.com/dshills/tofu/internal/key"
	"github.com/dshills/tofu/internal/renderer/backend"
)

// translateKey adapts a backend.Event of type EventKey into the
// backend-independent key.Event the mode package dispatches on. The
// backend's Ctrl-letter keys (KeyCtrlA..KeyCtrlZ) have no matching entry in
// key.Key, so they are folded into KeyRune with ModCtrl set, the same shape
// a plain Ctrl-modified rune from any other terminal would take.
func translateKey(ev backend.Event) (key.Event, bool) {
	mods := translateMods(ev.Mod)

	if letter, ok := ctrlLetter(ev.Key); ok {
		return key.NewRuneEvent(letter, mods.With(key.ModCtrl)), true
	}

	if ev.Key == backend.KeyRune {
		return key.NewRuneEvent(ev.Rune, mods), true
	}

	special, ok := specialKeys[ev.Key]
	if !ok {
		return key.Event{}, false
	}
	return key.NewSpecialEvent(special, mods), true
}

var specialKeys = map[backend.Key]key.Key{
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyTab:       key.KeyTab,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyDelete:    key.KeyDelete,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyPageUp:    key.KeyPageUp,
	backend.KeyPageDown:  key.KeyPageDown,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
}

func translateMods(m backend.ModMask) key.Modifier {
	mods := key.ModNone
	if m.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if m.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if m.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if m.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

func ctrlLetter(k backend.Key) (rune, bool) {
	if k < backend.KeyCtrlA || k > backend.KeyCtrlZ {
		return 0, false
	}
	return rune('a' + (k - backend.KeyCtrlA)), true
}
