package mode

import "github.com/dshills/tofu/internal/key"

// KeyMap is a read-only table from key event to the action it triggers in
// some mode. Built once at package init for each mode; never mutated
// afterward (modes are data, the table is the behavior).
type KeyMap[A any] map[key.Event]A

// Lookup returns the action bound to event, if any.
func (m KeyMap[A]) Lookup(event key.Event) (A, bool) {
	a, ok := m[event]
	return a, ok
}

func ch(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModNone)
}

func alt(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModAlt)
}

func special(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModNone)
}
