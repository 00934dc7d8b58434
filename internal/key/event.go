package key

import "fmt"

// Event is a single key press, the unit modes dispatch on.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent builds an Event for a typed character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent builds an Event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune reports whether this event carries a character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Equals compares two events for equality, ignoring nothing.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// IsEscape reports an unmodified Escape key.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsEnter reports an unmodified Enter key.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Modifiers == ModNone
}

// IsBackspace reports an unmodified Backspace key.
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace && e.Modifiers == ModNone
}

// String returns a human-readable representation, e.g. "a", "A-s", "Enter".
func (e Event) String() string {
	mod := e.Modifiers.String()
	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}
	if mod == "" {
		return name
	}
	return fmt.Sprintf("%s-%s", mod, name)
}
