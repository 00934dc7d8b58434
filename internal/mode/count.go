package mode

import "github.com/dshills/tofu/internal/key"

// Count is the small automaton behind Normal mode's numeric prefix: digits
// typed before a command accumulate a base-10 count; any non-digit action
// consumes it, and the state resets once consumed.
type Count struct {
	active bool
	value  int
}

// Digit folds one more digit into the count, entering the active state if
// this is the first digit seen. A leading '0' does not start a count (it's
// a normal digit once a count is already active, matching the convention
// that "0" alone is not a valid count prefix).
func (c Count) Digit(d int) Count {
	if !c.active {
		if d == 0 {
			return c
		}
		return Count{active: true, value: d}
	}
	return Count{active: true, value: c.value*10 + d}
}

// Active reports whether any digits have been accumulated.
func (c Count) Active() bool {
	return c.active
}

// Value returns the accumulated count, or 0 if none is active. Callers
// that treat "no count" as count 1 should use ValueOr1 instead.
func (c Count) Value() int {
	return c.value
}

// ValueOr1 returns the accumulated count, or 1 if none was typed — the
// convention for repeat-count operations like Move/Extend/Paste.
func (c Count) ValueOr1() int {
	if !c.active {
		return 1
	}
	return c.value
}

// Reset clears the count, as happens after any non-digit action consumes
// it.
func (c Count) Reset() Count {
	return Count{}
}

// digitFromEvent returns the digit 0-9 encoded by event and true, or
// (0, false) if event isn't an unmodified digit key.
func digitFromEvent(event key.Event) (int, bool) {
	if event.Key != key.KeyRune || event.Modifiers != key.ModNone {
		return 0, false
	}
	if event.Rune < '0' || event.Rune > '9' {
		return 0, false
	}
	return int(event.Rune - '0'), true
}
