package key

import "fmt"

// Key identifies a non-character key. Character keys use KeyRune with the
// Rune field of Event set.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace

	// KeyRune is used for character keys (letters, digits, punctuation);
	// the actual character is stored in Event.Rune.
	KeyRune
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
}

// IsSpecial returns true for any key other than KeyNone or KeyRune.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsArrowKey returns true if this is one of the four arrow keys.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}
