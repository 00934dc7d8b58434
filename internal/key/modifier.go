package key

import "strings"

// Modifier is a bitset of active modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0

	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool  { return m.Has(ModMeta) }

func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a compact "C-A-S-M" style representation used in status
// messages and key-binding docs.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "C")
	}
	if m.HasAlt() {
		parts = append(parts, "A")
	}
	if m.HasShift() {
		parts = append(parts, "S")
	}
	if m.HasMeta() {
		parts = append(parts, "M")
	}
	return strings.Join(parts, "-")
}
