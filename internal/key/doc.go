// Package key models a single terminal key press, independent of any
// particular terminal backend. Modes match against key.Event values built
// by cmd/tofu's translateKey from backend.Event key events.
package key
