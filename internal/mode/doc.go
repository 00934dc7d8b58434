// Package mode implements the editor's modal input state machine: a Mode
// consumes one key.Event against the current buffer collection and
// produces a Transition describing what changed and which mode is active
// next. Normal is the initial mode; Quitting is terminal.
package mode
