// Package buffer owns the editable state for one file or scratch document:
// its byte rope, selection set, undo history, yank registers, and (for
// on-disk files) the window pager that keeps the rope bounded. Buffer is
// the unit the mode state machine operates on; BufferCollection holds the
// set of open buffers and the notion of "current".
package buffer
