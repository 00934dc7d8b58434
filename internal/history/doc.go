// Package history implements the buffer's undo/redo engine: a two-stack log
// of invertible deltas with selection snapshots, and coalescing of partial
// (in-progress) edits into a single undo step.
package history
