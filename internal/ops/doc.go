// Package ops constructs the RopeDelta for the editor's core mutating
// commands — delete, paste, and per-keystroke insertion — over a
// selection set. These are pure functions: they never touch a Buffer
// directly, only ropes and selections, so callers choose how the result
// is committed (as a final edit or folded into a partial run).
package ops
