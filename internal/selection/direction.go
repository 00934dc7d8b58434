package selection

// Direction is a movement direction used by region movement and boundary
// operations. Left/Right move within a row; Up/Down move by one row
// (bytes_per_line bytes).
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// delta returns the signed byte offset for one step of count in dir, given
// bytes-per-line w.
func (d Direction) delta(w, count int) int {
	switch d {
	case Left:
		return -count
	case Right:
		return count
	case Up:
		return -count * w
	case Down:
		return count * w
	default:
		return 0
	}
}

// Move translates both caret and tail by count steps in dir, clamped to
// [0, maxLen].
func (r Region) Move(dir Direction, w, maxLen, count int) Region {
	d := dir.delta(w, count)
	return Region{
		Tail:  clamp(r.Tail+d, 0, maxLen),
		Caret: clamp(r.Caret+d, 0, maxLen),
	}
}

// Extend translates only the caret by count steps in dir, clamped; tail is
// unchanged.
func (r Region) Extend(dir Direction, w, maxLen, count int) Region {
	d := dir.delta(w, count)
	return Region{Tail: r.Tail, Caret: clamp(r.Caret+d, 0, maxLen)}
}

// boundaryOffset returns the nearest line/file boundary from caret in dir.
func boundaryOffset(dir Direction, caret, w, maxLen int) int {
	switch dir {
	case Left:
		return (caret / w) * w
	case Right:
		lineStart := (caret / w) * w
		end := lineStart + w - 1
		if end > maxLen {
			end = maxLen
		}
		return end
	case Up:
		return 0
	case Down:
		return maxLen
	default:
		return caret
	}
}

// JumpToBoundary moves both tail and caret to the nearest boundary in dir:
// the start/end of the current line for Left/Right, or the top/bottom of
// the buffer for Up/Down.
func (r Region) JumpToBoundary(dir Direction, w, maxLen int) Region {
	off := boundaryOffset(dir, r.Caret, w, maxLen)
	return Region{Tail: off, Caret: off}
}

// ExtendToBoundary moves only the caret to the nearest boundary in dir.
func (r Region) ExtendToBoundary(dir Direction, w, maxLen int) Region {
	off := boundaryOffset(dir, r.Caret, w, maxLen)
	return Region{Tail: r.Tail, Caret: off}
}
