package rope

import "fmt"

// Op is a single replacement within a Delta: the half-open range [Start,
// End) of the base rope is replaced by Insert.
type Op struct {
	Start, End int
	Insert     []byte
}

// IsInsert returns true if the op inserts without removing anything.
func (o Op) IsInsert() bool {
	return o.Start == o.End && len(o.Insert) > 0
}

// IsDelete returns true if the op removes without inserting anything.
func (o Op) IsDelete() bool {
	return o.Start < o.End && len(o.Insert) == 0
}

// IsReplace returns true if the op both removes and inserts.
func (o Op) IsReplace() bool {
	return o.Start < o.End && len(o.Insert) > 0
}

// Delta describes an edit against a rope of a known base length: zero or
// more ordered, non-overlapping replacements. Ops must be sorted by Start
// with each End <= the following Start.
type Delta struct {
	BaseLen int
	Ops     []Op
}

// SimpleEdit builds the common single-range delta: replace [start, end) of
// a rope of length baseLen with newBytes.
func SimpleEdit(start, end int, newBytes []byte, baseLen int) Delta {
	if start == end && len(newBytes) == 0 {
		return Delta{BaseLen: baseLen}
	}
	return Delta{BaseLen: baseLen, Ops: []Op{{Start: start, End: end, Insert: newBytes}}}
}

// IsIdentity returns true if the delta changes nothing.
func (d Delta) IsIdentity() bool {
	return len(d.Ops) == 0
}

// Len returns the byte length of the rope that results from applying d.
func (d Delta) Len() int {
	n := d.BaseLen
	for _, op := range d.Ops {
		n += len(op.Insert) - (op.End - op.Start)
	}
	return n
}

// Apply applies d to r, returning the edited rope. r must have exactly
// d.BaseLen bytes.
func (d Delta) Apply(r Rope) (Rope, error) {
	if r.Len() != d.BaseLen {
		return Rope{}, fmt.Errorf("rope: delta base length %d does not match rope length %d", d.BaseLen, r.Len())
	}

	var b Builder
	pos := 0
	for _, op := range d.Ops {
		if op.Start > pos {
			b.Write(r.Slice(pos, op.Start))
		}
		if len(op.Insert) > 0 {
			b.Write(op.Insert)
		}
		pos = op.End
	}
	if pos < d.BaseLen {
		b.Write(r.Slice(pos, d.BaseLen))
	}
	return b.Build(), nil
}

// Invert builds the delta that undoes d, given the rope d was built against
// (i.e. the pre-edit rope). Applying the result to Apply(d, r) reproduces r
// exactly.
func (d Delta) Invert(r Rope) Delta {
	inv := make([]Op, 0, len(d.Ops))
	shift := 0
	for _, op := range d.Ops {
		invStart := op.Start + shift
		invEnd := invStart + len(op.Insert)
		removed := r.Slice(op.Start, op.End)
		inv = append(inv, Op{Start: invStart, End: invEnd, Insert: removed})
		shift += len(op.Insert) - (op.End - op.Start)
	}
	return Delta{BaseLen: d.Len(), Ops: inv}
}

// Transform maps a byte position in the base rope to the corresponding
// position in the post-apply rope. Positions inside a replaced range
// collapse to the start of its replacement. A position sitting exactly at
// a zero-width insertion point maps to just before the inserted bytes;
// callers that want the caret to follow an insertion (e.g. typed text) add
// the inserted length explicitly afterward.
func (d Delta) Transform(pos int) int {
	shift := 0
	for _, op := range d.Ops {
		zeroWidthHere := op.Start == op.End && pos == op.Start
		if pos < op.Start || zeroWidthHere {
			return pos + shift
		}
		if pos < op.End {
			return op.Start + shift
		}
		shift += len(op.Insert) - (op.End - op.Start)
	}
	return pos + shift
}

// Compose builds the delta from base directly to the rope produced by
// applying next to Apply(d, base). base must be the rope d was built
// against, and next must be built against a rope of length d.Len().
//
// The composed delta is not guaranteed minimal — it is materialized by
// replaying both edits and diffing the endpoints — but it is exact.
func (d Delta) Compose(base Rope, next Delta) (Delta, error) {
	mid, err := d.Apply(base)
	if err != nil {
		return Delta{}, err
	}
	final, err := next.Apply(mid)
	if err != nil {
		return Delta{}, err
	}
	return SimpleEdit(0, base.Len(), final.Bytes(), base.Len()), nil
}
