package ops

import (
	"github.com/dshills/tofu/internal/rope"
	"github.com/dshills/tofu/internal/selection"
)

// Deletion returns the delta that removes [min, max+1) of every region in
// sel, coalescing overlapping regions into a single removed range. The
// result has no insertions, only deletes.
func Deletion(r rope.Rope, sel selection.Set) rope.Delta {
	type span struct{ start, end int }

	spans := make([]span, len(sel.Regions))
	for i, reg := range sel.Regions {
		spans[i] = span{reg.Min(), reg.Max() + 1}
	}

	// Insertion-sort by start; region counts are small.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j-1].start > spans[j].start; j-- {
			spans[j-1], spans[j] = spans[j], spans[j-1]
		}
	}

	var merged []span
	for _, s := range spans {
		if len(merged) == 0 {
			merged = append(merged, s)
			continue
		}
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}

	ops := make([]rope.Op, len(merged))
	for i, s := range merged {
		ops[i] = rope.Op{Start: s.start, End: s.end}
	}
	return rope.Delta{BaseLen: r.Len(), Ops: ops}
}

// Paste returns the delta that inserts, for each region i (in ascending
// position order), contents[i % len(contents)] repeated count times,
// either immediately before the region's min (after == false) or
// immediately after its max (after == true). Empty register entries
// produce no-op inserts for that region. CaretOffset is the uniform shift
// to apply afterward (via Buffer.ApplyDeltaOffsetCarets) so every caret
// lands on the last byte inserted at its own region — exact when every
// cycled register entry has the same length (the common case: pasting a
// single yanked value across every region), an approximation otherwise.
func Paste(r rope.Rope, sel selection.Set, contents [][]byte, after bool, count int) (rope.Delta, int) {
	if len(contents) == 0 || count <= 0 {
		return rope.Delta{BaseLen: r.Len()}, 0
	}

	type indexed struct {
		pos int
		ins []byte
	}

	items := make([]indexed, len(sel.Regions))
	for i, reg := range sel.Regions {
		piece := contents[i%len(contents)]
		var pos int
		if after {
			pos = reg.Max() + 1
		} else {
			pos = reg.Min()
		}
		var insert []byte
		for k := 0; k < count; k++ {
			insert = append(insert, piece...)
		}
		items[i] = indexed{pos: pos, ins: insert}
	}

	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j-1].pos > items[j].pos; j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}

	ops := make([]rope.Op, 0, len(items))
	for _, it := range items {
		if len(it.ins) == 0 {
			continue
		}
		ops = append(ops, rope.Op{Start: it.pos, End: it.pos, Insert: it.ins})
	}

	mainPiece := contents[sel.Main%len(contents)]
	caretOffset := len(mainPiece)*count - 1
	if caretOffset < 0 {
		caretOffset = 0
	}

	return rope.Delta{BaseLen: r.Len(), Ops: ops}, caretOffset
}

// Insertion returns the delta that, for each region's caret, either
// inserts b (overwrite == false) or replaces the single byte at the caret
// with b (overwrite == true; inserts instead if the caret sits at the end
// of the rope). Carets should advance by 1 afterward (caretOffset == 1).
func Insertion(r rope.Rope, sel selection.Set, b byte, overwrite bool) rope.Delta {
	type op struct {
		caret int
		start int
		end   int
	}

	items := make([]op, len(sel.Regions))
	for i, reg := range sel.Regions {
		start := reg.Caret
		end := start
		if overwrite && start < r.Len() {
			end = start + 1
		}
		items[i] = op{caret: reg.Caret, start: start, end: end}
	}

	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j-1].start > items[j].start; j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}

	ops := make([]rope.Op, len(items))
	for i, it := range items {
		ops[i] = rope.Op{Start: it.start, End: it.end, Insert: []byte{b}}
	}
	return rope.Delta{BaseLen: r.Len(), Ops: ops}
}
