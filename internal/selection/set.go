package selection

import (
	"errors"

	"github.com/dshills/tofu/internal/rope"
)

// ErrWouldEmptySelection is returned by operations that would leave a Set
// with zero regions, which violates the selection-non-empty invariant.
var ErrWouldEmptySelection = errors.New("selection: operation would leave no regions")

// ErrEmptyResult is returned by MapSelections when any region maps to an
// empty list of replacements; the transformation is rejected wholesale.
var ErrEmptyResult = errors.New("selection: map produced an empty result")

// Set is an ordered, non-empty sequence of regions plus a designated main
// index. Unlike a merged cursor set, regions are not deduplicated or
// coalesced — creation order is preserved even when regions overlap.
type Set struct {
	Regions []Region
	Main    int
}

// NewSet returns a Set containing a single region as the main selection.
func NewSet(r Region) Set {
	return Set{Regions: []Region{r}, Main: 0}
}

// FromRegions returns a Set over the given regions with the given main
// index. Panics if regions is empty or main is out of range — callers are
// expected to never construct an invalid Set directly.
func FromRegions(regions []Region, main int) Set {
	if len(regions) == 0 {
		panic("selection: FromRegions requires at least one region")
	}
	if main < 0 || main >= len(regions) {
		panic("selection: main index out of range")
	}
	return Set{Regions: regions, Main: main}
}

// Len returns the number of regions.
func (s Set) Len() int {
	return len(s.Regions)
}

// MainRegion returns the designated main region.
func (s Set) MainRegion() Region {
	return s.Regions[s.Main]
}

// MainCursorOffset returns the caret of the main region.
func (s Set) MainCursorOffset() int {
	return s.Regions[s.Main].Caret
}

// SelectAll replaces the set with a single region covering the whole
// buffer, [0, length-1].
func SelectAll(length int) Set {
	if length <= 0 {
		return NewSet(Cursor(0))
	}
	return NewSet(Region{Tail: 0, Caret: length - 1})
}

// SelectNext rotates the main index forward by n, modulo the region count.
func (s Set) SelectNext(n int) Set {
	return s.rotate(n)
}

// SelectPrev rotates the main index backward by n, modulo the region count.
func (s Set) SelectPrev(n int) Set {
	return s.rotate(-n)
}

func (s Set) rotate(n int) Set {
	l := len(s.Regions)
	m := ((s.Main+n)%l + l) % l
	return Set{Regions: s.Regions, Main: m}
}

// Remove drops region i. If i was the main region, the new main becomes
// min(i, len-1). Returns ErrWouldEmptySelection if only one region remains.
func (s Set) Remove(i int) (Set, error) {
	if len(s.Regions) <= 1 {
		return s, ErrWouldEmptySelection
	}

	out := make([]Region, 0, len(s.Regions)-1)
	out = append(out, s.Regions[:i]...)
	out = append(out, s.Regions[i+1:]...)

	var newMain int
	switch {
	case i == s.Main:
		newMain = i
		if newMain > len(out)-1 {
			newMain = len(out) - 1
		}
	case i < s.Main:
		newMain = s.Main - 1
	default:
		newMain = s.Main
	}

	return Set{Regions: out, Main: newMain}, nil
}

// Retain keeps only region i, making it the sole main selection.
func (s Set) Retain(i int) Set {
	return NewSet(s.Regions[i])
}

// MapSelections replaces each region, in order, with f(region). If any
// call produces an empty slice, the whole transformation is rejected and
// the original Set is returned along with ErrEmptyResult. A produced
// region's membership in the main group is inherited from whether its
// source region was the main one; when the main region expands into
// several, the first of the group becomes the new main.
func (s Set) MapSelections(f func(Region) []Region) (Set, error) {
	var out []Region
	newMain := -1

	for i, r := range s.Regions {
		produced := f(r)
		if len(produced) == 0 {
			return s, ErrEmptyResult
		}
		if i == s.Main {
			newMain = len(out)
		}
		out = append(out, produced...)
	}

	if newMain < 0 {
		newMain = 0
	}
	return Set{Regions: out, Main: newMain}, nil
}

// MapRegions replaces every region with f(region) one-for-one; the region
// count and main index are unchanged. Used for operations that can never
// produce an empty result (collapse, swap, reorientation).
func (s Set) MapRegions(f func(Region) Region) Set {
	out := make([]Region, len(s.Regions))
	for i, r := range s.Regions {
		out[i] = f(r)
	}
	return Set{Regions: out, Main: s.Main}
}

// RegionsInRange returns the regions whose [min, max+1) intersects [a, b),
// in order.
func (s Set) RegionsInRange(a, b int) []Region {
	var out []Region
	for _, r := range s.Regions {
		if r.Min() < b && a <= r.Max() {
			out = append(out, r)
		}
	}
	return out
}

// Clamp clamps every region to [0, maxLen].
func (s Set) Clamp(maxLen int) Set {
	return s.MapRegions(func(r Region) Region { return r.Clamp(maxLen) })
}

// Transform transports every region through delta d: each endpoint is
// mapped via d.Transform, then shifted by caretOffset/tailOffset (used by
// insert/append so carets follow typed bytes), then clamped to
// [0, d.Len()].
func (s Set) Transform(d rope.Delta, caretOffset, tailOffset int) Set {
	newLen := d.Len()
	return s.MapRegions(func(r Region) Region {
		tail := clamp(d.Transform(r.Tail)+tailOffset, 0, newLen)
		caret := clamp(d.Transform(r.Caret)+caretOffset, 0, newLen)
		return Region{Tail: tail, Caret: caret}
	})
}
