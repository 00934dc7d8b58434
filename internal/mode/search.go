package mode

import (
	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/key"
	"github.com/dshills/tofu/internal/pattern"
	"github.com/dshills/tofu/internal/selection"
)

// Acceptor turns a parsed pattern and the current buffer into the
// selection-producing transition a Search mode commits on Enter.
type Acceptor interface {
	Name() string
	Apply(pat pattern.Pattern, buf *buffer.Buffer) (Transition, bool)
}

// Search accumulates pattern text (hex or plain) and, on Enter, hands the
// parsed Pattern to Acceptor to produce new selections.
type Search struct {
	Acceptor Acceptor
	Hex      bool
	Text     string
	Cursor   int
}

func (m *Search) Name() string {
	if m.Hex {
		return "SEARCH (hex) " + m.Acceptor.Name()
	}
	return "SEARCH " + m.Acceptor.Name()
}

func (m *Search) TakesInput() bool   { return true }
func (m *Search) HasHalfCursor() bool { return false }

func (m *Search) Transition(event key.Event, buffers *buffer.Collection, bytesPerLine int) (Transition, bool) {
	switch {
	case event.IsEscape():
		return NewModeTransition(NewNormal()), true

	case event.IsEnter():
		pat, err := pattern.Parse(m.Text, m.Hex)
		if err != nil {
			return ModeAndInfoTransition(NewNormal(), err.Error()), true
		}
		return m.Acceptor.Apply(pat, buffers.Current())

	case event.IsBackspace():
		if m.Cursor == 0 {
			return NoChange(), true
		}
		text := m.Text[:m.Cursor-1] + m.Text[m.Cursor:]
		return NewModeTransition(&Search{Acceptor: m.Acceptor, Hex: m.Hex, Text: text, Cursor: m.Cursor - 1}), true

	case event.IsRune():
		text := m.Text[:m.Cursor] + string(event.Rune) + m.Text[m.Cursor:]
		return NewModeTransition(&Search{Acceptor: m.Acceptor, Hex: m.Hex, Text: text, Cursor: m.Cursor + 1}), true
	}

	return Transition{}, false
}

// collapseAcceptor replaces each region with every non-overlapping match of
// the pattern found within it. If nothing matched anywhere, the whole
// transition is rejected and the prior selection is kept.
type collapseAcceptor struct{}

func (collapseAcceptor) Name() string { return "collapse" }

func (collapseAcceptor) Apply(pat pattern.Pattern, buf *buffer.Buffer) (Transition, bool) {
	if pat.Len() == 0 {
		return NewModeTransition(NewNormal()), true
	}

	r := buf.Rope()
	sel := buf.Selection()
	perRegion := make([][]pattern.Match, len(sel.Regions))
	total := 0
	for i, region := range sel.Regions {
		matches := nonOverlapping(pat.FindAll(r, region.Min(), region.Max()))
		perRegion[i] = matches
		total += len(matches)
	}
	if total == 0 {
		return ModeAndInfoTransition(NewNormal(), "no matches"), true
	}

	idx := 0
	dirty, err := buf.MapSelections(func(base selection.Region) []selection.Region {
		matches := perRegion[idx]
		idx++
		out := make([]selection.Region, 0, len(matches))
		for _, m := range matches {
			out = append(out, selection.New(m.Start, m.End).InheritDirection(base))
		}
		return out
	})
	if err != nil {
		return ModeAndInfoTransition(NewNormal(), err.Error()), true
	}
	return ModeAndDirtyTransition(NewNormal(), dirty), true
}

// splitAcceptor replaces each region with the runs of bytes *between*
// non-overlapping matches of the pattern (the matched bytes themselves are
// dropped from the resulting selection).
type splitAcceptor struct{}

func (splitAcceptor) Name() string { return "split" }

func (splitAcceptor) Apply(pat pattern.Pattern, buf *buffer.Buffer) (Transition, bool) {
	if pat.Len() == 0 {
		return NewModeTransition(NewNormal()), true
	}

	r := buf.Rope()
	sel := buf.Selection()
	perRegion := make([][]selection.Region, len(sel.Regions))
	for i, region := range sel.Regions {
		matches := nonOverlapping(pat.FindAll(r, region.Min(), region.Max()))
		perRegion[i] = segmentsBetween(region, matches)
	}

	idx := 0
	dirty, err := buf.MapSelections(func(base selection.Region) []selection.Region {
		segs := perRegion[idx]
		idx++
		out := make([]selection.Region, 0, len(segs))
		for _, s := range segs {
			out = append(out, s.InheritDirection(base))
		}
		return out
	})
	if err != nil {
		return ModeAndInfoTransition(NewNormal(), err.Error()), true
	}
	return ModeAndDirtyTransition(NewNormal(), dirty), true
}

// segmentsBetween returns the inter-match runs of region, in order. A
// region with no matches yields itself unchanged.
func segmentsBetween(region selection.Region, matches []pattern.Match) []selection.Region {
	if len(matches) == 0 {
		return []selection.Region{region}
	}

	var segs []selection.Region
	cursor := region.Min()
	for _, m := range matches {
		if m.Start > cursor {
			segs = append(segs, selection.New(cursor, m.Start-1))
		}
		cursor = m.End + 1
	}
	if cursor <= region.Max() {
		segs = append(segs, selection.New(cursor, region.Max()))
	}
	return segs
}

// nonOverlapping greedily keeps the earliest-starting match at each
// position, skipping any later match that overlaps one already kept.
func nonOverlapping(matches []pattern.Match) []pattern.Match {
	var out []pattern.Match
	nextFree := -1
	for _, m := range matches {
		if m.Start <= nextFree {
			continue
		}
		out = append(out, m)
		nextFree = m.End
	}
	return out
}
