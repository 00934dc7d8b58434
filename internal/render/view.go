package render

import (
	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/mode"
	"github.com/dshills/tofu/internal/renderer/backend"
	"github.com/dshills/tofu/internal/renderer/core"
	"github.com/dshills/tofu/internal/renderer/statusline"
	"github.com/dshills/tofu/internal/renderer/style"
	"github.com/dshills/tofu/internal/selection"
)

// ChunkSize bounds how many bytes a single scroll step pages in or out,
// matching original_source's load_next_chunk(64)-style incremental growth.
const ChunkSize = 64 * 1024

// View owns the terminal backend and draws one buffer's hex/ASCII grid,
// byte-properties sidebar, and status line each frame.
type View struct {
	Backend      backend.Backend
	BytesPerLine int
	Status       *statusline.StatusLine

	resolver *style.Resolver
	scroll   int // window-relative offset of the first visible row
}

// New returns a View ready to draw onto b.
func New(b backend.Backend, bytesPerLine int) *View {
	return &View{
		Backend:      b,
		BytesPerLine: bytesPerLine,
		Status:       statusline.New(),
		resolver:     style.NewResolver(),
	}
}

// SetMessage forwards a mode transition's info string to the status line;
// an empty msg clears it. cmd/tofu's event loop clears the message at each
// key press, so a message stays up until the next keystroke.
func (v *View) SetMessage(msg string) {
	if msg == "" {
		v.Status.ClearMessage()
		return
	}
	v.Status.SetMessage(msg, statusline.MessageInfo)
}

// Draw renders the current buffer of buffers under mode m to the screen.
func (v *View) Draw(buffers *buffer.Collection, m mode.Mode) error {
	buf := buffers.Current()
	width, height := v.Backend.Size()
	v.Status.Resize(width, height)
	statusRows := v.Status.Height()
	gridRows := height - statusRows
	if gridRows < 1 {
		gridRows = 1
	}

	v.ensureVisible(buf, gridRows)

	if err := buf.MaintainWindow(v.scroll, v.scroll+gridRows*v.BytesPerLine, ChunkSize); err != nil {
		return err
	}

	v.Backend.Clear()
	sel := buf.Selection()
	overflow := buf.OverflowStyle()
	halfCursor := m.HasHalfCursor()

	for row := 0; row < gridRows; row++ {
		rowStart := v.scroll + row*v.BytesPerLine
		if rowStart > buf.Len() {
			break
		}
		rowEnd := rowStart + v.BytesPerLine
		if rowEnd > buf.Len() {
			rowEnd = buf.Len()
		}
		bytes := buf.Rope().Slice(rowStart, rowEnd)
		styles := v.rowStyles(sel, rowStart, rowEnd, halfCursor)
		v.drawRow(row, rowStart, bytes, styles, buf, overflow)
	}

	v.drawSidebar(buf, sel, gridRows)

	main := sel.MainRegion()
	v.Status.SetMode(m.Name())
	v.Status.SetFilename(buf.Name())
	v.Status.SetModified(buf.IsDirty())
	v.Status.SetSelection(sel.Len(), sel.Main)
	last := buf.DataStartOffset() + buf.Len() - 1
	v.Status.SetPosition(buf.DataStartOffset()+main.Caret, last)
	if cmd, ok := m.(*mode.Command); ok {
		v.Status.SetCommandMode(true, ':')
		v.Status.SetCommandBuffer(cmd.Text, cmd.Cursor)
	} else {
		v.Status.SetCommandMode(false, ':')
	}
	v.Status.Render(v.Backend, height-1)

	v.Backend.Show()
	return nil
}

// ensureVisible scrolls so the main caret's row stays within the grid,
// snapping scroll to a multiple of BytesPerLine (original_source's
// ensure_visible_data/scroll_down/scroll_up play the same role, driven by
// near-top/near-bottom margins instead of a direct snap).
func (v *View) ensureVisible(buf *buffer.Buffer, gridRows int) {
	caret := buf.Selection().MainRegion().Caret
	windowBytes := gridRows * v.BytesPerLine
	if v.scroll > caret {
		v.scroll = (caret / v.BytesPerLine) * v.BytesPerLine
	}
	if caret >= v.scroll+windowBytes {
		row := caret / v.BytesPerLine
		lastRow := row - gridRows + 1
		if lastRow < 0 {
			lastRow = 0
		}
		v.scroll = lastRow * v.BytesPerLine
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

// rowStyles resolves one core.Style per byte in [rowStart, rowEnd),
// layering selection and caret spans over the base style the way
// original_source's mark_commands builds a per-offset StylingCommand
// stack, but expressed as internal/renderer/style layer spans instead of
// a hand-rolled command stack.
func (v *View) rowStyles(sel selection.Set, rowStart, rowEnd int, halfCursor bool) []core.Style {
	n := rowEnd - rowStart
	if n <= 0 {
		return nil
	}
	builder := style.NewSpanBuilder()
	for i, r := range sel.Regions {
		if r.Min() >= rowEnd || r.Max() < rowStart {
			continue
		}
		isMain := i == sel.Main
		selStyle := inactiveSelectionStyle
		caretStyle := inactiveCaretStyle
		if isMain {
			selStyle = activeSelectionStyle
			caretStyle = activeCaretStyle
		}
		if !r.IsEmpty() {
			lo, hi := r.Min(), r.Max()
			if lo < rowStart {
				lo = rowStart
			}
			if hi > rowEnd {
				hi = rowEnd
			}
			if lo < hi {
				builder.AddWithMerge(uint32(lo-rowStart), uint32(hi-rowStart), selStyle, style.LayerSelection, style.MergeReplace)
			}
		}
		if r.Caret >= rowStart && r.Caret < rowEnd {
			cs := caretStyle
			if halfCursor && isMain {
				cs = halfCaretStyle
			}
			// MergeBlend tints the caret color onto whatever selection
			// highlight is already under it instead of hiding it outright;
			// on a caret with no selection underneath it degrades to the
			// plain caret color (core.Color.Blend returns the overlay
			// as-is when the base color is the terminal default).
			builder.AddWithMerge(uint32(r.Caret-rowStart), uint32(r.Caret-rowStart+1), cs, style.LayerCursor, style.MergeBlend)
		}
	}

	placeholder := make([]core.Cell, n)
	resolved := v.resolver.ResolveLine(placeholder, builder.Build())
	out := make([]core.Style, n)
	for i, c := range resolved {
		out[i] = c.Style
	}
	return out
}

// drawRow paints one row's padding, hex nibbles, separator, and ASCII
// column, plus a trailing overflow-caret cell when the last region's
// caret or tail sits exactly at EOF within this row.
func (v *View) drawRow(row, rowStart int, bytes []byte, styles []core.Style, buf *buffer.Buffer, overflow buffer.OverflowSelectionStyle) {
	b := v.Backend
	col := 0
	b.SetCell(col, row, core.NewCell(' '))
	col++

	for i := 0; i < v.BytesPerLine; i++ {
		st := baseStyle
		if i < len(styles) {
			st = styles[i]
		}
		if i < len(bytes) {
			hi, lo := hexDigits(bytes[i])
			b.SetCell(col, row, core.NewStyledCell(hi, st))
			b.SetCell(col+1, row, core.NewStyledCell(lo, st))
		} else {
			b.SetCell(col, row, core.NewCell(' '))
			b.SetCell(col+1, row, core.NewCell(' '))
		}
		col += 2
		if i == len(bytes) && rowStart+i == buf.Len() && overflow != buffer.OverflowNone {
			b.SetCell(col, row, core.NewStyledCell(' ', overflowCaretStyle))
		} else {
			b.SetCell(col, row, core.NewCell(' '))
		}
		col++
	}

	b.SetCell(col, row, core.NewCell('|'))
	col++

	for i := 0; i < v.BytesPerLine; i++ {
		st := baseStyle
		if i < len(styles) {
			st = styles[i]
		}
		r := ' '
		if i < len(bytes) {
			r = asciiRune(bytes[i])
		}
		b.SetCell(col, row, core.NewStyledCell(r, st))
		col++
	}
	b.SetCell(col, row, core.NewCell('|'))
}

// drawSidebar paints the byte-properties panel to the right of the ASCII
// column, one label per grid row, decoded from the main caret's position.
func (v *View) drawSidebar(buf *buffer.Buffer, sel selection.Set, gridRows int) {
	caret := sel.MainRegion().Caret
	end := caret + 4
	if end > buf.Len() {
		end = buf.Len()
	}
	var data []byte
	if caret < end {
		data = buf.Rope().Slice(caret, end)
	}
	props := byteProperties(data)

	sidebarCol := 1 + v.BytesPerLine*3 + 1 + v.BytesPerLine + 2
	for row := 0; row < gridRows && row < len(props); row++ {
		for i, r := range props[row] {
			v.Backend.SetCell(sidebarCol+i, row, core.NewStyledCell(r, byteSidebarLabelStyle))
		}
	}
}

func hexDigits(b byte) (rune, rune) {
	const hexChars = "0123456789abcdef"
	return rune(hexChars[b>>4]), rune(hexChars[b&0xf])
}

func asciiRune(b byte) rune {
	if b >= 0x20 && b < 0x7f {
		return rune(b)
	}
	return '.'
}
