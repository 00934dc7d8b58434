// Package statusline draws the bottom status line: buffer name, dirty
// marker, mode name, selection count, and the main caret's offset into the
// file (mirroring original_source's calculate_powerline_length/
// draw_statusline segment layout, rendered as a flat bar instead of
// powerline arrows).
package statusline

import (
	"fmt"

	"github.com/dshills/tofu/internal/renderer/backend"
	"github.com/dshills/tofu/internal/renderer/core"
)

// StatusLine renders the bottom status line including mode display and command input.
type StatusLine struct {
	// Display state
	mode       string // Current mode name (e.g., "NORMAL", "INSERT")
	filename   string // Current filename (empty for scratch)
	modified   bool   // Buffer has unsaved changes
	selCount   int    // Number of selection regions
	selMain    int    // Index (0-based) of the main region
	mainOffset int    // Absolute file offset of the main caret
	lastOffset int    // Absolute offset of the last byte (len-1), -1 if empty

	// Command line state
	commandActive bool   // In command mode
	commandPrompt rune   // Prompt character (usually ':')
	commandBuffer string // Command being typed
	commandCursor int    // Cursor position in command

	// Message display
	message     string // Status message to display
	messageType MessageType

	// Style configuration
	modeStyles map[string]core.Style // Mode-specific styles

	// Dimensions
	width  int
	height int // Usually 1, but can be 2 for command line
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		mode:          "NORMAL",
		commandPrompt: ':',
		modeStyles:    defaultModeStyles(),
		height:        1,
		lastOffset:    -1,
	}
}

// defaultModeStyles returns default styles for each mode name tofu's
// internal/mode package produces.
func defaultModeStyles() map[string]core.Style {
	return map[string]core.Style{
		"NORMAL":    core.DefaultStyle().Bold().WithBackground(core.ColorBlue).WithForeground(core.ColorWhite),
		"INSERT":    core.DefaultStyle().Bold().WithBackground(core.ColorGreen).WithForeground(core.ColorBlack),
		"APPEND":    core.DefaultStyle().Bold().WithBackground(core.ColorGreen).WithForeground(core.ColorBlack),
		"OVERWRITE": core.DefaultStyle().Bold().WithBackground(core.ColorMagenta).WithForeground(core.ColorWhite),
		"REPLACE":   core.DefaultStyle().Bold().WithBackground(core.ColorRed).WithForeground(core.ColorWhite),
		"COMMAND":   core.DefaultStyle().Bold().WithBackground(core.ColorYellow).WithForeground(core.ColorBlack),
		"JUMP":      core.DefaultStyle().Bold().WithBackground(core.ColorCyan).WithForeground(core.ColorBlack),
		"EXTEND":    core.DefaultStyle().Bold().WithBackground(core.ColorCyan).WithForeground(core.ColorBlack),
	}
}

// SetMode updates the displayed mode name.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetSelection updates the selection-count/main-index segment.
func (s *StatusLine) SetSelection(count, main int) {
	s.selCount = count
	s.selMain = main
}

// SetPosition updates the main caret's absolute offset and the buffer's
// last valid byte offset (-1 for an empty buffer).
func (s *StatusLine) SetPosition(mainOffset, lastOffset int) {
	s.mainOffset = mainOffset
	s.lastOffset = lastOffset
}

// SetCommandMode activates command line display.
func (s *StatusLine) SetCommandMode(active bool, prompt rune) {
	s.commandActive = active
	s.commandPrompt = prompt
	if !active {
		s.commandBuffer = ""
		s.commandCursor = 0
	}
}

// SetCommandBuffer updates the command being typed.
func (s *StatusLine) SetCommandBuffer(buffer string, cursor int) {
	s.commandBuffer = buffer
	s.commandCursor = cursor
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width, height int) {
	s.width = width
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	if s.commandActive {
		return 2 // Mode line + command line
	}
	return 1
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	if s.commandActive {
		s.renderStatusBar(b, row-1)
		s.renderCommandLine(b, row)
	} else if s.message != "" {
		s.renderMessage(b, row)
	} else {
		s.renderStatusBar(b, row)
	}
}

// renderStatusBar renders the mode/file/selection/offset segments.
func (s *StatusLine) renderStatusBar(b backend.Backend, row int) {
	modeStyle, ok := s.modeStyles[s.mode]
	if !ok {
		modeStyle = core.DefaultStyle().Bold().WithBackground(core.ColorGray)
	}

	barStyle := core.DefaultStyle().WithBackground(core.ColorGray).WithForeground(core.ColorWhite)

	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, core.Cell{Rune: ' ', Width: 1, Style: barStyle})
	}

	col := 0
	modeText := " " + s.mode + " "
	for _, r := range modeText {
		if col < s.width {
			b.SetCell(col, row, core.Cell{Rune: r, Width: 1, Style: modeStyle})
			col++
		}
	}

	if col < s.width {
		b.SetCell(col, row, core.Cell{Rune: ' ', Width: 1, Style: barStyle})
		col++
	}

	filename := s.filename
	if filename == "" {
		filename = "[scratch]"
	}
	if s.modified {
		filename += " [+]"
	}
	for _, r := range filename {
		if col < s.width-24 {
			b.SetCell(col, row, core.Cell{Rune: r, Width: 1, Style: barStyle})
			col++
		}
	}

	posInfo := s.formatPosition()
	posStart := s.width - len(posInfo) - 1
	if posStart > col {
		for i, r := range posInfo {
			b.SetCell(posStart+i, row, core.Cell{Rune: r, Width: 1, Style: barStyle})
		}
	}
}

// renderCommandLine renders the command input line.
func (s *StatusLine) renderCommandLine(b backend.Backend, row int) {
	cmdStyle := core.DefaultStyle()
	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, core.Cell{Rune: ' ', Width: 1, Style: cmdStyle})
	}

	b.SetCell(0, row, core.Cell{Rune: s.commandPrompt, Width: 1, Style: cmdStyle})

	for i, r := range s.commandBuffer {
		if i+1 < s.width {
			b.SetCell(i+1, row, core.Cell{Rune: r, Width: 1, Style: cmdStyle})
		}
	}

	b.ShowCursor(s.commandCursor+1, row)
}

// renderMessage renders a status message in place of the status bar.
func (s *StatusLine) renderMessage(b backend.Backend, row int) {
	var msgStyle core.Style
	switch s.messageType {
	case MessageError:
		msgStyle = core.DefaultStyle().WithForeground(core.ColorRed).Bold()
	case MessageWarning:
		msgStyle = core.DefaultStyle().WithForeground(core.ColorYellow)
	default:
		msgStyle = core.DefaultStyle()
	}

	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, core.Cell{Rune: ' ', Width: 1, Style: msgStyle})
	}

	for i, r := range s.message {
		if i < s.width {
			b.SetCell(i, row, core.Cell{Rune: r, Width: 1, Style: msgStyle})
		}
	}
}

// formatPosition formats the right-side segment: selection count/main
// index and the main caret's offset over the last byte offset in hex,
// matching original_source's " N sels (M) " / " off/len " segments.
func (s *StatusLine) formatPosition() string {
	sel := fmt.Sprintf(" %d sels (%d) ", s.selCount, s.selMain+1)
	if s.lastOffset < 0 {
		return sel + " empty "
	}
	return sel + fmt.Sprintf(" %x/%x ", s.mainOffset, s.lastOffset)
}
