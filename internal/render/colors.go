package render

import "github.com/dshills/tofu/internal/renderer/core"

// Selection/caret colors match original_source's active_selection_style,
// inactive_selection_style, active_caret_style, and inactive_caret_style
// exactly (same RGB triples), so a byte highlighted under tofu looks the
// same as it did under the program this was ported from.
var (
	baseStyle = core.DefaultStyle().WithForeground(core.ColorWhite)

	activeSelectionStyle = core.DefaultStyle().
				WithForeground(core.ColorBlack).
				WithBackground(core.ColorFromRGB(110, 97, 16))

	inactiveSelectionStyle = core.DefaultStyle().
				WithForeground(core.ColorBlack).
				WithBackground(core.ColorGray)

	activeCaretStyle = core.DefaultStyle().
				WithForeground(core.ColorBlack).
				WithBackground(core.ColorFromRGB(107, 108, 128))

	inactiveCaretStyle = core.DefaultStyle().
				WithForeground(core.ColorBlack).
				WithBackground(core.ColorGray)

	halfCaretStyle = core.DefaultStyle().
			WithForeground(core.ColorBlack).
			WithBackground(core.ColorFromRGB(80, 130, 110))

	overflowCaretStyle = core.DefaultStyle().WithBackground(core.ColorGreen)

	byteSidebarLabelStyle = core.DefaultStyle().WithForeground(core.ColorGray)
)
