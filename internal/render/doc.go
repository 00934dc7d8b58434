// Package render draws tofu's terminal surface: the hex/ASCII byte grid,
// the byte-properties sidebar, and the status/command line.
//
// The terminal port (Init/Shutdown/Size/PollEvent/SetCell/Show, cursor and
// raw-mode toggles) is internal/renderer/backend, kept close to the
// tcell-backed teacher implementation. Colors and cells are
// internal/renderer/core. The row layout, selection/caret style stack, and
// byte-properties sidebar are grounded on original_source's
// hex_view/view.rs (draw_row, mark_commands, visible_bytes,
// calculate_powerline_length), adapted from that file's per-call
// StylingCommand stack onto internal/renderer/style's layer-priority
// Resolver.
package render
