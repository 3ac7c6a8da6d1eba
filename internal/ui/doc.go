// Package ui provides the Bubble Tea presenter for streamtabs.
//
// # Architecture Overview
//
// The presenter is a thin layer over state.Store. On every tick it compares
// the store version with the one of its last frame and, when they differ,
// copies a new state.Frame and lays it out. User input is translated into
// state intents; the store decides what they mean.
//
// # Screen Layout
//
//	row 0-2   ╭───────────────╮ ╭─────────────────╮  (paused)
//	          │ 0  (all)      │ │ 1  error    •12 │
//	          ╰───────────────╯ ╰─────────────────╯
//	row 3..   body: the focused tab, newest line at the bottom
//	last row  footer: tab, counts, input state, key hints
//
// Each tab box holds its shortcut digit, the label and a six column unread
// badge (•N, capped at •999+). The focused box gets the bright border. Boxes
// that do not fit are dropped; the last one is narrowed with "...".
//
// # Viewport
//
// While live the body shows the newest lines bottom-anchored. While paused
// with a selection, the selected line is centred when there is enough
// content around it. The selected line is drawn in the highlight colour with
// its escape sequences stripped; other lines keep their own colours and are
// clipped to the terminal width.
//
// # Input
//
//   - tab, 0-9: focus next tab or a specific tab
//   - space: pause / resume all tabs
//   - s: select the line in the middle of the body
//   - d: clear the selection
//   - y: copy the selected line with OSC 52
//   - T: cycle theme
//   - ?: help overlay
//   - q, ctrl+c: quit
//   - left click: focus a tab, or toggle selection of a line
//
// Keyboard and mouse events are read from the controlling terminal, since
// standard input carries the stream being viewed.
package ui
