// Package ui is a retained-mode layout and event engine for cell-based
// screens.
//
// Applications build a tree of widgets (Box, Grid, Stack, Switcher,
// Scroller, Popup, Text or their own types embedding Node) and push it onto
// a Root as a layer. The root negotiates sizes in two phases, preferred size
// then region allocation, draws every layer through a clipping Surface and
// routes input to the topmost layer: hotkeys first, then the focused widget
// and its ancestors, then focus navigation.
//
// A Root is single-threaded. Blocking helpers such as RunLayout, Delay and
// WaitKey pump events on the calling goroutine.
//
// The screen subpackage provides a tcell-backed Canvas and EventReader.
package ui
