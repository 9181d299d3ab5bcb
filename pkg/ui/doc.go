// Package ui partitions the window into screen regions and draws the
// non-grid parts of the frame.
//
// [LayoutManager] splits the window horizontally into a command column, a
// separator and the simulation area:
//
//	column_width    = floor(w * ratio)                clamped to [1, w]
//	separator_width = min(separator, w - column_width) never negative
//	sim_x           = column_width + separator_width   clamped to w-1
//	sim_width       = max(1, w - sim_x)
//
// All three rectangles are recomputed together from the window size on every
// resize, so they cannot drift apart. Their widths sum to the window width
// whenever the window is wider than column plus separator.
//
// [CommandColumn] fills the command area and draws the centered title.
package ui
