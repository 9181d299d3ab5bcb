// Package display draws a [hex.Grid] onto a [render.Surface].
//
// A [GridDisplay] owns a surface, a [transform.Transformer] and a
// [GridRenderer]. It centers the grid footprint inside the surface:
//
//	total_width  = width  * 3 * hexSize + hexSize
//	total_height = height * hexSize * √3 / 2
//	origin_x     = (surface_width  - total_width)  / 2 + padding
//	origin_y     = (surface_height - total_height) / 2 + padding
//
// On resize the transformer and renderer are rebuilt from the new surface;
// no field is updated on its own.
package display
