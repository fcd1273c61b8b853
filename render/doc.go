// Package render turns 3D points, segments and polygons into a grid of
// half-block terminal cells.
//
// Pipeline (fixed):
//
//	World → Camera-local → Near/far clipping → Projection → Rasterization → Sink.
//
// A Buffer stores pixels at twice the vertical density of the terminal: every
// Cell is one character drawn with an upper half block, so its foreground is the
// even pixel row and its background the odd one. Depth is kept per pixel, not
// per cell, and is reset together with the colors on every Clear.
//
// Nothing in this package fails loudly. A point behind the camera, a pixel off
// screen, a write hidden by nearer geometry or a polygon clipped to fewer than
// three vertices all simply leave the buffer unchanged.
//
// All work happens on the calling goroutine; a Buffer must not be shared
// between goroutines while drawing.
package render
