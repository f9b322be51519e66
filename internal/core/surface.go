package core

// Surface is the drawing target the game renders into once per frame.
// Coordinates are world pixels; implementations map them onto whatever
// they own (a terminal cell grid, a window image).
type Surface interface {
	// Size returns the world dimensions the surface represents.
	Size() (w, h float64)

	// Clear fills the whole surface with c.
	Clear(c RGB)

	// FillCircle draws a filled circle.
	FillCircle(center Vec2, radius float64, c RGB)

	// FillRect draws a filled axis-aligned rectangle with top-left (x, y).
	FillRect(x, y, w, h float64, c RGB)

	// Line draws a straight segment of the given stroke width.
	Line(from, to Vec2, c RGB, width float64)

	// Text draws s with its top-left corner at at, using the surface's font.
	Text(s string, at Vec2, c RGB)
}
