package core

import "math"

// Glyphs used when rasterizing shapes onto cells.
const (
	FillChar = '█'
	LineChar = '▪'
)

// Canvas implements Surface on top of a Screen.
// World coordinates are scaled onto the cell grid, so an 800x600 world
// fits whatever terminal size is available. Stroke widths collapse to
// one cell since a cell is already coarser than any stroke.
type Canvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewCanvas creates a canvas that maps a worldW x worldH world onto dst.
func NewCanvas(dst *Screen, worldW, worldH int) *Canvas {
	return &Canvas{
		screen: dst,
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Size returns the world dimensions.
func (c *Canvas) Size() (w, h float64) {
	return c.worldW, c.worldH
}

// cellW and cellH are the world extents of a single cell.
func (c *Canvas) cellW() float64 { return c.worldW / float64(c.screen.Width()) }
func (c *Canvas) cellH() float64 { return c.worldH / float64(c.screen.Height()) }

// ToCell maps a world point to the cell containing it.
func (c *Canvas) ToCell(p Vec2) (col, row int) {
	if c.screen.Width() == 0 || c.screen.Height() == 0 {
		return 0, 0
	}
	return int(math.Floor(p.X / c.cellW())), int(math.Floor(p.Y / c.cellH()))
}

// cellCenter returns the world coordinates of a cell's center.
func (c *Canvas) cellCenter(col, row int) Vec2 {
	return Vec2{
		X: (float64(col) + 0.5) * c.cellW(),
		Y: (float64(row) + 0.5) * c.cellH(),
	}
}

// Clear blanks the screen. The terminal background stands in for c.
func (c *Canvas) Clear(_ RGB) {
	c.screen.Clear()
}

// FillCircle sets every cell whose center lies inside the circle.
// The cell under the center is always set so small shapes stay visible.
func (c *Canvas) FillCircle(center Vec2, radius float64, clr RGB) {
	c0, r0 := c.ToCell(center.Sub(V(radius, radius)))
	c1, r1 := c.ToCell(center.Add(V(radius, radius)))
	rSq := radius * radius

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if c.cellCenter(col, row).Sub(center).LenSq() <= rSq {
				c.screen.SetCell(col, row, FillChar, clr)
			}
		}
	}

	col, row := c.ToCell(center)
	c.screen.SetCell(col, row, FillChar, clr)
}

// FillRect sets every cell whose center lies inside the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr RGB) {
	c.screen.DrawRect(c.cellRect(x, y, w, h), FillChar, clr)

	col, row := c.ToCell(V(x+w/2, y+h/2))
	c.screen.SetCell(col, row, FillChar, clr)
}

// cellRect returns the cells whose centers lie in [x, x+w) x [y, y+h).
func (c *Canvas) cellRect(x, y, w, h float64) Rect {
	if c.screen.Width() == 0 || c.screen.Height() == 0 {
		return Rect{}
	}
	c0 := int(math.Ceil(x/c.cellW() - 0.5))
	r0 := int(math.Ceil(y/c.cellH() - 0.5))
	c1 := int(math.Ceil((x+w)/c.cellW() - 0.5))
	r1 := int(math.Ceil((y+h)/c.cellH() - 0.5))
	return NewRect(c0, r0, max(c1-c0, 0), max(r1-r0, 0))
}

// Line walks the segment in cell space, one cell per step.
func (c *Canvas) Line(from, to Vec2, clr RGB, _ float64) {
	c0, r0 := c.ToCell(from)
	c1, r1 := c.ToCell(to)

	steps := Abs(c1 - c0)
	if dr := Abs(r1 - r0); dr > steps {
		steps = dr
	}
	if steps == 0 {
		c.screen.SetCell(c0, r0, LineChar, clr)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := c0 + int(math.Round(t*float64(c1-c0)))
		row := r0 + int(math.Round(t*float64(r1-r0)))
		c.screen.SetCell(col, row, LineChar, clr)
	}
}

// Text writes s unscaled, starting at the cell containing at.
func (c *Canvas) Text(s string, at Vec2, clr RGB) {
	col, row := c.ToCell(at)
	c.screen.DrawText(col, row, s, clr)
}

// Ensure Canvas implements Surface
var _ Surface = (*Canvas)(nil)
