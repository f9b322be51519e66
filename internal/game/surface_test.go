package game

import (
	"fmt"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// recordSurface is a core.Surface that logs every draw call.
type recordSurface struct {
	calls []string
	texts []string
}

func (r *recordSurface) Size() (w, h float64) { return 800, 600 }

func (r *recordSurface) Clear(c core.RGB) {
	r.calls = append(r.calls, fmt.Sprintf("clear %s", c.Hex()))
}

func (r *recordSurface) FillCircle(center core.Vec2, radius float64, c core.RGB) {
	r.calls = append(r.calls, fmt.Sprintf("circle %v,%v r%v %s", center.X, center.Y, radius, c.Hex()))
}

func (r *recordSurface) FillRect(x, y, w, h float64, c core.RGB) {
	r.calls = append(r.calls, fmt.Sprintf("rect %v,%v %vx%v %s", x, y, w, h, c.Hex()))
}

func (r *recordSurface) Line(from, to core.Vec2, c core.RGB, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %v,%v-%v,%v w%v %s", from.X, from.Y, to.X, to.Y, width, c.Hex()))
}

func (r *recordSurface) Text(s string, at core.Vec2, c core.RGB) {
	r.texts = append(r.texts, s)
	r.calls = append(r.calls, fmt.Sprintf("text %q %v,%v %s", s, at.X, at.Y, c.Hex()))
}

var _ core.Surface = (*recordSurface)(nil)
