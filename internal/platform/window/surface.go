package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// imageSurface draws onto an ebiten image in world pixels.
type imageSurface struct {
	dst  *ebiten.Image
	face font.Face
}

func newImageSurface(dst *ebiten.Image) *imageSurface {
	return &imageSurface{dst: dst, face: basicfont.Face7x13}
}

func (s *imageSurface) Size() (w, h float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *imageSurface) Clear(c core.RGB) {
	s.dst.Fill(c)
}

func (s *imageSurface) FillCircle(center core.Vec2, radius float64, c core.RGB) {
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (s *imageSurface) FillRect(x, y, w, h float64, c core.RGB) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *imageSurface) Line(from, to core.Vec2, c core.RGB, width float64) {
	vector.StrokeLine(s.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), c, true)
}

// Text places the top-left corner of s at at; text.Draw wants the baseline.
func (s *imageSurface) Text(str string, at core.Vec2, c core.RGB) {
	ascent := s.face.Metrics().Ascent.Ceil()
	text.Draw(s.dst, str, s.face, int(at.X), int(at.Y)+ascent, c)
}

var _ core.Surface = (*imageSurface)(nil)
