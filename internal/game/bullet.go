package game

import "github.com/vovakirdan/cannon-arcade/internal/core"

// Bullet flies straight to the right at constant speed.
// It has no gravity and never bounces.
type Bullet struct {
	Pos   core.Vec2
	Size  int
	Color core.RGB
	Speed float64
	hit   bool
	world *World
}

// NewBullet creates a bullet at pos.
func NewBullet(world *World, pos core.Vec2, size int, color core.RGB, speed float64) *Bullet {
	return &Bullet{
		Pos:   pos,
		Size:  size,
		Color: color,
		Speed: speed,
		world: world,
	}
}

// Advance moves the bullet right by its speed.
func (b *Bullet) Advance() {
	b.Pos.X += b.Speed
}

// Alive is decided by position: a bullet past the right edge is gone.
func (b *Bullet) Alive() bool {
	return !b.hit && b.Pos.X <= b.world.Width
}

// Kill removes the bullet at the next sweep regardless of position.
func (b *Bullet) Kill() {
	b.hit = true
}

// Draw renders the bullet as a filled circle.
func (b *Bullet) Draw(dst core.Surface) {
	dst.FillCircle(b.Pos, float64(b.Size), b.Color)
}
