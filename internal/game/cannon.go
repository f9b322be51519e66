package game

import (
	"math/rand"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// ProjectileKind selects what a strike emits.
type ProjectileKind int

const (
	ProjectileShell ProjectileKind = iota
)

// String returns a human-readable name for the kind.
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileShell:
		return "shell"
	default:
		return "unknown"
	}
}

// StrokeWidth is the width of the barrel line.
const StrokeWidth = 5

// Cannon is the player's gun. It is Idle while inactive and Charging
// between a fire press and release.
//
// Power is not clamped to [MinPower, MaxPower]. MinPower is only the
// reset value after a strike.
type Cannon struct {
	Pos      core.Vec2
	Angle    float64
	Power    int
	MinPower int
	MaxPower int
	Color    core.RGB
	Size     int
	Step     float64
	Kind     ProjectileKind

	active      bool
	shellRadius int
	bullet      config.BulletParams
	world       *World
	rng         *rand.Rand
}

// NewCannon creates an idle cannon at its configured start position
// with power at the minimum.
func NewCannon(world *World, rng *rand.Rand, cfg config.CannonConfig) *Cannon {
	p := cfg.Cannon
	return &Cannon{
		Pos:         core.V(p.X, p.Y),
		Angle:       p.Angle,
		Power:       p.MinPower,
		MinPower:    p.MinPower,
		MaxPower:    p.MaxPower,
		Color:       rgb(p.Color),
		Size:        p.Size,
		Step:        p.Step,
		Kind:        ProjectileShell,
		shellRadius: cfg.Shell.Radius,
		bullet:      cfg.Bullet,
		world:       world,
		rng:         rng,
	}
}

// Active reports whether the cannon is charging.
func (c *Cannon) Active() bool {
	return c.active
}

// SetProjectileKind changes what the next strike emits.
func (c *Cannon) SetProjectileKind(k ProjectileKind) {
	c.Kind = k
}

// Press starts charging. Power carries over from before.
func (c *Cannon) Press() {
	c.active = true
}

// IncreasePower adds one to the charge while charging.
func (c *Cannon) IncreasePower() {
	if c.active {
		c.Power++
	}
}

// DecreasePower removes one from the charge while charging.
func (c *Cannon) DecreasePower() {
	if c.active {
		c.Power--
	}
}

// MoveLeft slides the cannon left. Allowed in any state.
func (c *Cannon) MoveLeft() {
	c.Pos.X -= c.Step
}

// MoveRight slides the cannon right. Allowed in any state.
func (c *Cannon) MoveRight() {
	c.Pos.X += c.Step
}

// Release fires if charging. Returns nil when the cannon was idle
// or the projectile kind emits nothing.
func (c *Cannon) Release() *Shell {
	if !c.active {
		return nil
	}
	return c.Strike()
}

// Strike emits a projectile of the cannon's kind from its position with
// velocity power·(cos, sin)(angle) truncated to integers, then resets
// power to the minimum and returns to Idle. The charge is spent even when
// the kind emits nothing, in which case Strike returns nil.
func (c *Cannon) Strike() *Shell {
	var shell *Shell
	switch c.Kind {
	case ProjectileShell:
		vel := core.Polar(float64(c.Power), c.Angle).Trunc()
		shell = NewShell(c.world, c.Pos, vel, c.shellRadius, core.RandomColor(c.rng))
	}

	c.Power = c.MinPower
	c.active = false
	return shell
}

// Shoot emits a bullet just above the cannon. It ignores charge, power
// and angle and works in any state.
func (c *Cannon) Shoot() *Bullet {
	pos := core.V(c.Pos.X, c.Pos.Y-float64(c.Size))
	return NewBullet(c.world, pos, c.bullet.Size, rgb(c.bullet.Color), c.bullet.Speed)
}

// Advance is a no-op; the cannon only moves on input.
func (c *Cannon) Advance() {}

// Alive is always true; there is exactly one cannon per session.
func (c *Cannon) Alive() bool {
	return true
}

// Draw renders the body square, the turret circle and the barrel.
func (c *Cannon) Draw(dst core.Surface) {
	size := float64(c.Size)
	dst.FillRect(c.Pos.X-size, c.Pos.Y-size, 2*size, 2*size, c.Color)
	dst.FillCircle(c.Pos, size, c.Color)
	dst.Line(c.Pos, c.Pos.Add(core.Polar(size, c.Angle)), c.Color, StrokeWidth)
}

// Ensure every scene object satisfies Entity
var (
	_ Entity = (*Shell)(nil)
	_ Entity = (*Bullet)(nil)
	_ Entity = (*Target)(nil)
	_ Entity = (*Cannon)(nil)
)
