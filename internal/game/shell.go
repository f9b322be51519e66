package game

import (
	"math"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Shell is the gravity-affected, bouncing projectile fired by a strike.
type Shell struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Color  core.RGB
	radius int
	alive  bool
	world  *World
}

// NewShell creates a live shell. The radius is fixed for the shell's lifetime.
func NewShell(world *World, pos, vel core.Vec2, radius int, color core.RGB) *Shell {
	return &Shell{
		Pos:    pos,
		Vel:    vel,
		Color:  color,
		radius: radius,
		alive:  true,
		world:  world,
	}
}

// Radius returns the shell radius.
func (s *Shell) Radius() int {
	return s.radius
}

// Alive reports whether the shell is still in flight.
func (s *Shell) Alive() bool {
	return s.alive
}

// Kill marks the shell dead; it is dropped at the next sweep.
func (s *Shell) Kill() {
	s.alive = false
}

// Advance moves the shell one tick under the world's gravity.
func (s *Shell) Advance() {
	s.Move(1, s.world.Gravity)
}

// Move integrates one step of dt ticks, bounces off the walls and
// then applies the death rule against the updated state.
func (s *Shell) Move(dt, gravity float64) {
	s.Vel.Y += gravity
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	s.Reflect(s.world.OrthogonalRestitution, s.world.ParallelRestitution)

	r := float64(s.radius)
	rest := s.world.RestSpeed
	if s.Vel.LenSq() < rest*rest && s.Pos.Y > s.world.Height-2*r {
		s.alive = false
	}
}

// Reflect bounces the shell off each screen edge it has crossed.
// The bounce axis keeps ort of its speed with the sign flipped, the other
// axis keeps par of its speed; both are truncated toward zero.
// Axes are handled independently, X first.
func (s *Shell) Reflect(ort, par float64) {
	r := float64(s.radius)
	for i := 0; i < 2; i++ {
		var edge float64
		switch {
		case s.Pos.Axis(i) < r:
			edge = r
		case s.Pos.Axis(i) > s.world.Dim(i)-r:
			edge = s.world.Dim(i) - r
		default:
			continue
		}
		s.Pos.SetAxis(i, edge)
		s.Vel.SetAxis(i, -math.Trunc(s.Vel.Axis(i)*ort))
		s.Vel.SetAxis(1-i, math.Trunc(s.Vel.Axis(1-i)*par))
	}
}

// Draw renders the shell as a filled circle.
func (s *Shell) Draw(dst core.Surface) {
	dst.FillCircle(s.Pos, float64(s.radius), s.Color)
}
