// Package game implements the cannon arcade simulation: shells, bullets,
// targets, the cannon state machine and the per-frame session driver.
// It draws through core.Surface and never touches a terminal or window.
package game

import (
	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Entity is the capability shared by everything that lives in the scene.
type Entity interface {
	// Advance moves the entity by one tick.
	Advance()

	// Draw renders the entity. It has no side effects on game state.
	Draw(dst core.Surface)

	// Alive reports whether the entity should stay in its collection.
	Alive() bool
}

// advanceAll advances every entity and keeps only the live ones.
// The filter reuses the backing array.
func advanceAll[E Entity](list []E) []E {
	for _, e := range list {
		e.Advance()
	}
	return sweep(list)
}

// sweep removes dead entities without advancing anything.
func sweep[E Entity](list []E) []E {
	live := list[:0]
	for _, e := range list {
		if e.Alive() {
			live = append(live, e)
		}
	}
	clear(list[len(live):])
	return live
}

// drawAll renders every entity in order.
func drawAll[E Entity](dst core.Surface, list []E) {
	for _, e := range list {
		e.Draw(dst)
	}
}

// World holds the bounds and physics every entity is simulated against.
type World struct {
	Width                 float64
	Height                float64
	Gravity               float64
	OrthogonalRestitution float64
	ParallelRestitution   float64
	RestSpeed             float64
}

// NewWorld builds a World from the game config.
func NewWorld(cfg config.CannonConfig) World {
	return World{
		Width:                 float64(cfg.World.Width),
		Height:                float64(cfg.World.Height),
		Gravity:               cfg.Physics.Gravity,
		OrthogonalRestitution: cfg.Physics.OrthogonalRestitution,
		ParallelRestitution:   cfg.Physics.ParallelRestitution,
		RestSpeed:             cfg.Physics.RestSpeed,
	}
}

// Dim returns the world extent along axis 0 (X) or 1 (Y).
func (w World) Dim(axis int) float64 {
	if axis == 0 {
		return w.Width
	}
	return w.Height
}

// rgb converts a config color to a core color.
func rgb(c config.Color) core.RGB {
	return core.RGB{
		R: uint8(core.Clamp(c[0], 0, 255)), //#nosec G115 -- clamped
		G: uint8(core.Clamp(c[1], 0, 255)), //#nosec G115 -- clamped
		B: uint8(core.Clamp(c[2], 0, 255)), //#nosec G115 -- clamped
	}
}
