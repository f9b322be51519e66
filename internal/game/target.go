package game

import (
	"math/rand"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Target drifts left forever. Nothing removes it: once off-screen it
// keeps drifting unseen.
type Target struct {
	Pos   core.Vec2
	Color core.RGB
	Size  int
	Drift float64
}

// NewRandomTarget spawns a target with position, size and color drawn
// from rng within the configured (inclusive) ranges.
func NewRandomTarget(rng *rand.Rand, p config.TargetParams) *Target {
	return &Target{
		Pos: core.V(
			float64(randRange(rng, p.MinX, p.MaxX)),
			float64(randRange(rng, p.MinY, p.MaxY)),
		),
		Color: core.RandomColor(rng),
		Size:  randRange(rng, p.MinSize, p.MaxSize),
		Drift: p.Drift,
	}
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Advance drifts the target left.
func (t *Target) Advance() {
	t.Pos.X -= t.Drift
}

// Alive is always true; targets are never removed.
func (t *Target) Alive() bool {
	return true
}

// Draw renders the target as a filled circle.
func (t *Target) Draw(dst core.Surface) {
	dst.FillCircle(t.Pos, float64(t.Size), t.Color)
}
