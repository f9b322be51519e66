package game

import "github.com/vovakirdan/cannon-arcade/internal/core"

// overlaps reports whether two circles intersect.
func overlaps(a core.Vec2, ra float64, b core.Vec2, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() <= r*r
}

// scoreHits awards a point for every projectile touching a target.
// The projectile is consumed and the target respawns in its slot.
// Each projectile scores at most once per tick.
func (s *Session) scoreHits() {
	for i, t := range s.targets {
		tr := float64(t.Size)
		hit := false

		for _, sh := range s.shells {
			if sh.Alive() && overlaps(sh.Pos, float64(sh.Radius()), t.Pos, tr) {
				sh.Kill()
				hit = true
				break
			}
		}
		if !hit {
			for _, b := range s.bullets {
				if b.Alive() && overlaps(b.Pos, float64(b.Size), t.Pos, tr) {
					b.Kill()
					hit = true
					break
				}
			}
		}
		if !hit {
			continue
		}

		s.score++
		s.targets[i] = NewRandomTarget(s.rng, s.cfg.Targets)
		s.logger.Debug("target hit", "tick", s.tickCount, "score", s.score)
	}

	s.shells = sweep(s.shells)
	s.bullets = sweep(s.bullets)
}
