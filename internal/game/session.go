package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// ScoreFormat is the HUD text layout.
const ScoreFormat = "Score: %d"

// Session owns one running game: the cannon, every live projectile and
// the targets. It is driven one tick at a time by a frontend and is not
// safe for concurrent use.
type Session struct {
	cfg     config.CannonConfig
	runtime core.RuntimeConfig
	world   *World
	rng     *rand.Rand
	logger  *log.Logger

	cannon  *Cannon
	shells  []*Shell
	bullets []*Bullet
	targets []*Target

	score     int
	tickCount int
	finished  bool
}

// NewSession creates a session with its targets already spawned.
// A nil logger discards output.
func NewSession(cfg config.CannonConfig, runtime core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	world := NewWorld(cfg)
	s := &Session{
		cfg:     cfg,
		runtime: runtime,
		world:   &world,
		rng:     rand.New(rand.NewSource(runtime.Seed)), //#nosec G404 -- game randomness, not security
		logger:  logger,
	}
	s.cannon = NewCannon(s.world, s.rng, cfg)
	s.targets = make([]*Target, 0, cfg.Targets.Count)
	for range cfg.Targets.Count {
		s.targets = append(s.targets, NewRandomTarget(s.rng, cfg.Targets))
	}

	logger.Debug("session started",
		"seed", runtime.Seed,
		"world", fmt.Sprintf("%dx%d", cfg.World.Width, cfg.World.Height),
		"targets", len(s.targets),
		"score_hits", cfg.Gameplay.ScoreHits)
	return s
}

// Step applies the queued events and advances the simulation one tick.
// After termination it returns the final state without doing anything.
func (s *Session) Step(events []core.Event) core.StepResult {
	if s.finished {
		return core.StepResult{State: s.State()}
	}

	for _, ev := range events {
		s.handle(ev)
		if s.finished {
			s.logger.Debug("session terminated", "tick", s.tickCount, "score", s.score)
			return core.StepResult{State: s.State()}
		}
	}

	shells, bullets := len(s.shells), len(s.bullets)
	s.shells = advanceAll(s.shells)
	s.targets = advanceAll(s.targets)
	s.bullets = advanceAll(s.bullets)
	if shells != len(s.shells) || bullets != len(s.bullets) {
		s.logger.Debug("projectiles despawned",
			"tick", s.tickCount,
			"shells", shells-len(s.shells),
			"bullets", bullets-len(s.bullets))
	}

	if s.cfg.Gameplay.ScoreHits {
		s.scoreHits()
	}

	s.tickCount++
	return core.StepResult{State: s.State()}
}

// handle maps one input event onto the cannon.
func (s *Session) handle(ev core.Event) {
	switch ev.Kind {
	case core.EventTerminate:
		s.finished = true
	case core.EventKeyDown:
		switch ev.Key {
		case core.KeySpace:
			s.cannon.Press()
		case core.KeyUp:
			s.cannon.IncreasePower()
		case core.KeyDown:
			s.cannon.DecreasePower()
		case core.KeyLeft:
			s.cannon.MoveLeft()
		case core.KeyRight:
			s.cannon.MoveRight()
		case core.KeyShoot:
			s.bullets = append(s.bullets, s.cannon.Shoot())
			s.logger.Debug("bullet fired", "tick", s.tickCount, "bullets", len(s.bullets))
		}
	case core.EventKeyUp:
		if ev.Key != core.KeySpace {
			return
		}
		if shell := s.cannon.Release(); shell != nil {
			s.shells = append(s.shells, shell)
			s.logger.Debug("shell fired",
				"tick", s.tickCount,
				"vx", shell.Vel.X, "vy", shell.Vel.Y,
				"shells", len(s.shells))
		}
	}
}

// Render draws the current frame. It never changes game state.
func (s *Session) Render(dst core.Surface) {
	dst.Clear(core.Black)

	drawAll(dst, s.shells)
	drawAll(dst, s.targets)
	drawAll(dst, s.bullets)
	if s.cannon.Active() {
		s.cannon.Draw(dst)
	}

	s.renderHUD(dst)
}

// renderHUD draws the score.
func (s *Session) renderHUD(dst core.Surface) {
	hud := s.cfg.HUD
	dst.Text(fmt.Sprintf(ScoreFormat, s.score), core.V(hud.X, hud.Y), rgb(hud.Color))
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Charging: s.cannon.Active(),
		Power:    s.cannon.Power,
		Finished: s.finished,
	}
}

// Finished reports whether a terminate event has been handled.
func (s *Session) Finished() bool {
	return s.finished
}

// Tick returns the number of completed ticks.
func (s *Session) Tick() int {
	return s.tickCount
}

// Cannon returns the session's cannon.
func (s *Session) Cannon() *Cannon {
	return s.cannon
}

// Shells returns the live shells in firing order.
func (s *Session) Shells() []*Shell {
	return s.shells
}

// Bullets returns the live bullets in firing order.
func (s *Session) Bullets() []*Bullet {
	return s.bullets
}

// Targets returns the targets in spawn order.
func (s *Session) Targets() []*Target {
	return s.targets
}
