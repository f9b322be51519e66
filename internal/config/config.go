// Package config provides YAML-based game configuration loading and
// validation for the cannon arcade.
package config

import (
	"errors"
	"fmt"
)

// CannonConfig contains all tunable parameters of a session.
type CannonConfig struct {
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Cannon   CannonParams   `yaml:"cannon"`
	Shell    ShellParams    `yaml:"shell"`
	Bullet   BulletParams   `yaml:"bullet"`
	Targets  TargetParams   `yaml:"targets"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	HUD      HUDConfig      `yaml:"hud"`
}

// WorldConfig defines the simulated screen.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines shell motion parameters.
type PhysicsConfig struct {
	Gravity               float64 `yaml:"gravity"`                // Added to shell vy every tick
	OrthogonalRestitution float64 `yaml:"orthogonal_restitution"` // Kept along the bounce axis
	ParallelRestitution   float64 `yaml:"parallel_restitution"`   // Kept along the wall
	RestSpeed             float64 `yaml:"rest_speed"`             // Below this a grounded shell dies
}

// CannonParams defines the cannon's start state and controls.
type CannonParams struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Angle    float64 `yaml:"angle"` // Radians, 0 = right, positive = down
	MinPower int     `yaml:"min_power"`
	MaxPower int     `yaml:"max_power"`
	Size     int     `yaml:"size"`
	Step     float64 `yaml:"step"` // Horizontal move per key press
	Color    Color   `yaml:"color"`
}

// ShellParams defines shells emitted by a strike.
type ShellParams struct {
	Radius int `yaml:"radius"`
}

// BulletParams defines bullets emitted by a shot.
type BulletParams struct {
	Size  int     `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Color Color   `yaml:"color"`
}

// TargetParams defines how targets are spawned.
// All ranges are inclusive.
type TargetParams struct {
	Count   int     `yaml:"count"`
	MinX    int     `yaml:"min_x"`
	MaxX    int     `yaml:"max_x"`
	MinY    int     `yaml:"min_y"`
	MaxY    int     `yaml:"max_y"`
	MinSize int     `yaml:"min_size"`
	MaxSize int     `yaml:"max_size"`
	Drift   float64 `yaml:"drift"` // Leftward speed per tick
}

// GameplayConfig holds rule switches.
type GameplayConfig struct {
	// ScoreHits enables projectile/target hit detection and scoring.
	// Off by default: the classic game never awards points.
	ScoreHits bool `yaml:"score_hits"`
}

// HUDConfig places the score text.
type HUDConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color Color   `yaml:"color"`
}

// Color is an RGB triple written as a three-element YAML list.
// Components outside [0,255] are rejected by Validate.
type Color [3]int

// Validate reports every inconsistency in the config at once.
func (c CannonConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0,
		"world: size must be positive, got %dx%d", c.World.Width, c.World.Height)
	check(inUnit(c.Physics.OrthogonalRestitution),
		"physics: orthogonal_restitution must be in [0,1], got %v", c.Physics.OrthogonalRestitution)
	check(inUnit(c.Physics.ParallelRestitution),
		"physics: parallel_restitution must be in [0,1], got %v", c.Physics.ParallelRestitution)
	check(c.Physics.RestSpeed >= 0,
		"physics: rest_speed must not be negative, got %v", c.Physics.RestSpeed)
	check(c.Cannon.Size > 0, "cannon: size must be positive, got %d", c.Cannon.Size)
	check(c.Cannon.MinPower <= c.Cannon.MaxPower,
		"cannon: min_power %d exceeds max_power %d", c.Cannon.MinPower, c.Cannon.MaxPower)
	check(c.Shell.Radius > 0, "shell: radius must be positive, got %d", c.Shell.Radius)
	check(c.Bullet.Size > 0, "bullet: size must be positive, got %d", c.Bullet.Size)
	check(c.Targets.Count >= 0, "targets: count must not be negative, got %d", c.Targets.Count)
	check(c.Targets.MinX <= c.Targets.MaxX,
		"targets: min_x %d exceeds max_x %d", c.Targets.MinX, c.Targets.MaxX)
	check(c.Targets.MinY <= c.Targets.MaxY,
		"targets: min_y %d exceeds max_y %d", c.Targets.MinY, c.Targets.MaxY)
	check(c.Targets.MinSize > 0 && c.Targets.MinSize <= c.Targets.MaxSize,
		"targets: size range [%d,%d] is invalid", c.Targets.MinSize, c.Targets.MaxSize)
	check(c.Cannon.Color.valid(), "cannon: color components must be in [0,255], got %v", c.Cannon.Color)
	check(c.Bullet.Color.valid(), "bullet: color components must be in [0,255], got %v", c.Bullet.Color)
	check(c.HUD.Color.valid(), "hud: color components must be in [0,255], got %v", c.HUD.Color)

	return errors.Join(errs...)
}

func (c Color) valid() bool {
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
