package config

import (
	_ "embed"
)

//go:embed defaults/cannon.yaml
var defaultCannonYAML []byte

// DefaultCannonConfig returns the default configuration, matching the
// classic 800x600, 50 FPS game.
func DefaultCannonConfig() CannonConfig {
	return CannonConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:               0,
			OrthogonalRestitution: 0.8,
			ParallelRestitution:   0.9,
			RestSpeed:             2,
		},
		Cannon: CannonParams{
			X:        30,
			Y:        300,
			Angle:    0,
			MinPower: 10,
			MaxPower: 50,
			Size:     20,
			Step:     5,
			Color:    Color{255, 0, 0},
		},
		Shell: ShellParams{
			Radius: 20,
		},
		Bullet: BulletParams{
			Size:  5,
			Speed: 5,
			Color: Color{255, 255, 0},
		},
		Targets: TargetParams{
			Count:   2,
			MinX:    600,
			MaxX:    700,
			MinY:    100,
			MaxY:    500,
			MinSize: 10,
			MaxSize: 50,
			Drift:   1,
		},
		Gameplay: GameplayConfig{
			ScoreHits: false,
		},
		HUD: HUDConfig{
			X:     10,
			Y:     10,
			Color: Color{255, 255, 255},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCannonYAML
}
