package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg CannonConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultCannonConfig()) {
		t.Errorf("embedded YAML drifted from DefaultCannonConfig():\n got  %+v\n want %+v", cfg, DefaultCannonConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultCannonConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
physics:
  gravity: 1.5
gameplay:
  score_hits: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 1.5 {
		t.Errorf("Gravity = %v, expected 1.5", cfg.Physics.Gravity)
	}
	if !cfg.Gameplay.ScoreHits {
		t.Error("ScoreHits should be overridden to true")
	}
	// Untouched keys keep their defaults
	if cfg.Physics.OrthogonalRestitution != 0.8 {
		t.Errorf("OrthogonalRestitution = %v, expected default 0.8", cfg.Physics.OrthogonalRestitution)
	}
	if cfg.Cannon.MinPower != 10 {
		t.Errorf("MinPower = %d, expected default 10", cfg.Cannon.MinPower)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "physics: [not, a, map\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
shell:
  radius: 0
physics:
  orthogonal_restitution: 1.5
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject an invalid config")
	}
	for _, want := range []string{"shell: radius", "orthogonal_restitution"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadSearchPath(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCannonConfig()) {
		t.Error("Load() without files should return the defaults")
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(work, "configs"), "cannon:\n  size: 30\n")

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Cannon.Size != 30 {
		t.Errorf("local config should apply, Size = %d", cfg.Cannon.Size)
	}

	// User config wins over local
	if err := os.MkdirAll(filepath.Join(home, ".cannon"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(home, ".cannon"), "cannon:\n  size: 40\n")

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Cannon.Size != 40 {
		t.Errorf("user config should win, Size = %d", cfg.Cannon.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CannonConfig)
		want   string
	}{
		{"zero world", func(c *CannonConfig) { c.World.Width = 0 }, "world"},
		{"parallel restitution", func(c *CannonConfig) { c.Physics.ParallelRestitution = -0.1 }, "parallel_restitution"},
		{"negative rest speed", func(c *CannonConfig) { c.Physics.RestSpeed = -1 }, "rest_speed"},
		{"power range", func(c *CannonConfig) { c.Cannon.MinPower = 60 }, "min_power"},
		{"cannon size", func(c *CannonConfig) { c.Cannon.Size = 0 }, "cannon: size"},
		{"bullet size", func(c *CannonConfig) { c.Bullet.Size = -1 }, "bullet: size"},
		{"target count", func(c *CannonConfig) { c.Targets.Count = -1 }, "count"},
		{"target x range", func(c *CannonConfig) { c.Targets.MinX = 800 }, "min_x"},
		{"target y range", func(c *CannonConfig) { c.Targets.MaxY = 0 }, "min_y"},
		{"target size range", func(c *CannonConfig) { c.Targets.MinSize = 0 }, "size range"},
		{"color", func(c *CannonConfig) { c.HUD.Color = Color{0, 300, 0} }, "hud: color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCannonConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultCannonConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "orthogonal_restitution: 0.8") {
		t.Errorf("Marshal() output missing physics keys:\n%s", data)
	}
}
