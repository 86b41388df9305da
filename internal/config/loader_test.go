package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	data := "game:\n  lives: 5\n  grace_ticks: 30\nlevels:\n  dir: /tmp/stages\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Lives != 5 {
		t.Errorf("lives = %d, want 5", cfg.Game.Lives)
	}
	if cfg.Game.GraceTicks != 30 {
		t.Errorf("grace ticks = %d, want 30", cfg.Game.GraceTicks)
	}
	if cfg.Levels.Dir != "/tmp/stages" {
		t.Errorf("levels dir = %q, want /tmp/stages", cfg.Levels.Dir)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit config path that does not exist should fail")
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	cfg := normalize(Config{})
	if cfg.Game.Lives != Default().Game.Lives {
		t.Errorf("lives = %d, want default %d", cfg.Game.Lives, Default().Game.Lives)
	}
	if cfg.Game.GraceTicks != Default().Game.GraceTicks {
		t.Errorf("grace ticks = %d, want default %d", cfg.Game.GraceTicks, Default().Game.GraceTicks)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "embedded.yaml")
	if err := os.WriteFile(path, defaultYAML, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("embedded default does not load: %v", err)
	}
	if cfg.Game.Lives != 3 || cfg.Game.GraceTicks != 60 {
		t.Errorf("embedded default = %+v, want lives 3, grace 60", cfg.Game)
	}
}
