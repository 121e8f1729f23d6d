package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWalkerEmbeddedDefault(t *testing.T) {
	cfg, err := LoadWalker("")
	if err != nil {
		t.Fatalf("LoadWalker() failed: %v", err)
	}

	if cfg.Speed <= 0 {
		t.Errorf("default speed = %f, expected > 0", cfg.Speed)
	}
	if cfg.Avatar == "" {
		t.Error("default avatar should not be empty")
	}
}

func TestLoadWalkerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walker.yaml")
	content := "speed: 5.5\navatar: \"#\"\ntrail_length: 2\nmax_delta: 0.05\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWalker(path)
	if err != nil {
		t.Fatalf("LoadWalker(%s) failed: %v", path, err)
	}

	if cfg.Speed != 5.5 {
		t.Errorf("speed = %f, expected 5.5", cfg.Speed)
	}
	if cfg.Avatar != "#" {
		t.Errorf("avatar = %q, expected #", cfg.Avatar)
	}
}

func TestLoadCustomPathMissingIsError(t *testing.T) {
	if _, err := LoadParticles("/nonexistent/particles.yaml"); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestLoadCustomPathMalformedIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("speed: [not a number"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadWalker(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadLevelEmbeddedDefault(t *testing.T) {
	lvl, err := LoadLevel("")
	if err != nil {
		t.Fatalf("LoadLevel() failed: %v", err)
	}

	if len(lvl.Platforms) == 0 {
		t.Error("default level should have platforms")
	}
	if len(lvl.Coins) == 0 {
		t.Error("default level should have coins")
	}
}

func TestLoadLevelRejectsEmptyLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte("spawn: {x: 1, y: 1}\nplatforms: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLevel(path); err == nil {
		t.Error("expected error for level without platforms")
	}
}

func TestLoadLevelRejectsCoinlessLevel(t *testing.T) {
	// Without coins the level would clear itself on the first frame.
	content := "spawn: {x: 1, y: 1}\nplatforms:\n  - { x: 0, y: 5, w: 10 }\ncoins: []\n"
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLevel(path); err == nil {
		t.Error("expected error for level without coins")
	}
}

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	fromYAML, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	hardcoded := DefaultPlatformerConfig()

	if fromYAML != hardcoded {
		t.Errorf("embedded platformer defaults %+v diverge from hardcoded %+v", fromYAML, hardcoded)
	}
}
