package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load implements the shared search order:
// customPath -> ~/.gamekit/configs/<name> -> ./configs/<name> -> embedded default.
// A custom path that fails to read or parse is an error; the fallback tiers
// fail silently into the next tier.
func load(customPath, name string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the per-user config path, or empty if the home
// directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamekit", "configs", filename)
}

// LoadWalker loads the walker demo configuration.
func LoadWalker(customPath string) (WalkerConfig, error) {
	var cfg WalkerConfig
	if err := load(customPath, "walker.yaml", defaultWalkerYAML, &cfg); err != nil {
		return DefaultWalkerConfig(), err
	}
	return cfg, nil
}

// LoadParticles loads the particle demo configuration.
func LoadParticles(customPath string) (ParticlesConfig, error) {
	var cfg ParticlesConfig
	if err := load(customPath, "particles.yaml", defaultParticlesYAML, &cfg); err != nil {
		return DefaultParticlesConfig(), err
	}
	return cfg, nil
}

// LoadPlatformer loads the platformer physics configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	var cfg PlatformerConfig
	if err := load(customPath, "platformer.yaml", defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), err
	}
	return cfg, nil
}

// LoadLevel loads a platformer level layout.
func LoadLevel(customPath string) (LevelConfig, error) {
	var cfg LevelConfig
	if err := load(customPath, "level.yaml", defaultLevelYAML, &cfg); err != nil {
		return DefaultLevelConfig(), err
	}
	if len(cfg.Platforms) == 0 {
		return cfg, fmt.Errorf("level has no platforms")
	}
	// The win condition is collecting every coin, so a coin-less level
	// would clear itself on the first frame.
	if len(cfg.Coins) == 0 {
		return cfg, fmt.Errorf("level has no coins")
	}
	return cfg, nil
}
