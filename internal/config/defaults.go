package config

import (
	_ "embed"
)

//go:embed defaults/walker.yaml
var defaultWalkerYAML []byte

//go:embed defaults/particles.yaml
var defaultParticlesYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/level.yaml
var defaultLevelYAML []byte

// DefaultWalkerConfig returns the default walker demo configuration.
func DefaultWalkerConfig() WalkerConfig {
	return WalkerConfig{
		Speed:       18.0,
		Avatar:      "@",
		TrailLength: 6,
		MaxDelta:    0.1,
	}
}

// DefaultParticlesConfig returns the default particle demo configuration.
func DefaultParticlesConfig() ParticlesConfig {
	return ParticlesConfig{
		Gravity:      30.0,
		BurstSize:    24,
		MaxParticles: 400,
		Lifetime:     2.5,
		Spread:       16.0,
		MaxDelta:     0.1,
	}
}

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:      60.0,
			JumpImpulse:  -22.0,
			MoveSpeed:    20.0,
			MaxFallSpeed: 40.0,
			MaxDelta:     0.1,
		},
	}
}

// DefaultLevelConfig returns the built-in platformer level.
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Spawn: SpawnSpec{X: 4, Y: 20},
		Platforms: []PlatformSpec{
			{X: 0, Y: 21, W: 80},
			{X: 10, Y: 17, W: 12},
			{X: 28, Y: 14, W: 10},
			{X: 44, Y: 11, W: 10},
			{X: 60, Y: 8, W: 12},
			{X: 36, Y: 18, W: 8},
		},
		Coins: []CoinSpec{
			{X: 14, Y: 16},
			{X: 32, Y: 13},
			{X: 48, Y: 10},
			{X: 65, Y: 7},
			{X: 39, Y: 17},
			{X: 70, Y: 20},
		},
	}
}
