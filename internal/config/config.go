// Package config provides YAML-based game configuration loading for the
// gamekit demos.
package config

// WalkerConfig contains all configuration for the walker demo.
type WalkerConfig struct {
	Speed       float64 `yaml:"speed"`        // Movement speed in cells per second
	Avatar      string  `yaml:"avatar"`       // Character drawn at the walker position
	TrailLength int     `yaml:"trail_length"` // Number of trail cells left behind
	MaxDelta    float64 `yaml:"max_delta"`    // Local delta clamp in seconds (lag-spike guard)
}

// ParticlesConfig contains all configuration for the particle demo.
type ParticlesConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration in cells/s^2
	BurstSize    int     `yaml:"burst_size"`    // Particles spawned per action press
	MaxParticles int     `yaml:"max_particles"` // Hard cap on live particles
	Lifetime     float64 `yaml:"lifetime"`      // Particle lifetime in seconds
	Spread       float64 `yaml:"spread"`        // Initial velocity magnitude in cells/s
	MaxDelta     float64 `yaml:"max_delta"`     // Local delta clamp in seconds
}

// PlatformerConfig contains physics configuration for the platformer demo.
type PlatformerConfig struct {
	Physics PlatformerPhysics `yaml:"physics"`
}

// PlatformerPhysics defines the platformer's motion parameters.
type PlatformerPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration in cells/s^2
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Upward velocity applied on jump (negative = up)
	MoveSpeed    float64 `yaml:"move_speed"`     // Horizontal speed in cells/s
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity in cells/s
	MaxDelta     float64 `yaml:"max_delta"`      // Local delta clamp in seconds
}

// LevelConfig describes a platformer level layout.
type LevelConfig struct {
	Spawn     SpawnSpec      `yaml:"spawn"`
	Platforms []PlatformSpec `yaml:"platforms"`
	Coins     []CoinSpec     `yaml:"coins"`
}

// SpawnSpec is the player start position in cells.
type SpawnSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlatformSpec is one horizontal platform: left edge, row, and width.
type PlatformSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
}

// CoinSpec is one collectible coin position.
type CoinSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}
