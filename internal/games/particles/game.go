// Package particles implements a fountain demo: each action press bursts a
// batch of particles that fall under gravity and fade out. It demonstrates
// consuming two hub topics at once (frame ticks for integration, key
// changes for press edges).
package particles

import (
	"math"
	"math/rand"

	"github.com/avlasenko/gamekit/internal/config"
	"github.com/avlasenko/gamekit/internal/core"
	"github.com/avlasenko/gamekit/internal/hub"
	"github.com/avlasenko/gamekit/internal/registry"
)

func init() {
	registry.Register("particles", func() registry.Game { return New() })
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

type particle struct {
	pos core.Vec2
	vel core.Vec2
	age float64
}

// Game implements the particle demo.
type Game struct {
	events  *hub.Hub
	runtime core.RuntimeConfig
	cfg     config.ParticlesConfig

	rng     *rand.Rand
	parts   []particle
	emitted int // Total particles spawned, reported as score
}

// New creates a new particle demo instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "particles"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Particle Fountain"
}

// Mount resets the demo and subscribes it to frame ticks and key changes.
func (g *Game) Mount(h *hub.Hub, runtime core.RuntimeConfig) (func(), error) {
	cfg, err := config.LoadParticles(configPath)
	if err != nil {
		return nil, err
	}

	g.events = h
	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.parts = g.parts[:0]
	g.emitted = 0

	releaseFrame := h.Subscribe(hub.TopicFrame, g.onFrame)
	releaseKeys := h.Subscribe(hub.TopicKeyChange, g.onKeyChange)
	return func() {
		releaseFrame()
		releaseKeys()
	}, nil
}

// onKeyChange bursts the emitter on each action press edge. Holding the
// key does not repeat because the hub only reports transitions.
func (g *Game) onKeyChange(ev hub.Event) {
	p := ev.Payload.(hub.KeyChangePayload)
	if p.Control != hub.ControlAction || !p.Pressed {
		return
	}
	g.burst()
}

// burst spawns a cone of particles from the emitter.
func (g *Game) burst() {
	origin := core.Vec2{
		X: float64(g.runtime.ScreenW) / 2,
		Y: float64(g.runtime.ScreenH) - 2,
	}

	for i := 0; i < g.cfg.BurstSize; i++ {
		if len(g.parts) >= g.cfg.MaxParticles {
			break
		}
		// Launch upward in a ±60° cone with jittered speed.
		angle := -math.Pi/2 + (g.rng.Float64()-0.5)*math.Pi/1.5
		speed := g.cfg.Spread * (0.5 + g.rng.Float64())
		g.parts = append(g.parts, particle{
			pos: origin,
			vel: core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		})
		g.emitted++
	}
}

// onFrame integrates gravity and ages particles.
func (g *Game) onFrame(ev hub.Event) {
	delta := ev.Payload.(hub.FramePayload).Delta
	delta = core.ClampF(delta, 0, g.cfg.MaxDelta)
	if delta == 0 {
		return
	}

	alive := g.parts[:0]
	for _, p := range g.parts {
		p.vel.Y += g.cfg.Gravity * delta
		p.pos = p.pos.Add(p.vel.Scale(delta))
		p.age += delta

		if p.age > g.cfg.Lifetime {
			continue
		}
		if p.pos.Y > float64(g.runtime.ScreenH) || p.pos.X < -1 || p.pos.X > float64(g.runtime.ScreenW) {
			continue
		}
		alive = append(alive, p)
	}
	g.parts = alive
}

// Alive returns the number of live particles.
func (g *Game) Alive() int {
	return len(g.parts)
}

// Render draws particles with age-based glyphs and colors.
func (g *Game) Render(dst *core.Screen) {
	for _, p := range g.parts {
		x := int(math.Round(p.pos.X))
		y := int(math.Round(p.pos.Y))

		frac := p.age / g.cfg.Lifetime
		switch {
		case frac < 0.3:
			dst.SetCell(x, y, '*', core.ColorBrightYellow)
		case frac < 0.7:
			dst.SetCell(x, y, '+', core.ColorOrange)
		default:
			dst.SetCell(x, y, '.', core.ColorGray)
		}
	}

	// Emitter
	dst.SetCell(dst.Width()/2, dst.Height()-2, '▲', core.ColorCyan)
}

// State reports the total emitted particle count as the score.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.emitted}
}
