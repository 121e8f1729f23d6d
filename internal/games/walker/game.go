// Package walker implements the simplest gamekit demo: an avatar that
// moves while directional controls are held, scaled by frame delta time.
// It shows the minimal hub consumer shape: subscribe to frame ticks on
// mount, read the shared key state, release on unmount.
package walker

import (
	"math"

	"github.com/avlasenko/gamekit/internal/config"
	"github.com/avlasenko/gamekit/internal/core"
	"github.com/avlasenko/gamekit/internal/hub"
	"github.com/avlasenko/gamekit/internal/registry"
)

func init() {
	registry.Register("walker", func() registry.Game { return New() })
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the walker demo.
type Game struct {
	events  *hub.Hub
	runtime core.RuntimeConfig
	cfg     config.WalkerConfig

	pos      core.Vec2
	trail    []core.Vec2
	distance float64 // Total cells walked, reported as score
}

// New creates a new walker instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "walker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Walker"
}

// Mount resets the walker and subscribes it to frame ticks.
func (g *Game) Mount(h *hub.Hub, runtime core.RuntimeConfig) (func(), error) {
	cfg, err := config.LoadWalker(configPath)
	if err != nil {
		return nil, err
	}

	g.events = h
	g.runtime = runtime
	g.cfg = cfg
	g.pos = core.Vec2{X: float64(runtime.ScreenW) / 2, Y: float64(runtime.ScreenH) / 2}
	g.trail = nil
	g.distance = 0

	release := h.Subscribe(hub.TopicFrame, g.onFrame)
	return release, nil
}

// onFrame integrates movement from the held controls.
func (g *Game) onFrame(ev hub.Event) {
	delta := ev.Payload.(hub.FramePayload).Delta
	// The hub reports raw elapsed time; clamp locally so a lag spike
	// cannot teleport the avatar.
	delta = core.ClampF(delta, 0, g.cfg.MaxDelta)

	keys := g.events.Keys()
	var dir core.Vec2
	if keys.Up {
		dir.Y--
	}
	if keys.Down {
		dir.Y++
	}
	if keys.Left {
		dir.X--
	}
	if keys.Right {
		dir.X++
	}
	if dir.X == 0 && dir.Y == 0 {
		return
	}

	speed := g.cfg.Speed
	if keys.Action {
		speed *= 2 // Sprint while action is held
	}

	step := dir.Scale(speed * delta)
	next := g.pos.Add(step)
	next.X = core.ClampF(next.X, 0, float64(g.runtime.ScreenW-1))
	next.Y = core.ClampF(next.Y, 1, float64(g.runtime.ScreenH-1))

	g.distance += math.Hypot(next.X-g.pos.X, next.Y-g.pos.Y)

	g.trail = append(g.trail, g.pos)
	if len(g.trail) > g.cfg.TrailLength {
		g.trail = g.trail[len(g.trail)-g.cfg.TrailLength:]
	}
	g.pos = next
}

// Render draws the trail and the avatar.
func (g *Game) Render(dst *core.Screen) {
	for _, p := range g.trail {
		dst.SetCell(int(math.Round(p.X)), int(math.Round(p.Y)), '·', core.ColorGray)
	}

	avatar := '@'
	if g.cfg.Avatar != "" {
		avatar = []rune(g.cfg.Avatar)[0]
	}
	dst.SetCell(int(math.Round(g.pos.X)), int(math.Round(g.pos.Y)), avatar, core.ColorBrightCyan)
}

// State reports the distance walked as the score. The walker never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: int(g.distance)}
}
