// Package platformer implements a small jump-and-collect demo with gravity,
// one-way platforms, and coins. It is the fullest hub consumer in the kit:
// it reads held controls each frame, reacts to action press edges for
// jumping, and publishes collision events other components can observe.
package platformer

import (
	"math"

	"github.com/avlasenko/gamekit/internal/config"
	"github.com/avlasenko/gamekit/internal/core"
	"github.com/avlasenko/gamekit/internal/hub"
	"github.com/avlasenko/gamekit/internal/registry"
)

func init() {
	registry.Register("platformer", func() registry.Game { return New() })
}

var (
	configPath string
	levelPath  string
)

// SetConfigPath sets the custom physics config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelPath sets the custom level file path for loading.
func SetLevelPath(path string) {
	levelPath = path
}

// Game implements the platformer demo.
type Game struct {
	events  *hub.Hub
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	level   config.LevelConfig

	pos      core.Vec2 // Player cell position, float for sub-cell motion
	vel      core.Vec2
	grounded bool
	coins    []coin
	score    int
	done     bool
	cleared  bool // Distinguishes level clear from falling off the map
}

// New creates a new platformer instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Mount loads config and level, resets state, and subscribes to the hub.
func (g *Game) Mount(h *hub.Hub, runtime core.RuntimeConfig) (func(), error) {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		return nil, err
	}
	level, err := config.LoadLevel(levelPath)
	if err != nil {
		return nil, err
	}

	g.events = h
	g.runtime = runtime
	g.cfg = cfg
	g.level = level

	g.pos = core.Vec2{X: float64(level.Spawn.X), Y: float64(level.Spawn.Y)}
	g.vel = core.Vec2{}
	g.grounded = g.supported(g.pos.X, g.pos.Y)
	g.coins = make([]coin, len(level.Coins))
	for i, c := range level.Coins {
		g.coins[i] = coin{x: c.X, y: c.Y}
	}
	g.score = 0
	g.done = false
	g.cleared = false

	releaseFrame := h.Subscribe(hub.TopicFrame, g.onFrame)
	releaseKeys := h.Subscribe(hub.TopicKeyChange, g.onKeyChange)
	return func() {
		releaseFrame()
		releaseKeys()
	}, nil
}

// onKeyChange handles the jump edge: action pressed while grounded.
func (g *Game) onKeyChange(ev hub.Event) {
	p := ev.Payload.(hub.KeyChangePayload)
	if g.done || p.Control != hub.ControlAction || !p.Pressed || !g.grounded {
		return
	}
	g.vel.Y = g.cfg.Physics.JumpImpulse
	g.grounded = false
}

// onFrame advances physics by one frame.
func (g *Game) onFrame(ev hub.Event) {
	if g.done {
		return
	}

	delta := ev.Payload.(hub.FramePayload).Delta
	delta = core.ClampF(delta, 0, g.cfg.Physics.MaxDelta)
	if delta == 0 {
		return
	}

	keys := g.events.Keys()
	g.vel.X = 0
	if keys.Left {
		g.vel.X = -g.cfg.Physics.MoveSpeed
	}
	if keys.Right {
		g.vel.X = g.cfg.Physics.MoveSpeed
	}

	newX := core.ClampF(g.pos.X+g.vel.X*delta, 0, float64(g.runtime.ScreenW-1))

	// Walking off a ledge starts a fall.
	if g.grounded && !g.supported(newX, g.pos.Y) {
		g.grounded = false
	}

	newY := g.pos.Y
	if !g.grounded {
		g.vel.Y += g.cfg.Physics.Gravity * delta
		if g.vel.Y > g.cfg.Physics.MaxFallSpeed {
			g.vel.Y = g.cfg.Physics.MaxFallSpeed
		}
		newY = g.pos.Y + g.vel.Y*delta

		// One-way platforms: land only when falling across the stand row.
		if g.vel.Y > 0 {
			for _, p := range g.level.Platforms {
				row := standRow(p)
				if g.pos.Y <= row && newY >= row && overlapsPlatform(p, newX) {
					newY = row
					g.vel.Y = 0
					g.grounded = true
					g.events.Emit(hub.TopicCollision, hub.CollisionPayload{
						Kind: "land",
						X:    newX,
						Y:    row,
					})
					break
				}
			}
		}
	}

	g.pos = core.Vec2{X: newX, Y: newY}

	if g.pos.Y > float64(g.runtime.ScreenH) {
		g.done = true
		return
	}

	g.collectCoins()
}

// collectCoins picks up any coin sharing the player's cell and finishes the
// level when none remain.
func (g *Game) collectCoins() {
	col := int(math.Round(g.pos.X))
	row := int(math.Round(g.pos.Y))

	remaining := 0
	for i := range g.coins {
		c := &g.coins[i]
		if !c.taken && c.x == col && c.y == row {
			c.taken = true
			g.score++
			g.events.Emit(hub.TopicCollision, hub.CollisionPayload{
				Kind: "coin",
				X:    float64(c.x),
				Y:    float64(c.y),
			})
		}
		if !c.taken {
			remaining++
		}
	}

	if remaining == 0 {
		g.done = true
		g.cleared = true
		g.events.Emit(hub.TopicCustom, hub.CustomPayload{
			Name:   "level-clear",
			Fields: map[string]any{"coins": g.score},
		})
	}
}

// Render draws the level, the player, and end-of-game banners.
func (g *Game) Render(dst *core.Screen) {
	g.renderLevel(dst)
	dst.SetCell(int(math.Round(g.pos.X)), int(math.Round(g.pos.Y)), '@', core.ColorBrightCyan)

	if g.done {
		if g.cleared {
			dst.DrawTextCentered(dst.Height()/2, "LEVEL CLEAR")
		} else {
			dst.DrawTextCentered(dst.Height()/2, "GAME OVER")
		}
	}
}

// State reports collected coins and completion.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.done}
}
