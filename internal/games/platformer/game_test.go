package platformer

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/avlasenko/gamekit/internal/core"
	"github.com/avlasenko/gamekit/internal/hub"
)

// writeLevel writes a test level YAML and points the loader at it for the
// duration of the test.
func writeLevel(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	SetLevelPath(path)
	t.Cleanup(func() { SetLevelPath("") })
}

func mountedGame(t *testing.T) (*Game, *hub.Hub, func()) {
	t.Helper()

	h := hub.New(log.New(io.Discard))
	g := New()
	release, err := g.Mount(h, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if err != nil {
		t.Fatalf("Mount() failed: %v", err)
	}
	return g, h, release
}

// step advances the hub n frames at 16ms each.
func step(h *hub.Hub, now *time.Time, n int) {
	for i := 0; i < n; i++ {
		*now = now.Add(16 * time.Millisecond)
		h.Advance(*now)
	}
}

func TestPlayerFallsAndLands(t *testing.T) {
	writeLevel(t, `
spawn: {x: 5, y: 10}
platforms:
  - { x: 0, y: 21, w: 80 }
coins:
  - { x: 70, y: 20 }
`)
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	var landings []hub.CollisionPayload
	h.Subscribe(hub.TopicCollision, func(ev hub.Event) {
		p := ev.Payload.(hub.CollisionPayload)
		if p.Kind == "land" {
			landings = append(landings, p)
		}
	})

	if g.grounded {
		t.Fatal("spawned in the air, should not start grounded")
	}

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	step(h, &now, 100)

	if !g.grounded {
		t.Fatal("player should have landed on the ground platform")
	}
	if g.pos.Y != 20 {
		t.Errorf("player y = %f, expected to stand on row 20", g.pos.Y)
	}
	if len(landings) != 1 {
		t.Errorf("got %d land events, expected exactly 1", len(landings))
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	writeLevel(t, `
spawn: {x: 5, y: 20}
platforms:
  - { x: 0, y: 21, w: 80 }
coins:
  - { x: 70, y: 20 }
`)
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	if !g.grounded {
		t.Fatal("spawned on the ground, should start grounded")
	}

	h.KeyDown(" ")
	if g.vel.Y != g.cfg.Physics.JumpImpulse {
		t.Errorf("vel.Y after jump = %f, expected impulse %f", g.vel.Y, g.cfg.Physics.JumpImpulse)
	}
	if g.grounded {
		t.Error("jumping should leave the ground")
	}

	// A second press mid-air must not re-apply the impulse.
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)
	step(h, &now, 5)
	midair := g.vel.Y

	h.KeyUp(" ")
	h.KeyDown(" ")
	if g.vel.Y != midair {
		t.Errorf("mid-air jump changed velocity from %f to %f", midair, g.vel.Y)
	}
}

func TestWalkCollectAndClear(t *testing.T) {
	writeLevel(t, `
spawn: {x: 2, y: 20}
platforms:
  - { x: 0, y: 21, w: 40 }
coins:
  - { x: 6, y: 20 }
  - { x: 10, y: 20 }
`)
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	var coins int
	var cleared []hub.CustomPayload
	h.Subscribe(hub.TopicCollision, func(ev hub.Event) {
		if ev.Payload.(hub.CollisionPayload).Kind == "coin" {
			coins++
		}
	})
	h.Subscribe(hub.TopicCustom, func(ev hub.Event) {
		cleared = append(cleared, ev.Payload.(hub.CustomPayload))
	})

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)
	h.KeyDown("d")
	step(h, &now, 60) // ~1s at move speed 20 passes both coins

	if coins != 2 {
		t.Errorf("coin events = %d, expected 2", coins)
	}
	if g.State().Score != 2 {
		t.Errorf("score = %d, expected 2", g.State().Score)
	}
	if !g.State().GameOver || !g.cleared {
		t.Error("collecting every coin should clear the level")
	}
	if len(cleared) != 1 || cleared[0].Name != "level-clear" {
		t.Errorf("custom events = %+v, expected one level-clear", cleared)
	}
}

func TestWalkOffLedgeIsGameOver(t *testing.T) {
	writeLevel(t, `
spawn: {x: 2, y: 20}
platforms:
  - { x: 0, y: 21, w: 6 }
coins:
  - { x: 1, y: 15 }
`)
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)
	h.KeyDown("d")
	step(h, &now, 120)

	if !g.State().GameOver {
		t.Error("falling off the map should end the game")
	}
	if g.cleared {
		t.Error("falling is not a level clear")
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, expected 0", g.State().Score)
	}
}

func TestFrameAfterGameOverIsInert(t *testing.T) {
	writeLevel(t, `
spawn: {x: 2, y: 20}
platforms:
  - { x: 0, y: 21, w: 6 }
coins:
  - { x: 1, y: 15 }
`)
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)
	h.KeyDown("d")
	step(h, &now, 120)
	if !g.done {
		t.Fatal("expected game over")
	}

	frozen := g.pos
	step(h, &now, 30)
	if g.pos != frozen {
		t.Error("physics should stop after game over")
	}
}

func TestRemountResetsLevel(t *testing.T) {
	writeLevel(t, `
spawn: {x: 2, y: 20}
platforms:
  - { x: 0, y: 21, w: 40 }
coins:
  - { x: 6, y: 20 }
`)
	g, h, release := mountedGame(t)
	defer h.Close()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)
	h.KeyDown("d")
	step(h, &now, 30)
	release()
	h.KeyUp("d")

	release2, err := g.Mount(h, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if err != nil {
		t.Fatalf("remount failed: %v", err)
	}
	defer release2()

	if g.pos.X != 2 || g.pos.Y != 20 {
		t.Errorf("position after remount = %+v, expected spawn (2, 20)", g.pos)
	}
	if g.State().Score != 0 || g.State().GameOver {
		t.Errorf("state after remount = %+v, expected fresh", g.State())
	}
}

func TestRenderShowsLevelAndPlayer(t *testing.T) {
	writeLevel(t, `
spawn: {x: 2, y: 20}
platforms:
  - { x: 0, y: 21, w: 10 }
coins:
  - { x: 6, y: 20 }
`)
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	s := core.NewScreen(80, 24)
	g.Render(s)

	if s.Get(2, 20) != '@' {
		t.Errorf("expected player at spawn, row: %q", s.Row(20))
	}
	if s.Get(0, 21) != '█' {
		t.Error("expected platform cell at (0, 21)")
	}
	if s.Get(6, 20) != '●' {
		t.Error("expected coin at (6, 20)")
	}
}
