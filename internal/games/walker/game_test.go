package walker

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/avlasenko/gamekit/internal/core"
	"github.com/avlasenko/gamekit/internal/hub"
)

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

func TestWalkerIdleWithoutInput(t *testing.T) {
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	start := g.pos
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		now = now.Add(16 * time.Millisecond)
		h.Advance(now)
	}

	if g.pos != start {
		t.Errorf("walker moved without input: %+v -> %+v", start, g.pos)
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d without movement, expected 0", g.State().Score)
	}
}

func TestWalkerMovesWithHeldKeyScaledByDelta(t *testing.T) {
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now) // first frame, delta 0

	h.KeyDown("d")
	startX := g.pos.X

	// One second of held right at 10 fps steps.
	for i := 0; i < 10; i++ {
		now = now.Add(100 * time.Millisecond)
		h.Advance(now)
	}

	moved := g.pos.X - startX
	if moved < g.cfg.Speed-0.5 || moved > g.cfg.Speed+0.5 {
		t.Errorf("moved %f cells in 1s, expected ~speed %f", moved, g.cfg.Speed)
	}
	if g.State().Score == 0 {
		t.Error("score should accumulate with distance")
	}
}

func TestWalkerStopsOnRelease(t *testing.T) {
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)

	h.KeyDown("right")
	now = now.Add(50 * time.Millisecond)
	h.Advance(now)
	h.KeyUp("right")

	stopped := g.pos
	for i := 0; i < 10; i++ {
		now = now.Add(50 * time.Millisecond)
		h.Advance(now)
	}

	if g.pos != stopped {
		t.Errorf("walker kept moving after release: %+v -> %+v", stopped, g.pos)
	}
}

func TestWalkerClampedToScreen(t *testing.T) {
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)

	h.KeyDown("a")
	for i := 0; i < 600; i++ {
		now = now.Add(50 * time.Millisecond)
		h.Advance(now)
	}

	if g.pos.X != 0 {
		t.Errorf("walker x = %f after walking left for 30s, expected clamp at 0", g.pos.X)
	}
}

func TestWalkerClampsLagSpikes(t *testing.T) {
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)

	h.KeyDown("d")
	startX := g.pos.X

	// A five-second stall should integrate as at most MaxDelta.
	h.Advance(now.Add(5 * time.Second))

	moved := g.pos.X - startX
	limit := g.cfg.Speed * g.cfg.MaxDelta
	if moved > limit+0.001 {
		t.Errorf("lag spike moved walker %f cells, expected <= %f", moved, limit)
	}
}

func TestWalkerRenderPlacesAvatar(t *testing.T) {
	g, h, release := mountedGame(t)
	defer h.Close()
	defer release()

	s := core.NewScreen(80, 24)
	g.Render(s)

	if s.Get(40, 12) != '@' {
		t.Errorf("expected avatar at screen center, row: %q", s.Row(12))
	}
}

func TestWalkerRemountResets(t *testing.T) {
	g, h, release := mountedGame(t)
	defer h.Close()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Advance(now)
	h.KeyDown("s")
	h.Advance(now.Add(500 * time.Millisecond))
	release()

	release2, err := g.Mount(h, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if err != nil {
		t.Fatalf("remount failed: %v", err)
	}
	defer release2()

	if g.State().Score != 0 {
		t.Errorf("score after remount = %d, expected 0", g.State().Score)
	}
	if g.pos.X != 40 || g.pos.Y != 12 {
		t.Errorf("position after remount = %+v, expected screen center", g.pos)
	}
}
