package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/avlasenko/gamekit/internal/core"
	"github.com/avlasenko/gamekit/internal/hub"
	"github.com/avlasenko/gamekit/internal/registry"
	"github.com/avlasenko/gamekit/internal/storage"
)

// gameExitMsg is emitted instead of tea.Quit when the model runs embedded
// inside a session (SSH), so the parent can return to its menu.
type gameExitMsg struct{}

// Model is the Bubble Tea model that runs one game on a live hub.
type Model struct {
	game    registry.Game
	events  *hub.Hub
	release func()
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	hold    *holdTracker
	logger  *log.Logger

	started  time.Time
	frames   int
	paused   bool
	quitting bool
	saved    bool

	// embedded suppresses tea.Quit so a parent session model can swap
	// back to its menu when the game ends.
	embedded bool
}

// NewModel creates a model for the given game, spins up its hub, and
// mounts the game onto it.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		hold:    newHoldTracker(defaultHoldTimeout),
		logger:  logger,
		started: time.Now(),
	}

	if err := m.mount(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// mount creates a fresh hub and attaches the game to it.
func (m *Model) mount() error {
	m.events = hub.New(m.logger)
	release, err := m.game.Mount(m.events, m.config)
	if err != nil {
		m.events.Close()
		return fmt.Errorf("mounting %s: %w", m.game.ID(), err)
	}
	m.release = release
	m.started = time.Now()
	m.frames = 0
	m.saved = false
	m.paused = false
	return nil
}

// teardown releases the game's subscriptions and closes the hub. Safe to
// call on every exit path; both halves are release-once.
func (m *Model) teardown() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
	if m.events != nil {
		m.events.Close()
	}
	m.hold.reset()
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey routes meta keys (quit, pause, restart) and feeds everything
// else to the hub as a physical key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.saveSession()
		m.teardown()
		m.quitting = true
		if m.embedded {
			return m, func() tea.Msg { return gameExitMsg{} }
		}
		return m, tea.Quit

	case "p", "esc":
		m.paused = !m.paused
		return m, nil

	case "r":
		m.saveSession()
		m.teardown()
		if err := m.mount(); err != nil {
			m.logger.Error("restart failed", "game", m.game.ID(), "error", err)
			m.quitting = true
			if m.embedded {
				return m, func() tea.Msg { return gameExitMsg{} }
			}
			return m, tea.Quit
		}
		return m, nil
	}

	key := msg.String()
	if _, ok := hub.LookupControl(key); ok {
		m.hold.press(key, time.Now())
	}
	if !m.events.Closed() {
		m.events.KeyDown(key)
	}
	return m, nil
}

// handleResize grows the screen and remounts the game so it can adapt to
// the new dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.quitting && !m.game.State().GameOver {
		m.teardown()
		if err := m.mount(); err != nil {
			m.logger.Error("remount after resize failed", "game", m.game.ID(), "error", err)
			m.quitting = true
			if m.embedded {
				return m, func() tea.Msg { return gameExitMsg{} }
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick synthesizes key releases, advances the hub one frame, and
// persists the session when the game ends.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.events.Closed() {
		return m, nil
	}

	for _, key := range m.hold.expire(now) {
		m.events.KeyUp(key)
	}

	if !m.paused {
		m.events.Advance(now)
		m.frames++
	}

	if m.game.State().GameOver {
		m.saveSession()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveSession writes one session row, first call only.
func (m *Model) saveSession() {
	if m.saved || m.store == nil {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}

	duration := int(time.Since(m.started).Seconds())
	avgFPS := 0
	if duration > 0 {
		avgFPS = m.frames / duration
	}

	if _, err := m.store.SaveSession(m.game.ID(), state.Score, duration, avgFPS); err != nil {
		m.logger.Warn("could not save session", "game", m.game.ID(), "error", err)
	}
	m.saved = true
}

// View renders the current frame with a status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	m.drawStatus()

	return RenderScreen(m.screen)
}

// drawStatus writes the HUD line into the bottom row of the screen buffer.
func (m Model) drawStatus() {
	timing := hub.Timing{}
	if !m.events.Closed() {
		timing = m.events.Timing()
	}

	status := fmt.Sprintf(" %s │ fps %d │ Δ %.1fms │ score %d │ [p]ause [r]estart [q]uit",
		m.game.Title(), timing.FPS, timing.Delta*1000, m.game.State().Score)
	if m.paused {
		status += " │ PAUSED"
	}
	m.screen.DrawTextColored(0, m.screen.Height()-1, status, core.ColorGray)
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, store, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
