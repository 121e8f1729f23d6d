package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avlasenko/gamekit/internal/core"
	"github.com/avlasenko/gamekit/internal/games/particles"
	"github.com/avlasenko/gamekit/internal/games/platformer"
	"github.com/avlasenko/gamekit/internal/games/walker"
	"github.com/avlasenko/gamekit/internal/platform/tui"
	"github.com/avlasenko/gamekit/internal/registry"
	"github.com/avlasenko/gamekit/internal/storage"
)

var (
	flagConfig string
	flagLevel  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/A/S/D or arrows - Move
  Space             - Action (jump, burst, sprint)
  P/Esc             - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Examples:
  gamekit play walker
  gamekit play particles --seed 42
  gamekit play platformer --level ./my-level.yaml
  gamekit play walker --config ./my-walker.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to custom level YAML (platformer only)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gamekit list' to see available games.")
		os.Exit(1)
	}

	// Terminal size, with a sane fallback for pipes
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Point games at custom configs before creation
	switch gameID {
	case "walker":
		walker.SetConfigPath(flagConfig)
	case "particles":
		particles.SetConfigPath(flagConfig)
	case "platformer":
		platformer.SetConfigPath(flagConfig)
		platformer.SetLevelPath(flagLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "gamekit"})

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
