// gamekit is a terminal game starter kit: a frame loop, an event hub,
// and keyboard tracking, with a few demo games built on top.
//
// Usage:
//
//	gamekit list              - List available games
//	gamekit play <game>       - Play a game
//	gamekit menu              - Start menu to pick games interactively
//	gamekit serve             - Start SSH server for remote play
//	gamekit scores <game>     - Show recorded sessions for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gamekit/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/avlasenko/gamekit/internal/games/particles"
	_ "github.com/avlasenko/gamekit/internal/games/platformer"
	_ "github.com/avlasenko/gamekit/internal/games/walker"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamekit",
	Short: "Gamekit - A terminal game starter kit",
	Long: `Gamekit is a terminal game platform built around a frame loop,
an event hub, and keyboard tracking. It ships with demo games that
show how to build on the kit.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View recorded sessions

Examples:
  gamekit list
  gamekit play walker
  gamekit menu
  gamekit serve --ssh :2222
  gamekit scores platformer`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gamekit/sessions.db", "Path to sessions database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
