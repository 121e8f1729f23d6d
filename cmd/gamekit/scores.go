package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avlasenko/gamekit/internal/registry"
	"github.com/avlasenko/gamekit/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show recorded sessions for a game",
	Long: `Display the top sessions for the specified game.

Examples:
  gamekit scores walker
  gamekit scores platformer
  gamekit scores walker --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded sessions for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gamekit list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		deleted, clearErr := store.ClearSessions(gameID)
		if clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d sessions for %s.\n", deleted, title)
		return
	}

	sessions, err := store.TopSessions(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top Sessions - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gamekit play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %s\n", "Rank", "Score", "Time", "FPS", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %s\n", "----", "-----", "----", "---", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-10d  %-8s  %-5d  %s\n",
			i+1, s.Score, fmt.Sprintf("%ds", s.DurationSecs), s.AvgFPS,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil && stats.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Sessions: %d  Avg: %.1f\n", stats.HighScore, stats.Sessions, stats.AvgScore)
	}
}
