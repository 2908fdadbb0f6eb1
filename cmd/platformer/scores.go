package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the high score and history",
	Long: `Display the high score and the top 10 sessions of a game.
The history is kept in the SQLite database; with --store gdata only the
high score is available.

Examples:
  platformer scores
  platformer scores --interactive
  platformer scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the high score and history")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "platformer"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("%v (run 'platformer list' to see available games)", err)
	}
	title := game.Title()

	scores, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		fail("opening score store: %v", err)
	}
	defer scores.Close()

	history, _ := scores.(storage.ScoreHistory)

	if flagClear {
		if err := scores.ClearHighScore(gameID); err != nil {
			fail("%v", err)
		}
		if history != nil {
			if err := history.ClearScores(gameID); err != nil {
				fail("%v", err)
			}
		}
		fmt.Printf("Scores for %s cleared.\n", title)
		return
	}

	if flagInteractive {
		store, ok := scores.(*storage.Store)
		if !ok {
			fail("--interactive needs the sqlite store")
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	raw, err := scores.ReadHighScore(gameID)
	if err != nil {
		fail("%v", err)
	}
	high, err := storage.ParseHighScore(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()
	fmt.Printf("Best: %d\n", high)

	if history == nil {
		return
	}

	entries, err := history.TopScores(gameID, 10)
	if err != nil {
		fail("retrieving scores: %v", err)
	}
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range entries {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
