package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/espresso-rush/internal/ledger"
	"github.com/vovakirdan/espresso-rush/internal/platform/tui"
	"github.com/vovakirdan/espresso-rush/internal/runner"
	"github.com/vovakirdan/espresso-rush/internal/storage"
)

var (
	flagStats       bool
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top 10 leaderboard",
	Long: `Display the top 10 high scores.

Examples:
  espresso scores
  espresso scores --stats
  espresso scores --interactive
  espresso scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Also show statistics from the run history")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Clear the leaderboard and run history")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard full-screen")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	board := ledger.New(store, nil)

	if flagClear {
		if err := board.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		if err := store.ClearRuns(runner.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard and run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(board, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := board.Entries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", runner.Title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'espresso play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-12s  %-8s  %-7s  %s\n", "Rank", "Name", "Score", "Coffees", "Date")
		fmt.Printf("  %-4s  %-12s  %-8s  %-7s  %s\n", "----", "----", "-----", "-------", "----")
		for i, e := range entries {
			fmt.Printf("  %-4d  %-12s  %-8d  %-7d  %s\n", i+1, e.Name, e.Score, e.CoffeeCount, e.Date)
		}
	}

	if !flagStats {
		return
	}

	stats, err := store.GetRunStats(runner.ID, runner.ModePowerBurst.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Run history")
	fmt.Printf("  Runs:           %d\n", stats.RunsCount)
	if stats.RunsCount == 0 {
		return
	}
	fmt.Printf("  Best score:     %d\n", stats.HighScore)
	fmt.Printf("  Average score:  %.0f\n", stats.AvgScore)
	fmt.Printf("  Coffees:        %d total, %d best\n", stats.TotalCoffees, stats.MostCoffees)
	fmt.Printf("  Power bursts:   %d\n", stats.BurstRuns)
	fmt.Printf("  Time played:    %s\n", stats.TotalPlay.Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	printRuns("Best runs", store.TopRuns)
	printRuns("Recent runs", store.RecentRuns)
}

func printRuns(title string, query func(gameID string, limit int) ([]storage.RunRecord, error)) {
	runs, err := query(runner.ID, 5)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(title)
	for _, r := range runs {
		fmt.Printf("  %s  %-8d  ☕ %-3d  %-11s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.CoffeeCount, r.PeakMode, r.Duration.Round(time.Second))
	}
}
