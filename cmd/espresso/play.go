package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/espresso-rush/internal/core"
	"github.com/vovakirdan/espresso-rush/internal/ledger"
	"github.com/vovakirdan/espresso-rush/internal/platform/tui"
	"github.com/vovakirdan/espresso-rush/internal/roast"
	"github.com/vovakirdan/espresso-rush/internal/storage"
)

var (
	flagLogPath string
	flagVerbose bool
	flagName    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Espresso Rush",
	Long: `Start a game in this terminal.

Controls:
  Left/Right, A/D  - Change lane
  Space/Up         - Fireball (after 15 coffees)
  Mouse drag/tap   - Swipe to change lane, tap to fire
  P                - Pause
  R                - Restart (after game over)
  Tab              - Leaderboard
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start and lower top speed
  normal - Default tuning
  hard   - Faster start, higher top speed, more milk
  fixed  - Coffee never speeds you up

The barista's roast uses GEMINI_API_KEY (or API_KEY) from the
environment or a .env file; without one a fixed line is shown.

Examples:
  espresso play
  espresso play --difficulty easy
  espresso play --lang en --name Marta
  espresso play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "~/.espresso/espresso.log", "Path to log file")
	playCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log mode changes and other debug events")
	playCmd.Flags().StringVar(&flagName, "name", os.Getenv("USER"), "Name to prefill in the high score prompt")
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lang, err := parseLang()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := openFileLogger(flagLogPath, flagVerbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Runner:     runnerCfg,
		Logger:     logger,
		PlayerName: flagName,
		Roast:      roast.FromEnv(context.Background(), lang, logger, ".env"),
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores kept in memory", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		opts.Ledger = ledger.New(store, nil)
		opts.History = store
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
