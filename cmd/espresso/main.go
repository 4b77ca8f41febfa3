// espresso is Espresso Rush, a three-lane coffee runner for the terminal.
//
// Usage:
//
//	espresso play            - Play in this terminal
//	espresso scores          - Show the top 10 leaderboard
//	espresso serve           - Start SSH server for remote play
//	espresso simulate        - Run headless autopilot games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.espresso/scores.db)
//	--lang <is|en>        - Roast language (default: is)
//	--config <path>       - Custom runner config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLang       string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "espresso",
	Short: "Espresso Rush - catch the coffee, dodge the milk",
	Long: `Espresso Rush is a three-lane runner for your terminal.

Catch falling coffee to speed up, dodge the milk cartons, unlock
fireballs at 15 coffees and a power burst at exactly 25.

Available commands:
  play      - Play in this terminal
  scores    - View the top 10 leaderboard
  serve     - Start SSH server for remote play
  simulate  - Run headless autopilot games

Examples:
  espresso play
  espresso play --difficulty hard --lang en
  espresso scores --stats
  espresso serve --ssh :2222
  espresso simulate --seed 42 --runs 5`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.espresso/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "is", "Roast language: is, en")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
