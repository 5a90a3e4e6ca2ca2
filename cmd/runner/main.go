// runner is Space Runner: a pseudo-3D corridor flight game for the terminal.
//
// Usage:
//
//	runner play              - Fly a mission
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show the leaderboard and recent runs
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Space Runner - fly a corridor in your terminal",
	Long: `Space Runner is a terminal flight game. Dodge asteroid fields, collect
shapes along a curved path, then pick the tunnel whose color matches the
shape you collected most.

Available commands:
  play     - Fly a mission
  serve    - Start SSH server for remote play
  scores   - View the leaderboard and run history
  config   - Print the effective configuration

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222
  runner scores --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
