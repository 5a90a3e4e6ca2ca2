package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-runner/internal/games/runner"
	"github.com/vovakirdan/space-runner/internal/platform/tui"
	"github.com/vovakirdan/space-runner/internal/storage"
)

var (
	flagPlain  bool
	flagClear  bool
	flagRecent int
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and recent runs",
	Long: `Display the Space Runner leaderboard and run history.

On a terminal this opens an interactive table; tab switches between the
top scores, recent runs and best runs. With --plain, or when output is
piped, the same data is printed as text.

Examples:
  runner scores
  runner scores --plain --recent 20
  runner scores --run 5f0c2a8e-...   # Full report of one run
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the leaderboard and run history")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent runs to print in plain mode")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Print the mission report of one run by its ID")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(runner.GameID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Scores cleared.")
		return nil
	}

	if flagRunID != "" {
		return printRun(cmd.OutOrStdout(), store, flagRunID)
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunScoreboard(store, runner.GameID, "Space Runner", width, height)
	}

	return printScores(cmd.OutOrStdout(), store, flagRecent)
}

// printScores writes the leaderboard, recent runs and totals as text.
func printScores(w io.Writer, store *storage.Store, recent int) error {
	board, err := store.LoadLeaderboard(runner.GameID)
	if err != nil {
		return fmt.Errorf("error retrieving leaderboard: %w", err)
	}

	fmt.Fprintln(w, "Top Scores - Space Runner")
	fmt.Fprintln(w)

	if len(board) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'runner play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for _, e := range board {
		fmt.Fprintf(w, "  %-4d  %-10s  %s\n", e.Rank, humanize.Comma(int64(e.Score)), e.Date)
	}

	runs, err := store.RecentRuns(runner.GameID, recent)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	if len(runs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recent Runs")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %-7s  %-8s  %-12s  %-6s  %-14s  %s\n", "Mission", "Score", "Outcome", "Time", "When", "Run ID")
		for _, r := range runs {
			fmt.Fprintf(w, "  #%04d    %-8s  %-12s  %02d:%02d   %-14s  %s\n",
				r.MissionID,
				humanize.Comma(int64(r.Score)),
				r.OutcomeLabel(),
				r.RuntimeSecs/60, r.RuntimeSecs%60,
				humanize.Time(r.CreatedAt),
				r.RunID,
			)
		}
	}

	sum, err := store.Summary(runner.GameID)
	if err == nil && sum.Runs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %s  Average: %.0f  Total: %s\n",
			humanize.Comma(int64(sum.Runs)),
			sum.AvgScore,
			humanize.Comma(sum.TotalScore),
		)
	}

	// Show high score
	if highScore, err := store.HighScore(runner.GameID); err == nil && highScore > 0 {
		fmt.Fprintf(w, "Best: %s\n", humanize.Comma(int64(highScore)))
	}
	return nil
}

// printRun writes the mission report of a single recorded run.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return fmt.Errorf("error retrieving run: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Fprintf(w, "Mission #%04d  %s\n", r.MissionID, r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Outcome:    %s\n", r.OutcomeLabel())
	fmt.Fprintf(w, "  Diagnosis:  %s\n", r.Diagnosis)
	fmt.Fprintf(w, "  Score:      %s\n", humanize.Comma(int64(r.Score)))
	fmt.Fprintf(w, "  Runtime:    [%02d:%02d]\n", r.RuntimeSecs/60, r.RuntimeSecs%60)
	fmt.Fprintf(w, "  Shapes:     triangle %d  rectangle %d  diamond %d\n", r.Triangles, r.Rectangles, r.Diamonds)
	fmt.Fprintf(w, "  Tunnels:    red %d  green %d  blue %d\n", r.Red, r.Green, r.Blue)
	fmt.Fprintf(w, "  Asteroids:  %d avoided\n", r.Avoided)
	return nil
}
