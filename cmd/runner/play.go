package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-runner/internal/config"
	"github.com/vovakirdan/space-runner/internal/core"
	"github.com/vovakirdan/space-runner/internal/games/runner"
	"github.com/vovakirdan/space-runner/internal/platform/tui"
	"github.com/vovakirdan/space-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a mission",
	Long: `Start a Space Runner mission.

Controls:
  A/D, Left/Right  - Steer
  P/Esc            - Pause
  R                - New mission (after the report)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wider hit margin, longer phases, speed ramps from zero
  normal - Starts at 30% difficulty, progresses to max
  hard   - Denser asteroid fields, shorter phases
  fixed  - No progression, stays at config's initial level

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --log runner.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addTuningFlags(playCmd)
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// addTuningFlags registers the flags that select the runner configuration.
func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadTuning resolves the runner configuration from --config and --difficulty.
func loadTuning() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.RunnerConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

// newRunner builds a game wired to the store. A nil store leaves the game
// without persistence.
func newRunner(tuning config.RunnerConfig, store *storage.Store, logger *log.Logger) *runner.Game {
	opts := []runner.Option{
		runner.WithConfig(tuning),
		runner.WithLogger(logger),
	}
	if store != nil {
		board := store.Leaderboard(runner.GameID)
		opts = append(opts, runner.WithLeaderboard(board), runner.WithRecorder(board))
	}
	return runner.New(opts...)
}

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. The returned closer must be called on exit.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           lvl,
	})
	return logger, f, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) error {
	tuning, err := loadTuning()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(newRunner(tuning, store, logger), cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
