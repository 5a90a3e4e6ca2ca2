package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-runner/internal/config"
)

func TestLoadTuningPresets(t *testing.T) {
	defer func() { flagConfig, flagDifficulty = "", "" }()

	flagConfig = writeConfig(t, "phases:\n  duration_frames: 500\n")

	tests := []struct {
		difficulty string
		wantFrames int
		wantErr    bool
	}{
		{"", 500, false},
		{"fixed", 500, false},
		{"hard", 720, false},
		{"easy", 1200, false},
		{"insane", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			flagDifficulty = tt.difficulty
			cfg, err := loadTuning()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadTuning() failed: %v", err)
			}
			if cfg.Phases.DurationFrames != tt.wantFrames {
				t.Errorf("duration_frames = %d, want %d", cfg.Phases.DurationFrames, tt.wantFrames)
			}
		})
	}
}

func TestLoadTuningBadFile(t *testing.T) {
	defer func() { flagConfig = "" }()
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadTuning(); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestNewRunnerWithoutStore(t *testing.T) {
	g := newRunner(config.DefaultRunnerConfig(), nil, log.New(io.Discard))
	if g.ID() != "runner" {
		t.Errorf("ID = %q", g.ID())
	}
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.log")
	logger, closer, err := openLogger(path, "debug")
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Debug("phase changed", "phase", "Collecting")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "phase changed") {
		t.Errorf("log = %q", data)
	}

	if _, _, err := openLogger("", "loud"); err == nil {
		t.Error("unknown level should fail")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}
