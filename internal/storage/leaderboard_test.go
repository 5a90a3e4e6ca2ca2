package storage

import (
	"testing"

	"github.com/vovakirdan/space-runner/internal/config"
	"github.com/vovakirdan/space-runner/internal/games/runner"
)

func TestLeaderboardAdapterRoundTrip(t *testing.T) {
	store := openTestStore(t)
	lb := store.Leaderboard(runner.GameID)

	entries := []runner.LeaderboardEntry{{Score: 700, Date: "1/2/2024, 3:04:05 PM"}, {Score: 20, Date: "1/3/2024, 9:00:00 AM"}}
	if err := lb.SaveLeaderboard(entries); err != nil {
		t.Fatalf("SaveLeaderboard() failed: %v", err)
	}

	got, err := lb.LoadLeaderboard()
	if err != nil {
		t.Fatalf("LoadLeaderboard() failed: %v", err)
	}
	if len(got) != 2 || got[0] != entries[0] || got[1] != entries[1] {
		t.Errorf("LoadLeaderboard() = %+v, expected %+v", got, entries)
	}
}

func TestLeaderboardAdapterRecordRun(t *testing.T) {
	store := openTestStore(t)
	lb := store.Leaderboard(runner.GameID)

	stats := runner.Stats{
		Score:            520,
		MissionID:        17,
		ObstaclesAvoided: 2,
		Diagnosis:        runner.DiagnosisGateSuccess,
		RuntimeSeconds:   61,
		Outcome:          runner.OutcomeSuccess,
	}
	stats.ShapesCollected[runner.ShapeTriangle] = 3
	stats.GatesPassed[runner.GateRed] = 1

	if err := lb.RecordRun(stats); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.RecentRuns(runner.GameID, 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 520 || r.MissionID != 17 || r.Outcome != "success" || r.Triangles != 3 || r.Red != 1 || r.Avoided != 2 || r.RuntimeSecs != 61 {
		t.Errorf("run = %+v", r)
	}
	if o, ok := r.RunOutcome(); !ok || o != runner.OutcomeSuccess {
		t.Errorf("RunOutcome() = (%v, %v), expected (success, true)", o, ok)
	}
	if r.OutcomeLabel() != "Tunnel OK" {
		t.Errorf("OutcomeLabel() = %q", r.OutcomeLabel())
	}
}

func TestRunRecordUnknownOutcome(t *testing.T) {
	r := RunRecord{Outcome: "warped"}
	if _, ok := r.RunOutcome(); ok {
		t.Error("unknown outcome decoded")
	}
	if r.OutcomeLabel() != "warped" {
		t.Errorf("OutcomeLabel() = %q, expected the raw name", r.OutcomeLabel())
	}
}

func TestSessionPersistsThroughStore(t *testing.T) {
	store := openTestStore(t)
	lb := store.Leaderboard(runner.GameID)
	cfg := config.DefaultRunnerConfig()

	s := runner.NewSession(cfg, runner.Options{Leaderboard: lb, Recorder: lb, Seed: 3})
	s.Start()
	s.End(runner.OutcomeAborted, runner.DiagnosisAborted)

	reopened := runner.NewSession(cfg, runner.Options{Leaderboard: lb, Seed: 4})
	if len(reopened.Leaderboard()) != 1 {
		t.Errorf("Leaderboard = %+v, expected the saved run", reopened.Leaderboard())
	}
	sum, err := store.Summary(runner.GameID)
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 1 {
		t.Errorf("Runs = %d, expected 1", sum.Runs)
	}
}
