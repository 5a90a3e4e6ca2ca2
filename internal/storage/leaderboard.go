package storage

import "github.com/vovakirdan/space-runner/internal/games/runner"

// Leaderboard binds a Store to one game so a session can persist its top
// list and record finished runs.
type Leaderboard struct {
	store  *Store
	gameID string
}

// Leaderboard returns the persistence adapter for a game.
func (s *Store) Leaderboard(gameID string) *Leaderboard {
	return &Leaderboard{store: s, gameID: gameID}
}

// LoadLeaderboard implements runner.LeaderboardStore.
func (l *Leaderboard) LoadLeaderboard() ([]runner.LeaderboardEntry, error) {
	rows, err := l.store.LoadLeaderboard(l.gameID)
	if err != nil {
		return nil, err
	}
	entries := make([]runner.LeaderboardEntry, len(rows))
	for i, r := range rows {
		entries[i] = runner.LeaderboardEntry{Score: r.Score, Date: r.Date}
	}
	return entries, nil
}

// SaveLeaderboard implements runner.LeaderboardStore.
func (l *Leaderboard) SaveLeaderboard(entries []runner.LeaderboardEntry) error {
	rows := make([]LeaderboardRow, len(entries))
	for i, e := range entries {
		rows[i] = LeaderboardRow{Rank: i + 1, Score: e.Score, Date: e.Date}
	}
	return l.store.SaveLeaderboard(l.gameID, rows)
}

// RecordRun implements runner.RunRecorder.
func (l *Leaderboard) RecordRun(stats runner.Stats) error {
	_, err := l.store.SaveRun(RunRecord{
		GameID:      l.gameID,
		MissionID:   stats.MissionID,
		Score:       stats.Score,
		Outcome:     stats.Outcome.String(),
		Diagnosis:   stats.Diagnosis,
		Triangles:   stats.ShapesCollected[runner.ShapeTriangle],
		Rectangles:  stats.ShapesCollected[runner.ShapeRectangle],
		Diamonds:    stats.ShapesCollected[runner.ShapeDiamond],
		Red:         stats.GatesPassed[runner.GateRed],
		Green:       stats.GatesPassed[runner.GateGreen],
		Blue:        stats.GatesPassed[runner.GateBlue],
		Avoided:     stats.ObstaclesAvoided,
		RuntimeSecs: stats.RuntimeSeconds,
	})
	return err
}

// RunOutcome decodes the stored outcome name. Rows written by an unknown
// version report false.
func (r RunRecord) RunOutcome() (runner.Outcome, bool) {
	return runner.ParseOutcome(r.Outcome)
}

// OutcomeLabel is the player-facing outcome, or the raw stored name when it
// cannot be decoded.
func (r RunRecord) OutcomeLabel() string {
	o, ok := r.RunOutcome()
	if !ok {
		return r.Outcome
	}
	return o.Label()
}

// Ensure Leaderboard implements the session's persistence interfaces
var (
	_ runner.LeaderboardStore = (*Leaderboard)(nil)
	_ runner.RunRecorder      = (*Leaderboard)(nil)
)
