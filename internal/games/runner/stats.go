package runner

import (
	"fmt"
	"sort"
	"time"
)

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeCrashed
	OutcomeSuccess
	OutcomeFailure
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeCrashed:
		return "crashed"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Label is the outcome as shown to players.
func (o Outcome) Label() string {
	switch o {
	case OutcomeRunning:
		return "In flight"
	case OutcomeCrashed:
		return "Crashed"
	case OutcomeSuccess:
		return "Tunnel OK"
	case OutcomeFailure:
		return "Wrong tunnel"
	case OutcomeAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// ParseOutcome maps a stored outcome name back to its value.
func ParseOutcome(s string) (Outcome, bool) {
	for o := OutcomeRunning; o <= OutcomeAborted; o++ {
		if o.String() == s {
			return o, true
		}
	}
	return OutcomeRunning, false
}

// Diagnoses shown on the end screen.
const (
	DiagnosisNominal     = "All systems nominal"
	DiagnosisCrashed     = "Hull breach: asteroid impact"
	DiagnosisGateSuccess = "Tunnel passed! Mission complete"
	DiagnosisGateFailure = "Wrong tunnel: navigation failure"
	DiagnosisGateMissed  = "Tunnel phase missed"
	DiagnosisAborted     = "Mission aborted"
)

// Stats accumulates over a run and is frozen by End.
type Stats struct {
	Score            int
	MissionID        int
	ShapesCollected  [shapeCount]int
	GatesPassed      [gateColorCount]int
	ObstaclesAvoided int
	Diagnosis        string
	StartTime        time.Time
	RuntimeSeconds   int
	Outcome          Outcome
}

// Mission formats the mission id for display.
func (s Stats) Mission() string {
	return fmt.Sprintf("#%04d", s.MissionID)
}

// Runtime formats the frozen run length as [mm:ss].
func (s Stats) Runtime() string {
	return FormatRuntime(s.RuntimeSeconds)
}

// FormatRuntime formats whole seconds as [mm:ss]. Minutes are not wrapped.
func FormatRuntime(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("[%02d:%02d]", secs/60, secs%60)
}

// LeaderboardEntry is one persisted result.
type LeaderboardEntry struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// LeaderboardDateLayout is the display format of LeaderboardEntry.Date.
const LeaderboardDateLayout = "1/2/2006, 3:04:05 PM"

// FormatDate formats a time the way leaderboard entries store it.
func FormatDate(t time.Time) string {
	return t.Format(LeaderboardDateLayout)
}

// MergeLeaderboard inserts entry, sorts by score descending keeping the
// order of equal scores, and truncates to limit. The input is not modified.
func MergeLeaderboard(list []LeaderboardEntry, entry LeaderboardEntry, limit int) []LeaderboardEntry {
	merged := make([]LeaderboardEntry, 0, len(list)+1)
	merged = append(merged, list...)
	merged = append(merged, entry)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// sanitizeLeaderboard drops entries with a negative score, then sorts and
// truncates what remains.
func sanitizeLeaderboard(list []LeaderboardEntry, limit int) []LeaderboardEntry {
	clean := make([]LeaderboardEntry, 0, len(list))
	for _, e := range list {
		if e.Score < 0 {
			continue
		}
		clean = append(clean, e)
	}
	sort.SliceStable(clean, func(i, j int) bool {
		return clean[i].Score > clean[j].Score
	})
	if limit >= 0 && len(clean) > limit {
		clean = clean[:limit]
	}
	return clean
}
