package runner

import "time"

// Phase is a stage of the run cycle.
type Phase int

const (
	PhaseObstacles Phase = iota
	PhaseCollecting
	PhaseGateChoice
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseObstacles:
		return "obstacles"
	case PhaseCollecting:
		return "collecting"
	case PhaseGateChoice:
		return "gate_choice"
	default:
		return "unknown"
	}
}

// Title is the name shown on the HUD.
func (p Phase) Title() string {
	switch p {
	case PhaseObstacles:
		return "Asteroids"
	case PhaseCollecting:
		return "Choose shape"
	case PhaseGateChoice:
		return "Choose tunnel"
	default:
		return ""
	}
}

// Next returns the phase that follows p in the cycle.
func (p Phase) Next() Phase {
	return (p + 1) % phaseCount
}

// PhaseMachine cycles Obstacles -> Collecting -> GateChoice -> Obstacles on
// a frame counter.
type PhaseMachine struct {
	current   Phase
	frames    int
	threshold int
}

// NewPhaseMachine creates a machine that advances once its counter exceeds
// threshold.
func NewPhaseMachine(threshold int) *PhaseMachine {
	return &PhaseMachine{threshold: threshold}
}

// Reset returns to the first phase with a zero counter.
func (m *PhaseMachine) Reset() {
	m.current = PhaseObstacles
	m.frames = 0
}

// Advance counts one frame. It reports the phase after the frame and
// whether a transition happened; a transition resets the counter to 0.
func (m *PhaseMachine) Advance() (Phase, bool) {
	m.frames++
	if m.frames > m.threshold {
		m.frames = 0
		m.current = m.current.Next()
		return m.current, true
	}
	return m.current, false
}

// Current returns the active phase.
func (m *PhaseMachine) Current() Phase {
	return m.current
}

// Frames returns the counter value.
func (m *PhaseMachine) Frames() int {
	return m.frames
}

// SpawnTimer is a repeating interval measured in simulated time. It only
// fires while running and while the phase it serves is active. Time keeps
// accumulating in other phases; intervals that elapse there are skipped.
type SpawnTimer struct {
	interval time.Duration
	phase    Phase
	elapsed  time.Duration
	running  bool
}

// NewSpawnTimer creates a stopped timer serving phase.
func NewSpawnTimer(interval time.Duration, phase Phase) *SpawnTimer {
	return &SpawnTimer{interval: interval, phase: phase}
}

// Start resets the elapsed time and arms the timer.
func (t *SpawnTimer) Start() {
	t.elapsed = 0
	t.running = true
}

// Stop disarms the timer. Stopping a stopped timer does nothing.
func (t *SpawnTimer) Stop() {
	t.running = false
}

// Running reports whether the timer is armed.
func (t *SpawnTimer) Running() bool {
	return t.running
}

// Advance adds dt and reports whether the interval elapsed while active is
// the timer's phase. It fires at most once per call; whole intervals beyond
// the first are discarded.
func (t *SpawnTimer) Advance(dt time.Duration, active Phase) bool {
	if !t.running || t.interval <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	return active == t.phase
}
