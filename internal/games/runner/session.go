package runner

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/space-runner/internal/config"
)

// Transform is what a renderer needs to place one entity.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Opacity  float64
	Variant  int    // Shape for collectibles, color for gates
	Rings    []Ring // Per-ring offset and twist for gates
}

// Renderer mirrors the live entity set.
type Renderer interface {
	AddEntity(h Handle, k Kind)
	RemoveEntity(h Handle)
	SetTransform(h Handle, t Transform)
}

// InputSource reports the held steering direction in {-1, 0, +1}.
type InputSource interface {
	LateralDirection() int
}

// LeaderboardStore persists the top list.
type LeaderboardStore interface {
	LoadLeaderboard() ([]LeaderboardEntry, error)
	SaveLeaderboard([]LeaderboardEntry) error
}

// RunRecorder receives the final stats of every run.
type RunRecorder interface {
	RecordRun(Stats) error
}

// HUD shows run state to the player.
type HUD interface {
	SetScoreText(string)
	SetPhaseText(string)
	ShowGateWarning(bool)
	ShowEndScreen(Stats)
	ShowLeaderboard([]LeaderboardEntry)
}

// Options wires a session to its collaborators. Any nil field gets a no-op.
type Options struct {
	Renderer    Renderer
	Input       InputSource
	HUD         HUD
	Leaderboard LeaderboardStore
	Recorder    RunRecorder
	Logger      *log.Logger
	Clock       func() time.Time
	Seed        int64 // 0 seeds from the clock
}

// Session runs one ship through repeated runs. It is not safe for
// concurrent use; the host calls Tick from a single goroutine.
type Session struct {
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager

	renderer Renderer
	input    InputSource
	hud      HUD
	board    LeaderboardStore
	recorder RunRecorder
	logger   *log.Logger
	clock    func() time.Time

	seed     int64
	rng      *rand.Rand
	ids      handleSeq
	planner  *Planner
	feedback *Feedback

	phases           *PhaseMachine
	obstacleTimer    *SpawnTimer
	collectibleTimer *SpawnTimer

	running    bool
	ticks      int
	gatesArmed bool // A live triple has neither been committed to nor missed

	agent        Agent
	obstacles    []Obstacle
	collectibles []Collectible
	gates        []Gate
	particles    []Particle
	stars        []Star

	stats       Stats
	leaderboard []LeaderboardEntry
}

// NewSession creates a stopped session and loads the leaderboard. Call
// Start to begin a run.
func NewSession(cfg config.RunnerConfig, opts Options) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		renderer:   opts.Renderer,
		input:      opts.Input,
		hud:        opts.HUD,
		board:      opts.Leaderboard,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		clock:      opts.Clock,
		seed:       opts.Seed,
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.input == nil {
		s.input = nopInput{}
	}
	if s.hud == nil {
		s.hud = nopHUD{}
	}
	if s.board == nil {
		s.board = nopLeaderboard{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.seed == 0 {
		s.seed = s.clock().UnixNano()
	}

	s.rng = rand.New(rand.NewSource(s.seed))
	s.planner = NewPlanner(cfg, s.rng, &s.ids)
	s.feedback = NewFeedback(cfg, s.rng, &s.ids)
	s.phases = NewPhaseMachine(cfg.Phases.DurationFrames)
	s.obstacleTimer = NewSpawnTimer(cfg.Obstacles.SpawnInterval, PhaseObstacles)
	s.collectibleTimer = NewSpawnTimer(cfg.Collectibles.SpawnInterval, PhaseCollecting)

	s.agent = Agent{ID: s.ids.Next(), Y: cfg.Agent.Height}
	s.renderer.AddEntity(s.agent.ID, KindAgent)

	s.stars = s.feedback.Starfield()
	for _, st := range s.stars {
		s.renderer.AddEntity(st.ID, KindStar)
	}

	s.leaderboard = s.loadLeaderboard()
	s.sync()
	return s
}

func (s *Session) loadLeaderboard() []LeaderboardEntry {
	list, err := s.board.LoadLeaderboard()
	if err != nil {
		s.logger.Warn("leaderboard unavailable, starting empty", "err", err)
		return nil
	}
	return sanitizeLeaderboard(list, s.cfg.Leaderboard.Size)
}

// Start begins a new run, discarding anything left from the previous one.
func (s *Session) Start() {
	s.clearEntities()

	s.stats = Stats{
		MissionID: s.rng.Intn(9999),
		Diagnosis: DiagnosisNominal,
		StartTime: s.clock(),
		Outcome:   OutcomeRunning,
	}
	s.agent = Agent{ID: s.agent.ID, Y: s.cfg.Agent.Height}
	s.phases.Reset()
	s.obstacleTimer.Start()
	s.collectibleTimer.Start()
	s.ticks = 0
	s.gatesArmed = false
	s.running = true

	s.hud.ShowGateWarning(false)
	s.hud.SetPhaseText(s.phases.Current().Title())
	s.refreshHUD()
	s.sync()

	s.logger.Info("run started", "mission", s.stats.Mission(), "seed", s.seed)
}

func (s *Session) clearEntities() {
	for _, o := range s.obstacles {
		s.renderer.RemoveEntity(o.ID)
	}
	for _, c := range s.collectibles {
		s.renderer.RemoveEntity(c.ID)
	}
	for _, g := range s.gates {
		s.renderer.RemoveEntity(g.ID)
	}
	for _, p := range s.particles {
		s.renderer.RemoveEntity(p.ID)
	}
	s.obstacles = nil
	s.collectibles = nil
	s.gates = nil
	s.particles = nil
}

// Tick advances the simulation by one frame. dt drives the spawn timers;
// movement is per frame. Does nothing unless a run is in progress.
func (s *Session) Tick(dt time.Duration) {
	if !s.running {
		return
	}
	s.ticks++

	AdvanceAgent(&s.agent, s.input.LateralDirection(), s.cfg.Agent)
	s.updatePhase()

	speed := s.difficulty.Speed(s.cfg.World.ForwardSpeed, s.stats.Score, s.ticks)
	s.runSpawnTimers(dt, speed)

	s.updateObstacles()
	if s.running {
		s.updateCollectibles(speed)
	}
	if s.running {
		s.updateGates(speed)
	}
	if s.running {
		s.updateFeedback()
		s.refreshHUD()
	}
	s.sync()
}

func (s *Session) updatePhase() {
	phase, changed := s.phases.Advance()
	if !changed {
		return
	}
	s.hud.SetPhaseText(phase.Title())
	s.logger.Debug("phase changed", "phase", phase, "tick", s.ticks)

	if phase == PhaseGateChoice {
		s.spawnGates()
	}
}

func (s *Session) spawnGates() {
	triple := s.planner.GateTriple()
	for _, g := range triple {
		s.renderer.AddEntity(g.ID, KindGate)
	}
	s.gates = append(s.gates, triple...)
	s.gatesArmed = true
	s.hud.ShowGateWarning(true)
}

func (s *Session) runSpawnTimers(dt time.Duration, speed float64) {
	phase := s.phases.Current()

	if s.obstacleTimer.Advance(dt, phase) {
		extra := s.difficulty.ExtraObstacles(s.stats.Score, s.ticks)
		field := s.planner.ObstacleField(speed, extra)
		for _, o := range field.Obstacles {
			s.renderer.AddEntity(o.ID, KindObstacle)
		}
		s.obstacles = append(s.obstacles, field.Obstacles...)
	}

	if s.collectibleTimer.Advance(dt, phase) {
		var last *Collectible
		if n := len(s.collectibles); n > 0 {
			last = &s.collectibles[n-1]
		}
		batch := s.planner.Collectibles(last)
		for _, c := range batch {
			s.renderer.AddEntity(c.ID, KindCollectible)
		}
		s.collectibles = append(s.collectibles, batch...)
	}
}

func (s *Session) updateObstacles() {
	AdvanceObstacles(s.obstacles)

	kept, report := resolveObstacles(s.agent.Position(), s.obstacles, s.cfg.Obstacles.HitRadius, s.cfg.World.CullZ)
	if report.Hit {
		s.logger.Debug("obstacle hit", "handle", report.HitID)
		s.End(OutcomeCrashed, DiagnosisCrashed)
		return
	}
	s.obstacles = kept
	for _, h := range report.Avoided {
		s.renderer.RemoveEntity(h)
		s.stats.Score += s.cfg.Obstacles.AvoidPoints
		s.stats.ObstaclesAvoided++
	}
}

func (s *Session) updateCollectibles(speed float64) {
	AdvanceCollectibles(s.collectibles, speed)

	kept, report := resolveCollectibles(s.agent.Position(), s.collectibles, s.cfg.Collectibles, s.cfg.World.CullZ)
	s.collectibles = kept
	for _, h := range report.Culled {
		s.renderer.RemoveEntity(h)
	}
	for _, c := range report.Collected {
		s.renderer.RemoveEntity(c.ID)
		s.stats.Score += s.cfg.Collectibles.Points
		s.stats.ShapesCollected[c.Shape]++

		burst := s.feedback.Burst(c.Position)
		for _, p := range burst {
			s.renderer.AddEntity(p.ID, KindParticle)
		}
		s.particles = append(s.particles, burst...)
	}
}

func (s *Session) updateGates(speed float64) {
	AdvanceGates(s.gates, speed, s.cfg.Gates.RingSpin)

	kept, report := resolveGates(s.agent.Position(), s.gates, s.cfg.Gates)
	s.gates = kept
	for _, h := range report.Culled {
		s.renderer.RemoveEntity(h)
	}

	if g := report.Committed; g != nil {
		s.renderer.RemoveEntity(g.ID)
		s.gatesArmed = false
		if g.Correct {
			s.stats.Score += s.cfg.Gates.Points
			s.stats.GatesPassed[g.Color]++
			s.End(OutcomeSuccess, DiagnosisGateSuccess)
		} else {
			s.End(OutcomeFailure, DiagnosisGateFailure)
		}
		return
	}

	if report.AllPassed && s.gatesArmed {
		s.gatesArmed = false
		s.stats.Diagnosis = DiagnosisGateMissed
		s.hud.ShowGateWarning(false)
		s.logger.Info("tunnel phase missed", "mission", s.stats.Mission())
	}
}

func (s *Session) updateFeedback() {
	alive, expired := AgeParticles(s.particles)
	s.particles = alive
	for _, h := range expired {
		s.renderer.RemoveEntity(h)
	}
	s.feedback.AdvanceStars(s.stars)
}

// End stops the run, freezes stats and publishes the result. A diagnosis
// of "" keeps the current one. Ending a stopped session does nothing.
func (s *Session) End(outcome Outcome, diagnosis string) {
	if !s.running {
		return
	}
	s.running = false
	s.obstacleTimer.Stop()
	s.collectibleTimer.Stop()

	now := s.clock()
	s.stats.Outcome = outcome
	if diagnosis != "" {
		s.stats.Diagnosis = diagnosis
	}
	s.stats.RuntimeSeconds = int(now.Sub(s.stats.StartTime) / time.Second)

	entry := LeaderboardEntry{Score: s.stats.Score, Date: FormatDate(now)}
	s.leaderboard = MergeLeaderboard(s.leaderboard, entry, s.cfg.Leaderboard.Size)
	if err := s.board.SaveLeaderboard(s.Leaderboard()); err != nil {
		s.logger.Warn("cannot save leaderboard", "err", err)
	}
	if s.recorder != nil {
		if err := s.recorder.RecordRun(s.stats); err != nil {
			s.logger.Warn("cannot record run", "err", err)
		}
	}

	s.hud.ShowGateWarning(false)
	s.refreshHUD()
	s.hud.ShowEndScreen(s.stats)
	s.hud.ShowLeaderboard(s.Leaderboard())

	s.logger.Info("run ended",
		"mission", s.stats.Mission(),
		"outcome", outcome,
		"score", s.stats.Score,
		"runtime", s.stats.Runtime(),
	)
}

func (s *Session) refreshHUD() {
	s.hud.SetScoreText(fmt.Sprintf("Score: %d", s.stats.Score))
}

// sync pushes every live transform to the renderer.
func (s *Session) sync() {
	s.renderer.SetTransform(s.agent.ID, transformOf(s.agent))
	for _, o := range s.obstacles {
		s.renderer.SetTransform(o.ID, transformOf(o))
	}
	for _, c := range s.collectibles {
		s.renderer.SetTransform(c.ID, transformOf(c))
	}
	for _, g := range s.gates {
		s.renderer.SetTransform(g.ID, transformOf(g))
	}
	for _, p := range s.particles {
		s.renderer.SetTransform(p.ID, transformOf(p))
	}
	for _, st := range s.stars {
		s.renderer.SetTransform(st.ID, transformOf(st))
	}
}

func transformOf(e Entity) Transform {
	switch e := e.(type) {
	case Agent:
		return Transform{Position: e.Position(), Rotation: mgl64.Vec3{0, 0, e.Tilt}, Opacity: 1}
	case Obstacle:
		return Transform{Position: e.Position, Rotation: e.Rotation, Opacity: 1}
	case Collectible:
		return Transform{Position: e.Position, Rotation: e.Rotation, Opacity: 1, Variant: int(e.Shape)}
	case Gate:
		return Transform{Position: e.Position, Opacity: 1, Variant: int(e.Color), Rings: slices.Clone(e.Rings)}
	case Particle:
		return Transform{Position: e.Position, Opacity: e.Opacity()}
	case Star:
		return Transform{Position: e.Position, Opacity: 1}
	default:
		panic(fmt.Sprintf("runner: unknown entity %T", e))
	}
}

// Running reports whether a run is in progress.
func (s *Session) Running() bool { return s.running }

// Seed returns the seed the session's randomness was drawn from.
func (s *Session) Seed() int64 { return s.seed }

// Ticks returns the number of frames simulated in the current run.
func (s *Session) Ticks() int { return s.ticks }

// Stats returns a copy of the current run's stats.
func (s *Session) Stats() Stats { return s.stats }

// Phase returns the active phase.
func (s *Session) Phase() Phase { return s.phases.Current() }

// Agent returns a copy of the ship.
func (s *Session) Agent() Agent { return s.agent }

// Obstacles returns a copy of the live obstacles.
func (s *Session) Obstacles() []Obstacle { return slices.Clone(s.obstacles) }

// Collectibles returns a copy of the live collectibles.
func (s *Session) Collectibles() []Collectible { return slices.Clone(s.collectibles) }

// Gates returns a copy of the live gates.
func (s *Session) Gates() []Gate { return slices.Clone(s.gates) }

// Particles returns a copy of the live particles.
func (s *Session) Particles() []Particle { return slices.Clone(s.particles) }

// Stars returns a copy of the starfield.
func (s *Session) Stars() []Star { return slices.Clone(s.stars) }

// Leaderboard returns a copy of the top list.
func (s *Session) Leaderboard() []LeaderboardEntry { return slices.Clone(s.leaderboard) }

type nopRenderer struct{}

func (nopRenderer) AddEntity(Handle, Kind)         {}
func (nopRenderer) RemoveEntity(Handle)            {}
func (nopRenderer) SetTransform(Handle, Transform) {}

type nopInput struct{}

func (nopInput) LateralDirection() int { return 0 }

type nopHUD struct{}

func (nopHUD) SetScoreText(string)                {}
func (nopHUD) SetPhaseText(string)                {}
func (nopHUD) ShowGateWarning(bool)               {}
func (nopHUD) ShowEndScreen(Stats)                {}
func (nopHUD) ShowLeaderboard([]LeaderboardEntry) {}

type nopLeaderboard struct{}

func (nopLeaderboard) LoadLeaderboard() ([]LeaderboardEntry, error) { return nil, nil }
func (nopLeaderboard) SaveLeaderboard([]LeaderboardEntry) error     { return nil }
