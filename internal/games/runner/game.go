package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-runner/internal/config"
	"github.com/vovakirdan/space-runner/internal/core"
)

// GameID is the storage key and CLI name of the game.
const GameID = "runner"

// Game adapts a Session to the arcade platform: it owns a terminal
// renderer, HUD and held-key input, and drives one Tick per Step.
type Game struct {
	cfg      config.RunnerConfig
	board    LeaderboardStore
	recorder RunRecorder
	logger   *log.Logger
	hold     int

	runtime core.RuntimeConfig
	session *Session
	scene   *scene
	hud     *terminalHUD
	input   *heldInput
	paused  bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default tuning.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLeaderboard persists the top list.
func WithLeaderboard(store LeaderboardStore) Option {
	return func(g *Game) { g.board = store }
}

// WithRecorder records every finished run.
func WithRecorder(r RunRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithHoldTicks sets how long a steering key press stays latched.
func WithHoldTicks(n int) Option {
	return func(g *Game) { g.hold = n }
}

// New creates a Space Runner game. The session is built on the first Reset.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:  config.DefaultRunnerConfig(),
		hold: DefaultHoldTicks,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.scene = newScene()
	g.hud = newTerminalHUD()
	g.input = newHeldInput(g.hold)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Runner"
}

// Reset starts a new run. The first call creates the session from the
// runtime seed; later calls keep the session and its leaderboard.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	g.input.Release()
	g.hud.Reset()

	if g.session == nil {
		g.session = NewSession(g.cfg, Options{
			Renderer:    g.scene,
			Input:       g.input,
			HUD:         g.hud,
			Leaderboard: g.board,
			Recorder:    g.recorder,
			Logger:      g.logger,
			Seed:        cfg.Seed,
		})
	}
	g.session.Start()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	g.hud.Tick()
	if !g.session.Running() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.input.Observe(in)
	g.session.Tick(g.runtime.FrameDuration())
	return core.StepResult{State: g.State()}
}

// Abort ends a run in progress as aborted, so quitting mid-mission still
// records the run and its score.
func (g *Game) Abort() {
	if g.session == nil {
		return
	}
	g.paused = false
	g.session.End(OutcomeAborted, DiagnosisAborted)
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.scene.Draw(dst)
	g.hud.Draw(dst, g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Stats().Score,
		GameOver: !g.session.Running(),
		Paused:   g.paused,
	}
}

// Session exposes the running simulation.
func (g *Game) Session() *Session {
	return g.session
}
