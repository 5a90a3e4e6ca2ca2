package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-runner/internal/core"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	steps   []core.InputFrame
	state   core.GameState
	renders int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.steps = append(g.steps, frame)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.renders++
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

// abortingGame also records aborts.
type abortingGame struct {
	fakeGame
	aborts int
}

func (g *abortingGame) Abort() {
	g.aborts++
	g.state.GameOver = true
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 7}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should schedule a tick")
	}
	if len(g.resets) != 1 {
		t.Fatalf("resets = %d, want 1", len(g.resets))
	}
	if g.resets[0].Seed != 7 {
		t.Errorf("seed = %d, want 7", g.resets[0].Seed)
	}
}

func TestModelSeedsWhenUnset(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	m := NewModel(&fakeGame{}, cfg)
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestModelKeysReachNextStep(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m.Init()

	m, _ = update(t, m, runeKey("a"))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionLeft) {
		t.Error("first step should see ActionLeft")
	}

	update(t, m, TickMsg{})
	if len(g.steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.steps))
	}
	if g.steps[1].Has(core.ActionLeft) {
		t.Error("input frame should be cleared after a step")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m.Init()

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should yield tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m.Init()

	// Restart is ignored while the run is live.
	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, TickMsg{})
	if len(g.resets) != 1 {
		t.Fatalf("resets = %d, want 1 while running", len(g.resets))
	}

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, TickMsg{})

	if len(g.resets) != 2 {
		t.Fatalf("resets = %d, want 2 after game over", len(g.resets))
	}
	if m.gameState.GameOver {
		t.Error("state should be refreshed after restart")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d, want 40x12", m.screen.Width(), m.screen.Height())
	}
	if len(g.resets) != 1 {
		t.Errorf("resize should not reset, resets = %d", len(g.resets))
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m.Init()

	if out := m.View(); out == "" {
		t.Fatal("view should not be empty")
	}
	if g.renders != 1 {
		t.Errorf("renders = %d, want 1", g.renders)
	}
}

func TestModelQuitAbortsLiveRun(t *testing.T) {
	tests := []struct {
		name       string
		key        tea.KeyMsg
		gameOver   bool
		wantAborts int
	}{
		{"q mid-run", runeKey("q"), false, 1},
		{"ctrl+c mid-run", tea.KeyMsg{Type: tea.KeyCtrlC}, false, 1},
		{"q after game over", runeKey("q"), true, 0},
		{"steering key", runeKey("a"), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &abortingGame{}
			m := NewModel(g, testConfig())
			m.Init()
			g.state.GameOver = tt.gameOver

			update(t, m, tt.key)

			if g.aborts != tt.wantAborts {
				t.Errorf("aborts = %d, want %d", g.aborts, tt.wantAborts)
			}
		})
	}
}
