package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-runner/internal/core"
)

func TestHUDScreens(t *testing.T) {
	h := newTerminalHUD()
	if h.screen() != hudPlaying {
		t.Fatalf("screen = %v, expected playing", h.screen())
	}

	h.ShowEndScreen(Stats{Score: 10})
	tests := []struct {
		ticks int
		want  hudScreen
	}{
		{0, hudEnding},
		{endScreenDelay - 1, hudEnding},
		{1, hudEndScreen},
		{statsScreenDelay - 1, hudEndScreen},
		{1, hudReport},
	}
	for _, tt := range tests {
		for i := 0; i < tt.ticks; i++ {
			h.Tick()
		}
		if got := h.screen(); got != tt.want {
			t.Errorf("after %d more ticks: screen = %v, expected %v", tt.ticks, got, tt.want)
		}
	}

	h.Reset()
	if h.screen() != hudPlaying {
		t.Errorf("screen after Reset = %v, expected playing", h.screen())
	}
}

func TestHUDGateWarningBlinks(t *testing.T) {
	h := newTerminalHUD()
	h.ShowGateWarning(true)
	screen := core.NewScreen(80, 24)

	shown := 0
	for i := 0; i < 4*warningBlink; i++ {
		screen.Clear()
		h.Draw(screen, false)
		if strings.Contains(screen.Row(2), "CHOOSE YOUR TUNNEL") {
			shown++
		}
		h.Tick()
	}
	if shown != 2*warningBlink {
		t.Errorf("warning shown on %d of %d frames, expected half", shown, 4*warningBlink)
	}

	h.ShowGateWarning(false)
	screen.Clear()
	h.Draw(screen, false)
	if strings.Contains(screen.Row(2), "CHOOSE YOUR TUNNEL") {
		t.Error("warning drawn while hidden")
	}
}

func TestHUDReport(t *testing.T) {
	h := newTerminalHUD()
	stats := Stats{
		Score:            640,
		MissionID:        7,
		ObstaclesAvoided: 4,
		RuntimeSeconds:   83,
		Diagnosis:        DiagnosisGateSuccess,
	}
	stats.ShapesCollected[ShapeDiamond] = 1
	stats.GatesPassed[GateBlue] = 1
	h.ShowEndScreen(stats)
	h.ShowLeaderboard([]LeaderboardEntry{{Score: 640, Date: "1/2/2024, 3:04:05 PM"}})

	lines := strings.Join(h.reportLines(), "\n")
	for _, want := range []string{"#0007", "[01:23]", "◆ 1", "blue 1", DiagnosisGateSuccess, "1/2/2024, 3:04:05 PM"} {
		if !strings.Contains(lines, want) {
			t.Errorf("report missing %q:\n%s", want, lines)
		}
	}
}

func TestHUDPanelClipsToScreen(t *testing.T) {
	h := newTerminalHUD()
	screen := core.NewScreen(20, 5)
	h.drawPanel(screen, core.ColorWhite, "a very long line that does not fit", "b", "c", "d", "e", "f")

	if screen.Get(0, 0) != '┌' || screen.Get(19, 4) != '┘' {
		t.Errorf("panel not clipped to the screen:\n%s", screen.String())
	}
}
