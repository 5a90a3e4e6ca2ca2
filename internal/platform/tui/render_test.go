package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-runner/internal/core"
)

func TestRenderScreenLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "score 40")
	s.DrawTextColored(2, 1, "<A>", core.ColorBrightCyan)
	s.SetColored(11, 2, '*', core.ColorOrange)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("newlines = %d, want 2", got)
	}
	for _, want := range []string{"score 40", "<A>", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightCyan; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}
