package runner

import (
	"fmt"

	"github.com/vovakirdan/space-runner/internal/core"
)

// Delays after a run ends, in ticks.
const (
	endScreenDelay   = 30  // Before the end screen appears
	statsScreenDelay = 120 // From the end screen to the mission report
	warningBlink     = 20  // Half-period of the gate warning blink
)

type hudScreen int

const (
	hudPlaying hudScreen = iota
	hudEnding
	hudEndScreen
	hudReport
)

// terminalHUD is the HUD drawn over the scene. It only stores what the
// session tells it; Tick drives the cosmetic timers.
type terminalHUD struct {
	score       string
	phase       string
	warning     bool
	ended       bool
	stats       Stats
	leaderboard []LeaderboardEntry
	sinceEnd    int
	frame       int
}

func newTerminalHUD() *terminalHUD {
	return &terminalHUD{}
}

func (h *terminalHUD) SetScoreText(s string)   { h.score = s }
func (h *terminalHUD) SetPhaseText(s string)   { h.phase = s }
func (h *terminalHUD) ShowGateWarning(on bool) { h.warning = on }

func (h *terminalHUD) ShowEndScreen(s Stats) {
	h.ended = true
	h.stats = s
	h.sinceEnd = 0
}

func (h *terminalHUD) ShowLeaderboard(list []LeaderboardEntry) {
	h.leaderboard = list
}

// Reset hides the end screens before a new run.
func (h *terminalHUD) Reset() {
	h.ended = false
	h.sinceEnd = 0
	h.warning = false
}

// Tick advances blink and end screen timers by one frame.
func (h *terminalHUD) Tick() {
	h.frame++
	if h.ended {
		h.sinceEnd++
	}
}

func (h *terminalHUD) screen() hudScreen {
	switch {
	case !h.ended:
		return hudPlaying
	case h.sinceEnd < endScreenDelay:
		return hudEnding
	case h.sinceEnd < endScreenDelay+statsScreenDelay:
		return hudEndScreen
	default:
		return hudReport
	}
}

// Draw paints the HUD on top of the scene.
func (h *terminalHUD) Draw(dst *core.Screen, paused bool) {
	dst.DrawTextColored(1, 0, h.score, core.ColorWhite)
	if h.phase != "" {
		phase := "Phase: " + h.phase
		dst.DrawTextColored(dst.Width()-len([]rune(phase))-1, 0, phase, core.ColorCyan)
	}

	switch h.screen() {
	case hudPlaying:
		if h.warning && (h.frame/warningBlink)%2 == 0 {
			dst.DrawTextCentered(2, "! CHOOSE YOUR TUNNEL !", core.ColorYellow)
		}
		if paused {
			h.drawPanel(dst, core.ColorWhite, "PAUSED", "", "P to resume")
		}
	case hudEndScreen:
		h.drawPanel(dst, core.ColorRed,
			"MISSION OVER",
			"",
			fmt.Sprintf("Score: %d", h.stats.Score),
			h.stats.Diagnosis,
		)
	case hudReport:
		h.drawPanel(dst, core.ColorCyan, h.reportLines()...)
	}
}

func (h *terminalHUD) reportLines() []string {
	s := h.stats
	lines := []string{
		"MISSION REPORT",
		"",
		fmt.Sprintf("Mission %s  Runtime %s", s.Mission(), s.Runtime()),
		fmt.Sprintf("Score %d  Asteroids avoided %d", s.Score, s.ObstaclesAvoided),
		fmt.Sprintf("Shapes  %c %d  %c %d  %c %d",
			shapeGlyphs[ShapeTriangle], s.ShapesCollected[ShapeTriangle],
			shapeGlyphs[ShapeRectangle], s.ShapesCollected[ShapeRectangle],
			shapeGlyphs[ShapeDiamond], s.ShapesCollected[ShapeDiamond],
		),
		fmt.Sprintf("Tunnels  red %d  green %d  blue %d",
			s.GatesPassed[GateRed], s.GatesPassed[GateGreen], s.GatesPassed[GateBlue]),
		s.Diagnosis,
		"",
		"TOP SCORES",
	}
	if len(h.leaderboard) == 0 {
		lines = append(lines, "no scores yet")
	}
	for i, e := range h.leaderboard {
		lines = append(lines, fmt.Sprintf("%2d. %6d  %s", i+1, e.Score, e.Date))
	}
	return append(lines, "", "R new mission  Q quit")
}

// drawPanel draws lines centered in a bordered box in the middle of the
// screen. Lines that do not fit are truncated or dropped from the bottom.
func (h *terminalHUD) drawPanel(dst *core.Screen, border core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	if boxW < 3 || boxH < 3 {
		return
	}

	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, border)

	inner := boxW - 2
	for i, l := range lines {
		if i >= boxH-2 {
			break
		}
		r := []rune(l)
		if len(r) > inner {
			r = r[:inner]
		}
		x := box.X + 1 + (inner-len(r))/2
		dst.DrawTextColored(x, box.Y+1+i, string(r), core.ColorWhite)
	}
}
