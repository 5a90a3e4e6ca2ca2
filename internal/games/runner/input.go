package runner

import "github.com/vovakirdan/space-runner/internal/core"

// DefaultHoldTicks is how long one key press keeps steering. Terminals
// report held keys as a press followed by auto-repeat, so a press is
// latched across the gap before the repeats start.
const DefaultHoldTicks = 8

// heldInput turns discrete key presses into a held steering direction.
type heldInput struct {
	hold      int
	dir       int
	remaining int
}

func newHeldInput(hold int) *heldInput {
	if hold < 1 {
		hold = 1
	}
	return &heldInput{hold: hold}
}

// Observe latches the lateral direction of a frame. A frame without
// steering leaves the current latch running down.
func (h *heldInput) Observe(in core.InputFrame) {
	if d := in.Lateral(); d != 0 {
		h.dir = d
		h.remaining = h.hold
	}
}

// LateralDirection returns the latched direction and counts one tick.
func (h *heldInput) LateralDirection() int {
	if h.remaining <= 0 {
		return 0
	}
	h.remaining--
	return h.dir
}

// Release drops any latched direction.
func (h *heldInput) Release() {
	h.dir = 0
	h.remaining = 0
}
