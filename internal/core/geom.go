// Package core holds the platform-neutral building blocks shared by the
// simulation and the terminal host: runtime config, input frames, the
// character screen buffer and small geometry helpers. It has no
// terminal or UI dependencies.
package core

// Box is an axis-aligned rectangle described by its center and half
// extents, in world units.
type Box struct {
	CX, CY float64
	HalfW  float64
	HalfH  float64
}

// NewBox creates a box centered on (cx, cy).
func NewBox(cx, cy, halfW, halfH float64) Box {
	return Box{CX: cx, CY: cy, HalfW: halfW, HalfH: halfH}
}

// ContainsStrict reports whether (x, y) lies strictly inside the box on
// both axes. Points on an edge are outside.
func (b Box) ContainsStrict(x, y float64) bool {
	return AbsF(x-b.CX) < b.HalfW && AbsF(y-b.CY) < b.HalfH
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an int to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns |x|.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
