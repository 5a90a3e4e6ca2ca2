// Package runner implements Space Runner: a ship steering through a
// scrolling 3D corridor that cycles through an asteroid field, a shape
// collecting run and a three-way tunnel choice.
//
// The simulation is frame-stepped and host-driven. Rendering, input, HUD
// and persistence are collaborators behind the interfaces in session.go;
// game.go wires terminal implementations of them for the arcade platform.
package runner

import "github.com/go-gl/mathgl/mgl64"

// Handle identifies an entity to the renderer. Handles are unique within a
// session and never reused.
type Handle uint64

type handleSeq struct {
	last Handle
}

func (s *handleSeq) Next() Handle {
	s.last++
	return s.last
}

// Kind tags an entity class for the renderer.
type Kind int

const (
	KindAgent Kind = iota
	KindObstacle
	KindCollectible
	KindGate
	KindParticle
	KindStar
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAgent:
		return "agent"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindGate:
		return "gate"
	case KindParticle:
		return "particle"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Entity is implemented by every simulated object. The set is closed:
// only the types in this file implement it.
type Entity interface {
	Handle() Handle
	Kind() Kind
	sealed()
}

// Shape is a collectible type.
type Shape int

const (
	ShapeTriangle Shape = iota
	ShapeRectangle
	ShapeDiamond
	shapeCount
)

// Shapes lists every collectible type in display order.
var Shapes = [shapeCount]Shape{ShapeTriangle, ShapeRectangle, ShapeDiamond}

func (s Shape) String() string {
	switch s {
	case ShapeTriangle:
		return "triangle"
	case ShapeRectangle:
		return "rectangle"
	case ShapeDiamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// GateColor labels a tunnel. Lanes are colored left to right in
// declaration order.
type GateColor int

const (
	GateRed GateColor = iota
	GateGreen
	GateBlue
	gateColorCount
)

// GateColors lists every tunnel color in lane order.
var GateColors = [gateColorCount]GateColor{GateRed, GateGreen, GateBlue}

func (c GateColor) String() string {
	switch c {
	case GateRed:
		return "red"
	case GateGreen:
		return "green"
	case GateBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Agent is the ship. It only moves on x; y is fixed and z is always 0.
type Agent struct {
	ID      Handle
	X       float64
	TargetX float64
	Tilt    float64 // Bank angle around z, visual only
	Y       float64
}

// Position returns the ship's world position.
func (a Agent) Position() mgl64.Vec3 {
	return mgl64.Vec3{a.X, a.Y, 0}
}

// Obstacle is an asteroid. It ends the run on contact.
type Obstacle struct {
	ID       Handle
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Rotation mgl64.Vec3
	Spin     mgl64.Vec3 // Per-axis rotation per tick
}

// Collectible is a shape worth points when flown through.
type Collectible struct {
	ID        Handle
	Position  mgl64.Vec3
	Shape     Shape
	Collected bool
	Rotation  mgl64.Vec3
	Spin      mgl64.Vec3
}

// Ring is one visual ring of a tunnel, positioned relative to the gate.
type Ring struct {
	Offset float64 // Local z
	Twist  float64 // Rotation around z
}

// Gate is one tunnel of a triple. Exactly one gate per triple is correct.
type Gate struct {
	ID       Handle
	Position mgl64.Vec3
	Color    GateColor
	Correct  bool
	Passed   bool // The ship has overtaken it without committing
	Rings    []Ring
}

// Particle is short-lived collect feedback.
type Particle struct {
	ID       Handle
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Life     int // Ticks remaining
	MaxLife  int
}

// Opacity fades linearly with remaining life.
func (p Particle) Opacity() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Star is ambient background, never collided with.
type Star struct {
	ID       Handle
	Position mgl64.Vec3
}

func (a Agent) Handle() Handle       { return a.ID }
func (o Obstacle) Handle() Handle    { return o.ID }
func (c Collectible) Handle() Handle { return c.ID }
func (g Gate) Handle() Handle        { return g.ID }
func (p Particle) Handle() Handle    { return p.ID }
func (s Star) Handle() Handle        { return s.ID }

func (Agent) Kind() Kind       { return KindAgent }
func (Obstacle) Kind() Kind    { return KindObstacle }
func (Collectible) Kind() Kind { return KindCollectible }
func (Gate) Kind() Kind        { return KindGate }
func (Particle) Kind() Kind    { return KindParticle }
func (Star) Kind() Kind        { return KindStar }

func (Agent) sealed()       {}
func (Obstacle) sealed()    {}
func (Collectible) sealed() {}
func (Gate) sealed()        {}
func (Particle) sealed()    {}
func (Star) sealed()        {}
