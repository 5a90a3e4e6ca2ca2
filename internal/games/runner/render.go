package runner

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/space-runner/internal/core"
)

// Camera and fog for the terminal projection.
const (
	cameraY      = 3.0
	cameraZ      = 8.0
	nearPlane    = 0.5
	fogDistance  = 50.0
	gateRadius   = 2.5
	ringSegments = 16
	visibleRings = 6
	cellAspect   = 2.0 // Terminal cells are about twice as tall as wide
	horizonLift  = 0.2 // Fraction of the focal length the horizon sits above center
)

// Glyphs
const (
	shipChar      = 'A'
	shipWingLeft  = '<'
	shipWingRight = '>'
	rockNear      = '@'
	rockMid       = 'O'
	rockFar       = 'o'
	ringChar      = 'o'
	sparkChar     = '*'
	sparkFadeChar = '.'
	starChar      = '.'
	starNearChar  = '+'
)

var shapeGlyphs = [shapeCount]rune{
	ShapeTriangle:  '▲',
	ShapeRectangle: '■',
	ShapeDiamond:   '◆',
}

var shapeColors = [shapeCount]core.Color{
	ShapeTriangle:  core.ColorYellow,
	ShapeRectangle: core.ColorCyan,
	ShapeDiamond:   core.ColorMagenta,
}

var gateColors = [gateColorCount]core.Color{
	GateRed:   core.ColorRed,
	GateGreen: core.ColorGreen,
	GateBlue:  core.ColorBlue,
}

type sceneNode struct {
	kind Kind
	t    Transform
}

// scene is the terminal Renderer. It keeps the latest transform per handle
// and projects the set onto a screen on demand.
type scene struct {
	nodes map[Handle]*sceneNode
}

func newScene() *scene {
	return &scene{nodes: make(map[Handle]*sceneNode)}
}

func (sc *scene) AddEntity(h Handle, k Kind) {
	sc.nodes[h] = &sceneNode{kind: k}
}

func (sc *scene) RemoveEntity(h Handle) {
	delete(sc.nodes, h)
}

func (sc *scene) SetTransform(h Handle, t Transform) {
	if n, ok := sc.nodes[h]; ok {
		n.t = t
	}
}

// Len returns the number of tracked entities.
func (sc *scene) Len() int {
	return len(sc.nodes)
}

// projector maps world space onto screen cells for a pinhole camera at
// (0, cameraY, cameraZ) looking down -z.
type projector struct {
	cx, cy float64
	focal  float64
}

func newProjector(w, h int) projector {
	return projector{
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
		focal: float64(h) * 0.9,
	}
}

// depth is the distance in front of the camera.
func (p projector) depth(pos mgl64.Vec3) float64 {
	return cameraZ - pos.Z()
}

// visible reports whether a point is between the near plane and the fog.
func (p projector) visible(pos mgl64.Vec3) bool {
	d := p.depth(pos)
	return d > nearPlane && d < fogDistance
}

func (p projector) project(pos mgl64.Vec3) (int, int) {
	d := p.depth(pos)
	sx := p.cx + pos.X()/d*p.focal*cellAspect
	sy := p.cy - (pos.Y()-cameraY)/d*p.focal - p.focal*horizonLift
	return int(math.Round(sx)), int(math.Round(sy))
}

// Draw renders every tracked entity far to near, so nearer entities
// overwrite farther ones. The ship is always drawn last.
func (sc *scene) Draw(dst *core.Screen) {
	proj := newProjector(dst.Width(), dst.Height())

	nodes := make([]*sceneNode, 0, len(sc.nodes))
	var ships []*sceneNode
	for _, n := range sc.nodes {
		if n.kind == KindAgent {
			ships = append(ships, n)
			continue
		}
		nodes = append(nodes, n)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		di, dj := proj.depth(nodes[i].t.Position), proj.depth(nodes[j].t.Position)
		if di != dj {
			return di > dj
		}
		return nodes[i].kind < nodes[j].kind
	})

	for _, n := range nodes {
		switch n.kind {
		case KindStar:
			drawStar(dst, proj, n.t)
		case KindObstacle:
			drawObstacle(dst, proj, n.t)
		case KindCollectible:
			drawCollectible(dst, proj, n.t)
		case KindGate:
			drawGate(dst, proj, n.t)
		case KindParticle:
			drawParticle(dst, proj, n.t)
		}
	}
	for _, n := range ships {
		drawShip(dst, proj, n.t)
	}
}

func drawStar(dst *core.Screen, proj projector, t Transform) {
	if !proj.visible(t.Position) {
		return
	}
	x, y := proj.project(t.Position)
	if proj.depth(t.Position) < 15 {
		dst.SetColored(x, y, starNearChar, core.ColorWhite)
		return
	}
	dst.SetColored(x, y, starChar, core.ColorDim)
}

func drawObstacle(dst *core.Screen, proj projector, t Transform) {
	if !proj.visible(t.Position) {
		return
	}
	x, y := proj.project(t.Position)
	d := proj.depth(t.Position)
	switch {
	case d < 12:
		dst.SetColored(x-1, y, rockNear, core.ColorOrange)
		dst.SetColored(x, y, rockNear, core.ColorOrange)
		dst.SetColored(x+1, y, rockNear, core.ColorOrange)
	case d < 25:
		dst.SetColored(x, y, rockMid, core.ColorOrange)
	default:
		dst.SetColored(x, y, rockFar, core.ColorGray)
	}
}

func drawCollectible(dst *core.Screen, proj projector, t Transform) {
	if !proj.visible(t.Position) || t.Variant < 0 || t.Variant >= int(shapeCount) {
		return
	}
	x, y := proj.project(t.Position)
	dst.SetColored(x, y, shapeGlyphs[t.Variant], shapeColors[t.Variant])
}

func drawGate(dst *core.Screen, proj projector, t Transform) {
	if t.Variant < 0 || t.Variant >= int(gateColorCount) {
		return
	}
	color := gateColors[t.Variant]

	rings := t.Rings
	if len(rings) == 0 {
		rings = []Ring{{}}
	}
	if len(rings) > visibleRings {
		rings = rings[:visibleRings]
	}

	for _, r := range rings {
		center := t.Position.Add(mgl64.Vec3{0, 0, r.Offset})
		if !proj.visible(center) {
			continue
		}
		for k := 0; k < ringSegments; k++ {
			a := r.Twist + float64(k)*2*math.Pi/ringSegments
			p := center.Add(mgl64.Vec3{math.Cos(a) * gateRadius, math.Sin(a) * gateRadius, 0})
			x, y := proj.project(p)
			dst.SetColored(x, y, ringChar, color)
		}
	}
}

func drawParticle(dst *core.Screen, proj projector, t Transform) {
	if !proj.visible(t.Position) {
		return
	}
	x, y := proj.project(t.Position)
	if t.Opacity > 0.5 {
		dst.SetColored(x, y, sparkChar, core.ColorYellow)
		return
	}
	dst.SetColored(x, y, sparkFadeChar, core.ColorYellow)
}

func drawShip(dst *core.Screen, proj projector, t Transform) {
	if !proj.visible(t.Position) {
		return
	}
	x, y := proj.project(t.Position)

	left, right := shipWingLeft, shipWingRight
	switch tilt := t.Rotation.Z(); {
	case tilt < -0.1:
		left, right = '\\', '\\'
	case tilt > 0.1:
		left, right = '/', '/'
	}
	dst.SetColored(x-1, y, left, core.ColorBrightCyan)
	dst.SetColored(x, y, shipChar, core.ColorBrightCyan)
	dst.SetColored(x+1, y, right, core.ColorBrightCyan)
}
