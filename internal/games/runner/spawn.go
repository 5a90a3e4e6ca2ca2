package runner

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/space-runner/internal/config"
	"github.com/vovakirdan/space-runner/internal/core"
)

// Field is one obstacle burst together with the corridor it keeps clear.
type Field struct {
	Gap       core.Box
	Obstacles []Obstacle
}

// Planner places new entities. All randomness comes from the injected
// source so a seed fully determines a run's layout.
type Planner struct {
	cfg config.RunnerConfig
	rng *rand.Rand
	ids *handleSeq
}

// NewPlanner creates a planner drawing from rng and issuing handles from ids.
func NewPlanner(cfg config.RunnerConfig, rng *rand.Rand, ids *handleSeq) *Planner {
	return &Planner{cfg: cfg, rng: rng, ids: ids}
}

// ObstacleField places a burst of obstacles around a random gap. speed is
// the forward velocity given to every obstacle and extra adds to the count.
// Samples inside the gap are retried; an obstacle that runs out of attempts
// is dropped from the burst.
func (p *Planner) ObstacleField(speed float64, extra int) Field {
	oc := p.cfg.Obstacles

	gap := core.NewBox(
		p.uniform(-oc.GapRangeX, oc.GapRangeX),
		p.uniform(-oc.GapRangeY, oc.GapRangeY),
		oc.GapHalfWidth,
		oc.GapHalfHeight,
	)

	count := oc.MinCount + p.rng.Intn(oc.MaxCount-oc.MinCount+1) + extra
	baseZ := p.uniform(oc.BaseZMin, oc.BaseZMax)

	field := Field{Gap: gap, Obstacles: make([]Obstacle, 0, count)}
	for i := 0; i < count; i++ {
		x, y, ok := p.sampleOutside(gap)
		if !ok {
			continue
		}
		z := baseZ + p.uniform(-oc.DepthJitter, oc.DepthJitter)

		field.Obstacles = append(field.Obstacles, Obstacle{
			ID:       p.ids.Next(),
			Position: mgl64.Vec3{x, y, z},
			Velocity: mgl64.Vec3{
				p.uniform(-oc.Drift/2, oc.Drift/2),
				p.uniform(-oc.Drift/2, oc.Drift/2),
				speed,
			},
			Spin: mgl64.Vec3{
				p.uniform(-oc.Spin, oc.Spin),
				p.uniform(-oc.Spin, oc.Spin),
				p.uniform(-oc.Spin, oc.Spin),
			},
		})
	}
	return field
}

func (p *Planner) sampleOutside(gap core.Box) (float64, float64, bool) {
	oc := p.cfg.Obstacles
	for attempt := 0; attempt < oc.MaxAttempts; attempt++ {
		x := p.uniform(-oc.FieldHalfWidth, oc.FieldHalfWidth)
		y := p.uniform(-oc.FieldHalfHeight, oc.FieldHalfHeight)
		if !gap.ContainsStrict(x, y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// Collectibles places the next shape on the sine path. When last is
// non-nil the new shape chains behind it, otherwise it starts at the spawn
// depth.
func (p *Planner) Collectibles(last *Collectible) []Collectible {
	cc := p.cfg.Collectibles

	// Chain behind the last shape unless that would put the new one level
	// with or behind the ship.
	z := cc.SpawnZ
	if last != nil {
		if chained := last.Position.Z() - cc.Spacing; chained < 0 {
			z = chained
		}
	}
	x := math.Sin(z*cc.CurveFrequency) * cc.CurveAmplitude

	return []Collectible{{
		ID:       p.ids.Next(),
		Position: mgl64.Vec3{x, 0, z},
		Shape:    Shapes[p.rng.Intn(len(Shapes))],
		Spin:     mgl64.Vec3{cc.SpinX, cc.SpinY, 0},
	}}
}

// GateTriple places one gate per lane, left to right, with exactly one
// correct gate picked uniformly.
func (p *Planner) GateTriple() []Gate {
	gc := p.cfg.Gates
	correct := p.rng.Intn(len(GateColors))

	gates := make([]Gate, 0, len(GateColors))
	for i, color := range GateColors {
		rings := make([]Ring, gc.Rings)
		for j := range rings {
			rings[j] = Ring{
				Offset: -float64(j) * gc.RingSpacing,
				Twist:  float64(j) * gc.RingTwist,
			}
		}
		gates = append(gates, Gate{
			ID:       p.ids.Next(),
			Position: mgl64.Vec3{float64(i-1) * gc.LaneSpacing, 0, gc.SpawnZ},
			Color:    color,
			Correct:  i == correct,
			Rings:    rings,
		})
	}
	return gates
}

// uniform returns a value in [lo, hi).
func (p *Planner) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
