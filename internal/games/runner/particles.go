package runner

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/space-runner/internal/config"
)

// Feedback owns the cosmetic entities: collect bursts and the starfield.
// Neither affects score or outcome.
type Feedback struct {
	particles config.ParticleConfig
	stars     config.StarConfig
	rng       *rand.Rand
	ids       *handleSeq
}

// NewFeedback creates the particle and starfield subsystem.
func NewFeedback(cfg config.RunnerConfig, rng *rand.Rand, ids *handleSeq) *Feedback {
	return &Feedback{
		particles: cfg.Particles,
		stars:     cfg.Stars,
		rng:       rng,
		ids:       ids,
	}
}

// Burst emits a spray of particles at a point.
func (f *Feedback) Burst(at mgl64.Vec3) []Particle {
	pc := f.particles
	burst := make([]Particle, pc.BurstCount)
	for i := range burst {
		burst[i] = Particle{
			ID:       f.ids.Next(),
			Position: at,
			Velocity: mgl64.Vec3{
				f.spread(pc.BurstSpeed),
				f.spread(pc.BurstSpeed),
				f.spread(pc.BurstSpeed),
			},
			Life:    pc.Life,
			MaxLife: pc.Life,
		}
	}
	return burst
}

// AgeParticles moves every particle one tick and drops the ones whose life
// ran out. A particle spawned with Life n is dropped on its n-th call.
// The result reuses the backing array of ps.
func AgeParticles(ps []Particle) (alive []Particle, expired []Handle) {
	alive = ps[:0]
	for _, p := range ps {
		p.Position = p.Position.Add(p.Velocity)
		p.Life--
		if p.Life <= 0 {
			expired = append(expired, p.ID)
			continue
		}
		alive = append(alive, p)
	}
	return alive, expired
}

// Starfield scatters the ambient stars through the whole depth range.
func (f *Feedback) Starfield() []Star {
	sc := f.stars
	stars := make([]Star, sc.Count)
	for i := range stars {
		stars[i] = Star{
			ID: f.ids.Next(),
			Position: mgl64.Vec3{
				f.spread(sc.SpreadX),
				f.spread(sc.SpreadY),
				-f.rng.Float64() * sc.Depth,
			},
		}
	}
	return stars
}

// AdvanceStars scrolls the starfield. A star past the wrap depth goes back
// to the far end with a fresh x and y.
func (f *Feedback) AdvanceStars(stars []Star) {
	sc := f.stars
	for i := range stars {
		s := &stars[i]
		s.Position[2] += sc.Speed
		if s.Position.Z() > sc.WrapZ {
			s.Position = mgl64.Vec3{f.spread(sc.SpreadX), f.spread(sc.SpreadY), -sc.Depth}
		}
	}
}

// spread returns a value in [-width/2, width/2).
func (f *Feedback) spread(width float64) float64 {
	return (f.rng.Float64() - 0.5) * width
}
