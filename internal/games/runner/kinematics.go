package runner

import (
	"github.com/vovakirdan/space-runner/internal/config"
	"github.com/vovakirdan/space-runner/internal/core"
)

// AdvanceAgent steers the ship one tick. dir is clamped to {-1, 0, +1};
// the target moves by a fixed step and the ship eases toward it.
func AdvanceAgent(a *Agent, dir int, cfg config.AgentConfig) {
	dir = core.Clamp(dir, -1, 1)

	a.TargetX = core.ClampF(a.TargetX+float64(dir)*cfg.Step, -cfg.MaxX, cfg.MaxX)
	errX := a.TargetX - a.X
	a.X += errX * cfg.MoveSpeed
	a.Tilt = -errX * cfg.TiltFactor
}

// AdvanceObstacles applies each obstacle's own velocity and spin.
func AdvanceObstacles(obstacles []Obstacle) {
	for i := range obstacles {
		o := &obstacles[i]
		o.Position = o.Position.Add(o.Velocity)
		o.Rotation = o.Rotation.Add(o.Spin)
	}
}

// AdvanceCollectibles scrolls shapes toward the ship.
func AdvanceCollectibles(collectibles []Collectible, speed float64) {
	for i := range collectibles {
		c := &collectibles[i]
		c.Position[2] += speed
		c.Rotation = c.Rotation.Add(c.Spin)
	}
}

// AdvanceGates scrolls tunnels toward the ship and twists their rings.
func AdvanceGates(gates []Gate, speed, ringSpin float64) {
	for i := range gates {
		g := &gates[i]
		g.Position[2] += speed
		for j := range g.Rings {
			g.Rings[j].Twist += ringSpin
		}
	}
}
