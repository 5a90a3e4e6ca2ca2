package runner

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/space-runner/internal/config"
)

// Each resolver scans a container once, then returns the kept entities
// filtered in place along with what happened. Nothing is appended while
// scanning.

type obstacleReport struct {
	Hit     bool
	HitID   Handle
	Avoided []Handle
}

// resolveObstacles checks the ship against every obstacle. A hit stops the
// scan and leaves the container untouched; otherwise obstacles past cullZ
// are dropped and reported as avoided.
func resolveObstacles(ship mgl64.Vec3, obstacles []Obstacle, hitRadius, cullZ float64) ([]Obstacle, obstacleReport) {
	var report obstacleReport
	for _, o := range obstacles {
		if ship.Sub(o.Position).Len() < hitRadius {
			report.Hit = true
			report.HitID = o.ID
			return obstacles, report
		}
	}

	kept := obstacles[:0]
	for _, o := range obstacles {
		if o.Position.Z() > cullZ {
			report.Avoided = append(report.Avoided, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	return kept, report
}

type collectibleReport struct {
	Collected []Collectible
	Culled    []Handle
}

// resolveCollectibles picks up shapes within both thresholds of the ship
// and drops uncollected shapes past cullZ.
func resolveCollectibles(ship mgl64.Vec3, collectibles []Collectible, cfg config.CollectibleConfig, cullZ float64) ([]Collectible, collectibleReport) {
	var report collectibleReport
	kept := collectibles[:0]
	for _, c := range collectibles {
		dx := math.Abs(ship.X() - c.Position.X())
		dz := math.Abs(ship.Z() - c.Position.Z())
		switch {
		case dx < cfg.LateralThreshold && dz < cfg.DepthThreshold:
			c.Collected = true
			report.Collected = append(report.Collected, c)
		case c.Position.Z() > cullZ:
			report.Culled = append(report.Culled, c.ID)
		default:
			kept = append(kept, c)
		}
	}
	return kept, report
}

type gateReport struct {
	Committed *Gate
	Culled    []Handle
	AllPassed bool // Every remaining gate has been overtaken
}

// resolveGates commits the first gate in container order that the ship is
// inside. A commit removes that gate and skips the rest of the scan. Without
// a commit, gates behind the ship are marked passed and gates past cullZ are
// dropped.
func resolveGates(ship mgl64.Vec3, gates []Gate, cfg config.GateConfig) ([]Gate, gateReport) {
	var report gateReport
	for i, g := range gates {
		if g.Passed {
			continue
		}
		dx := math.Abs(ship.X() - g.Position.X())
		dz := math.Abs(ship.Z() - g.Position.Z())
		if dx < cfg.LateralThreshold && dz < cfg.DepthThreshold {
			committed := g
			report.Committed = &committed
			return append(gates[:i], gates[i+1:]...), report
		}
	}

	kept := gates[:0]
	for _, g := range gates {
		if g.Position.Z()-ship.Z() > cfg.DepthThreshold {
			g.Passed = true
		}
		if g.Position.Z() > cfg.CullZ {
			report.Culled = append(report.Culled, g.ID)
			continue
		}
		kept = append(kept, g)
	}

	report.AllPassed = len(kept) > 0
	for _, g := range kept {
		if !g.Passed {
			report.AllPassed = false
			break
		}
	}
	return kept, report
}
