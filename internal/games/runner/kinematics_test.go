package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/space-runner/internal/config"
)

func TestAdvanceAgentStaysInBounds(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Agent
	rng := rand.New(rand.NewSource(1))

	var a Agent
	for i := 0; i < 5000; i++ {
		AdvanceAgent(&a, rng.Intn(5)-2, cfg)
		if math.Abs(a.X) > cfg.MaxX || math.Abs(a.TargetX) > cfg.MaxX {
			t.Fatalf("tick %d: x = %v target = %v, expected within %v", i, a.X, a.TargetX, cfg.MaxX)
		}
	}
}

func TestAdvanceAgentSaturates(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Agent

	var a Agent
	for i := 0; i < 500; i++ {
		AdvanceAgent(&a, 1, cfg)
	}
	if a.TargetX != cfg.MaxX {
		t.Errorf("TargetX = %v, expected %v", a.TargetX, cfg.MaxX)
	}
	if math.Abs(a.X-cfg.MaxX) > 1e-6 {
		t.Errorf("X = %v, expected to settle at %v", a.X, cfg.MaxX)
	}
}

func TestAdvanceAgentStep(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Agent

	tests := []struct {
		name        string
		dir         int
		wantTarget  float64
		wantX       float64
		wantTilt    float64
	}{
		{"idle", 0, 0, 0, 0},
		{"right", 1, 0.3, 0.045, -0.09},
		{"left", -1, -0.3, -0.045, 0.09},
		{"clamped dir", 7, 0.3, 0.045, -0.09},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Agent
			AdvanceAgent(&a, tt.dir, cfg)
			if math.Abs(a.TargetX-tt.wantTarget) > 1e-9 {
				t.Errorf("TargetX = %v, expected %v", a.TargetX, tt.wantTarget)
			}
			if math.Abs(a.X-tt.wantX) > 1e-9 {
				t.Errorf("X = %v, expected %v", a.X, tt.wantX)
			}
			if math.Abs(a.Tilt-tt.wantTilt) > 1e-9 {
				t.Errorf("Tilt = %v, expected %v", a.Tilt, tt.wantTilt)
			}
		})
	}
}

func TestAdvanceObstaclesUsesVelocityAndSpin(t *testing.T) {
	obs := []Obstacle{{
		Position: mgl64.Vec3{1, 2, -30},
		Velocity: mgl64.Vec3{0.1, 0, 0.4},
		Spin:     mgl64.Vec3{0.01, 0.02, 0.03},
	}}
	AdvanceObstacles(obs)
	AdvanceObstacles(obs)

	if !obs[0].Position.ApproxEqual(mgl64.Vec3{1.2, 2, -29.2}) {
		t.Errorf("Position = %v, expected (1.2, 2, -29.2)", obs[0].Position)
	}
	if !obs[0].Rotation.ApproxEqual(mgl64.Vec3{0.02, 0.04, 0.06}) {
		t.Errorf("Rotation = %v, expected (0.02, 0.04, 0.06)", obs[0].Rotation)
	}
}

func TestAdvanceCollectiblesAndGates(t *testing.T) {
	cs := []Collectible{{Position: mgl64.Vec3{0, 0, -10}, Spin: mgl64.Vec3{0.01, 0.02, 0}}}
	AdvanceCollectibles(cs, 0.4)
	if math.Abs(cs[0].Position.Z()+9.6) > 1e-9 {
		t.Errorf("collectible z = %v, expected -9.6", cs[0].Position.Z())
	}
	if !cs[0].Rotation.ApproxEqual(mgl64.Vec3{0.01, 0.02, 0}) {
		t.Errorf("collectible rotation = %v", cs[0].Rotation)
	}

	gs := []Gate{{Position: mgl64.Vec3{4, 0, -40}, Rings: []Ring{{Offset: 0, Twist: 0}, {Offset: -2, Twist: 0.2}}}}
	AdvanceGates(gs, 0.4, 0.05)
	if math.Abs(gs[0].Position.Z()+39.6) > 1e-9 {
		t.Errorf("gate z = %v, expected -39.6", gs[0].Position.Z())
	}
	if math.Abs(gs[0].Rings[1].Twist-0.25) > 1e-9 {
		t.Errorf("ring twist = %v, expected 0.25", gs[0].Rings[1].Twist)
	}
	if gs[0].Rings[1].Offset != -2 {
		t.Errorf("ring offset changed to %v", gs[0].Rings[1].Offset)
	}
}
