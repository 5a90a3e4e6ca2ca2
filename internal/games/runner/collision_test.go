package runner

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/space-runner/internal/config"
)

func TestResolveObstaclesHitRadius(t *testing.T) {
	ship := mgl64.Vec3{0, 0.2, 0}

	tests := []struct {
		name     string
		distance float64
		wantHit  bool
	}{
		{"direct", 0, true},
		{"close", 1.0, true},
		{"just inside", 1.49, true},
		{"on radius", 1.5, false},
		{"outside", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := []Obstacle{{ID: 1, Position: ship.Add(mgl64.Vec3{0, 0, -tt.distance})}}
			kept, report := resolveObstacles(ship, obs, 1.5, 10)
			if report.Hit != tt.wantHit {
				t.Errorf("Hit = %v, expected %v", report.Hit, tt.wantHit)
			}
			if len(kept) != 1 {
				t.Errorf("kept = %d, expected 1", len(kept))
			}
		})
	}
}

func TestResolveObstaclesCullsBehindShip(t *testing.T) {
	ship := mgl64.Vec3{0, 0.2, 0}
	obs := []Obstacle{
		{ID: 1, Position: mgl64.Vec3{5, 0, 10.1}},
		{ID: 2, Position: mgl64.Vec3{5, 0, 9.9}},
		{ID: 3, Position: mgl64.Vec3{-5, 0, 12}},
	}

	kept, report := resolveObstacles(ship, obs, 1.5, 10)
	if report.Hit {
		t.Fatal("unexpected hit")
	}
	if len(kept) != 1 || kept[0].ID != 2 {
		t.Errorf("kept = %+v, expected only handle 2", kept)
	}
	if len(report.Avoided) != 2 || report.Avoided[0] != 1 || report.Avoided[1] != 3 {
		t.Errorf("Avoided = %v, expected [1 3]", report.Avoided)
	}
}

func TestResolveCollectibles(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Collectibles
	ship := mgl64.Vec3{0, 0.2, 0}

	cs := []Collectible{
		{ID: 1, Shape: ShapeDiamond, Position: mgl64.Vec3{0.5, 0, -0.5}},
		{ID: 2, Shape: ShapeTriangle, Position: mgl64.Vec3{1.5, 0, 0}},
		{ID: 3, Shape: ShapeRectangle, Position: mgl64.Vec3{3, 0, 11}},
		{ID: 4, Shape: ShapeRectangle, Position: mgl64.Vec3{0, 0, -20}},
	}

	kept, report := resolveCollectibles(ship, cs, cfg, 10)

	if len(report.Collected) != 1 || report.Collected[0].ID != 1 || !report.Collected[0].Collected {
		t.Errorf("Collected = %+v, expected handle 1", report.Collected)
	}
	if len(report.Culled) != 1 || report.Culled[0] != 3 {
		t.Errorf("Culled = %v, expected [3]", report.Culled)
	}
	if len(kept) != 2 || kept[0].ID != 2 || kept[1].ID != 4 {
		t.Errorf("kept = %+v, expected handles 2 and 4", kept)
	}
}

func newTestGates(z float64, correct int) []Gate {
	gates := make([]Gate, 3)
	for i := range gates {
		gates[i] = Gate{
			ID:       Handle(i + 1),
			Position: mgl64.Vec3{float64(i-1) * 4, 0, z},
			Color:    GateColors[i],
			Correct:  i == correct,
		}
	}
	return gates
}

func TestResolveGatesCommit(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Gates

	tests := []struct {
		name     string
		shipX    float64
		gateZ    float64
		wantGate Handle
	}{
		{"left lane", -4, -1, 1},
		{"center lane", 0.5, 1.5, 2},
		{"right lane", 3, 0, 3},
		{"between lanes", 2, 0, 0},
		{"too far", 0, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := mgl64.Vec3{tt.shipX, 0.2, 0}
			kept, report := resolveGates(ship, newTestGates(tt.gateZ, 1), cfg)

			if tt.wantGate == 0 {
				if report.Committed != nil {
					t.Errorf("Committed = %+v, expected none", report.Committed)
				}
				return
			}
			if report.Committed == nil || report.Committed.ID != tt.wantGate {
				t.Fatalf("Committed = %+v, expected handle %d", report.Committed, tt.wantGate)
			}
			if len(kept) != 2 {
				t.Errorf("kept = %d, expected 2", len(kept))
			}
			for _, g := range kept {
				if g.ID == tt.wantGate {
					t.Errorf("committed gate %d still kept", g.ID)
				}
			}
		})
	}
}

func TestResolveGatesFirstArrivalWins(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Gates
	gates := []Gate{
		{ID: 1, Position: mgl64.Vec3{-1, 0, 0}},
		{ID: 2, Position: mgl64.Vec3{1, 0, 0}, Correct: true},
	}

	_, report := resolveGates(mgl64.Vec3{0, 0.2, 0}, gates, cfg)
	if report.Committed == nil || report.Committed.ID != 1 {
		t.Errorf("Committed = %+v, expected handle 1", report.Committed)
	}
}

func TestResolveGatesSoftMiss(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Gates
	ship := mgl64.Vec3{10, 0.2, 0}

	kept, report := resolveGates(ship, newTestGates(1, 0), cfg)
	if report.AllPassed {
		t.Error("AllPassed before the gates were overtaken")
	}
	for _, g := range kept {
		if g.Passed {
			t.Errorf("gate %d passed at z=1", g.ID)
		}
	}

	for i := range kept {
		kept[i].Position[2] = 2.5
	}
	kept, report = resolveGates(ship, kept, cfg)
	if !report.AllPassed {
		t.Error("AllPassed = false, expected true")
	}
	if report.Committed != nil {
		t.Errorf("Committed = %+v, expected none", report.Committed)
	}
	if len(kept) != 3 {
		t.Errorf("kept = %d, expected 3", len(kept))
	}
}

func TestResolveGatesPassedGateNeverCommits(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Gates
	gates := []Gate{{ID: 1, Position: mgl64.Vec3{0, 0, 0}, Passed: true}}

	_, report := resolveGates(mgl64.Vec3{0, 0.2, 0}, gates, cfg)
	if report.Committed != nil {
		t.Error("passed gate committed")
	}
}

func TestResolveGatesCull(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Gates
	gates := newTestGates(61, 0)

	kept, report := resolveGates(mgl64.Vec3{0, 0.2, 0}, gates, cfg)
	if len(kept) != 0 {
		t.Errorf("kept = %d, expected 0", len(kept))
	}
	if len(report.Culled) != 3 {
		t.Errorf("Culled = %v, expected 3 handles", report.Culled)
	}
	if report.AllPassed {
		t.Error("AllPassed with no gates left")
	}
}
