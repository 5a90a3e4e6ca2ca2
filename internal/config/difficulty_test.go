package config

import "testing"

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(0.4, 5000, 100000); got != 0.4 {
		t.Errorf("Speed() = %v, expected base 0.4", got)
	}
	if got := d.ExtraObstacles(5000, 100000); got != 0 {
		t.Errorf("ExtraObstacles() = %d, expected 0", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, ExtraObstacles: 4},
	})

	tests := []struct {
		ticks     int
		level     float64
		speed     float64
		obstacles int
	}{
		{0, 0, 0.4, 0},
		{500, 0.5, 0.6, 2},
		{1000, 1, 0.8, 4},
		{5000, 1, 0.8, 4}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(0, tc.ticks); got != tc.level {
			t.Errorf("Level(ticks=%d) = %v, expected %v", tc.ticks, got, tc.level)
		}
		if got := d.Speed(0.4, 0, tc.ticks); got < tc.speed-1e-9 || got > tc.speed+1e-9 {
			t.Errorf("Speed(ticks=%d) = %v, expected %v", tc.ticks, got, tc.speed)
		}
		if got := d.ExtraObstacles(0, tc.ticks); got != tc.obstacles {
			t.Errorf("ExtraObstacles(ticks=%d) = %d, expected %d", tc.ticks, got, tc.obstacles)
		}
	}
}

func TestDifficultyScoreProgressionFromInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0) = %v, expected 0.5", got)
	}
	if got := d.Level(50, 0); got != 0.75 {
		t.Errorf("Level(50) = %v, expected 0.75", got)
	}
}
