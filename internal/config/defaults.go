package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in tuning. It matches
// defaults/runner.yaml and is the fallback when the embed fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Agent: AgentConfig{
			MaxX:       5,
			Step:       0.3,
			MoveSpeed:  0.15,
			TiltFactor: 0.3,
			Height:     0.2,
		},
		World: WorldConfig{
			ForwardSpeed: 0.4,
			CullZ:        10,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval:   2 * time.Second,
			MinCount:        9,
			MaxCount:        12,
			FieldHalfWidth:  6,
			FieldHalfHeight: 3,
			GapRangeX:       3,
			GapRangeY:       1,
			GapHalfWidth:    2.25,
			GapHalfHeight:   2.25,
			BaseZMin:        -40,
			BaseZMax:        -30,
			DepthJitter:     1.5,
			MaxAttempts:     50,
			Drift:           0,
			Spin:            0.02,
			HitRadius:       1.5,
			AvoidPoints:     10,
		},
		Collectibles: CollectibleConfig{
			SpawnInterval:    time.Second,
			SpawnZ:           -40,
			Spacing:          5,
			CurveAmplitude:   3,
			CurveFrequency:   0.1,
			LateralThreshold: 1.5,
			DepthThreshold:   1.5,
			Points:           100,
			SpinX:            0.01,
			SpinY:            0.02,
		},
		Gates: GateConfig{
			SpawnZ:           -40,
			LaneSpacing:      4,
			Rings:            20,
			RingSpacing:      2,
			RingTwist:        0.2,
			RingSpin:         0.05,
			LateralThreshold: 2,
			DepthThreshold:   2,
			Points:           500,
			CullZ:            60,
		},
		Phases: PhaseConfig{
			DurationFrames: 900, // 15s at 60fps
		},
		Particles: ParticleConfig{
			BurstCount: 10,
			BurstSpeed: 0.5,
			Life:       30,
		},
		Stars: StarConfig{
			Count:   500,
			Speed:   0.5,
			SpreadX: 40,
			SpreadY: 30,
			Depth:   200,
			WrapZ:   10,
		},
		Leaderboard: LeaderboardConfig{
			Size: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // 3 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.75,
				ExtraObstacles:  4,
			},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
