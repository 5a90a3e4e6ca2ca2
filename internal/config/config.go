// Package config provides YAML-based tuning for the runner: every constant
// the simulation uses lives here, with embedded defaults and difficulty
// presets layered on top.
package config

import "time"

// RunnerConfig contains all tuning for a Space Runner session.
type RunnerConfig struct {
	Agent        AgentConfig       `yaml:"agent"`
	World        WorldConfig       `yaml:"world"`
	Obstacles    ObstacleConfig    `yaml:"obstacles"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Gates        GateConfig        `yaml:"gates"`
	Phases       PhaseConfig       `yaml:"phases"`
	Particles    ParticleConfig    `yaml:"particles"`
	Stars        StarConfig        `yaml:"stars"`
	Leaderboard  LeaderboardConfig `yaml:"leaderboard"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
}

// AgentConfig defines how the ship steers.
type AgentConfig struct {
	MaxX       float64 `yaml:"max_x"`       // Lateral bound, target is clamped to [-MaxX, MaxX]
	Step       float64 `yaml:"step"`        // Target shift per tick of held input
	MoveSpeed  float64 `yaml:"move_speed"`  // Smoothing factor toward target
	TiltFactor float64 `yaml:"tilt_factor"` // Visual bank per unit of error
	Height     float64 `yaml:"height"`      // Fixed ship y
}

// WorldConfig defines corridor scrolling.
type WorldConfig struct {
	ForwardSpeed float64 `yaml:"forward_speed"` // Units per tick along +z
	CullZ        float64 `yaml:"cull_z"`        // Obstacles/collectibles beyond this are removed
}

// ObstacleConfig defines obstacle field bursts.
type ObstacleConfig struct {
	SpawnInterval   time.Duration `yaml:"spawn_interval"`
	MinCount        int           `yaml:"min_count"`
	MaxCount        int           `yaml:"max_count"`
	FieldHalfWidth  float64       `yaml:"field_half_width"`
	FieldHalfHeight float64       `yaml:"field_half_height"`
	GapRangeX       float64       `yaml:"gap_range_x"` // Gap center x in [-GapRangeX, GapRangeX]
	GapRangeY       float64       `yaml:"gap_range_y"`
	GapHalfWidth    float64       `yaml:"gap_half_width"`
	GapHalfHeight   float64       `yaml:"gap_half_height"`
	BaseZMin        float64       `yaml:"base_z_min"`
	BaseZMax        float64       `yaml:"base_z_max"`
	DepthJitter     float64       `yaml:"depth_jitter"` // Per-obstacle z offset in [-DepthJitter, DepthJitter]
	MaxAttempts     int           `yaml:"max_attempts"`
	Drift           float64       `yaml:"drift"` // Lateral velocity spread, 0 keeps obstacles on rails
	Spin            float64       `yaml:"spin"`  // Max per-axis rotation rate
	HitRadius       float64       `yaml:"hit_radius"`
	AvoidPoints     int           `yaml:"avoid_points"`
}

// CollectibleConfig defines the shape path.
type CollectibleConfig struct {
	SpawnInterval    time.Duration `yaml:"spawn_interval"`
	SpawnZ           float64       `yaml:"spawn_z"`
	Spacing          float64       `yaml:"spacing"`
	CurveAmplitude   float64       `yaml:"curve_amplitude"`
	CurveFrequency   float64       `yaml:"curve_frequency"`
	LateralThreshold float64       `yaml:"lateral_threshold"`
	DepthThreshold   float64       `yaml:"depth_threshold"`
	Points           int           `yaml:"points"`
	SpinX            float64       `yaml:"spin_x"`
	SpinY            float64       `yaml:"spin_y"`
}

// GateConfig defines the tunnel triple.
type GateConfig struct {
	SpawnZ           float64 `yaml:"spawn_z"`
	LaneSpacing      float64 `yaml:"lane_spacing"` // Lanes at -LaneSpacing, 0, +LaneSpacing
	Rings            int     `yaml:"rings"`
	RingSpacing      float64 `yaml:"ring_spacing"`
	RingTwist        float64 `yaml:"ring_twist"`
	RingSpin         float64 `yaml:"ring_spin"`
	LateralThreshold float64 `yaml:"lateral_threshold"`
	DepthThreshold   float64 `yaml:"depth_threshold"`
	Points           int     `yaml:"points"`
	CullZ            float64 `yaml:"cull_z"`
}

// PhaseConfig defines the phase cycle.
type PhaseConfig struct {
	DurationFrames int `yaml:"duration_frames"` // Phase advances once the counter exceeds this
}

// ParticleConfig defines collect bursts.
type ParticleConfig struct {
	BurstCount int     `yaml:"burst_count"`
	BurstSpeed float64 `yaml:"burst_speed"` // Per-axis velocity spread
	Life       int     `yaml:"life"`        // Ticks
}

// StarConfig defines the ambient starfield.
type StarConfig struct {
	Count   int     `yaml:"count"`
	Speed   float64 `yaml:"speed"`
	SpreadX float64 `yaml:"spread_x"`
	SpreadY float64 `yaml:"spread_y"`
	Depth   float64 `yaml:"depth"`  // Stars respawn at z = -Depth
	WrapZ   float64 `yaml:"wrap_z"` // Stars past this z wrap around
}

// LeaderboardConfig defines the persisted top list.
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to forward speed factor at max difficulty
	ExtraObstacles  int     `yaml:"extra_obstacles"`  // Added to each obstacle burst at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
