package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the implicit locations are skipped silently when broken.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultRunnerYAML); err == nil {
		return cfg, nil
	}
	return DefaultRunnerConfig(), nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config back to YAML.
func (c RunnerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks the values the simulation divides by, loops over or
// samples from.
func (c RunnerConfig) Validate() error {
	var problems []error
	check := func(ok bool, field string) {
		if !ok {
			problems = append(problems, fmt.Errorf("%w: %s", ErrInvalidConfig, field))
		}
	}

	check(c.Agent.MaxX > 0, "agent.max_x must be positive")
	check(c.Agent.Step > 0, "agent.step must be positive")
	check(c.Agent.MoveSpeed > 0 && c.Agent.MoveSpeed <= 1, "agent.move_speed must be in (0, 1]")
	check(c.World.ForwardSpeed > 0, "world.forward_speed must be positive")
	check(c.World.CullZ > 0, "world.cull_z must be positive")
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive")
	check(c.Obstacles.MinCount > 0, "obstacles.min_count must be positive")
	check(c.Obstacles.MaxCount >= c.Obstacles.MinCount, "obstacles.max_count must be >= min_count")
	check(c.Obstacles.BaseZMax >= c.Obstacles.BaseZMin, "obstacles.base_z_max must be >= base_z_min")
	check(c.Obstacles.MaxAttempts > 0, "obstacles.max_attempts must be positive")
	check(c.Obstacles.HitRadius > 0, "obstacles.hit_radius must be positive")
	check(c.Collectibles.SpawnInterval > 0, "collectibles.spawn_interval must be positive")
	check(c.Collectibles.Spacing > 0, "collectibles.spacing must be positive")
	check(c.Collectibles.LateralThreshold > 0 && c.Collectibles.DepthThreshold > 0, "collectibles thresholds must be positive")
	check(c.Gates.Rings >= 0, "gates.rings must not be negative")
	check(c.Gates.LateralThreshold > 0 && c.Gates.DepthThreshold > 0, "gates thresholds must be positive")
	check(c.Gates.CullZ > 0, "gates.cull_z must be positive")
	check(c.Phases.DurationFrames > 0, "phases.duration_frames must be positive")
	check(c.Particles.Life > 0, "particles.life must be positive")
	check(c.Stars.Count >= 0, "stars.count must not be negative")
	check(c.Leaderboard.Size > 0, "leaderboard.size must be positive")

	return errors.Join(problems...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.HitRadius = 1.2
		cfg.Phases.DurationFrames = 1200
	case DifficultyHard:
		cfg.Obstacles.MinCount = 11
		cfg.Obstacles.MaxCount = 14
		cfg.Phases.DurationFrames = 720
	}
}
