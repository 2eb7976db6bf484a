package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elijahg12/checkers-studio/internal/engine"
)

// Difficulty overrides one tier. Zero fields fall through to the engine's
// built-in policy for that tier.
type Difficulty struct {
	MaxDepth         int     `yaml:"max_depth"`
	TimeBudgetMS     int     `yaml:"time_budget_ms"`
	RandomMoveChance float64 `yaml:"random_move_chance"`
	NoiseTolerance   int     `yaml:"noise_tolerance"`
}

type Config struct {
	LogLevel     string                `yaml:"log_level"`
	Difficulties map[string]Difficulty `yaml:"difficulties"`
}

func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads a YAML config file. A missing path is not an error: the
// defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Policy resolves a tier name to an engine policy, applying any file
// overrides on top of the built-in tier.
func (c *Config) Policy(tier string) (engine.Difficulty, error) {
	policy, ok := engine.ByName(tier)
	if !ok {
		return engine.Difficulty{}, fmt.Errorf("unknown difficulty tier %q", tier)
	}
	if c == nil {
		return policy, nil
	}
	override, ok := c.Difficulties[tier]
	if !ok {
		return policy, nil
	}
	if override.MaxDepth > 0 {
		policy.MaxDepth = override.MaxDepth
	}
	if override.TimeBudgetMS > 0 {
		policy.TimeBudget = time.Duration(override.TimeBudgetMS) * time.Millisecond
	}
	if override.RandomMoveChance > 0 {
		policy.RandomMoveChance = override.RandomMoveChance
	}
	if override.NoiseTolerance > 0 {
		policy.NoiseTolerance = override.NoiseTolerance
	}
	return policy, nil
}
