// internal/config/load.go
package config

import (
	"errors"
	"fmt"
	"os"

	"go-td-sim/internal/defs"
	"go-td-sim/pkg/gridmap"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRules is returned by Validate for out-of-range balance values.
var ErrInvalidRules = errors.New("invalid rules")

// Load reads a YAML balance file. Keys present in the file override the
// defaults; lists (enemies, towers, waves, paths) replace the default list
// as a whole.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the rules and builds the libraries once to surface table
// errors early.
func (c *Config) Validate() error {
	if err := c.Rules.validate(); err != nil {
		return err
	}
	if _, err := c.Library(); err != nil {
		return fmt.Errorf("invalid archetype tables: %w", err)
	}
	if _, err := c.PathLibrary(); err != nil {
		return fmt.Errorf("invalid paths: %w", err)
	}
	return nil
}

// Library builds the archetype library.
func (c *Config) Library() (*defs.Library, error) {
	return defs.NewLibrary(c.Enemies, c.Towers, c.Waves)
}

// PathLibrary builds the immutable path set.
func (c *Config) PathLibrary() (*gridmap.Library, error) {
	paths := make([]*gridmap.Path, 0, len(c.Paths))
	for _, pd := range c.Paths {
		p, err := gridmap.NewPath(c.Grid, pd.Name, pd.Entry, pd.Waypoints)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return gridmap.NewLibrary(c.Grid, paths...)
}

func (r Rules) validate() error {
	switch {
	case r.StartingLives <= 0:
		return fmt.Errorf("starting_lives must be positive, got %d: %w", r.StartingLives, ErrInvalidRules)
	case r.StartingMoney < 0:
		return fmt.Errorf("starting_money cannot be negative, got %d: %w", r.StartingMoney, ErrInvalidRules)
	case r.SpawnInterval < 0 || r.WaveInterval < 0:
		return fmt.Errorf("intervals cannot be negative: %w", ErrInvalidRules)
	case r.BossChance < 0 || r.BossChance > 1:
		return fmt.Errorf("boss_chance must be within [0,1], got %v: %w", r.BossChance, ErrInvalidRules)
	case r.CritChance < 0 || r.CritChance > 1:
		return fmt.Errorf("crit_chance must be within [0,1], got %v: %w", r.CritChance, ErrInvalidRules)
	case r.JitterFraction < 0 || r.JitterFraction >= 1:
		return fmt.Errorf("jitter_fraction must be within [0,1), got %v: %w", r.JitterFraction, ErrInvalidRules)
	case r.EscortCount < 0:
		return fmt.Errorf("escort_count cannot be negative, got %d: %w", r.EscortCount, ErrInvalidRules)
	case r.SupportBuffFactor <= 0:
		return fmt.Errorf("support_buff_factor must be positive, got %v: %w", r.SupportBuffFactor, ErrInvalidRules)
	case r.SupportBuffCap < 0:
		return fmt.Errorf("support_buff_cap cannot be negative, got %v: %w", r.SupportBuffCap, ErrInvalidRules)
	case r.HealthGrowthPerWave < 0 || r.SpeedGrowthPerWave < 0 || r.RewardGrowthPerWave < 0:
		return fmt.Errorf("growth per wave cannot be negative: %w", ErrInvalidRules)
	case r.UpgradeDamage <= 0 || r.UpgradeRange <= 0 || r.UpgradeCooldown <= 0 || r.UpgradeCostScale < 0:
		return fmt.Errorf("upgrade multipliers must be positive: %w", ErrInvalidRules)
	}
	return nil
}
