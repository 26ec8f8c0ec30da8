// Package config holds match and AI tuning parameters. Values are read once
// at startup and passed explicitly; nothing here is a process-wide singleton.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config is the complete application configuration
type Config struct {
	AI      AIConfig      `mapstructure:"ai" yaml:"ai"`
	Match   MatchConfig   `mapstructure:"match" yaml:"match"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// AIConfig tunes the adaptive opponent. Read-only once a match starts.
type AIConfig struct {
	Skill     SkillConfig     `mapstructure:"skill" yaml:"skill"`
	Presets   PresetsConfig   `mapstructure:"presets" yaml:"presets"`
	Memory    MemoryConfig    `mapstructure:"memory" yaml:"memory"`
	Strategy  StrategyConfig  `mapstructure:"strategy" yaml:"strategy"`
	ThinkTime ThinkTimeConfig `mapstructure:"think_time" yaml:"think_time"`
}

// SkillConfig bounds the skill level and the streak thresholds that move it
type SkillConfig struct {
	Min  float64 `mapstructure:"min" yaml:"min"`
	Max  float64 `mapstructure:"max" yaml:"max"`
	Step float64 `mapstructure:"step" yaml:"step"`

	HitsToIncreaseMin   int `mapstructure:"hits_to_increase_min" yaml:"hits_to_increase_min"`
	HitsToIncreaseMax   int `mapstructure:"hits_to_increase_max" yaml:"hits_to_increase_max"`
	MissesToDecreaseMin int `mapstructure:"misses_to_decrease_min" yaml:"misses_to_decrease_min"`
	MissesToDecreaseMax int `mapstructure:"misses_to_decrease_max" yaml:"misses_to_decrease_max"`

	// ConsecutiveAdjustmentsToAdapt is how many same-direction skill changes
	// in a row make the matching threshold grow by ThresholdAdaptStep
	ConsecutiveAdjustmentsToAdapt int `mapstructure:"consecutive_adjustments_to_adapt" yaml:"consecutive_adjustments_to_adapt"`
	ThresholdAdaptStep            int `mapstructure:"threshold_adapt_step" yaml:"threshold_adapt_step"`
}

// PresetConfig is the starting point for one difficulty
type PresetConfig struct {
	InitialSkill     float64 `mapstructure:"initial_skill" yaml:"initial_skill"`
	HitsToIncrease   int     `mapstructure:"hits_to_increase" yaml:"hits_to_increase"`
	MissesToDecrease int     `mapstructure:"misses_to_decrease" yaml:"misses_to_decrease"`
}

// PresetsConfig holds one preset per difficulty
type PresetsConfig struct {
	Easy   PresetConfig `mapstructure:"easy" yaml:"easy"`
	Normal PresetConfig `mapstructure:"normal" yaml:"normal"`
	Hard   PresetConfig `mapstructure:"hard" yaml:"hard"`
}

// MemoryConfig controls simulated imperfect recall
type MemoryConfig struct {
	MaxForgetChance      float64 `mapstructure:"max_forget_chance" yaml:"max_forget_chance"`
	AlwaysRememberRecent int     `mapstructure:"always_remember_recent" yaml:"always_remember_recent"`
	Window               int     `mapstructure:"window" yaml:"window"`
}

// StrategyConfig holds the density cut-offs and word-guess appetite
type StrategyConfig struct {
	HighDensityThreshold float64 `mapstructure:"high_density_threshold" yaml:"high_density_threshold"`
	LowDensityThreshold  float64 `mapstructure:"low_density_threshold" yaml:"low_density_threshold"`
	WordGuessRiskFactor  float64 `mapstructure:"word_guess_risk_factor" yaml:"word_guess_risk_factor"`
}

// ThinkTimeConfig is the presentation delay range around an AI decision
type ThinkTimeConfig struct {
	MinSeconds float64 `mapstructure:"min_seconds" yaml:"min_seconds"`
	MaxSeconds float64 `mapstructure:"max_seconds" yaml:"max_seconds"`
}

// Min returns the lower bound as a duration
func (t ThinkTimeConfig) Min() time.Duration {
	return time.Duration(t.MinSeconds * float64(time.Second))
}

// Max returns the upper bound as a duration
func (t ThinkTimeConfig) Max() time.Duration {
	return time.Duration(t.MaxSeconds * float64(time.Second))
}

// MatchConfig describes the grids both players set up
type MatchConfig struct {
	GridSize          int    `mapstructure:"grid_size" yaml:"grid_size"`
	WordCount         int    `mapstructure:"word_count" yaml:"word_count"`
	MinWordLength     int    `mapstructure:"min_word_length" yaml:"min_word_length"`
	MaxWordLength     int    `mapstructure:"max_word_length" yaml:"max_word_length"`
	MissLimit         int    `mapstructure:"miss_limit" yaml:"miss_limit"`
	MaxTurns          int    `mapstructure:"max_turns" yaml:"max_turns"`
	PlacementAttempts int    `mapstructure:"placement_attempts" yaml:"placement_attempts"`
	DictionaryPath    string `mapstructure:"dictionary_path" yaml:"dictionary_path"`
}

// StorageConfig selects where match summaries are kept
type StorageConfig struct {
	Type            string `mapstructure:"type" yaml:"type"`
	RedisURL        string `mapstructure:"redis_url" yaml:"redis_url"`
	SummaryTTLHours int    `mapstructure:"summary_ttl_hours" yaml:"summary_ttl_hours"`
}

// LogConfig controls log output
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		AI: AIConfig{
			Skill: SkillConfig{
				Min:                           0.10,
				Max:                           0.95,
				Step:                          0.15,
				HitsToIncreaseMin:             2,
				HitsToIncreaseMax:             6,
				MissesToDecreaseMin:           2,
				MissesToDecreaseMax:           6,
				ConsecutiveAdjustmentsToAdapt: 2,
				ThresholdAdaptStep:            1,
			},
			Presets: PresetsConfig{
				Easy:   PresetConfig{InitialSkill: 0.30, HitsToIncrease: 4, MissesToDecrease: 2},
				Normal: PresetConfig{InitialSkill: 0.50, HitsToIncrease: 3, MissesToDecrease: 3},
				Hard:   PresetConfig{InitialSkill: 0.75, HitsToIncrease: 2, MissesToDecrease: 4},
			},
			Memory: MemoryConfig{
				MaxForgetChance:      0.30,
				AlwaysRememberRecent: 3,
				Window:               20,
			},
			Strategy: StrategyConfig{
				HighDensityThreshold: 0.35,
				LowDensityThreshold:  0.12,
				WordGuessRiskFactor:  0.7,
			},
			ThinkTime: ThinkTimeConfig{MinSeconds: 0.8, MaxSeconds: 2.0},
		},
		Match: MatchConfig{
			GridSize:          8,
			WordCount:         4,
			MinWordLength:     3,
			MaxWordLength:     6,
			MissLimit:         12,
			MaxTurns:          400,
			PlacementAttempts: 200,
		},
		Storage: StorageConfig{
			Type:            StorageTypeMemory,
			RedisURL:        "redis://localhost:6379",
			SummaryTTLHours: 24 * 7,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Preset returns the starting values for a difficulty
func (c AIConfig) Preset(d model.Difficulty) (PresetConfig, error) {
	switch d {
	case model.DifficultyEasy:
		return c.Presets.Easy, nil
	case model.DifficultyNormal:
		return c.Presets.Normal, nil
	case model.DifficultyHard:
		return c.Presets.Hard, nil
	default:
		return PresetConfig{}, fmt.Errorf("%w: %q", model.ErrUnknownDifficulty, d)
	}
}

// Validate checks every bound and returns all problems at once
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{model.ErrInvalidConfig}, args...)...))
		}
	}

	sk := c.AI.Skill
	check(sk.Min >= 0 && sk.Max <= 1 && sk.Min <= sk.Max, "skill bounds [%v, %v] must satisfy 0 <= min <= max <= 1", sk.Min, sk.Max)
	check(sk.Step > 0, "skill step must be positive, got %v", sk.Step)
	check(sk.HitsToIncreaseMin >= 1 && sk.HitsToIncreaseMin <= sk.HitsToIncreaseMax, "hits_to_increase bounds [%d, %d] invalid", sk.HitsToIncreaseMin, sk.HitsToIncreaseMax)
	check(sk.MissesToDecreaseMin >= 1 && sk.MissesToDecreaseMin <= sk.MissesToDecreaseMax, "misses_to_decrease bounds [%d, %d] invalid", sk.MissesToDecreaseMin, sk.MissesToDecreaseMax)
	check(sk.ConsecutiveAdjustmentsToAdapt >= 1, "consecutive_adjustments_to_adapt must be at least 1")
	check(sk.ThresholdAdaptStep >= 0, "threshold_adapt_step must not be negative")

	for name, p := range map[string]PresetConfig{
		"easy": c.AI.Presets.Easy, "normal": c.AI.Presets.Normal, "hard": c.AI.Presets.Hard,
	} {
		check(p.InitialSkill >= 0 && p.InitialSkill <= 1, "preset %s initial_skill %v outside [0, 1]", name, p.InitialSkill)
		check(p.HitsToIncrease >= 1, "preset %s hits_to_increase must be at least 1", name)
		check(p.MissesToDecrease >= 1, "preset %s misses_to_decrease must be at least 1", name)
	}

	mem := c.AI.Memory
	check(mem.MaxForgetChance >= 0 && mem.MaxForgetChance <= 1, "max_forget_chance %v outside [0, 1]", mem.MaxForgetChance)
	check(mem.AlwaysRememberRecent >= 0, "always_remember_recent must not be negative")
	check(mem.Window >= 1, "memory window must be at least 1")

	st := c.AI.Strategy
	check(st.LowDensityThreshold > 0 && st.LowDensityThreshold <= st.HighDensityThreshold && st.HighDensityThreshold <= 1,
		"density thresholds low=%v high=%v invalid", st.LowDensityThreshold, st.HighDensityThreshold)
	check(st.WordGuessRiskFactor >= 0 && st.WordGuessRiskFactor <= 1, "word_guess_risk_factor %v outside [0, 1]", st.WordGuessRiskFactor)

	tt := c.AI.ThinkTime
	check(tt.MinSeconds >= 0 && tt.MinSeconds <= tt.MaxSeconds, "think time range [%v, %v] invalid", tt.MinSeconds, tt.MaxSeconds)

	m := c.Match
	check(m.GridSize >= 4 && m.GridSize <= model.MaxGridSize, "grid_size %d outside [4, %d]", m.GridSize, model.MaxGridSize)
	check(m.WordCount >= 1, "word_count must be at least 1")
	check(m.MinWordLength >= 2 && m.MinWordLength <= m.MaxWordLength, "word length range [%d, %d] invalid", m.MinWordLength, m.MaxWordLength)
	check(m.MaxWordLength <= m.GridSize, "max_word_length %d exceeds grid_size %d", m.MaxWordLength, m.GridSize)
	check(m.MissLimit >= 0, "miss_limit must not be negative")
	check(m.MaxTurns >= 1, "max_turns must be at least 1")
	check(m.PlacementAttempts >= 1, "placement_attempts must be at least 1")

	check(c.Storage.Type == StorageTypeMemory || c.Storage.Type == StorageTypeRedis, "storage type %q must be %q or %q", c.Storage.Type, StorageTypeMemory, StorageTypeRedis)

	return errors.Join(errs...)
}
