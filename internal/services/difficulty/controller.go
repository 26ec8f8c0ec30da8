// Package difficulty implements the rubber-band skill controller that keeps
// the AI close to the human's level over a match.
package difficulty

import (
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/mcoot/hiddenwords-go/internal/config"
)

// Direction of a skill adjustment
type Direction int

const (
	None Direction = iota
	Increase
	Decrease
)

func (d Direction) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "none"
	}
}

// Adjustment describes what one recorded guess changed
type Adjustment struct {
	Direction        Direction
	SkillBefore      float64
	SkillAfter       float64
	ThresholdAdapted bool
}

// State is a read-only copy of the controller's internals
type State struct {
	Skill              float64
	HitsToIncrease     int
	MissesToDecrease   int
	ConsecutiveHits    int
	ConsecutiveMisses  int
	SameDirectionCount int
	LastAdjustment     Direction
	Increases          int
	Decreases          int
}

// Controller tracks skill and the streak thresholds that move it.
// It is match-scoped and not safe for concurrent use.
type Controller struct {
	cfg    config.SkillConfig
	logger zerolog.Logger

	skill            float64
	hitsToIncrease   int
	missesToDecrease int

	consecutiveHits    int
	consecutiveMisses  int
	sameDirectionCount int
	lastAdjustment     Direction

	increases int
	decreases int
}

// NewController starts a controller at a preset. Preset values outside the
// configured bounds are clamped.
func NewController(cfg config.SkillConfig, preset config.PresetConfig, logger zerolog.Logger) *Controller {
	c := &Controller{
		cfg:    cfg,
		logger: logger.With().Str("component", "difficulty").Logger(),
	}
	c.skill = c.clampSkill(preset.InitialSkill)
	c.hitsToIncrease = lo.Clamp(preset.HitsToIncrease, cfg.HitsToIncreaseMin, cfg.HitsToIncreaseMax)
	c.missesToDecrease = lo.Clamp(preset.MissesToDecrease, cfg.MissesToDecreaseMin, cfg.MissesToDecreaseMax)
	return c
}

// RecordPlayerGuess feeds one resolved human guess against the AI's grid.
// A hit means the human is doing well, so enough of them in a row raise skill.
func (c *Controller) RecordPlayerGuess(hit bool) Adjustment {
	adj := Adjustment{SkillBefore: c.skill, SkillAfter: c.skill}

	if hit {
		c.consecutiveHits++
		c.consecutiveMisses = 0
		if c.consecutiveHits >= c.hitsToIncrease {
			c.consecutiveHits = 0
			c.skill = c.clampSkill(c.skill + c.cfg.Step)
			c.increases++
			adj.Direction = Increase
			adj.ThresholdAdapted = c.noteAdjustment(Increase)
		}
	} else {
		c.consecutiveMisses++
		c.consecutiveHits = 0
		if c.consecutiveMisses >= c.missesToDecrease {
			c.consecutiveMisses = 0
			c.skill = c.clampSkill(c.skill - c.cfg.Step)
			c.decreases++
			adj.Direction = Decrease
			adj.ThresholdAdapted = c.noteAdjustment(Decrease)
		}
	}

	adj.SkillAfter = c.skill
	if adj.Direction != None {
		c.logger.Debug().
			Stringer("direction", adj.Direction).
			Float64("from", adj.SkillBefore).
			Float64("to", adj.SkillAfter).
			Msg("skill adjusted")
	}
	return adj
}

// noteAdjustment updates the same-direction run and adapts the matching
// threshold once the run is long enough
func (c *Controller) noteAdjustment(dir Direction) bool {
	if c.lastAdjustment == dir {
		c.sameDirectionCount++
	} else {
		c.sameDirectionCount = 1
	}
	c.lastAdjustment = dir

	if c.sameDirectionCount < c.cfg.ConsecutiveAdjustmentsToAdapt {
		return false
	}
	c.sameDirectionCount = 0

	switch dir {
	case Increase:
		c.hitsToIncrease = lo.Clamp(c.hitsToIncrease+c.cfg.ThresholdAdaptStep, c.cfg.HitsToIncreaseMin, c.cfg.HitsToIncreaseMax)
	case Decrease:
		c.missesToDecrease = lo.Clamp(c.missesToDecrease+c.cfg.ThresholdAdaptStep, c.cfg.MissesToDecreaseMin, c.cfg.MissesToDecreaseMax)
	}
	c.logger.Debug().
		Int("hits_to_increase", c.hitsToIncrease).
		Int("misses_to_decrease", c.missesToDecrease).
		Msg("thresholds adapted")
	return true
}

func (c *Controller) clampSkill(v float64) float64 {
	return lo.Clamp(v, c.cfg.Min, c.cfg.Max)
}

// Skill returns the current skill level
func (c *Controller) Skill() float64 {
	return c.skill
}

// HitsToIncrease returns the hit streak currently needed to raise skill
func (c *Controller) HitsToIncrease() int {
	return c.hitsToIncrease
}

// MissesToDecrease returns the miss streak currently needed to lower skill
func (c *Controller) MissesToDecrease() int {
	return c.missesToDecrease
}

// Snapshot returns a copy of the controller state
func (c *Controller) Snapshot() State {
	return State{
		Skill:              c.skill,
		HitsToIncrease:     c.hitsToIncrease,
		MissesToDecrease:   c.missesToDecrease,
		ConsecutiveHits:    c.consecutiveHits,
		ConsecutiveMisses:  c.consecutiveMisses,
		SameDirectionCount: c.sameDirectionCount,
		LastAdjustment:     c.lastAdjustment,
		Increases:          c.increases,
		Decreases:          c.decreases,
	}
}
