package model

import (
	"fmt"
	"strings"
)

// Difficulty names an AI starting preset
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty accepts a preset name case-insensitively
func ParseDifficulty(name string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(name))); d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
}

// ValidDifficulties returns all preset names
func ValidDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Bot strategy constants
const (
	BotStrategyAdaptive = "adaptive"
	BotStrategyRandom   = "random"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyAdaptive:
		return "Adaptive"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyAdaptive, BotStrategyRandom}
}
