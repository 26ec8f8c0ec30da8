package bot

import (
	"github.com/samber/lo"

	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/services/analyzer"
)

// StrategyWeights is the probability split between letter and coordinate guesses
type StrategyWeights struct {
	Letter     float64
	Coordinate float64
}

// ForgetChance is the probability that one remembered hit is left out of a
// decision. Lower skill forgets more.
func ForgetChance(skill, maxForgetChance float64) float64 {
	return lo.Clamp((1-skill)*maxForgetChance, 0, 1)
}

// LetterSelectionPoolSize is how many top-ranked candidates the AI picks
// from uniformly. A pool of 1 always plays the best candidate.
func LetterSelectionPoolSize(skill float64) int {
	switch {
	case skill >= 0.9:
		return 1
	case skill >= 0.7:
		return 2
	case skill >= 0.4:
		return 5
	default:
		return 10
	}
}

// StrategyWeightsForDensity favours letters on sparse grids, where blind
// coordinate guesses mostly miss
func StrategyWeightsForDensity(fillRatio, highThreshold, lowThreshold float64) StrategyWeights {
	switch {
	case fillRatio >= highThreshold:
		return StrategyWeights{Letter: 0.4, Coordinate: 0.6}
	case fillRatio >= analyzer.MediumDensityThreshold:
		return StrategyWeights{Letter: 0.5, Coordinate: 0.5}
	case fillRatio >= lowThreshold:
		return StrategyWeights{Letter: 0.65, Coordinate: 0.35}
	default:
		return StrategyWeights{Letter: 0.8, Coordinate: 0.2}
	}
}

// WordGuessThreshold is the confidence a fully determined word needs before
// the AI guesses it outright
func WordGuessThreshold(skill, riskFactor float64) float64 {
	return 1 - skill*riskFactor
}

// pickFromTop returns a uniform pick among the first k items
func pickFromTop[T any](ranked []T, k int, rnd random.Random) T {
	k = lo.Clamp(k, 1, len(ranked))
	return ranked[rnd.Intn(k)]
}
