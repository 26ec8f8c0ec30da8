// Package analyzer scores grid coordinates from what the guesser knows.
// Every function is pure; callers pass grid size and the known hit set.
package analyzer

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

// Density thresholds on fill ratio. These drive strategy weighting.
const (
	HighDensityThreshold   = 0.35
	MediumDensityThreshold = 0.20
	LowDensityThreshold    = 0.12

	// DefaultAverageWordLength is used when only the word count is known
	DefaultAverageWordLength = 4.5
)

// Coordinate score weights
const (
	sparseAdjacencyWeight = 3.0
	denseAdjacencyWeight  = 1.0
	hitLineBonus          = 0.5
	centerBiasWeight      = 0.3
)

// Density is a discretized fill ratio
type Density int

const (
	DensityVeryLow Density = iota
	DensityLow
	DensityMedium
	DensityHigh
)

func (d Density) String() string {
	switch d {
	case DensityHigh:
		return "high"
	case DensityMedium:
		return "medium"
	case DensityLow:
		return "low"
	default:
		return "very_low"
	}
}

// HitSet is the set of coordinates known to hold letters
type HitSet map[model.Position]bool

// NewHitSet builds a HitSet from positions
func NewHitSet(positions ...model.Position) HitSet {
	hits := make(HitSet, len(positions))
	for _, p := range positions {
		hits[p] = true
	}
	return hits
}

// FillRatio estimates the fraction of occupied cells from a word count
func FillRatio(gridSize, wordCount int, avgWordLength float64) float64 {
	if gridSize <= 0 || wordCount <= 0 {
		return 0
	}
	return clamp01(float64(wordCount) * avgWordLength / float64(gridSize*gridSize))
}

// ExactFillRatio computes the fraction of occupied cells from a letter count
func ExactFillRatio(gridSize, letterCount int) float64 {
	if gridSize <= 0 || letterCount <= 0 {
		return 0
	}
	return clamp01(float64(letterCount) / float64(gridSize*gridSize))
}

// DensityCategory buckets a fill ratio
func DensityCategory(fillRatio float64) Density {
	switch {
	case fillRatio >= HighDensityThreshold:
		return DensityHigh
	case fillRatio >= MediumDensityThreshold:
		return DensityMedium
	case fillRatio >= LowDensityThreshold:
		return DensityLow
	default:
		return DensityVeryLow
	}
}

var (
	orthogonalSteps = []model.Direction{model.DirUp, model.DirDown, model.DirLeft, model.DirRight}
	allSteps        = []model.Direction{
		model.DirUpLeft, model.DirUp, model.DirUpRight,
		model.DirLeft, model.DirRight,
		model.DirDownLeft, model.DirDown, model.DirDownRight,
	}
)

func inBounds(pos model.Position, gridSize int) bool {
	return pos.Row >= 0 && pos.Row < gridSize && pos.Col >= 0 && pos.Col < gridSize
}

func neighbours(pos model.Position, gridSize int, steps []model.Direction) []model.Position {
	candidates := lo.Map(steps, func(d model.Direction, _ int) model.Position {
		return pos.Add(d, 1)
	})
	return lo.Filter(candidates, func(p model.Position, _ int) bool {
		return inBounds(p, gridSize)
	})
}

// Adjacent4 returns the in-bounds up/down/left/right neighbours of pos
func Adjacent4(pos model.Position, gridSize int) []model.Position {
	return neighbours(pos, gridSize, orthogonalSteps)
}

// Adjacent8 returns all in-bounds neighbours of pos including diagonals
func Adjacent8(pos model.Position, gridSize int) []model.Position {
	return neighbours(pos, gridSize, allSteps)
}

// CountAdjacentHits counts orthogonal neighbours that are known hits
func CountAdjacentHits(pos model.Position, hits HitSet, gridSize int) int {
	return lo.CountBy(Adjacent4(pos, gridSize), func(p model.Position) bool {
		return hits[p]
	})
}

// ExtendsHitLine reports whether pos continues or bridges a run of hits in its
// row or column: two hits on one side, two on the other, or one on each side.
// Diagonal runs are not considered.
func ExtendsHitLine(pos model.Position, hits HitSet, gridSize int) bool {
	if !inBounds(pos, gridSize) {
		return false
	}
	hit := func(d model.Direction, n int) bool {
		p := pos.Add(d, n)
		return inBounds(p, gridSize) && hits[p]
	}
	for _, axis := range [][2]model.Direction{
		{model.DirLeft, model.DirRight},
		{model.DirUp, model.DirDown},
	} {
		back, fwd := axis[0], axis[1]
		if hit(back, 1) && hit(back, 2) {
			return true
		}
		if hit(fwd, 1) && hit(fwd, 2) {
			return true
		}
		if hit(back, 1) && hit(fwd, 1) {
			return true
		}
	}
	return false
}

// CenterBiasScore is 1 at the grid centre falling to 0 at the corners
func CenterBiasScore(pos model.Position, gridSize int) float64 {
	center := float64(gridSize-1) / 2
	maxDistance := math.Hypot(center, center)
	if maxDistance == 0 {
		return 1
	}
	distance := math.Hypot(float64(pos.Row)-center, float64(pos.Col)-center)
	return clamp01(1 - distance/maxDistance)
}

// CalculateCoordinateScore ranks a candidate cell; higher is guessed first.
// Adjacency counts for more on sparse grids.
func CalculateCoordinateScore(pos model.Position, hits HitSet, gridSize int, fillRatio float64) float64 {
	adjacency := float64(CountAdjacentHits(pos, hits, gridSize)) *
		lerp(sparseAdjacencyWeight, denseAdjacencyWeight, fillRatio)

	score := adjacency + CenterBiasScore(pos, gridSize)*centerBiasWeight
	if ExtendsHitLine(pos, hits, gridSize) {
		score += hitLineBonus
	}
	return score
}

// ScoredPosition pairs a candidate with its coordinate score
type ScoredPosition struct {
	Position model.Position
	Score    float64
}

// RankCoordinates scores candidates and sorts them best first.
// Equal scores fall back to row-major order so ranking is deterministic.
func RankCoordinates(candidates []model.Position, hits HitSet, gridSize int, fillRatio float64) []ScoredPosition {
	ranked := lo.Map(candidates, func(p model.Position, _ int) ScoredPosition {
		return ScoredPosition{Position: p, Score: CalculateCoordinateScore(p, hits, gridSize, fillRatio)}
	})
	slices.SortStableFunc(ranked, func(a, b ScoredPosition) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Position.Row, b.Position.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Position.Col, b.Position.Col)
	})
	return ranked
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp01(t)
}

func clamp01(v float64) float64 {
	return lo.Clamp(v, 0, 1)
}
