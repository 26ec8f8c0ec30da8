package bot

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/analyzer"
	"github.com/mcoot/hiddenwords-go/internal/services/difficulty"
	"github.com/mcoot/hiddenwords-go/internal/services/frequency"
)

// WordCandidate is a fully determined word the AI could guess
type WordCandidate struct {
	Word       string
	Confidence float64
}

// AdaptiveOpponent is the AI state for one match. It is owned by the
// orchestrator driving that match and must not be shared.
type AdaptiveOpponent struct {
	cfg        config.AIConfig
	difficulty *difficulty.Controller
	memory     *Memory
	words      WordMatcher
	random     random.Random
	logger     zerolog.Logger
}

// NewAdaptiveOpponent creates an opponent starting at preset.
// words may be nil, which disables whole-word guesses.
func NewAdaptiveOpponent(cfg config.AIConfig, preset config.PresetConfig, words WordMatcher, rnd random.Random, logger zerolog.Logger) *AdaptiveOpponent {
	return &AdaptiveOpponent{
		cfg:        cfg,
		difficulty: difficulty.NewController(cfg.Skill, preset, logger),
		memory:     NewMemory(cfg.Memory),
		words:      words,
		random:     rnd,
		logger:     logger.With().Str("component", "adaptive-opponent").Logger(),
	}
}

var _ Strategy = (*AdaptiveOpponent)(nil)

// Name returns the strategy identifier
func (a *AdaptiveOpponent) Name() string {
	return model.BotStrategyAdaptive
}

// Skill returns the current skill level
func (a *AdaptiveOpponent) Skill() float64 {
	return a.difficulty.Skill()
}

// Difficulty returns a snapshot of the difficulty controller
func (a *AdaptiveOpponent) Difficulty() difficulty.State {
	return a.difficulty.Snapshot()
}

// Memory exposes the guess log for inspection
func (a *AdaptiveOpponent) Memory() *Memory {
	return a.memory
}

// DecideGuess picks one guess. A confident whole-word guess preempts the
// weighted choice between a letter and a coordinate.
func (a *AdaptiveOpponent) DecideGuess(view *model.BoardView) (model.Guess, error) {
	skill := a.difficulty.Skill()

	if cand, ok := a.bestWordCandidate(view); ok && cand.Confidence >= WordGuessThreshold(skill, a.cfg.Strategy.WordGuessRiskFactor) {
		a.logger.Debug().Str("word", cand.Word).Float64("confidence", cand.Confidence).Msg("guessing word")
		return model.WordGuess(cand.Word), nil
	}

	fill := FillRatio(view)
	weights := StrategyWeightsForDensity(fill, a.cfg.Strategy.HighDensityThreshold, a.cfg.Strategy.LowDensityThreshold)

	letters := slices.Collect(frequency.UnguessedByFrequency(view.SpentLetters()))
	cells := view.HiddenPositions()
	if len(letters) == 0 && len(cells) == 0 {
		return model.Guess{}, model.ErrNoGuessAvailable
	}

	pool := LetterSelectionPoolSize(skill)
	useLetter := a.random.Float64() < weights.Letter
	if len(cells) == 0 || (useLetter && len(letters) > 0) {
		return model.LetterGuess(pickFromTop(letters, pool, a.random)), nil
	}

	hits := a.memory.Recall(view.HitPositions(), ForgetChance(skill, a.cfg.Memory.MaxForgetChance), a.random)
	ranked := analyzer.RankCoordinates(cells, hits, view.Size, fill)
	return model.CoordinateGuess(pickFromTop(ranked, pool, a.random).Position), nil
}

// WordCandidates returns every fully determined unfound word with its
// confidence, highest first
func (a *AdaptiveOpponent) WordCandidates(view *model.BoardView) []WordCandidate {
	if a.words == nil {
		return nil
	}

	excluded := view.SpentLetters()

	var out []WordCandidate
	for _, w := range view.UnfoundWords() {
		if w.Length == 0 {
			continue
		}
		matches := a.words.MatchPattern(w.Pattern, excluded, view.GuessedWords)
		if len(matches) != 1 {
			continue
		}
		out = append(out, WordCandidate{
			Word:       matches[0],
			Confidence: float64(w.KnownCount()) / float64(w.Length),
		})
	}
	slices.SortStableFunc(out, func(x, y WordCandidate) int {
		switch {
		case x.Confidence > y.Confidence:
			return -1
		case x.Confidence < y.Confidence:
			return 1
		default:
			return 0
		}
	})
	return out
}

func (a *AdaptiveOpponent) bestWordCandidate(view *model.BoardView) (WordCandidate, bool) {
	cands := a.WordCandidates(view)
	if len(cands) == 0 {
		return WordCandidate{}, false
	}
	return cands[0], true
}

// ReportOutcome records the AI's own guess in memory
func (a *AdaptiveOpponent) ReportOutcome(guess model.Guess, hit bool) {
	a.memory.Record(guess, hit)
}

// ReportOpponentOutcome feeds the human's guess against the AI's grid into
// the difficulty controller
func (a *AdaptiveOpponent) ReportOpponentOutcome(hit bool) {
	a.difficulty.RecordPlayerGuess(hit)
}

// FillRatio estimates how much of the grid is letters, using the public
// word lengths when available
func FillRatio(view *model.BoardView) float64 {
	if letters := view.TotalWordLetters(); letters > 0 {
		return analyzer.ExactFillRatio(view.Size, letters)
	}
	return analyzer.FillRatio(view.Size, len(view.Words), analyzer.DefaultAverageWordLength)
}
