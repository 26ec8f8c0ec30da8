package bot

import (
	"slices"

	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/frequency"
)

// RandomStrategy picks random unspent letters and random hidden cells
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

var _ Strategy = (*RandomStrategy)(nil)

// Name returns the strategy identifier
func (s *RandomStrategy) Name() string {
	return model.BotStrategyRandom
}

// DecideGuess flips a coin between a random letter and a random hidden cell,
// falling back to whichever is still available
func (s *RandomStrategy) DecideGuess(view *model.BoardView) (model.Guess, error) {
	letters := slices.Sorted(frequency.UnguessedByFrequency(view.SpentLetters()))
	cells := view.HiddenPositions()

	wantLetter := s.random.Intn(2) == 0
	switch {
	case len(letters) > 0 && (wantLetter || len(cells) == 0):
		return model.LetterGuess(letters[s.random.Intn(len(letters))]), nil
	case len(cells) > 0:
		return model.CoordinateGuess(cells[s.random.Intn(len(cells))]), nil
	default:
		return model.Guess{}, model.ErrNoGuessAvailable
	}
}

// ReportOutcome is a no-op; random play keeps no state
func (s *RandomStrategy) ReportOutcome(model.Guess, bool) {}

// ReportOpponentOutcome is a no-op; random play keeps no state
func (s *RandomStrategy) ReportOpponentOutcome(bool) {}
