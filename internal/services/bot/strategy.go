package bot

import "github.com/mcoot/hiddenwords-go/internal/model"

// Strategy decides guesses against an opponent's grid
type Strategy interface {
	// Name returns the strategy identifier
	Name() string
	// DecideGuess returns exactly one guess for the current view
	DecideGuess(view *model.BoardView) (model.Guess, error)
	// ReportOutcome feeds back the result of this strategy's own guess
	ReportOutcome(guess model.Guess, hit bool)
	// ReportOpponentOutcome feeds back the result of the opponent's guess
	// against this strategy's grid
	ReportOpponentOutcome(hit bool)
}

// WordMatcher finds dictionary words that fit a hangman pattern
type WordMatcher interface {
	MatchPattern(pattern []rune, excluded map[rune]bool, skip map[string]bool) []string
}
