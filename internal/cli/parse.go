package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

// parseGuess reads a typed guess: a cell like "B3", a single letter, or a
// whole word. A "word " prefix forces a word guess.
func parseGuess(text string) (model.Guess, error) {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(strings.ToLower(text), "word "); ok {
		if !model.IsAlphaWord(rest) {
			return model.Guess{}, fmt.Errorf("%w: %q", model.ErrInvalidWord, rest)
		}
		return model.WordGuess(rest), nil
	}
	if pos, ok := model.ParseCoordinate(text); ok {
		return model.CoordinateGuess(pos), nil
	}
	if utf8.RuneCountInString(text) == 1 {
		r, _ := utf8.DecodeRuneInString(text)
		if _, ok := model.NormalizeLetter(r); !ok {
			return model.Guess{}, fmt.Errorf("%w: %q", model.ErrInvalidLetter, text)
		}
		return model.LetterGuess(r), nil
	}
	if model.IsAlphaWord(text) {
		return model.WordGuess(text), nil
	}
	return model.Guess{}, fmt.Errorf("unrecognised guess %q: use a letter, a cell like B3, or a word", text)
}

// boardSpec describes a board from the guesser's side for suggest
type boardSpec struct {
	Size       int
	Words      []string // Patterns, '?' or '_' for unknown letters
	Hits       []string // Cells known to hold a letter
	Revealed   []string // Cells with their letter, e.g. "B2=A"
	Misses     []string
	Guessed    string // Letters tried beyond those in the patterns
	TriedWords []string
	MissesLeft int
}

// buildView turns a boardSpec into the view the AI decides from
func buildView(spec boardSpec) (*model.BoardView, error) {
	if spec.Size < 1 || spec.Size > model.MaxGridSize {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidGridSize, spec.Size)
	}

	view := &model.BoardView{
		Size:            spec.Size,
		Cells:           make([][]model.CellView, spec.Size),
		GuessedLetters:  make(map[rune]bool),
		KnownLetters:    make(map[rune]bool),
		GuessedWords:    make(map[string]bool),
		MissesRemaining: spec.MissesLeft,
	}
	for row := range view.Cells {
		view.Cells[row] = make([]model.CellView, spec.Size)
	}

	cell := func(text string) (model.Position, error) {
		pos, ok := model.ParseCoordinate(text)
		if !ok || pos.Row >= spec.Size || pos.Col >= spec.Size {
			return model.Position{}, fmt.Errorf("%w: %q", model.ErrInvalidCoordinate, text)
		}
		return pos, nil
	}

	for _, text := range spec.Misses {
		pos, err := cell(text)
		if err != nil {
			return nil, err
		}
		view.Cells[pos.Row][pos.Col] = model.CellView{State: model.CellMiss}
	}
	for _, text := range spec.Hits {
		pos, err := cell(text)
		if err != nil {
			return nil, err
		}
		view.Cells[pos.Row][pos.Col] = model.CellView{State: model.CellPartiallyKnown}
	}
	for _, entry := range spec.Revealed {
		coord, letter, ok := strings.Cut(entry, "=")
		if !ok || utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("revealed cell %q must look like B2=A", entry)
		}
		pos, err := cell(coord)
		if err != nil {
			return nil, err
		}
		r, _ := utf8.DecodeRuneInString(letter)
		upper, ok := model.NormalizeLetter(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidLetter, letter)
		}
		view.Cells[pos.Row][pos.Col] = model.CellView{State: model.CellRevealed, Letter: upper}
		view.KnownLetters[upper] = true
	}

	for _, pattern := range spec.Words {
		wv := model.WordView{Pattern: make([]rune, 0, len(pattern))}
		for _, r := range strings.TrimSpace(pattern) {
			if r == '?' || r == '_' {
				wv.Pattern = append(wv.Pattern, 0)
				continue
			}
			upper, ok := model.NormalizeLetter(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q in pattern %q", model.ErrInvalidLetter, r, pattern)
			}
			wv.Pattern = append(wv.Pattern, upper)
			view.KnownLetters[upper] = true
		}
		wv.Length = len(wv.Pattern)
		if wv.Length > 0 && wv.KnownCount() == wv.Length {
			wv.Found = true
			wv.Text = string(wv.Pattern)
		}
		view.Words = append(view.Words, wv)
	}

	for r := range view.KnownLetters {
		view.GuessedLetters[r] = true
	}
	for _, r := range spec.Guessed {
		upper, ok := model.NormalizeLetter(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidLetter, r)
		}
		view.GuessedLetters[upper] = true
	}
	for _, w := range spec.TriedWords {
		view.GuessedWords[model.NormalizeWord(w)] = true
	}

	return view, nil
}
