package placement

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
)

// CanPlaceWord reports whether word fits on the grid starting at start and
// running in dir. Every cell must be in bounds and either empty or already
// holding the same letter at the same index.
func CanPlaceWord(grid *model.Grid, word string, start model.Position, dir model.Direction) bool {
	if !dir.IsValid() || !model.IsAlphaWord(word) {
		return false
	}
	text := model.NormalizeWord(word)
	for i, pos := range model.WordPositions(start, dir, len(text)) {
		cell, err := grid.Cell(pos)
		if err != nil {
			return false
		}
		if !cell.IsEmpty() && cell.Letter != rune(text[i]) {
			return false
		}
	}
	return true
}

// TryPlaceWord places word if CanPlaceWord allows it and returns the new
// word's index. Cells already holding the right letter gain the word as an
// extra owner. The grid is untouched when it returns false.
func TryPlaceWord(grid *model.Grid, word string, start model.Position, dir model.Direction) (int, bool) {
	if !CanPlaceWord(grid, word, start, dir) {
		return -1, false
	}

	text := model.NormalizeWord(word)
	idx := grid.NextWordIndex()
	positions := model.WordPositions(start, dir, len(text))
	for i, pos := range positions {
		cell, _ := grid.Cell(pos)
		// Validated above; SetLetter cannot fail here
		_ = cell.SetLetter(rune(text[i]), idx)
	}

	return grid.AddWord(model.Word{
		Text:      text,
		Start:     start,
		Direction: dir,
		Cells:     positions,
	}), true
}

// WordSource supplies candidate words for random placement
type WordSource interface {
	RandomWords(rnd random.Random, count, minLen, maxLen int) ([]string, error)
}

// Options controls random placement
type Options struct {
	Count     int
	MinLength int
	MaxLength int
	// Attempts is how many random starts each word gets before it is redrawn
	Attempts int
}

// Service hides words on a grid
type Service struct {
	logger zerolog.Logger
}

// New creates a new placement Service
func New(logger zerolog.Logger) *Service {
	return &Service{
		logger: logger.With().Str("component", "placement").Logger(),
	}
}

// PlaceWord places a single word, returning ErrInvalidWord or
// ErrInvalidPlacement when it cannot go there
func (s *Service) PlaceWord(grid *model.Grid, word string, start model.Position, dir model.Direction) (int, error) {
	if !model.IsAlphaWord(word) {
		return -1, fmt.Errorf("%w: %q", model.ErrInvalidWord, word)
	}
	idx, ok := TryPlaceWord(grid, word, start, dir)
	if !ok {
		return -1, fmt.Errorf("%w: %s at %s", model.ErrInvalidPlacement, model.NormalizeWord(word), start)
	}
	return idx, nil
}

// PlaceRandomWords draws opts.Count distinct words from src and hides each
// at a random start and direction. A word that will not fit after
// opts.Attempts tries is swapped for a fresh draw. On error the grid may be
// partly filled and should be discarded.
func (s *Service) PlaceRandomWords(grid *model.Grid, src WordSource, rnd random.Random, opts Options) ([]int, error) {
	if opts.MaxLength > grid.Size {
		opts.MaxLength = grid.Size
	}
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}

	words, err := src.RandomWords(rnd, opts.Count, opts.MinLength, opts.MaxLength)
	if err != nil {
		return nil, err
	}

	placed := make(map[string]bool, opts.Count)
	indices := make([]int, 0, opts.Count)
	maxRedraws := opts.Count * opts.Attempts

	for _, word := range words {
		redraws := 0
		for {
			if !placed[word] {
				if idx, ok := s.tryRandomSpots(grid, word, rnd, opts.Attempts); ok {
					placed[word] = true
					indices = append(indices, idx)
					break
				}
			}

			redraws++
			if redraws > maxRedraws {
				return indices, fmt.Errorf("%w: could not fit %d words on a %dx%d grid",
					model.ErrInvalidPlacement, opts.Count, grid.Size, grid.Size)
			}
			next, err := src.RandomWords(rnd, 1, opts.MinLength, opts.MaxLength)
			if err != nil {
				return indices, err
			}
			s.logger.Debug().Str("word", word).Str("replacement", next[0]).Msg("redrawing unplaceable word")
			word = next[0]
		}
	}

	s.logger.Debug().Int("words", len(indices)).Int("occupied", grid.OccupiedCount()).Msg("words placed")
	return indices, nil
}

func (s *Service) tryRandomSpots(grid *model.Grid, word string, rnd random.Random, attempts int) (int, bool) {
	dirs := model.AllDirections()
	for range attempts {
		start := model.Position{Row: rnd.Intn(grid.Size), Col: rnd.Intn(grid.Size)}
		dir := dirs[rnd.Intn(len(dirs))]
		if idx, ok := TryPlaceWord(grid, word, start, dir); ok {
			return idx, true
		}
	}
	return -1, false
}

// Interface for dependency injection
type ServiceInterface interface {
	PlaceWord(grid *model.Grid, word string, start model.Position, dir model.Direction) (int, error)
	PlaceRandomWords(grid *model.Grid, src WordSource, rnd random.Random, opts Options) ([]int, error)
}

var _ ServiceInterface = (*Service)(nil)
