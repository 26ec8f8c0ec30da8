package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/storage"
)

//go:embed words.txt
var defaultWords string

// Service provides word lookup and pattern matching
type Service struct {
	storage storage.Storage
	logger  zerolog.Logger

	mu       sync.RWMutex
	words    map[string]struct{}
	byLength map[int][]string // Sorted
	loaded   bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger zerolog.Logger) *Service {
	return &Service{
		storage:  storage,
		logger:   logger.With().Str("component", "dictionary").Logger(),
		words:    make(map[string]struct{}),
		byLength: make(map[int][]string),
	}
}

// LoadDefault loads the built-in word list
func (s *Service) LoadDefault() error {
	return s.loadWords(splitLines(defaultWords))
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// Load reads the file at path if given, otherwise the storage cache,
// falling back to the built-in list
func (s *Service) Load(ctx context.Context, path string) error {
	if path != "" {
		return s.LoadFromFile(ctx, path)
	}
	if err := s.LoadFromStorage(ctx); err == nil {
		return nil
	}
	return s.LoadDefault()
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	set := make(map[string]struct{}, len(words))
	byLength := make(map[int][]string)
	skipped := 0
	for _, word := range words {
		if !model.IsAlphaWord(word) {
			skipped++
			continue
		}
		upper := model.NormalizeWord(word)
		if _, dup := set[upper]; dup {
			continue
		}
		set[upper] = struct{}{}
		byLength[len(upper)] = append(byLength[len(upper)], upper)
	}
	for _, group := range byLength {
		slices.Sort(group)
	}

	s.mu.Lock()
	s.words = set
	s.byLength = byLength
	s.loaded = true
	s.mu.Unlock()

	s.logger.Debug().Int("words", len(set)).Int("skipped", skipped).Msg("dictionary loaded")
	return nil
}

// IsValidWord checks if a word exists in the dictionary
// Words must be at least 2 characters
func (s *Service) IsValidWord(word string) bool {
	if len(word) < 2 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[model.NormalizeWord(word)]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// WordsOfLength returns every word with exactly n letters, sorted
func (s *Service) WordsOfLength(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.byLength[n])
}

// MatchPattern returns the words that fit a hangman pattern, sorted.
// Non-zero runes must match exactly. Zero runes may be any letter not in
// excluded. Words in skip are left out.
func (s *Service) MatchPattern(pattern []rune, excluded map[rune]bool, skip map[string]bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.byLength[len(pattern)], func(word string, _ int) bool {
		if skip[word] {
			return false
		}
		for i, r := range word {
			if pattern[i] != 0 {
				if pattern[i] != r {
					return false
				}
			} else if excluded[r] {
				return false
			}
		}
		return true
	})
}

// RandomWords picks count distinct words with lengths in [minLen, maxLen]
func (s *Service) RandomWords(rnd random.Random, count, minLen, maxLen int) ([]string, error) {
	s.mu.RLock()
	if !s.loaded {
		s.mu.RUnlock()
		return nil, model.ErrDictionaryNotLoaded
	}
	var pool []string
	for n := minLen; n <= maxLen; n++ {
		pool = append(pool, s.byLength[n]...)
	}
	s.mu.RUnlock()

	if len(pool) < count {
		return nil, fmt.Errorf("%w: want %d of length %d-%d, have %d", model.ErrNotEnoughWords, count, minLen, maxLen, len(pool))
	}

	// Partial Fisher-Yates over the local copy
	for i := range count {
		j := i + rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}

func splitLines(text string) []string {
	return lo.Compact(lo.Map(strings.Split(text, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	}))
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	WordsOfLength(n int) []string
	MatchPattern(pattern []rune, excluded map[rune]bool, skip map[string]bool) []string
	RandomWords(rnd random.Random, count, minLen, maxLen int) ([]string, error)
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
