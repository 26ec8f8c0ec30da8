package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hiddenwords-go/internal/dependencies/mocks"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/storage/memory"
	"github.com/mcoot/hiddenwords-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadWords() {
	words := []string{"apple", "banana", "cherry"}
	err := s.service.LoadWords(words)
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadWordsSkipsNonAlphaAndDuplicates() {
	_ = s.service.LoadWords([]string{"apple", "APPLE", "it's", "co-op", "pear"})
	s.Equal(2, s.service.WordCount())
	s.False(s.service.IsValidWord("co-op"))
}

func (s *ServiceSuite) TestIsValidWordCaseInsensitive() {
	words := []string{"Apple", "BANANA"}
	_ = s.service.LoadWords(words)

	s.True(s.service.IsValidWord("apple"))
	s.True(s.service.IsValidWord("APPLE"))
	s.True(s.service.IsValidWord("Apple"))
	s.True(s.service.IsValidWord("banana"))
	s.False(s.service.IsValidWord("grape"))
}

func (s *ServiceSuite) TestIsValidWordRequiresMinLength() {
	words := []string{"a", "ab", "abc"}
	_ = s.service.LoadWords(words)

	s.False(s.service.IsValidWord("a"))  // Too short (stored but rejected)
	s.True(s.service.IsValidWord("ab"))  // Minimum length
	s.True(s.service.IsValidWord("abc")) // Valid
}

func (s *ServiceSuite) TestIsValidWordWhenNotLoaded() {
	s.False(s.service.IsValidWord("apple"))
}

func (s *ServiceSuite) TestLoadDefault() {
	s.Require().NoError(s.service.LoadDefault())
	s.Greater(s.service.WordCount(), 500)
	s.True(s.service.IsValidWord("dragon"))
	s.NotEmpty(s.service.WordsOfLength(3))
}

func (s *ServiceSuite) TestLoadFromStorage() {
	// Pre-populate storage with words
	words := []string{"test", "word", "example"}
	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
	s.True(s.service.IsValidWord("test"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadFromFileCachesInStorage() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("lamp\n\n  desk \nchair\n"), 0o600))

	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))
	s.Equal(3, s.service.WordCount())

	cached, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"lamp", "desk", "chair"}, cached)
}

func (s *ServiceSuite) TestLoadFallsBackToDefault() {
	s.Require().NoError(s.service.Load(s.ctx, ""))
	s.Greater(s.service.WordCount(), 500)
}

func (s *ServiceSuite) TestLoadPrefersStorage() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"only"})
	s.Require().NoError(s.service.Load(s.ctx, ""))
	s.Equal(1, s.service.WordCount())
}

// Pattern tests

func (s *ServiceSuite) TestWordsOfLengthSorted() {
	_ = s.service.LoadWords([]string{"dog", "cat", "bird", "ant"})
	s.Equal([]string{"ANT", "CAT", "DOG"}, s.service.WordsOfLength(3))
	s.Empty(s.service.WordsOfLength(7))
}

func (s *ServiceSuite) TestMatchPattern() {
	_ = s.service.LoadWords([]string{"cat", "cot", "cut", "car", "bat", "cats"})

	got := s.service.MatchPattern([]rune{'C', 0, 'T'}, nil, nil)
	s.Equal([]string{"CAT", "COT", "CUT"}, got)
}

func (s *ServiceSuite) TestMatchPatternExcludesGuessedLetters() {
	_ = s.service.LoadWords([]string{"cat", "cot", "cut"})

	excluded := map[rune]bool{'O': true, 'U': true}
	s.Equal([]string{"CAT"}, s.service.MatchPattern([]rune{'C', 0, 'T'}, excluded, nil))
}

func (s *ServiceSuite) TestMatchPatternSkipsGuessedWords() {
	_ = s.service.LoadWords([]string{"cat", "cot"})

	got := s.service.MatchPattern([]rune{'C', 0, 'T'}, nil, map[string]bool{"CAT": true})
	s.Equal([]string{"COT"}, got)
}

func (s *ServiceSuite) TestMatchPatternKnownLetterMayRepeat() {
	_ = s.service.LoadWords([]string{"toot", "tact"})

	// Excluded letters only constrain unknown positions
	excluded := map[rune]bool{'T': true}
	s.Equal([]string{"TOOT"}, s.service.MatchPattern([]rune{'T', 'O', 0, 'T'}, excluded, nil))
}

// RandomWords tests

func (s *ServiceSuite) TestRandomWordsNotLoaded() {
	_, err := s.service.RandomWords(random.NewSeeded(1), 2, 3, 5)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestRandomWordsNotEnough() {
	_ = s.service.LoadWords([]string{"cat", "dog", "elephant"})
	_, err := s.service.RandomWords(random.NewSeeded(1), 3, 3, 5)
	s.ErrorIs(err, model.ErrNotEnoughWords)
}

func (s *ServiceSuite) TestRandomWordsUsesRandom() {
	_ = s.service.LoadWords([]string{"ant", "bee", "cat", "dog"})

	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(3, 0) // Swap ANT with DOG, then keep BEE
	words, err := s.service.RandomWords(rnd, 2, 3, 3)
	s.Require().NoError(err)
	s.Equal([]string{"DOG", "BEE"}, words)
}

func (s *ServiceSuite) TestRandomWordsDistinctAndInBand() {
	s.Require().NoError(s.service.LoadDefault())

	words, err := s.service.RandomWords(random.NewSeeded(42), 10, 4, 6)
	s.Require().NoError(err)
	s.Len(words, 10)

	seen := make(map[string]bool)
	for _, w := range words {
		s.False(seen[w], "duplicate %s", w)
		seen[w] = true
		s.GreaterOrEqual(len(w), 4)
		s.LessOrEqual(len(w), 6)
	}
}
