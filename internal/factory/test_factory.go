package factory

import (
	"time"

	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/mocks"
	"github.com/mcoot/hiddenwords-go/internal/storage/memory"
	"github.com/mcoot/hiddenwords-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(config.Default())
}

// NewTestAppWithConfig creates a test App around cfg
func NewTestAppWithConfig(cfg *config.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(cfg, store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 3-letter words
		"ace", "act", "age", "air", "ant", "arm", "art", "bat", "bed", "bee",
		"box", "bug", "cab", "cap", "car", "cat", "cow", "cup", "day", "dig",
		"dog", "ear", "egg", "end", "eye", "fan", "fig", "fin", "fox", "gas",
		"hat", "hen", "ice", "ink", "jam", "jar", "key", "kid", "lap", "leg",
		"map", "mud", "net", "oak", "owl", "pan", "pen", "pig", "pot", "rat",
		"sea", "sky", "sun", "tea", "toe", "toy", "van", "web", "yak", "zip",
		// 4-letter words
		"bear", "bird", "boat", "book", "cake", "coat", "door", "duck", "farm", "fish",
		"frog", "gate", "goat", "hand", "harp", "kite", "lamp", "leaf", "lion", "milk",
		"moon", "nest", "pear", "pool", "rain", "ring", "road", "rock", "rose", "sand",
		"ship", "shoe", "sock", "star", "tree", "wave", "wolf", "yard",
		// 5-letter words
		"apple", "beach", "bread", "chair", "cloud", "dance", "eagle", "field", "flame", "grape",
		"horse", "house", "lemon", "mouse", "ocean", "piano", "plant", "river", "snake", "stone",
		"storm", "table", "tiger", "train", "whale",
		// 6-letter words
		"banana", "castle", "dragon", "forest", "garden", "island", "jungle", "mirror", "orange", "pirate",
		"rabbit", "silver", "spider", "tomato", "turtle", "window",
	}
	return t.DictionaryService.LoadWords(words)
}
