package model

// GuessState is what one player has learned about the opponent's grid
type GuessState struct {
	GuessedLetters map[rune]bool     // Every letter guessed, hit or miss
	KnownLetters   map[rune]bool     // Letters confirmed present
	GuessedCells   map[Position]bool // Every coordinate guessed
	GuessedWords   map[string]bool   // Every whole word guessed
	FoundWords     []string
	Misses         int
	MissLimit      int // 0 means unlimited
}

// NewGuessState creates an empty guess state
func NewGuessState(missLimit int) *GuessState {
	return &GuessState{
		GuessedLetters: make(map[rune]bool),
		KnownLetters:   make(map[rune]bool),
		GuessedCells:   make(map[Position]bool),
		GuessedWords:   make(map[string]bool),
		MissLimit:      missLimit,
	}
}

// HasGuessed returns true if the exact guess was already made. A letter
// learned through a found word counts as guessed.
func (s *GuessState) HasGuessed(g Guess) bool {
	switch g.Kind {
	case GuessLetter:
		return s.GuessedLetters[g.Letter] || s.KnownLetters[g.Letter]
	case GuessCoordinate:
		return s.GuessedCells[g.Position]
	case GuessWord:
		return s.GuessedWords[g.Word]
	default:
		return false
	}
}

// Record marks the guess as made
func (s *GuessState) Record(g Guess) {
	switch g.Kind {
	case GuessLetter:
		s.GuessedLetters[g.Letter] = true
	case GuessCoordinate:
		s.GuessedCells[g.Position] = true
	case GuessWord:
		s.GuessedWords[g.Word] = true
	}
}

// RecordMiss counts one miss toward the limit
func (s *GuessState) RecordMiss() {
	s.Misses++
}

// OutOfMisses returns true once the miss limit has been reached
func (s *GuessState) OutOfMisses() bool {
	return s.MissLimit > 0 && s.Misses >= s.MissLimit
}

// MissesRemaining returns how many more misses are allowed, or -1 if unlimited
func (s *GuessState) MissesRemaining() int {
	if s.MissLimit <= 0 {
		return -1
	}
	return max(s.MissLimit-s.Misses, 0)
}
