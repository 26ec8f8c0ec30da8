package model

import "fmt"

// GuessKind tags which variant a Guess holds
type GuessKind int

const (
	GuessLetter GuessKind = iota
	GuessCoordinate
	GuessWord
)

func (k GuessKind) String() string {
	switch k {
	case GuessLetter:
		return "letter"
	case GuessCoordinate:
		return "coordinate"
	case GuessWord:
		return "word"
	default:
		return fmt.Sprintf("GuessKind(%d)", int(k))
	}
}

// Guess is one move: a letter, a coordinate or a whole word.
// Only the field matching Kind is meaningful.
type Guess struct {
	Kind     GuessKind
	Letter   rune
	Position Position
	Word     string
}

// LetterGuess builds a letter guess
func LetterGuess(letter rune) Guess {
	upper, _ := NormalizeLetter(letter)
	return Guess{Kind: GuessLetter, Letter: upper}
}

// CoordinateGuess builds a coordinate guess
func CoordinateGuess(pos Position) Guess {
	return Guess{Kind: GuessCoordinate, Position: pos}
}

// WordGuess builds a whole-word guess
func WordGuess(text string) Guess {
	return Guess{Kind: GuessWord, Word: NormalizeWord(text)}
}

func (g Guess) String() string {
	switch g.Kind {
	case GuessLetter:
		return "letter " + string(g.Letter)
	case GuessCoordinate:
		return "cell " + FormatCoordinate(g.Position)
	case GuessWord:
		return "word " + g.Word
	default:
		return g.Kind.String()
	}
}
