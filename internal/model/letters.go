package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLetter upper-cases r and reports whether it is a letter A-Z
func NormalizeLetter(r rune) (rune, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r, r >= 'A' && r <= 'Z'
}

// NormalizeWord trims and upper-cases word text.
// A new Caser is built per call because Casers are stateful.
func NormalizeWord(text string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(text))
}

// IsAlphaWord reports whether text is non-empty and made only of A-Z after normalization
func IsAlphaWord(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if _, ok := NormalizeLetter(r); !ok {
			return false
		}
	}
	return true
}
