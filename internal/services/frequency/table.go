// Package frequency holds English letter frequency reference data used to
// rank letter guesses.
package frequency

import (
	"iter"
	"sort"

	"github.com/mcoot/hiddenwords-go/internal/model"
)

// percentages is the share of each letter A-Z in English text
var percentages = [26]float64{
	8.167,  // A
	1.492,  // B
	2.782,  // C
	4.253,  // D
	12.702, // E
	2.228,  // F
	2.015,  // G
	6.094,  // H
	6.966,  // I
	0.153,  // J
	0.772,  // K
	4.025,  // L
	2.406,  // M
	6.749,  // N
	7.507,  // O
	1.929,  // P
	0.095,  // Q
	5.987,  // R
	6.327,  // S
	9.056,  // T
	2.758,  // U
	0.978,  // V
	2.360,  // W
	0.150,  // X
	1.974,  // Y
	0.074,  // Z
}

var (
	byFrequency  []rune
	ranks        [26]int
	maxFrequency float64
)

func init() {
	byFrequency = make([]rune, 26)
	for i := range byFrequency {
		byFrequency[i] = rune('A' + i)
	}
	sort.SliceStable(byFrequency, func(i, j int) bool {
		return percentages[byFrequency[i]-'A'] > percentages[byFrequency[j]-'A']
	})
	for i, r := range byFrequency {
		ranks[r-'A'] = i + 1
	}
	maxFrequency = percentages[byFrequency[0]-'A']
}

func index(letter rune) (int, bool) {
	upper, ok := model.NormalizeLetter(letter)
	if !ok {
		return 0, false
	}
	return int(upper - 'A'), true
}

// Frequency returns the letter's share of English text as a percentage,
// or 0 for anything that is not a letter
func Frequency(letter rune) float64 {
	i, ok := index(letter)
	if !ok {
		return 0
	}
	return percentages[i]
}

// NormalizedFrequency scales Frequency so the most common letter is 1
func NormalizedFrequency(letter rune) float64 {
	return Frequency(letter) / maxFrequency
}

// FrequencyRank returns 1 for the most frequent letter through 26,
// or -1 if letter is not A-Z
func FrequencyRank(letter rune) int {
	i, ok := index(letter)
	if !ok {
		return -1
	}
	return ranks[i]
}

// IsVowel reports whether letter is A, E, I, O or U
func IsVowel(letter rune) bool {
	upper, ok := model.NormalizeLetter(letter)
	if !ok {
		return false
	}
	switch upper {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// IsConsonant reports whether letter is A-Z and not a vowel
func IsConsonant(letter rune) bool {
	_, ok := model.NormalizeLetter(letter)
	return ok && !IsVowel(letter)
}

// ByFrequency returns all letters, most frequent first
func ByFrequency() []rune {
	out := make([]rune, len(byFrequency))
	copy(out, byFrequency)
	return out
}

// UnguessedByFrequency yields letters absent from guessed, most frequent first.
// The sequence can be ranged over any number of times.
func UnguessedByFrequency(guessed map[rune]bool) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range byFrequency {
			if guessed[r] || guessed[r+('a'-'A')] {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// CombinedFrequency sums Frequency over the letters of s
func CombinedFrequency(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += Frequency(r)
	}
	return total
}
