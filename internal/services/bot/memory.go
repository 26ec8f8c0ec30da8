package bot

import (
	"github.com/mcoot/hiddenwords-go/internal/config"
	"github.com/mcoot/hiddenwords-go/internal/dependencies/random"
	"github.com/mcoot/hiddenwords-go/internal/model"
	"github.com/mcoot/hiddenwords-go/internal/services/analyzer"
)

// MemoryEntry is one of the AI's own resolved guesses
type MemoryEntry struct {
	Turn  int
	Guess model.Guess
	Hit   bool
}

// Memory is a bounded log of the AI's recent guesses, used to simulate
// imperfect recall of where it has already found letters.
//
// Window only bounds the log. Recall rolls forgetting over every hit on the
// board, so a hit whose guess has aged out of the window is exactly as
// forgettable as one still logged. Only the last AlwaysRememberRecent
// entries change the outcome.
type Memory struct {
	cfg     config.MemoryConfig
	entries []MemoryEntry
	turn    int
}

// NewMemory creates an empty Memory
func NewMemory(cfg config.MemoryConfig) *Memory {
	return &Memory{cfg: cfg}
}

// Record appends a guess, dropping the oldest entry once the window is full
func (m *Memory) Record(guess model.Guess, hit bool) {
	m.turn++
	m.entries = append(m.entries, MemoryEntry{Turn: m.turn, Guess: guess, Hit: hit})
	if over := len(m.entries) - m.cfg.Window; over > 0 && m.cfg.Window > 0 {
		m.entries = append(m.entries[:0], m.entries[over:]...)
	}
}

// Entries returns the remembered guesses, oldest first
func (m *Memory) Entries() []MemoryEntry {
	out := make([]MemoryEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of remembered guesses
func (m *Memory) Len() int {
	return len(m.entries)
}

// protected returns the cells guessed in the last AlwaysRememberRecent turns
func (m *Memory) protected() map[model.Position]bool {
	out := make(map[model.Position]bool)
	start := max(0, len(m.entries)-m.cfg.AlwaysRememberRecent)
	for _, e := range m.entries[start:] {
		if e.Guess.Kind == model.GuessCoordinate {
			out[e.Guess.Position] = true
		}
	}
	return out
}

// Recall builds the hit set the AI reasons with this turn. Hits from the
// most recent guesses are always kept; every other hit is dropped with
// probability forgetChance. hits is visited in order so a seeded random
// gives repeatable results.
func (m *Memory) Recall(hits []model.Position, forgetChance float64, rnd random.Random) analyzer.HitSet {
	keep := m.protected()
	out := make(analyzer.HitSet, len(hits))
	for _, pos := range hits {
		if keep[pos] || forgetChance <= 0 || rnd.Float64() >= forgetChance {
			out[pos] = true
		}
	}
	return out
}
