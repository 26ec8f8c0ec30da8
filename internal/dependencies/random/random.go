package random

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// chachaRounds is the ChaCha round count used for seeded generators
const chachaRounds = 12

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float in [0, 1)
	Float64() float64

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// FastRandom implements Random on top of a frand ChaCha generator.
// Not safe for concurrent use; give each match its own instance.
type FastRandom struct {
	rng *frand.RNG
}

// New creates a FastRandom seeded from system entropy
func New() *FastRandom {
	return &FastRandom{rng: frand.New()}
}

// NewSeeded creates a deterministic FastRandom; equal seeds yield equal streams
func NewSeeded(seed uint64) *FastRandom {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return &FastRandom{rng: frand.NewCustom(key, 1024, chachaRounds)}
}

// Intn returns a random int in [0, n)
func (r *FastRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Float64 returns a random float in [0, 1)
func (r *FastRandom) Float64() float64 {
	return r.rng.Float64()
}

// String generates a random string of the given length from the given alphabet
func (r *FastRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

// Uniform returns a random float in [lo, hi)
func Uniform(r Random, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
