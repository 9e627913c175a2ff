package shell

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Random is the source of every random choice the interpreter makes:
// fortune pick, lucky numbers, the nerd coin flip, hidden-command variants
// and the game target. *rand.Rand satisfies it.
//
// Implementations need not be safe for concurrent use; each console owns
// its own source.
type Random interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewRandom returns a deterministic source for seed.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed draws a high-entropy seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// between returns a value in [lo, hi].
func between(rng Random, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func pick(rng Random, options []string) string {
	return options[rng.Intn(len(options))]
}
