// Package rng provides the injectable randomness shared by every simulation
// component of a session. All draws go through Source so a fixed seed and
// call order reproduce a game exactly.
package rng

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// Source draws a uniform integer in [0, n).
type Source interface {
	IntN(n int) int
}

// New returns a deterministic PCG-backed source for seed.
func New(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// NewSeed picks a seed when the caller does not supply one.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
