package placement

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// NewRNG returns a deterministic generator for seed.
func NewRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic placement.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// DaySeed combines a world id, the elapsed day count and a per-call-site salt.
// Two generators running on the same day stay decorrelated through the salt.
func DaySeed(worldID uint64, totalDays int, salt int64) int64 {
	return int64(worldID) + int64(totalDays) + salt
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
