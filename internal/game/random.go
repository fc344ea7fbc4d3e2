package game

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// sessionSeed keeps an explicit seed and falls back to the clock for 0.
func sessionSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// platformX draws a whole-unit x in [0, span).
func platformX(rng *rand.Rand, span float64) float64 {
	return math.Floor(rng.Float64() * span)
}
