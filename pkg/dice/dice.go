// Package dice holds the random draws and combat formulas every encounter
// is built from.
//
// # Determinism
//
// Nothing in this package reads a global random source. Callers pass a
// Roller, so a game started from a fixed seed replays exactly.
package dice

import (
	"math"
	"math/rand/v2"
	"time"
)

// Roller is the source of randomness consumed by the engine.
// *rand.Rand from math/rand/v2 satisfies it.
type Roller interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntN returns a uniform draw in [0, n). n must be > 0.
	IntN(n int) int
}

// New returns a deterministic Roller for the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// NewFromTime returns a Roller seeded from the wall clock, along with the
// seed used so a session can be replayed.
func NewFromTime() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// CalculateDamage returns floor(strength*(0.5+roll) - defense*0.5), never
// less than 1.
func CalculateDamage(strength, defense int, roll float64) int {
	raw := int(math.Floor(float64(strength)*(0.5+roll) - float64(defense)*0.5))
	return max(1, raw)
}

// RunChance returns the probability of escaping an opponent. The result is
// always inside (0.1, 0.9) for positive agilities.
func RunChance(selfAgility, opponentAgility int) float64 {
	total := selfAgility + opponentAgility
	if total <= 0 {
		return 0.5
	}
	ratio := float64(selfAgility) / float64(total)
	return 0.1 + ratio*0.8
}

// CheckRunSuccess reports whether roll lands under the escape chance.
func CheckRunSuccess(selfAgility, opponentAgility int, roll float64) bool {
	return roll < RunChance(selfAgility, opponentAgility)
}

// Between returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func Between(r Roller, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](r Roller, items []T) T {
	return items[r.IntN(len(items))]
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](r Roller, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
