package testutil

import "math/rand"

// Rand returns a deterministic source for shuffle tests.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Reverser is a Randomizer that reverses element order on every shuffle.
type Reverser struct {
	Calls int
}

// Shuffle reverses n elements through swap.
func (r *Reverser) Shuffle(n int, swap func(i, j int)) {
	r.Calls++
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
