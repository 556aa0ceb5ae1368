package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	IntN    func(n int) int
	Bool    func() bool
	Source  *rand.Rand
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		IntN:    random.Intn,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Source:  random,
	}
}

// NewSeededRandomizer returns a deterministic source for reproducible
// generator tests.
func NewSeededRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		IntN:    random.Intn,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Source:  random,
	}
}
