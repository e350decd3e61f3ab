package selection

import "math/rand/v2"

// RandomSource draws uniformly distributed integers in [0, upperBound).
type RandomSource interface {
	IntN(upperBound int) int
}

// NewRandomSource returns an independently seeded source for a single run.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRandomSource returns a reproducible source.
func NewSeededRandomSource(firstSeed uint64, secondSeed uint64) RandomSource {
	return rand.New(rand.NewPCG(firstSeed, secondSeed))
}

// Shuffle permutes the repositories in place with a Fisher-Yates pass.
func Shuffle[Element any](elements []Element, randomSource RandomSource) {
	for currentIndex := len(elements) - 1; currentIndex > 0; currentIndex-- {
		swapIndex := randomSource.IntN(currentIndex + 1)
		elements[currentIndex], elements[swapIndex] = elements[swapIndex], elements[currentIndex]
	}
}
