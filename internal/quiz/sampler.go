package quiz

import "math/rand"

// DefaultSampleSize is the number of questions drawn per attempt.
const DefaultSampleSize = 20

// Sample draws k questions from the pool without replacement, in
// uniformly random order. It permutes the pool indices with a
// Fisher-Yates shuffle and takes the first k, so every question has
// equal inclusion probability and the subset ordering is unbiased.
//
// Returns an InvalidConfigurationError if k exceeds the pool size.
func Sample(pool []Question, k int, rng *rand.Rand) ([]Question, error) {
	if k > len(pool) || k < 0 {
		return nil, &InvalidConfigurationError{PoolSize: len(pool), SampleSize: k}
	}

	perm := make([]int, len(pool))
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	drawn := make([]Question, k)
	for i := 0; i < k; i++ {
		drawn[i] = pool[perm[i]]
	}
	return drawn, nil
}
