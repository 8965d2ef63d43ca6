package roster

import "math/rand/v2"

// Shuffle permutes items in place with a Fisher-Yates shuffle driven by rng
func Shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
