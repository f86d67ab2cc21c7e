package utility

import "math/rand/v2"

// PickRandom returns a uniformly random element of items. Callers must
// ensure items is non-empty.
func PickRandom[T any](items []T) T {
	return items[rand.IntN(len(items))]
}
