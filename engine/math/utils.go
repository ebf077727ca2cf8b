package math

import "golang.org/x/exp/constraints"

// Clamp limits f to [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	return max(low, min(f, high))
}
