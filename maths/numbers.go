// Package maths exposes the small amount of generic arithmetic helpers required by the library.
package maths

import "golang.org/x/exp/constraints"

// Min returns the smallest of the two values given as input.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the largest of the two values given as input.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Clamp returns the given value limited to the inclusive range [lower, upper].
func Clamp[T constraints.Ordered](value, lower, upper T) T {
	return Max(lower, Min(value, upper))
}
