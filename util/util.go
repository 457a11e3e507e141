package util

import (
	"cmp"
	"slices"
)

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Merge combines maps into a new map. Later maps win on key collisions;
// nil maps are skipped and the inputs are never modified.
func Merge[K comparable, V any](layers ...map[K]V) map[K]V {
	size := 0
	for _, m := range layers {
		size += len(m)
	}
	result := make(map[K]V, size)
	for _, m := range layers {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// SortedKeys returns the keys of a map in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Contains checks if a slice contains a value.
func Contains[T comparable](slice []T, val T) bool {
	return slices.Contains(slice, val)
}
