// Package sorting provides the stable mergesort and binary search
// used to produce deterministic orderings and rank lookups.
package sorting

import "golang.org/x/exp/constraints"

// Mergesort returns a new slice holding items in ascending order of
// key(item). The sort is stable: items with equal keys keep their
// relative order. The input is not modified.
func Mergesort[T any, K constraints.Ordered](items []T, key func(T) K) []T {
	return MergesortFunc(items, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})
}

// MergesortFunc is the comparator form of Mergesort, for composite
// keys that a single ordered value cannot express. cmp must return a
// negative number, zero, or a positive number.
func MergesortFunc[T any](items []T, cmp func(a, b T) int) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	mid := len(items) / 2
	left := MergesortFunc(items[:mid], cmp)
	right := MergesortFunc(items[mid:], cmp)

	return merge(left, right, cmp)
}

// merge combines two sorted runs, preferring the left run on ties to
// keep the sort stable.
func merge[T any](left, right []T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
