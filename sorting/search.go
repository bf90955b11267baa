package sorting

import "golang.org/x/exp/constraints"

// BinarySearch returns the first index of sorted at or after which
// target would sit (insertion-point semantics). When target is
// present, the returned index is the position of its first
// occurrence; when absent, inserting at the returned index keeps the
// slice sorted.
func BinarySearch[K constraints.Ordered](sorted []K, target K) int {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
