package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinarySearch(t *testing.T) {
	sorted := []int{1, 3, 5, 7}

	assert.Equal(t, 1, BinarySearch(sorted, 3))
	assert.Equal(t, 3, BinarySearch(sorted, 7))

	// Insertion points for absent targets.
	assert.Equal(t, 0, BinarySearch(sorted, 0))
	assert.Equal(t, 2, BinarySearch(sorted, 4))
	assert.Equal(t, 4, BinarySearch(sorted, 9))
}

func TestBinarySearch_FirstOccurrence(t *testing.T) {
	assert.Equal(t, 1, BinarySearch([]int{1, 2, 2, 2, 3}, 2))
}

func TestBinarySearch_Empty(t *testing.T) {
	assert.Equal(t, 0, BinarySearch([]int{}, 42))
}

func TestBinarySearch_Strings(t *testing.T) {
	sorted := []string{"jake", "leg", "lin", "low"}

	assert.Equal(t, 2, BinarySearch(sorted, "lin"))
	assert.Equal(t, 3, BinarySearch(sorted, "linger"))
}
