package hashtable

import (
	"strconv"
	"testing"
)

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "bench-key-" + strconv.Itoa(i)
	}
	return keys
}

func BenchmarkProbeTable_Set(b *testing.B) {
	keys := benchKeys(1 << 12)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pt := NewProbeTable[int]()
		for j, key := range keys {
			_ = pt.Set(key, j)
		}
	}
}

func BenchmarkProbeTable_Get_Hit(b *testing.B) {
	keys := benchKeys(1 << 12)
	pt := NewProbeTable[int]()
	for j, key := range keys {
		_ = pt.Set(key, j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pt.Get(keys[i%len(keys)])
	}
}

func BenchmarkProbeTable_Get_Miss(b *testing.B) {
	keys := benchKeys(1 << 12)
	pt := NewProbeTable[int]()
	for j, key := range keys {
		_ = pt.Set(key, j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pt.Get("missing-" + strconv.Itoa(i&1023))
	}
}

func BenchmarkInfiniteHashTable_Set(b *testing.B) {
	keys := benchKeys(1 << 12)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := NewInfiniteHashTable[int]()
		for j, key := range keys {
			it.Set(key, j)
		}
	}
}
