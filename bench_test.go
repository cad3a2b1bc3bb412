package sparsemap

import (
	"testing"
)

// Benchmark the suppressing write/read cycle against a mostly-default
// workload.
func BenchmarkMap_SetPull(b *testing.B) {
	aMap := New[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := i % 1024
		aMap.Set(key, key%8)
		_ = aMap.Pull(key)
	}
}

// Benchmark Pull misses, the path a sparse workload hits most.
func BenchmarkMap_PullAbsent(b *testing.B) {
	aMap := New[int, int]()
	for i := 0; i < 128; i++ {
		aMap.Set(i, i+1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = aMap.Pull(100000 + i%1024)
	}
}

// Benchmark Purge over a map seeded half with defaults.
func BenchmarkMap_Purge(b *testing.B) {
	entries := make([]Entry[int, int], 1024)
	for i := range entries {
		entries[i] = Entry[int, int]{Key: i, Value: i % 2}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		aMap := New[int, int](WithEntries(entries...))
		b.StartTimer()
		aMap.Purge()
	}
}
