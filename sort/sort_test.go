package sort_test

import (
	"fmt"
	"math/rand"
	stdsort "sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forkjoin/parfor/pool"
	psort "github.com/forkjoin/parfor/sort"
)

func randomValues(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64() * 1000
	}
	return data
}

// requireSorted checks both halves of the contract: the result is
// non-decreasing and it is a permutation of the input. For float64 slices
// without NaN the two together mean the result equals the stdlib-sorted
// copy of the input exactly.
func requireSorted(t *testing.T, input, got []float64) {
	t.Helper()
	require.True(t, stdsort.Float64sAreSorted(got), "result is not non-decreasing")
	want := append([]float64(nil), input...)
	stdsort.Float64s(want)
	require.Equal(t, want, got, "result is not a permutation of the input")
}

func TestSortSizes(t *testing.T) {
	p, err := pool.New(pool.WithWorkers(4))
	require.NoError(t, err)

	for _, n := range []int{0, 1, 2, 1000, 100000} {
		input := randomValues(n, int64(n)+1)
		data := append([]float64(nil), input...)
		psort.Float64s(p, data)
		requireSorted(t, input, data)
	}
}

func TestSortPatterns(t *testing.T) {
	p := pool.Default()
	const n = 10000

	sorted := make([]float64, n)
	reversed := make([]float64, n)
	equal := make([]float64, n)
	for i := 0; i < n; i++ {
		sorted[i] = float64(i)
		reversed[i] = float64(n - i)
		equal[i] = 42
	}

	for name, input := range map[string][]float64{
		"sorted":   sorted,
		"reversed": reversed,
		"equal":    equal,
	} {
		input := input
		t.Run(name, func(t *testing.T) {
			data := append([]float64(nil), input...)
			psort.Float64s(p, data)
			requireSorted(t, input, data)
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	p := pool.Default()
	data := randomValues(50000, 7)
	psort.Float64s(p, data)
	once := append([]float64(nil), data...)
	psort.Float64s(p, data)
	require.Equal(t, once, data)
}

func TestWorkerCountInvariance(t *testing.T) {
	input := randomValues(100000, 11)
	want := append([]float64(nil), input...)
	stdsort.Float64s(want)
	for _, workers := range []int{1, 2, 4, 8} {
		p, err := pool.New(pool.WithWorkers(workers))
		require.NoError(t, err)
		data := append([]float64(nil), input...)
		psort.Float64s(p, data)
		require.Equal(t, want, data, "workers=%d", workers)
	}
}

func TestNilPool(t *testing.T) {
	input := randomValues(5000, 13)
	data := append([]float64(nil), input...)
	psort.Float64s(nil, data)
	requireSorted(t, input, data)
}

func TestSequential(t *testing.T) {
	for _, n := range []int{0, 1, 2, 999, 1000, 1001, 20000} {
		input := randomValues(n, int64(n)+3)
		data := append([]float64(nil), input...)
		psort.Sequential(data)
		requireSorted(t, input, data)
	}
}

func ExampleFloat64s() {
	p, _ := pool.New(pool.WithWorkers(4))
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	psort.Float64s(p, data)
	fmt.Println(data)

	// Output:
	// [1 1 2 3 4 5 6 9]
}

func BenchmarkSort(b *testing.B) {
	p := pool.Default()
	input := randomValues(1000000, 17)
	data := make([]float64, len(input))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, input)
		psort.Float64s(p, data)
	}
}

func BenchmarkSortSequential(b *testing.B) {
	input := randomValues(1000000, 17)
	data := make([]float64, len(input))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, input)
		psort.Sequential(data)
	}
}
