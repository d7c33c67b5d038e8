// Package sequential provides sequential implementations of the engines in
// the reduce, transform, and sort packages. This is useful for testing and
// debugging.
//
// It is not recommended to use the implementations of this package for
// large inputs, because they run on a single goroutine regardless of the
// available processors.
package sequential

import (
	"github.com/forkjoin/parfor"
	"github.com/forkjoin/parfor/reduce"
	psort "github.com/forkjoin/parfor/sort"
)

// Reduce reduces data under op, seeded with seed, on the calling
// goroutine. An empty slice returns the seed unchanged.
func Reduce(data []float64, seed float64, op reduce.Op) float64 {
	return op.Fold(data, seed)
}

// Transform applies f to every element of src and stores the results in
// dst, on the calling goroutine. dst and src must have the same length or
// Transform panics; dst may be the same slice as src.
func Transform(dst, src []float64, f parfor.MapFunc) {
	if len(dst) != len(src) {
		panic("sequential: length mismatch")
	}
	for i, x := range src {
		dst[i] = f(x)
	}
}

// Sort sorts data in place in ascending order on the calling goroutine,
// using the same merge sort the parallel engine falls back to.
func Sort(data []float64) {
	psort.Sequential(data)
}
