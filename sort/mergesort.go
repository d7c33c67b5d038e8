/*
Package sort provides a parallel merge sort for float64 slices.

The parallel algorithm is a recursive fork-join: a range is halved, the two
halves are sorted concurrently, and after both have completed the halves
are merged sequentially. Recursion forks new work only while a remaining
depth counter, initialized to the pool's worker count, is positive and the
range is larger than a serial cutoff; below either bound it falls back to
the purely sequential algorithm. Bounding the depth by the worker count
caps the number of spawned tasks to match the available parallelism
instead of recursing down to single-element ranges.
*/
package sort

import (
	"github.com/forkjoin/parfor/pool"
)

// serialCutoff is the range size below which fork overhead exceeds the
// benefit of sorting the halves concurrently.
const serialCutoff = 1000

// Float64s sorts data in place in ascending order. On ties the merge takes
// from the left sub-range first, so the sort is stable. The placement of
// NaN values is unspecified.
//
// Float64s allocates a scratch buffer of the same length as data once per
// call; if that allocation fails the runtime panics before any element has
// been moved, so no partially sorted result is ever observable. A nil pool
// uses a fresh policy-sized pool.
func Float64s(p *pool.Pool, data []float64) {
	if len(data) < 2 {
		return
	}
	if p == nil {
		p = pool.Default()
	}
	temp := make([]float64, len(data))
	var psort func(left, right, depth int)
	psort = func(left, right, depth int) {
		if depth == 0 || right-left <= serialCutoff {
			serialSort(data, temp, left, right)
			return
		}
		mid := left + (right-left)/2
		t := p.Fork(func() { psort(left, mid, depth-1) })
		psort(mid, right, depth-1)
		t.Join()
		merge(data, temp, left, mid, right)
	}
	psort(0, len(data), p.Workers())
}

// Sequential sorts data in place in ascending order on the calling
// goroutine. It is the algorithm the parallel sort falls back to below its
// cutoff, exported for testing and debugging.
func Sequential(data []float64) {
	if len(data) < 2 {
		return
	}
	temp := make([]float64, len(data))
	serialSort(data, temp, 0, len(data))
}

func serialSort(data, temp []float64, left, right int) {
	if right-left < 2 {
		return
	}
	mid := left + (right-left)/2
	serialSort(data, temp, left, mid)
	serialSort(data, temp, mid, right)
	merge(data, temp, left, mid, right)
}

// merge combines the sorted ranges [left,mid) and [mid,right) into
// temp[left:right), taking from the left range on ties, and copies the
// result back into data.
func merge(data, temp []float64, left, mid, right int) {
	i, j, k := left, mid, left
	for i < mid && j < right {
		if data[i] <= data[j] {
			temp[k] = data[i]
			i++
		} else {
			temp[k] = data[j]
			j++
		}
		k++
	}
	for i < mid {
		temp[k] = data[i]
		i++
		k++
	}
	for j < right {
		temp[k] = data[j]
		j++
		k++
	}
	copy(data[left:right], temp[left:right])
}
