// Package reduce provides a parallel reduction of a float64 slice to a
// single value under one of four associative operators.
package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/forkjoin/parfor/internal"
	"github.com/forkjoin/parfor/pool"
)

// An Op identifies a reduction operator. Every Op is associative and
// commutative, so the order in which partial results are combined does not
// affect the mathematically expected result, only its floating-point
// rounding.
type Op int

const (
	// Sum adds the elements.
	Sum Op = iota
	// Product multiplies the elements.
	Product
	// Max keeps the largest element, comparing with >.
	Max
	// Min keeps the smallest element, comparing with <.
	Min
)

func (op Op) String() string {
	switch op {
	case Sum:
		return "Sum"
	case Product:
		return "Product"
	case Max:
		return "Max"
	case Min:
		return "Min"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// fold reduces one non-empty chunk without involving the seed.
func (op Op) fold(data []float64) float64 {
	switch op {
	case Sum:
		return floats.Sum(data)
	case Product:
		return floats.Prod(data)
	case Max:
		return floats.Max(data)
	case Min:
		return floats.Min(data)
	}
	panic(fmt.Sprintf("reduce: unknown operator %v", op))
}

func (op Op) combine(acc, x float64) float64 {
	switch op {
	case Sum:
		return acc + x
	case Product:
		return acc * x
	case Max:
		if x > acc {
			return x
		}
		return acc
	case Min:
		if x < acc {
			return x
		}
		return acc
	}
	panic(fmt.Sprintf("reduce: unknown operator %v", op))
}

// Fold is the sequential reference reduction: the seed combined with every
// element of data in order, on the calling goroutine. An empty slice
// returns the seed unchanged.
func (op Op) Fold(data []float64, seed float64) float64 {
	if len(data) == 0 {
		return seed
	}
	return op.combine(seed, op.fold(data))
}

// Float64s reduces data to a single value under op, seeded with seed.
//
// The slice is divided into contiguous chunks, at most one per pool worker
// and never more than there are elements. Each chunk is reduced
// independently; the seed and the chunk partials are then combined
// left-to-right over chunk index. That order is fixed for a given pool
// size, but results are only tolerance-equal, not bit-identical, across
// different pool sizes. The seed participates in the result exactly once,
// so a caller may legitimately seed Max with a finite lower bound.
//
// An empty slice returns the seed unchanged. A nil pool uses a fresh
// policy-sized pool.
//
// Max and Min compare with > and < against the running value, so NaN inputs
// produce operator-defined, non-transitive results.
func Float64s(p *pool.Pool, data []float64, seed float64, op Op) float64 {
	if len(data) == 0 {
		return seed
	}
	if p == nil {
		p = pool.Default()
	}
	chunks := internal.Chunks(0, len(data), p.Workers())
	if chunks == 1 {
		return op.Fold(data, seed)
	}
	batch := ((len(data) - 1) / chunks) + 1
	nchunks := ((len(data) - 1) / batch) + 1
	partials := make([]float64, nchunks)
	tasks := make([]*pool.Task, 0, nchunks)
	next := 0
	for start := 0; start < len(data); start += batch {
		end := start + batch
		if end > len(data) {
			end = len(data)
		}
		i, lo, hi := next, start, end
		next++
		tasks = append(tasks, p.Fork(func() {
			partials[i] = op.fold(data[lo:hi])
		}))
	}
	for _, t := range tasks {
		t.Join()
	}
	result := seed
	for _, x := range partials {
		result = op.combine(result, x)
	}
	return result
}
