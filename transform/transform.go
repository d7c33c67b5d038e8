// Package transform provides a parallel element-wise transform of a
// float64 slice.
package transform

import (
	"github.com/forkjoin/parfor"
	"github.com/forkjoin/parfor/pool"
)

// Float64s applies f to every element of src and stores the results in
// dst, so that dst[i] == f(src[i]) on return. The slice is divided into
// contiguous chunks, at most one per pool worker, and the chunks are
// processed independently; the only synchronization is the barrier before
// Float64s returns.
//
// dst and src must have the same length or Float64s panics. dst may be the
// same slice as src for an in-place transform. Slices that overlap at an
// offset make the result undefined; avoiding that is the caller's
// responsibility and is not checked.
//
// A nil pool uses a fresh policy-sized pool.
func Float64s(p *pool.Pool, dst, src []float64, f parfor.MapFunc) {
	if len(dst) != len(src) {
		panic("transform: length mismatch")
	}
	if p == nil {
		p = pool.Default()
	}
	p.For(0, len(src), func(low, high int) {
		for i := low; i < high; i++ {
			dst[i] = f(src[i])
		}
	})
}
