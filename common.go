package parfor

type (
	// A Thunk is a function that neither receives nor returns any
	// parameters.
	Thunk func()

	// A RangeFunc is a function that receives a half-open range from low to
	// high, with 0 <= low <= high.
	RangeFunc func(low, high int)

	// A MapFunc is a pure mapping from one float64 to another. It must be
	// safe to invoke concurrently from multiple workers, which it is as long
	// as it touches no shared mutable state.
	MapFunc func(float64) float64
)
