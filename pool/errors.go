package pool

import "errors"

// ErrNonPositiveWorkers indicates an explicit worker-count request of zero
// or less.
var ErrNonPositiveWorkers = errors.New("pool: worker count must be positive")
