package pool

import "fmt"

// An Option configures a pool at construction time.
type Option func(*config)

type config struct {
	workers    int
	workersSet bool
}

// WithWorkers requests an explicit worker count instead of the
// processor-count policy. New rejects counts of zero or less with
// ErrNonPositiveWorkers.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
		c.workersSet = true
	}
}

func (c *config) validate() error {
	if c.workersSet && c.workers <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveWorkers, c.workers)
	}
	return nil
}
