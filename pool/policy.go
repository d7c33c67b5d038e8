package pool

import (
	"os"
	"runtime"
	"strconv"
)

// EnvWorkers is the environment variable that overrides the default worker
// count. It is read once per pool configuration; positive integers win over
// the processor-count policy, anything else is ignored.
const EnvWorkers = "PARFOR_NUM_WORKERS"

// WorkersFor computes the worker count for a host with procs logical
// processors: 80% of the processors, rounded down, with a floor of 2. The
// headroom leaves capacity for the OS and other load; the floor keeps the
// parallel code paths exercised even on constrained hosts.
func WorkersFor(procs int) int {
	workers := procs * 8 / 10
	if workers < 2 {
		workers = 2
	}
	return workers
}

// DefaultWorkers returns the worker count a pool gets when none is
// requested: the EnvWorkers override if set to a positive integer,
// otherwise WorkersFor applied to the current processor count. The
// processor count is queried fresh on every call, since cgroup limits can
// change between invocations.
func DefaultWorkers() int {
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return WorkersFor(runtime.NumCPU())
}
