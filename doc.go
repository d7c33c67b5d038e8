// Package parfor provides fork-join parallel algorithms over float64 slices:
// a reduction under one of four associative operators, an element-wise
// transform, and a depth-bounded parallel merge sort, all driven by a small
// fixed-size worker pool. While Go is primarily designed for concurrent
// programming, it is also usable to some extent for parallel programming, and
// this library provides convenience functionality to turn otherwise
// sequential numeric kernels into parallel ones, with the goal to improve
// performance.
//
// Parfor provides the following subpackages:
//
// parfor/pool provides the worker pool with its processor-count sizing
// policy, a chunked parallel-for, and a fork-join primitive for recursive
// decomposition.
//
// parfor/reduce provides the parallel reduction engine.
//
// parfor/transform provides the parallel element-wise transform engine.
//
// parfor/sort provides the depth-bounded parallel merge sort.
//
// parfor/sequential provides sequential implementations of the three
// engines, for testing and debugging purposes.
//
// All operations are synchronous: a call returns only after every unit of
// work it forked has completed. Parallelism is a performance optimization,
// never a correctness requirement; when worker capacity is exhausted the
// pool degrades to running work on the calling goroutine.
package parfor
