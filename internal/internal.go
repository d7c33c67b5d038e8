package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// Chunks determines how many contiguous chunks the half-open range from low
// to high is divided into when n workers are available. The count is clamped
// to the size of the range so that no empty chunk is ever handed to a
// worker, and an empty range yields a single (empty) chunk.
//
// Chunks panics if high < low, or if n < 1.
func Chunks(low, high, n int) (chunks int) {
	switch size := high - low; {
	case size > 0:
		if n < 1 {
			panic(fmt.Sprintf("invalid number of workers: %v", n))
		}
		chunks = n
		if chunks > size {
			chunks = size
		}
	case size == 0:
		chunks = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
