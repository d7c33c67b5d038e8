package pool

import (
	"github.com/forkjoin/parfor"
	"github.com/forkjoin/parfor/internal"
)

// A Task is a handle to a unit of work submitted with Fork. It is created
// by the pool and must not be reused after Join returns.
type Task struct {
	done chan struct{}
	p    interface{}
}

// Fork submits f as an asynchronously runnable unit of work and returns a
// handle to join on. Fork never blocks waiting for capacity: if a worker
// slot is free, f runs on its own goroutine; otherwise f is executed on the
// calling goroutine before Fork returns. Either way the returned Task
// behaves identically.
//
// A closure that forks further work must join it before returning; Join on
// the parent then observes the entire subtree.
func (p *Pool) Fork(f parfor.Thunk) *Task {
	t := &Task{done: make(chan struct{})}
	select {
	case p.slots <- struct{}{}:
		go func() {
			defer func() {
				t.p = internal.WrapPanic(recover())
				<-p.slots
				close(t.done)
			}()
			f()
		}()
	default:
		// All workers busy; degrade to the calling goroutine.
		func() {
			defer func() {
				t.p = internal.WrapPanic(recover())
				close(t.done)
			}()
			f()
		}()
	}
	return t
}

// Join blocks until the forked unit of work has completed. If the work
// panicked, the goroutine that forked it recovered the panic, and Join
// panics with the recovered value.
func (t *Task) Join() {
	<-t.done
	if t.p != nil {
		panic(t.p)
	}
}
