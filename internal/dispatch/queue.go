// Package dispatch provides a bounded worker pool with an explicit
// construct/join/shutdown lifecycle. It is a plain producer/consumer pool:
// a synchronized FIFO of tasks, a fixed set of worker goroutines pulling
// from it, and a join barrier for the orchestrating goroutine. There is no
// hidden global pool; callers own the Queue they create.
package dispatch

import (
	"fmt"
	"runtime"
	"sync"
)

// Task is an independent unit of leaf work. Tasks must not dispatch further
// tasks onto the same queue.
type Task func() error

// Queue is a fixed-size pool of worker goroutines fed from a FIFO task list.
//
// Dispatch, Join and Shutdown are intended to be driven by the goroutine
// that owns the queue; tasks themselves run concurrently on the workers.
// After Join returns, the queue remains usable for further batches.
type Queue struct {
	mu       sync.Mutex
	ready    *sync.Cond // signaled when a task is enqueued or shutdown begins
	idle     *sync.Cond // signaled when the last pending task completes
	fifo     []Task
	pending  int // enqueued plus currently running tasks
	firstErr error
	shutdown bool
	workers  sync.WaitGroup
}

// New creates a Queue backed by the given number of worker goroutines.
// A non-positive count defaults to the available hardware concurrency.
// Workers are started eagerly and block until work arrives.
func New(workers int) *Queue {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	q := &Queue{}
	q.ready = sync.NewCond(&q.mu)
	q.idle = sync.NewCond(&q.mu)
	q.workers.Add(workers)
	for i := 0; i < workers; i++ {
		go q.worker()
	}
	return q
}

// Dispatch enqueues a task for execution. Dispatching after Shutdown is a
// no-op: the task is silently dropped, never half-run.
func (q *Queue) Dispatch(task Task) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.shutdown {
		return
	}
	q.fifo = append(q.fifo, task)
	q.pending++
	q.ready.Signal()
}

// Join blocks until every task dispatched so far has completed, then returns
// the first task error observed since the previous Join (or nil). Results
// must only be consumed after Join returns.
func (q *Queue) Join() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.pending > 0 {
		q.idle.Wait()
	}
	err := q.firstErr
	q.firstErr = nil
	return err
}

// Shutdown drains all pending tasks, signals the workers to exit after their
// current task, and joins every worker goroutine before returning. It is
// idempotent and leaves no goroutine behind on any path, including when
// tasks returned errors or panicked.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	if !q.shutdown {
		q.shutdown = true
		q.ready.Broadcast()
	}
	q.mu.Unlock()
	q.workers.Wait()
}

// worker pulls tasks off the FIFO until shutdown is signaled and the FIFO
// has drained.
func (q *Queue) worker() {
	defer q.workers.Done()
	for {
		q.mu.Lock()
		for len(q.fifo) == 0 && !q.shutdown {
			q.ready.Wait()
		}
		if len(q.fifo) == 0 {
			// Shutdown with nothing left to drain.
			q.mu.Unlock()
			return
		}
		task := q.fifo[0]
		q.fifo[0] = nil // release the reference for the GC
		q.fifo = q.fifo[1:]
		q.mu.Unlock()

		err := runTask(task)

		q.mu.Lock()
		if err != nil && q.firstErr == nil {
			q.firstErr = err
		}
		q.pending--
		if q.pending == 0 {
			q.idle.Broadcast()
		}
		q.mu.Unlock()
	}
}

// runTask executes a task, converting a panic into an error so a defective
// task surfaces at Join instead of killing the worker.
func runTask(task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dispatch: task panicked: %v", r)
		}
	}()
	return task()
}
