package jobpool

import (
	"context"
	"sync/atomic"
	"time"
)

// Task is a joinable handle to a job submitted to a Pool, matching spec
// §4.D's `Task<T>`. It is grounded on the original's task.rs, which wraps a
// oneshot channel; Go's equivalent is a closed-on-completion channel.
type Task[T any] struct {
	done     chan struct{}
	result   T
	err      error
	timedOut atomic.Bool
}

func newTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

func (t *Task[T]) complete(result T, err error) {
	t.result = result
	t.err = err
	close(t.done)
}

// IsFinished reports whether the task's job has completed.
func (t *Task[T]) IsFinished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// HasTimeoutOccurred reports whether a prior JoinTimeout call expired
// before the job completed. The underlying job is never preempted (spec
// §4.D "Cancellation and timeouts") — it keeps running regardless.
func (t *Task[T]) HasTimeoutOccurred() bool {
	return t.timedOut.Load()
}

// Join blocks until the job completes and returns its result.
func (t *Task[T]) Join() (T, error) {
	<-t.done
	return t.result, t.err
}

// JoinTimeout blocks for at most d, returning ok=false and flagging
// HasTimeoutOccurred if the deadline passes first. The job is not
// cancelled; it continues running in the background.
func (t *Task[T]) JoinTimeout(d time.Duration) (result T, err error, ok bool) {
	select {
	case <-t.done:
		return t.result, t.err, true
	case <-time.After(d):
		t.timedOut.Store(true)
		var zero T
		return zero, nil, false
	}
}

// Done exposes the completion channel so a Task can be driven like a
// future/selected on alongside other channels.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// RunSync submits a CPU-bound closure to the pool and returns a joinable
// Task, matching spec §4.D's `run_sync(f) -> Task<T>`.
func RunSync[T any](p *Pool, f func() T) *Task[T] {
	task := newTask[T]()
	p.Submit(func() {
		task.complete(f(), nil)
	})
	return task
}

// RunAsync submits a context-aware function to the pool and returns a
// joinable Task, matching spec §4.D's `run_async(fut) -> Task<T>`. The
// function receives context.Background(), which is never cancelled; the
// pool does not cancel a running job.
func RunAsync[T any](p *Pool, f func(ctx context.Context) (T, error)) *Task[T] {
	task := newTask[T]()
	ctx := context.Background()
	p.Submit(func() {
		result, err := f(ctx)
		task.complete(result, err)
	})
	return task
}
