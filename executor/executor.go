package executor

import (
	"context"
	"errors"
)

// ErrClosed is returned by Submit when the executor has been closed and can
// no longer accept tasks.
var ErrClosed = errors.New("executor closed")

// Executor runs blocking or CPU-bound tasks off the caller's goroutine.
//
// Submit returns once the task has been accepted for execution, not once it
// has run; completion is the task's own business (typically signalled
// through a channel captured by the closure).
type Executor interface {
	Submit(ctx context.Context, task func()) error
}

// Compile time check to ensure Sync satisfies the Executor interface.
var _ Executor = Sync{}

// Sync is an Executor that runs each task inline on the submitting
// goroutine. It exists so tests (and callers that want the offload seam
// without actual offloading) can substitute deterministic execution for a
// real worker pool.
type Sync struct{}

// Submit runs task immediately. The only failure mode is a context that is
// already done.
func (Sync) Submit(ctx context.Context, task func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	task()
	return nil
}
