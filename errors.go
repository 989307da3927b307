package sqrtgo

import (
	"errors"

	"github.com/hupe1980/sqrtgo/solver"
)

// ExecutionError indicates that the offload mechanism failed to run a
// computation to completion: the pool was closed, the context expired, or
// the task panicked. It is always distinct from a domain error — a negative
// input never produces an ExecutionError.
//
// The underlying cause can be accessed via errors.Unwrap.
type ExecutionError struct {
	cause error
}

func (e *ExecutionError) Error() string {
	return "execution failed: " + e.cause.Error()
}

func (e *ExecutionError) Unwrap() error { return e.cause }

// IsNegativeNumber reports whether err is a domain error for a negative
// input. Use errors.As with *solver.ErrNegativeNumber to recover the
// offending value.
func IsNegativeNumber(err error) bool {
	var ne *solver.ErrNegativeNumber
	return errors.As(err, &ne)
}

// IsExecutionError reports whether err stems from the offload mechanism
// rather than from the computation's domain.
func IsExecutionError(err error) bool {
	var ee *ExecutionError
	return errors.As(err, &ee)
}
