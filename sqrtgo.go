package sqrtgo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/sqrtgo/executor"
	"github.com/hupe1980/sqrtgo/solver"
)

// Calculator computes square roots synchronously or offloaded onto a worker
// executor, with batch variants of both. The zero-cost path is the
// synchronous one; the async path exists so CPU-bound iteration never runs
// on a goroutine that is supposed to stay responsive.
type Calculator struct {
	executor executor.Executor
	ownsPool *executor.Pool // set when the calculator built its own pool
	logger   *Logger
	metrics  MetricsCollector
}

// New creates a Calculator.
//
// Without WithExecutor, the calculator builds and owns an executor.Pool
// (sized by WithPoolConfig, defaulting to GOMAXPROCS workers); Close shuts
// that pool down. An injected executor is left untouched by Close.
func New(optFns ...Option) *Calculator {
	opts := applyOptions(optFns)

	c := &Calculator{
		logger:  opts.logger,
		metrics: opts.metrics,
	}

	if opts.executor != nil {
		c.executor = opts.executor
	} else {
		pool := executor.NewPool(opts.poolConfig)
		c.executor = pool
		c.ownsPool = pool
	}

	return c
}

// Close releases the calculator's owned worker pool, if any. Injected
// executors are the caller's to close. Close is idempotent.
func (c *Calculator) Close() {
	if c.ownsPool != nil {
		c.ownsPool.Close()
	}
}

// SquareRoot computes the square root of x on the calling goroutine,
// blocking until complete.
//
// Negative input fails with *solver.ErrNegativeNumber.
func (c *Calculator) SquareRoot(x float64) (float64, error) {
	start := time.Now()

	r, err := solver.Solve(x)

	c.metrics.RecordSolve(time.Since(start), err)
	c.logger.LogSolve(x, err)

	return r, err
}

// SquareRoots computes the square roots of xs in order on the calling
// goroutine.
//
// The batch is fail-fast: the first negative element aborts with its
// *solver.ErrNegativeNumber and no partial results are returned. On success
// the result has the same length and order as xs.
func (c *Calculator) SquareRoots(xs []float64) ([]float64, error) {
	start := time.Now()

	rs, err := solver.SolveAll(xs)

	c.metrics.RecordBatch(len(xs), time.Since(start), err)
	c.logger.LogBatch(len(xs), err)

	return rs, err
}

// SquareRootAsync computes the square root of x on the worker executor,
// blocking the calling goroutine only on the wait for the result.
//
// Negative input fails with *solver.ErrNegativeNumber exactly as the sync
// path does. A failure of the executor itself (pool closed, ctx done, task
// panic) surfaces as *ExecutionError instead.
func (c *Calculator) SquareRootAsync(ctx context.Context, x float64) (float64, error) {
	start := time.Now()

	r, err := offload(ctx, c.executor, func() (float64, error) {
		return solver.Solve(x)
	})

	c.metrics.RecordOffload(time.Since(start), err)
	c.logger.LogOffload(ctx, 1, err)

	return r, err
}

// SquareRootsAsync computes the square roots of xs on the worker executor.
//
// The whole batch runs as one worker task, sequentially and in order, with
// the same fail-fast semantics as SquareRoots. Elements are not fanned out
// across workers.
func (c *Calculator) SquareRootsAsync(ctx context.Context, xs []float64) ([]float64, error) {
	start := time.Now()

	rs, err := offload(ctx, c.executor, func() ([]float64, error) {
		return solver.SolveAll(xs)
	})

	c.metrics.RecordOffload(time.Since(start), err)
	c.logger.LogOffload(ctx, len(xs), err)

	return rs, err
}

type outcome[T any] struct {
	value T
	err   error
}

// offload runs fn as a single task on ex and waits for its result.
//
// Executor-layer failures are wrapped in *ExecutionError so callers can
// tell them apart from domain errors, which pass through unchanged. If ctx
// expires after submission the wait is abandoned and the task finishes in
// the background; in-flight work is not interruptible.
func offload[T any](ctx context.Context, ex executor.Executor, fn func() (T, error)) (T, error) {
	done := make(chan outcome[T], 1)

	task := func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: &ExecutionError{cause: fmt.Errorf("task panic: %v", r)}}
			}
		}()

		v, err := fn()
		done <- outcome[T]{value: v, err: err}
	}

	if err := ex.Submit(ctx, task); err != nil {
		var zero T
		return zero, &ExecutionError{cause: err}
	}

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, &ExecutionError{cause: ctx.Err()}
	}
}

var (
	defaultOnce sync.Once
	defaultCalc *Calculator
)

// defaultCalculator lazily builds the shared calculator behind the
// package-level functions. Its pool lives for the life of the process.
func defaultCalculator() *Calculator {
	defaultOnce.Do(func() {
		defaultCalc = New()
	})
	return defaultCalc
}

// SquareRoot computes the square root of x synchronously using the shared
// default calculator.
func SquareRoot(x float64) (float64, error) {
	return defaultCalculator().SquareRoot(x)
}

// SquareRootAsync computes the square root of x on the shared default
// worker pool.
func SquareRootAsync(ctx context.Context, x float64) (float64, error) {
	return defaultCalculator().SquareRootAsync(ctx, x)
}

// SquareRoots computes the square roots of xs synchronously using the
// shared default calculator.
func SquareRoots(xs []float64) ([]float64, error) {
	return defaultCalculator().SquareRoots(xs)
}

// SquareRootsAsync computes the square roots of xs as one task on the
// shared default worker pool.
func SquareRootsAsync(ctx context.Context, xs []float64) ([]float64, error) {
	return defaultCalculator().SquareRootsAsync(ctx, xs)
}
