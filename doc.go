// Package sqrtgo computes square roots of float64 values by Newton–Raphson
// iteration, with a blocking path and a worker-pool-offloaded path plus
// batch variants of both.
//
// # Quick Start
//
// Package-level functions share one default calculator:
//
//	r, err := sqrtgo.SquareRoot(9)                   // 3
//	rs, err := sqrtgo.SquareRoots([]float64{4, 16})  // [2 4]
//
// Offloaded variants keep CPU-bound iteration off the calling goroutine:
//
//	ctx := context.Background()
//	r, err := sqrtgo.SquareRootAsync(ctx, 9)
//	rs, err := sqrtgo.SquareRootsAsync(ctx, []float64{4, 16, 25})
//
// A batch is one sequential unit of work: it runs in order on a single
// worker task and aborts on the first negative element with no partial
// results.
//
// # Dedicated Calculators
//
// Construct a Calculator to control pool sizing, inject an executor, or
// attach logging and metrics:
//
//	calc := sqrtgo.New(
//	    sqrtgo.WithPoolConfig(executor.Config{Workers: 4}),
//	    sqrtgo.WithLogger(sqrtgo.NewTextLogger(slog.LevelDebug)),
//	    sqrtgo.WithMetricsCollector(&sqrtgo.BasicMetricsCollector{}),
//	)
//	defer calc.Close()
//
// Tests can substitute executor.Sync{} for the pool to make the async path
// run inline and deterministically.
//
// # Errors
//
// Two kinds, never conflated:
//
//   - *solver.ErrNegativeNumber — the input is outside the real square
//     root's domain; carries the offending value.
//   - *ExecutionError — the offload mechanism failed (pool closed, context
//     done, task panic); errors.Unwrap exposes the cause.
//
// Use IsNegativeNumber and IsExecutionError (or errors.As) to match kind
// rather than parsing messages.
package sqrtgo
