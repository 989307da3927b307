// Package executor provides the worker substrate that offloaded square-root
// computations run on.
//
// The Executor interface is the seam between the public API and the
// scheduling mechanism: Pool runs tasks on a fixed set of worker goroutines
// dedicated to blocking/CPU-bound work, while Sync runs them inline for
// deterministic tests.
//
// # Usage
//
//	pool := executor.NewPool(executor.Config{Workers: 4})
//	defer pool.Close()
//
//	err := pool.Submit(ctx, func() { ... })
package executor
