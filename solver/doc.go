// Package solver implements the iterative square-root core.
//
// The algorithm is the Newton–Raphson (Babylonian) method: starting from
// x/2, each step averages the guess with x/guess until successive guesses
// agree to within a fixed absolute tolerance.
//
// # Usage
//
//	r, err := solver.Solve(2)       // 1.4142135623...
//	rs, err := solver.SolveAll(xs)  // fail-fast batch
//
// Solve is pure and deterministic; the same input always produces the same
// sequence of guesses and the same result.
package solver
