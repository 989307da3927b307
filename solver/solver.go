package solver

import "math"

// Tolerance is the absolute difference between successive guesses below
// which the iteration stops. It is fixed and not configurable.
const Tolerance = 1e-10

// maxIterations bounds the refinement loop. For any finite positive input
// the float64 fixed point is reached well inside this bound: the initial
// x/2 guess roughly halves once per step until it nears the root, then
// convergence is quadratic. The cap exists so pathological inputs can never
// hang a worker.
const maxIterations = 1 << 12

// Solve computes the square root of x by Newton–Raphson iteration.
//
// Negative input fails with *ErrNegativeNumber carrying x. Zero returns
// zero without iterating. NaN and +Inf are returned as-is: neither has a
// meaningful refinement and both would otherwise poison the loop.
//
// For very large x the absolute tolerance can be below 1 ulp of the result;
// the iteration then stops at the float64 fixed point (or at the iteration
// cap) and returns the best guess reached.
func Solve(x float64) (float64, error) {
	if x < 0 {
		return 0, &ErrNegativeNumber{Value: x}
	}
	if x == 0 {
		return 0, nil
	}
	if math.IsNaN(x) || math.IsInf(x, 1) {
		return x, nil
	}

	guess := x / 2
	for i := 0; i < maxIterations; i++ {
		next := (guess + x/guess) / 2
		if math.Abs(guess-next) < Tolerance {
			return next, nil
		}
		guess = next
	}

	return guess, nil
}

// SolveAll computes the square roots of xs in order.
//
// Processing is strictly sequential and fail-fast: the first negative
// element aborts the batch with its *ErrNegativeNumber and no partial
// results; later elements are not evaluated. On success the returned slice
// has the same length and order as xs.
func SolveAll(xs []float64) ([]float64, error) {
	results := make([]float64, len(xs))

	for i, x := range xs {
		r, err := Solve(x)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}

	return results, nil
}
