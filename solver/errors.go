package solver

import "fmt"

// ErrNegativeNumber indicates an input outside the real square root's
// domain. Value is the offending input, unchanged.
type ErrNegativeNumber struct {
	Value float64
}

func (e *ErrNegativeNumber) Error() string {
	return fmt.Sprintf("Cannot calculate the square root of a negative number: %v", e.Value)
}
