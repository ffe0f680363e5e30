// Package floatutils provides utilities for working with floats
package floatutils

import "math"

// ArgMax returns the index of the maximum value in values. When the
// maximum appears more than once, the first index is returned.
// ArgMax panics when called with no values.
func ArgMax(values ...float64) int {
	index := 0
	max := values[0]

	for i, value := range values {
		if value > max {
			max = value
			index = i
		}
	}
	return index
}

// Max calculates and returns the maximum float64 in a list
func Max(floats ...float64) float64 {
	max := floats[0]
	for _, val := range floats {
		if val > max {
			max = val
		}
	}
	return max
}

// EqualWithin returns whether a and b differ by no more than
// tolerance
func EqualWithin(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
