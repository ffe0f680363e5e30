package adp

// StepSize computes the weight given to a new utility estimate as a
// function of the number of times the updated state has been visited
type StepSize func(n int) float64

// Convergent is the default step-size schedule, 50 / (49 + n). It
// decreases with the visit count n slowly enough that utilities keep
// moving, but fast enough that repeated Bellman averaging converges.
func Convergent(n int) float64 {
	return 50.0 / (49.0 + float64(n))
}
