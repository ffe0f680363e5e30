package adp

import "github.com/samuelfneumann/goadp/utils/floatutils"

// ActionValue pairs an action with its estimated expected utility
type ActionValue[A comparable] struct {
	Value  float64
	Action A
}

// Estimates computes the expected utility of each candidate action in
// state under the empirical transition model: the successor counts for
// (state, action) are normalized into probabilities and used to weight
// the successors' utilities. An action with no recorded transitions
// has estimate 0, never a division by zero.
//
// When actions is nil, the actions recorded for state in the model are
// used, in first-recorded order.
func Estimates[S, A comparable](model *TransitionModel[S, A],
	utils Utilities[S], state S, actions []A) []ActionValue[A] {

	if actions == nil {
		actions = model.Actions(state)
	}

	estimates := make([]ActionValue[A], 0, len(actions))
	for _, action := range actions {
		value, _ := expectedUtility(model, utils, state, action)
		estimates = append(estimates, ActionValue[A]{value, action})
	}
	return estimates
}

// OptimisticEstimates computes the same per-action estimates as
// Estimates, but any action observed fewer than nE times estimates to
// the fixed optimistic value rPlus instead of its empirical expected
// utility. Under-sampled actions therefore look attractive until they
// have been tried nE times. This is the exploration-function
// formulation of active ADP.
func OptimisticEstimates[S, A comparable](model *TransitionModel[S, A],
	utils Utilities[S], state S, rPlus float64, nE int,
	actions []A) []ActionValue[A] {

	if actions == nil {
		actions = model.Actions(state)
	}

	estimates := make([]ActionValue[A], 0, len(actions))
	for _, action := range actions {
		value, n := expectedUtility(model, utils, state, action)
		if n < nE {
			value = rPlus
		}
		estimates = append(estimates, ActionValue[A]{value, action})
	}
	return estimates
}

// Best returns the estimate with the greatest value. Ties break to the
// earliest estimate so that action selection is deterministic for a
// fixed candidate order. The second return value is false when
// estimates is empty.
func Best[A comparable](estimates []ActionValue[A]) (ActionValue[A], bool) {
	if len(estimates) == 0 {
		var none ActionValue[A]
		return none, false
	}

	values := make([]float64, len(estimates))
	for i, estimate := range estimates {
		values[i] = estimate.Value
	}
	return estimates[floatutils.ArgMax(values...)], true
}

// expectedUtility returns the probability-weighted utility of the
// successors of (state, action) along with the total observation
// count. A pair with no observations has expected utility 0.
func expectedUtility[S, A comparable](model *TransitionModel[S, A],
	utils Utilities[S], state S, action A) (float64, int) {

	successors := model.Successors(state, action)

	n := 0
	for _, count := range successors {
		n += count
	}
	if n == 0 {
		return 0, 0
	}

	value := 0.0
	for next, count := range successors {
		value += float64(count) / float64(n) * utils.Get(next)
	}
	return value, n
}
