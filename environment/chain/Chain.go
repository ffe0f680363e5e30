// Package chain implements a linear chain environment: the agent
// starts at one end and is rewarded for reaching the other
package chain

import "fmt"

// Action moves the agent along the chain
type Action int

const (
	Advance Action = iota
	Retreat
)

func (a Action) String() string {
	switch a {
	case Advance:
		return "Advance"
	case Retreat:
		return "Retreat"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Chain is a row of length+1 states numbered 0..length. State 0 is
// the start, state length is terminal. Every transition yields the
// step reward, except entering the terminal state, which yields the
// goal reward. Retreating from state 0 stays in place.
type Chain struct {
	length     int
	stepReward float64
	goalReward float64
}

// New returns a new Chain with length non-terminal states
func New(length int, stepReward, goalReward float64) (*Chain, error) {
	if length < 1 {
		return nil, fmt.Errorf("new: length %d too small", length)
	}
	return &Chain{length, stepReward, goalReward}, nil
}

// StartingState returns the start of the chain
func (c *Chain) StartingState() int {
	return 0
}

// Actions returns the moves available in state; the terminal state
// has none
func (c *Chain) Actions(state int) []Action {
	if state >= c.length {
		return nil
	}
	return []Action{Advance, Retreat}
}

// Do executes action in state
func (c *Chain) Do(state int, action Action) (int, float64, bool) {
	if state >= c.length {
		return state, 0, true
	}

	next := state
	switch action {
	case Advance:
		next = state + 1
	case Retreat:
		if next > 0 {
			next = state - 1
		}
	}

	if next == c.length {
		return next, c.goalReward, true
	}
	return next, c.stepReward, false
}
