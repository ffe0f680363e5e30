// Package environment outlines the contract that concrete environments
// implement so that learning agents can interact with them
package environment

// Environment implements a finite, stochastic, fully-observable Markov
// environment. States and actions are opaque identifiers: the learning
// engine only stores and compares them and never inspects their
// structure, so any comparable types can be used.
type Environment[S, A comparable] interface {
	// StartingState returns the state an episode begins in
	StartingState() S

	// Actions returns the actions available in the given state. The
	// returned slice may be empty when state is terminal.
	Actions(state S) []A

	// Do executes action in state, returning the successor state, the
	// reward obtained for the transition, and whether the successor
	// is terminal
	Do(state S, action A) (next S, reward float64, terminal bool)
}

// StatePrinter is implemented by environments that can render a state
// to the terminal for debugging. The learning engine never calls it.
type StatePrinter[S comparable] interface {
	PrintState(state S)
}

// PolicyPrinter is implemented by environments that can render a full
// policy to the terminal for debugging. The learning engine never
// calls it.
type PolicyPrinter[S, A comparable] interface {
	PrintPolicy(policy map[S]A)
}
