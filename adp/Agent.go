// Package adp implements active adaptive dynamic programming for
// finite, stochastic, fully-observable Markov environments.
//
// An Agent learns an empirical transition model and a utility table
// from trial-and-error interaction, running episodes of an
// interchangeable exploration Strategy, and extracts a greedy policy
// from the learned model by one-step look-ahead. No function
// approximation is used; all tables are exact per-state maps.
package adp

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/goadp/environment"
)

// Default parameters of a learning run
const (
	DefaultTrials     int     = 150
	DefaultDivergence float64 = -1000.0
)

// Policy maps each state to the action judged best for it. Policies
// are derived from a learned model by Agent.Policy and are never
// persisted across learning runs.
type Policy[S, A comparable] map[S]A

// Solution is the result of replaying a fixed policy against an
// environment with Agent.Solve
type Solution[A comparable] struct {
	// Actions is the ordered trace of actions taken
	Actions []A

	// Reward is the total reward accumulated across the replay
	Reward float64

	// Fallbacks counts the steps on which the policy had no entry for
	// the current state and a random legal action was taken instead.
	// A non-zero count indicates incomplete learning.
	Fallbacks int
}

// Agent owns the tables a learning run accumulates experience in and
// orchestrates episodes of a Strategy over them. One Agent owns its
// tables exclusively; they are never shared between concurrently
// learning agents.
type Agent[S, A comparable] struct {
	tables  *Tables[S, A]
	results []int
	rng     *rand.Rand
}

// NewAgent returns a new Agent with empty tables. The seed drives the
// random fallbacks taken when solving with an incomplete policy.
func NewAgent[S, A comparable](seed uint64) *Agent[S, A] {
	agent := &Agent[S, A]{rng: rand.New(rand.NewSource(seed))}
	agent.ClearExperience()
	return agent
}

// ClearExperience resets the frequency table, the transition model,
// the utility table, and the recorded per-trial results, establishing
// a fresh learning run
func (a *Agent[S, A]) ClearExperience() {
	a.tables = NewTables[S, A]()
	a.results = nil
}

// Tables returns the tables the Agent accumulates experience in
func (a *Agent[S, A]) Tables() *Tables[S, A] {
	return a.tables
}

// Results returns the episode length of every trial run since the
// last ClearExperience
func (a *Agent[S, A]) Results() []int {
	results := make([]int, len(a.results))
	copy(results, a.results)
	return results
}

// RunTrial runs a single episode of strategy against env on the
// Agent's tables, records its length, and returns it
func (a *Agent[S, A]) RunTrial(env environment.Environment[S, A],
	strategy Strategy[S, A]) int {

	itr := strategy.RunEpisode(env, a.tables)
	a.results = append(a.results, itr)
	return itr
}

// Learn clears the Agent's experience and then runs trials episodes
// of strategy against env, sharing the tables across episodes so that
// experience accumulates, and returns the greedy policy extracted
// from the final tables. A non-positive trials falls back to
// DefaultTrials.
func (a *Agent[S, A]) Learn(env environment.Environment[S, A],
	strategy Strategy[S, A], trials int) (Policy[S, A], error) {

	if strategy == nil {
		return nil, fmt.Errorf("learn: no strategy given")
	}
	if trials <= 0 {
		trials = DefaultTrials
	}

	a.ClearExperience()
	for trial := 0; trial < trials; trial++ {
		a.RunTrial(env, strategy)
	}
	return a.Policy(), nil
}

// Policy extracts the greedy policy from the learned model: for every
// state with recorded transitions, the action maximizing the plain
// expected-utility estimate, ties breaking to the action recorded
// first. States never visited have no entry.
func (a *Agent[S, A]) Policy() Policy[S, A] {
	policy := make(Policy[S, A], a.tables.Model.Len())
	for _, state := range a.tables.Model.States() {
		if best, ok := Best(Estimates(a.tables.Model, a.tables.Utils,
			state, nil)); ok {
			policy[state] = best.Action
		}
	}
	return policy
}

// Solve replays policy against env with the default divergence
// threshold. See SolveWithThreshold.
func (a *Agent[S, A]) Solve(env environment.Environment[S, A],
	policy Policy[S, A]) Solution[A] {

	return a.SolveWithThreshold(env, policy, DefaultDivergence)
}

// SolveWithThreshold deterministically replays a fixed policy against
// a fresh episode of env, accumulating the reward and the trace of
// actions taken. States the policy has no entry for fall back to a
// uniformly random legal action. The replay stops when the
// environment signals termination or once the accumulated reward
// drops below threshold, a safety abort against divergent or looping
// policies; the partial Solution gathered so far is returned either
// way.
func (a *Agent[S, A]) SolveWithThreshold(
	env environment.Environment[S, A], policy Policy[S, A],
	threshold float64) Solution[A] {

	var solution Solution[A]
	state := env.StartingState()
	terminal := false

	for !terminal {
		action, ok := policy[state]
		if !ok {
			action, ok = randomAction(a.rng, env.Actions(state))
			if !ok {
				break
			}
			solution.Fallbacks++
		}

		var reward float64
		state, reward, terminal = env.Do(state, action)

		solution.Actions = append(solution.Actions, action)
		solution.Reward += reward

		if solution.Reward < threshold {
			break
		}
	}
	return solution
}
