package adp

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/goadp/environment"
)

// StateScaledConfig configures a StateScaled strategy. Zero values
// are replaced by defaults; a nil Alpha is replaced by the Convergent
// schedule.
type StateScaledConfig struct {
	Alpha  StepSize // step-size schedule for utility updates
	MaxItr int      // iteration cap per episode
}

// Validate ensures that the configuration is valid
func (c StateScaledConfig) Validate() error {
	if c.MaxItr < 0 {
		return fmt.Errorf("maxItr cannot be lower than 0")
	}
	return nil
}

// StateScaled is a random-exploration strategy whose exploration
// probability shrinks with accumulated experience rather than with
// time: at every step the agent takes a uniformly random action with
// probability 1/(t+1), where t is the number of distinct states in
// the frequency table, recomputed each step. The more of the
// environment the agent has seen, the greedier it acts, across
// episodes as well as within one.
type StateScaled[S, A comparable] struct {
	alpha  StepSize
	maxItr int

	rng     *rand.Rand
	uniform distuv.Uniform
}

// NewStateScaled returns a new StateScaled strategy with the given
// configuration and random seed
func NewStateScaled[S, A comparable](config StateScaledConfig,
	seed uint64) (*StateScaled[S, A], error) {

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("newstatescaled: %v", err)
	}

	if config.Alpha == nil {
		config.Alpha = Convergent
	}
	if config.MaxItr == 0 {
		config.MaxItr = DefaultMaxItr
	}

	source := rand.NewSource(seed)
	return &StateScaled[S, A]{
		alpha:   config.Alpha,
		maxItr:  config.MaxItr,
		rng:     rand.New(source),
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: source},
	}, nil
}

// RunEpisode runs a single episode, mutating tables in place, and
// returns the number of iterations performed
func (s *StateScaled[S, A]) RunEpisode(
	env environment.Environment[S, A], tables *Tables[S, A]) int {

	itr := 0
	terminal := false
	state := env.StartingState()
	reward := 0.0

	actions := env.Actions(state)
	var bestAction A
	haveBest := false

	for !terminal {
		t := float64(len(tables.Freq))
		if t == 0 {
			t = 1
		}

		if s.uniform.Rand() < 1.0/(t+1) || !haveBest {
			if action, ok := randomAction(s.rng, actions); ok {
				bestAction, haveBest = action, true
			}
		}
		if !haveBest {
			// No action can be taken at all
			break
		}

		next, nextReward, isTerminal := env.Do(state, bestAction)
		terminal = isTerminal

		tables.Freq.Visit(next)
		tables.Model.Record(state, bestAction, next)

		actions = env.Actions(state)
		if best, ok := Best(Estimates(tables.Model, tables.Utils, state,
			actions)); ok {
			tables.Utils[state] = reward +
				s.alpha(tables.Freq[state])*best.Value
		}

		nextActions := env.Actions(next)
		if best, ok := Best(Estimates(tables.Model, tables.Utils, next,
			nextActions)); ok {
			bestAction, haveBest = best.Action, true
		} else {
			haveBest = false
		}

		actions = nextActions
		state = next
		reward = nextReward

		itr++
		if itr >= s.maxItr {
			break
		}
	}
	return itr
}
