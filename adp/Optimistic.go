package adp

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/goadp/environment"
)

// Default configuration values for the Optimistic strategy
const (
	DefaultRPlus            float64 = 5.0
	DefaultNE               int     = 12
	DefaultOptimisticMaxItr int     = 10
)

// OptimisticConfig configures an Optimistic strategy. Zero values are
// replaced by the defaults above; a nil Alpha is replaced by the
// Convergent schedule.
type OptimisticConfig struct {
	RPlus  float64  // optimistic value of under-sampled actions
	NE     int      // observations before an action's estimate is trusted
	Alpha  StepSize // step-size schedule for utility updates
	MaxItr int      // iteration cap per episode
}

// Validate ensures that the configuration is valid
func (c OptimisticConfig) Validate() error {
	if c.NE < 0 {
		return fmt.Errorf("nE cannot be lower than 0")
	}
	if c.MaxItr < 0 {
		return fmt.Errorf("maxItr cannot be lower than 0")
	}
	return nil
}

// Optimistic is the optimistic-rewards exploration strategy. It never
// randomizes on its own: exploration pressure comes entirely from
// OptimisticEstimates valuing actions sampled fewer than NE times at
// the fixed constant RPlus, which steers the greedy choice toward
// under-sampled actions until they have been tried enough. A random
// action is taken only before any best action exists at all.
type Optimistic[S, A comparable] struct {
	rPlus  float64
	nE     int
	alpha  StepSize
	maxItr int

	rng *rand.Rand
}

// NewOptimistic returns a new Optimistic strategy with the given
// configuration and random seed
func NewOptimistic[S, A comparable](config OptimisticConfig,
	seed uint64) (*Optimistic[S, A], error) {

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("newoptimistic: %v", err)
	}

	if config.RPlus == 0 {
		config.RPlus = DefaultRPlus
	}
	if config.NE == 0 {
		config.NE = DefaultNE
	}
	if config.Alpha == nil {
		config.Alpha = Convergent
	}
	if config.MaxItr == 0 {
		config.MaxItr = DefaultOptimisticMaxItr
	}

	return &Optimistic[S, A]{
		rPlus:  config.RPlus,
		nE:     config.NE,
		alpha:  config.Alpha,
		maxItr: config.MaxItr,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// RunEpisode runs a single episode, mutating tables in place, and
// returns the number of iterations performed
func (o *Optimistic[S, A]) RunEpisode(
	env environment.Environment[S, A], tables *Tables[S, A]) int {

	itr := 0
	terminal := false
	state := env.StartingState()
	reward := 0.0

	actions := env.Actions(state)
	var bestAction A
	haveBest := false
	if len(tables.Utils) > 0 {
		if best, ok := Best(OptimisticEstimates(tables.Model, tables.Utils,
			state, o.rPlus, o.nE, actions)); ok {
			bestAction, haveBest = best.Action, true
		}
	}

	for !terminal {
		if !haveBest {
			if action, ok := randomAction(o.rng, actions); ok {
				bestAction, haveBest = action, true
			}
			if !haveBest {
				// No action can be taken at all
				break
			}
		}

		next, nextReward, isTerminal := env.Do(state, bestAction)
		terminal = isTerminal

		tables.Freq.Visit(next)
		tables.Model.Record(state, bestAction, next)

		actions = env.Actions(state)
		if best, ok := Best(OptimisticEstimates(tables.Model, tables.Utils,
			state, o.rPlus, o.nE, actions)); ok {
			tables.Utils[state] = reward +
				o.alpha(tables.Freq[state])*best.Value
		}

		nextActions := env.Actions(next)
		if best, ok := Best(OptimisticEstimates(tables.Model, tables.Utils,
			next, o.rPlus, o.nE, nextActions)); ok {
			bestAction, haveBest = best.Action, true
		} else {
			haveBest = false
		}

		actions = nextActions
		state = next
		reward = nextReward

		itr++
		if itr >= o.maxItr {
			break
		}
	}
	return itr
}
