package adp

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/goadp/environment"
)

// Default configuration values shared by the random-exploration
// strategies
const (
	DefaultT      float64 = 1.0
	DefaultTStep  float64 = 0.8
	DefaultMaxItr int     = 50
)

// RandomExplorationConfig configures a RandomExploration strategy.
// Zero values are replaced by the defaults above; a nil Alpha is
// replaced by the Convergent schedule.
type RandomExplorationConfig struct {
	T      float64  // initial value of the exploration counter
	TStep  float64  // increment of the counter per iteration
	Alpha  StepSize // step-size schedule for utility updates
	MaxItr int      // iteration cap per episode
}

// Validate ensures that the configuration is valid
func (c RandomExplorationConfig) Validate() error {
	if c.T < 0 {
		return fmt.Errorf("t cannot be lower than 0")
	}
	if c.TStep < 0 {
		return fmt.Errorf("tStep cannot be lower than 0")
	}
	if c.MaxItr < 0 {
		return fmt.Errorf("maxItr cannot be lower than 0")
	}
	return nil
}

// RandomExploration is the GLIE exploration strategy: at every step
// the agent takes a uniformly random action with probability
// 1/ln(t+1), and the currently best-known action otherwise. The
// counter t starts at T on each episode and grows by TStep per
// iteration, so the strategy becomes greedy over an episode.
type RandomExploration[S, A comparable] struct {
	t      float64
	tStep  float64
	alpha  StepSize
	maxItr int

	rng     *rand.Rand
	uniform distuv.Uniform
}

// NewRandomExploration returns a new RandomExploration strategy with
// the given configuration and random seed
func NewRandomExploration[S, A comparable](config RandomExplorationConfig,
	seed uint64) (*RandomExploration[S, A], error) {

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("newrandomexploration: %v", err)
	}

	if config.T == 0 {
		config.T = DefaultT
	}
	if config.TStep == 0 {
		config.TStep = DefaultTStep
	}
	if config.Alpha == nil {
		config.Alpha = Convergent
	}
	if config.MaxItr == 0 {
		config.MaxItr = DefaultMaxItr
	}

	source := rand.NewSource(seed)
	return &RandomExploration[S, A]{
		t:       config.T,
		tStep:   config.TStep,
		alpha:   config.Alpha,
		maxItr:  config.MaxItr,
		rng:     rand.New(source),
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: source},
	}, nil
}

// RunEpisode runs a single episode, mutating tables in place, and
// returns the number of iterations performed
func (r *RandomExploration[S, A]) RunEpisode(
	env environment.Environment[S, A], tables *Tables[S, A]) int {

	t := r.t
	itr := 0
	terminal := false
	state := env.StartingState()

	// The reward paired with a utility update is the one obtained on
	// the previous step, starting at zero.
	reward := 0.0

	actions := env.Actions(state)
	var bestAction A
	haveBest := false
	if len(tables.Utils) > 0 {
		// Warm start from earlier episodes' utilities
		if best, ok := Best(Estimates(tables.Model, tables.Utils, state,
			actions)); ok {
			bestAction, haveBest = best.Action, true
		}
	}

	for !terminal {
		if r.uniform.Rand() < 1.0/math.Log(t+1) || !haveBest {
			if action, ok := randomAction(r.rng, actions); ok {
				bestAction, haveBest = action, true
			}
		}
		if !haveBest {
			// No action can be taken at all
			break
		}

		next, nextReward, isTerminal := env.Do(state, bestAction)
		terminal = isTerminal

		// Credit assignment is keyed on the state being entered
		tables.Freq.Visit(next)
		tables.Model.Record(state, bestAction, next)

		actions = env.Actions(state)
		if best, ok := Best(Estimates(tables.Model, tables.Utils, state,
			actions)); ok {
			tables.Utils[state] = reward +
				r.alpha(tables.Freq[state])*best.Value
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

		t += r.tStep
		itr++
		if itr >= r.maxItr {
			break
		}
	}
	return itr
}
