package adp

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/goadp/environment"
)

// Strategy runs single learning episodes against an environment. A
// Strategy owns its exploration scheme but never its tables: the same
// Tables are passed in on every call so that experience accumulates
// across episodes, and the caller decides when they are reset.
//
// RunEpisode runs one episode from the environment's starting state
// until the environment signals termination or the strategy's
// iteration cap is reached, mutating tables in place, and returns the
// number of iterations performed.
type Strategy[S, A comparable] interface {
	RunEpisode(env environment.Environment[S, A], tables *Tables[S, A]) int
}

// randomAction picks a uniformly random action from actions. The
// second return value is false when actions is empty.
func randomAction[A comparable](rng *rand.Rand, actions []A) (A, bool) {
	if len(actions) == 0 {
		var none A
		return none, false
	}
	return actions[rng.Intn(len(actions))], true
}
