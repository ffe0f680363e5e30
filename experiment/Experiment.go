// Package experiment implements functionality for running a full
// learning run: repeated learning episodes followed by a policy
// replay, with per-trial data forwarded to trackers
package experiment

import (
	"github.com/samuelfneumann/goadp/adp"
	"github.com/samuelfneumann/goadp/environment"
	"github.com/samuelfneumann/goadp/experiment/tracker"
	"github.com/samuelfneumann/goadp/utils/progressbar"
)

// Online pairs an environment with an Agent and a Strategy and runs
// the agent online. Each trial's episode length is forwarded to every
// registered tracker.Tracker as it completes; the final policy's
// replay is performed at the end of Run and its total reward is
// forwarded to the return trackers. The two streams are kept separate
// so that episode lengths and replay returns never interleave in one
// tracker.
type Online[S, A comparable] struct {
	env            environment.Environment[S, A]
	agent          *adp.Agent[S, A]
	strategy       adp.Strategy[S, A]
	trials         int
	trackers       []tracker.Tracker
	returnTrackers []tracker.Tracker
	bar            *progressbar.ProgressBar
}

// NewOnline creates and returns a new online experiment that runs
// trials learning episodes of strategy on env, tracking data with t
func NewOnline[S, A comparable](env environment.Environment[S, A],
	agent *adp.Agent[S, A], strategy adp.Strategy[S, A], trials int,
	t ...tracker.Tracker) *Online[S, A] {

	if trials <= 0 {
		trials = adp.DefaultTrials
	}
	return &Online[S, A]{
		env:      env,
		agent:    agent,
		strategy: strategy,
		trials:   trials,
		trackers: t,
	}
}

// Register registers a tracker.Tracker with the experiment so that
// data generated during the run can be tracked and saved
func (o *Online[S, A]) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RegisterReturn registers a tracker.Tracker that receives the total
// reward of the final policy replay rather than per-trial episode
// lengths
func (o *Online[S, A]) RegisterReturn(t tracker.Tracker) {
	o.returnTrackers = append(o.returnTrackers, t)
}

// ShowProgress attaches a terminal progress bar that advances once
// per trial
func (o *Online[S, A]) ShowProgress(width int) {
	o.bar = progressbar.New(width, o.trials)
}

// Run clears the agent's experience, runs all learning trials, and
// then replays the extracted policy once against the environment.
// It returns the extracted policy and the replay's Solution.
func (o *Online[S, A]) Run() (adp.Policy[S, A], adp.Solution[A]) {
	o.agent.ClearExperience()

	for trial := 0; trial < o.trials; trial++ {
		itr := o.agent.RunTrial(o.env, o.strategy)
		o.track(float64(itr))
		if o.bar != nil {
			o.bar.Increment()
		}
	}
	if o.bar != nil {
		o.bar.Close()
	}

	policy := o.agent.Policy()
	solution := o.agent.Solve(o.env, policy)
	for _, t := range o.returnTrackers {
		t.Track(solution.Reward)
	}
	return policy, solution
}

// Save saves all the data cached by the trackers to disk
func (o *Online[S, A]) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
	for _, t := range o.returnTrackers {
		t.Save()
	}
}

// track forwards a value to every registered tracker
func (o *Online[S, A]) track(value float64) {
	for _, t := range o.trackers {
		t.Track(value)
	}
}
