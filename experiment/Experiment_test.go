package experiment

import (
	"testing"

	"github.com/samuelfneumann/goadp/adp"
	"github.com/samuelfneumann/goadp/environment/chain"
)

// countingTracker records how many values it was handed
type countingTracker struct {
	values []float64
	saved  bool
}

func (c *countingTracker) Track(value float64) {
	c.values = append(c.values, value)
}

func (c *countingTracker) Save() {
	c.saved = true
}

func TestOnlineTracksEveryTrial(t *testing.T) {
	env, err := chain.New(3, -1, 10)
	if err != nil {
		t.Fatal(err)
	}

	strategy, err := adp.NewRandomExploration[int, chain.Action](
		adp.RandomExplorationConfig{MaxItr: 20}, 42)
	if err != nil {
		t.Fatal(err)
	}

	agent := adp.NewAgent[int, chain.Action](42)
	counter := &countingTracker{}
	e := NewOnline[int, chain.Action](env, agent, strategy, 30, counter)

	policy, solution := e.Run()
	e.Save()

	if len(counter.values) != 30 {
		t.Errorf("tracked %d trials, want 30", len(counter.values))
	}
	if !counter.saved {
		t.Error("Save did not reach the tracker")
	}
	if len(policy) == 0 {
		t.Error("run produced an empty policy")
	}
	if len(solution.Actions) == 0 {
		t.Error("run produced an empty replay")
	}
}

func TestOnlineForwardsSolveReturn(t *testing.T) {
	env, err := chain.New(3, -1.5, 10)
	if err != nil {
		t.Fatal(err)
	}

	strategy, err := adp.NewRandomExploration[int, chain.Action](
		adp.RandomExplorationConfig{MaxItr: 20}, 42)
	if err != nil {
		t.Fatal(err)
	}

	agent := adp.NewAgent[int, chain.Action](42)
	lengths := &countingTracker{}
	returns := &countingTracker{}
	e := NewOnline[int, chain.Action](env, agent, strategy, 10, lengths)
	e.RegisterReturn(returns)

	_, solution := e.Run()
	e.Save()

	// Episode lengths and replay returns stay on separate streams
	if len(lengths.values) != 10 {
		t.Errorf("length tracker got %d values, want 10",
			len(lengths.values))
	}
	if len(returns.values) != 1 {
		t.Fatalf("return tracker got %d values, want the single solve "+
			"return", len(returns.values))
	}
	if returns.values[0] != solution.Reward {
		t.Errorf("return tracker got %v, want the solve return %v",
			returns.values[0], solution.Reward)
	}
	if !returns.saved {
		t.Error("Save did not reach the return tracker")
	}
}

func TestOnlineDefaultTrials(t *testing.T) {
	env, err := chain.New(2, -1, 10)
	if err != nil {
		t.Fatal(err)
	}

	strategy, err := adp.NewStateScaled[int, chain.Action](
		adp.StateScaledConfig{MaxItr: 10}, 1)
	if err != nil {
		t.Fatal(err)
	}

	agent := adp.NewAgent[int, chain.Action](1)
	counter := &countingTracker{}
	e := NewOnline[int, chain.Action](env, agent, strategy, 0, counter)
	e.Run()

	if len(counter.values) != adp.DefaultTrials {
		t.Errorf("tracked %d trials, want %d", len(counter.values),
			adp.DefaultTrials)
	}
}
