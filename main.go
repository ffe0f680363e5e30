package main

import (
	"fmt"

	"github.com/samuelfneumann/goadp/adp"
	"github.com/samuelfneumann/goadp/environment/boxworld"
	"github.com/samuelfneumann/goadp/experiment"
	"github.com/samuelfneumann/goadp/experiment/tracker"
)

func main() {
	var seed uint64 = 192382

	// Create the stochastic box world
	b := boxworld.BoxWorld2(seed)

	// Create the GLIE random-exploration strategy
	config := adp.RandomExplorationConfig{T: 1, TStep: 0.8, MaxItr: 50}
	strategy, err := adp.NewRandomExploration[boxworld.State,
		boxworld.Action](config, seed)
	if err != nil {
		panic(err)
	}

	// Learn for 150 trials, tracking episode lengths
	agent := adp.NewAgent[boxworld.State, boxworld.Action](seed)
	lengths := tracker.NewEpisodeLength("./data.bin")
	e := experiment.NewOnline[boxworld.State, boxworld.Action](b, agent,
		strategy, 150, lengths)
	e.RegisterReturn(tracker.NewReturn("./returns.bin"))
	e.ShowProgress(40)

	policy, solution := e.Run()
	e.Save()

	b.PrintPolicy(policy)
	fmt.Println("Total reward:", solution.Reward)

	data := tracker.LoadData("./data.bin")
	fmt.Println(data[len(data)-10:])
}
