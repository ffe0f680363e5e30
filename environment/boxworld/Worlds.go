package boxworld

// BoxWorld1 returns a small deterministic 4x4 world: start in the
// south-west corner, goal worth 10 in the north-east corner, two
// walls forcing a detour, and a -1 step penalty
func BoxWorld1() *BoxWorld {
	walls := []State{{1, 1}, {2, 1}}
	b, err := New(4, 4, State{0, 0}, State{3, 3}, walls, -1, 10, 0, 0)
	if err != nil {
		panic(err)
	}
	return b
}

// BoxWorld2 returns a larger 5x5 world with a wall column and a 10%
// slip probability, so transitions are stochastic
func BoxWorld2(seed uint64) *BoxWorld {
	walls := []State{{2, 1}, {2, 2}, {2, 3}}
	b, err := New(5, 5, State{0, 0}, State{4, 4}, walls, -0.4, 10, 0.1,
		seed)
	if err != nil {
		panic(err)
	}
	return b
}
