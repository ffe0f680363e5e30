// Package boxworld implements 2D box-pushing gridworld environments
// with discrete, enumerable states
package boxworld

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// State is a cell of the grid. X grows to the east and Y to the
// north, with (0, 0) the south-west corner.
type State struct {
	X, Y int
}

// Action is a compass move on the grid
type Action int

const (
	North Action = iota
	South
	East
	West
)

func (a Action) String() string {
	switch a {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// BoxWorld is a rectangular gridworld with walls, a per-step penalty,
// and a single terminal goal cell with a fixed reward. Moves that
// would leave the grid or enter a wall leave the agent in place. With
// a non-zero slip probability, a move slips to one of the two
// perpendicular directions, making transitions stochastic.
type BoxWorld struct {
	rows, cols int
	start      State
	goal       State
	walls      map[State]bool

	stepReward float64
	goalReward float64

	slip     float64
	slipDist distuv.Categorical
}

// New returns a new BoxWorld with the given dimensions, start and
// goal cells, walls, rewards, slip probability, and random seed. The
// slip probability must lie in [0, 1); the remaining probability mass
// goes to the intended direction, with slip split evenly between the
// two perpendicular directions.
func New(rows, cols int, start, goal State, walls []State, stepReward,
	goalReward, slip float64, seed uint64) (*BoxWorld, error) {

	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("new: dimensions %dx%d too small", rows,
			cols)
	}
	if slip < 0 || slip >= 1 {
		return nil, fmt.Errorf("new: slip %v not in [0, 1)", slip)
	}

	b := &BoxWorld{
		rows:       rows,
		cols:       cols,
		start:      start,
		goal:       goal,
		walls:      make(map[State]bool, len(walls)),
		stepReward: stepReward,
		goalReward: goalReward,
		slip:       slip,
	}

	if !b.inBounds(start) {
		return nil, fmt.Errorf("new: start %v out of bounds", start)
	}
	if !b.inBounds(goal) {
		return nil, fmt.Errorf("new: goal %v out of bounds", goal)
	}

	for _, wall := range walls {
		if !b.inBounds(wall) {
			return nil, fmt.Errorf("new: wall %v out of bounds", wall)
		}
		if wall == start || wall == goal {
			return nil, fmt.Errorf("new: wall %v blocks start or goal",
				wall)
		}
		b.walls[wall] = true
	}

	if slip > 0 {
		weights := []float64{1 - slip, slip / 2, slip / 2}
		b.slipDist = distuv.NewCategorical(weights, rand.NewSource(seed))
	}

	return b, nil
}

// StartingState returns the starting cell of the grid
func (b *BoxWorld) StartingState() State {
	return b.start
}

// Actions returns the four compass moves. Moves are offered in every
// cell; the goal cell is terminal so no action is ever executed there.
func (b *BoxWorld) Actions(state State) []Action {
	return []Action{North, South, East, West}
}

// Do executes action in state. Reaching the goal cell yields the goal
// reward and terminates the episode; every other transition yields
// the step reward.
func (b *BoxWorld) Do(state State, action Action) (State, float64, bool) {
	if state == b.goal {
		return state, 0, true
	}

	effective := action
	if b.slip > 0 {
		switch b.slipDist.Rand() {
		case 1:
			effective = perpendicular(action, false)
		case 2:
			effective = perpendicular(action, true)
		}
	}

	next := b.move(state, effective)
	if next == b.goal {
		return next, b.goalReward, true
	}
	return next, b.stepReward, false
}

// move applies a direction, staying in place on walls and grid edges
func (b *BoxWorld) move(state State, action Action) State {
	next := state
	switch action {
	case North:
		next.Y++
	case South:
		next.Y--
	case East:
		next.X++
	case West:
		next.X--
	}

	if !b.inBounds(next) || b.walls[next] {
		return state
	}
	return next
}

func (b *BoxWorld) inBounds(state State) bool {
	return state.X >= 0 && state.X < b.cols &&
		state.Y >= 0 && state.Y < b.rows
}

// perpendicular returns the direction 90 degrees from action,
// clockwise when cw is true
func perpendicular(action Action, cw bool) Action {
	var left, right Action
	switch action {
	case North:
		left, right = West, East
	case South:
		left, right = East, West
	case East:
		left, right = North, South
	default:
		left, right = South, North
	}

	if cw {
		return right
	}
	return left
}

// PrintState renders the grid with the agent at state: 'A' the agent,
// 'G' the goal, '#' walls, '.' open cells
func (b *BoxWorld) PrintState(state State) {
	for y := b.rows - 1; y >= 0; y-- {
		for x := 0; x < b.cols; x++ {
			cell := State{x, y}
			switch {
			case cell == state:
				fmt.Print("A")
			case cell == b.goal:
				fmt.Print("G")
			case b.walls[cell]:
				fmt.Print("#")
			default:
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

// PrintPolicy renders a policy over the grid as arrows, with '#' for
// walls, 'G' for the goal, and ' ' for cells the policy has no entry
// for
func (b *BoxWorld) PrintPolicy(policy map[State]Action) {
	arrows := map[Action]string{
		North: "^",
		South: "v",
		East:  ">",
		West:  "<",
	}

	for y := b.rows - 1; y >= 0; y-- {
		for x := 0; x < b.cols; x++ {
			cell := State{x, y}
			switch {
			case cell == b.goal:
				fmt.Print("G")
			case b.walls[cell]:
				fmt.Print("#")
			default:
				if action, ok := policy[cell]; ok {
					fmt.Print(arrows[action])
				} else {
					fmt.Print(" ")
				}
			}
		}
		fmt.Println()
	}
	fmt.Println()
}
