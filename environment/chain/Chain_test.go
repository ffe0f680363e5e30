package chain

import "testing"

func TestAdvanceToGoal(t *testing.T) {
	c, err := New(3, -1, 10)
	if err != nil {
		t.Fatal(err)
	}

	state := c.StartingState()
	total := 0.0
	steps := 0
	terminal := false

	for !terminal {
		var reward float64
		state, reward, terminal = c.Do(state, Advance)
		total += reward
		steps++
	}

	if steps != 3 {
		t.Errorf("took %d steps, want 3", steps)
	}
	if want := -1.0 + -1.0 + 10.0; total != want {
		t.Errorf("total reward %v, want %v", total, want)
	}
	if state != 3 {
		t.Errorf("finished in state %d, want 3", state)
	}
}

func TestRetreatAtStartStays(t *testing.T) {
	c, err := New(3, -1, 10)
	if err != nil {
		t.Fatal(err)
	}

	next, reward, terminal := c.Do(0, Retreat)
	if next != 0 || reward != -1 || terminal {
		t.Errorf("got (%v, %v, %v), want (0, -1, false)", next, reward,
			terminal)
	}
}

func TestTerminalStateHasNoActions(t *testing.T) {
	c, err := New(2, -1, 10)
	if err != nil {
		t.Fatal(err)
	}

	if actions := c.Actions(2); len(actions) != 0 {
		t.Errorf("terminal state offers %v", actions)
	}
	if actions := c.Actions(1); len(actions) != 2 {
		t.Errorf("non-terminal state offers %v", actions)
	}
}

func TestInvalidLength(t *testing.T) {
	if _, err := New(0, -1, 10); err == nil {
		t.Error("zero-length chain accepted")
	}
}
