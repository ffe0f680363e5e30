package adp

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTransitionModelProbabilitiesSumToOne(t *testing.T) {
	model := NewTransitionModel[int, string]()
	model.Record(0, "a", 1)
	model.Record(0, "a", 2)
	model.Record(0, "a", 2)
	model.Record(0, "b", 3)
	model.Record(4, "a", 0)

	for _, state := range model.States() {
		for _, action := range model.Actions(state) {
			probabilities := model.Probabilities(state, action)

			values := make([]float64, 0, len(probabilities))
			for _, p := range probabilities {
				values = append(values, p)
			}

			if sum := floats.Sum(values); !scalar.EqualWithinAbs(sum, 1,
				1e-12) {
				t.Errorf("probabilities for (%v, %v) sum to %v", state,
					action, sum)
			}
		}
	}
}

func TestTransitionModelUnseenPair(t *testing.T) {
	model := NewTransitionModel[int, string]()
	model.Record(0, "a", 1)

	if successors := model.Successors(0, "b"); successors != nil {
		t.Errorf("unseen action has successors %v", successors)
	}
	if probabilities := model.Probabilities(9, "a"); probabilities != nil {
		t.Errorf("unseen state has probabilities %v", probabilities)
	}
}

func TestTransitionModelActionOrderStable(t *testing.T) {
	model := NewTransitionModel[int, string]()
	model.Record(0, "c", 1)
	model.Record(0, "a", 1)
	model.Record(0, "b", 1)
	model.Record(0, "a", 2) // repeat must not reorder

	want := []string{"c", "a", "b"}
	actions := model.Actions(0)
	if len(actions) != len(want) {
		t.Fatalf("got %d actions, want %d", len(actions), len(want))
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("action %d is %v, want %v", i, actions[i], want[i])
		}
	}
}

func TestUtilitiesDefaultToZero(t *testing.T) {
	utils := make(Utilities[string])
	if u := utils.Get("never seen"); u != 0 {
		t.Errorf("unseen state has utility %v", u)
	}
}

func TestFrequenciesVisit(t *testing.T) {
	freq := make(Frequencies[int])
	freq.Visit(3)
	freq.Visit(3)
	freq.Visit(5)

	if freq[3] != 2 || freq[5] != 1 {
		t.Errorf("got counts %v", freq)
	}
	if freq[7] != 0 {
		t.Errorf("unvisited state has count %d", freq[7])
	}
}

func TestNewTablesEmpty(t *testing.T) {
	tables := NewTables[int, int]()
	if len(tables.Freq) != 0 || len(tables.Utils) != 0 ||
		tables.Model.Len() != 0 {
		t.Error("fresh tables are not empty")
	}
}
