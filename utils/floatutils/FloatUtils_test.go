package floatutils

import "testing"

func TestArgMax(t *testing.T) {
	if got := ArgMax(1, 3, 2); got != 1 {
		t.Errorf("got index %d, want 1", got)
	}
}

func TestArgMaxFirstOnTies(t *testing.T) {
	if got := ArgMax(2, 5, 5, 1); got != 1 {
		t.Errorf("got index %d, want the first maximum at 1", got)
	}
}

func TestMax(t *testing.T) {
	if got := Max(-2, 7, 3); got != 7 {
		t.Errorf("got %v, want 7", got)
	}
}

func TestEqualWithin(t *testing.T) {
	if !EqualWithin(1.0, 1.05, 0.1) {
		t.Error("values within tolerance reported unequal")
	}
	if EqualWithin(1.0, 1.2, 0.1) {
		t.Error("values outside tolerance reported equal")
	}
}
