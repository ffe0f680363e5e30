package tracker

import (
	"path/filepath"
	"testing"
)

func TestEpisodeLengthRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lengths.bin")

	tracker := NewEpisodeLength(filename)
	want := []float64{50, 32, 17, 9, 8}
	for _, value := range want {
		tracker.Track(value)
	}
	tracker.Save()

	got := LoadData(filename)
	if len(got) != len(want) {
		t.Fatalf("loaded %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d is %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReturnRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")

	tracker := NewReturn(filename)
	tracker.Track(8)
	tracker.Track(-3.5)
	tracker.Save()

	got := LoadData(filename)
	if len(got) != 2 || got[0] != 8 || got[1] != -3.5 {
		t.Errorf("loaded %v", got)
	}
}
