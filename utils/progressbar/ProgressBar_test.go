package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBarFills(t *testing.T) {
	var out bytes.Buffer
	bar := NewWithWriter(10, 4, &out)

	for i := 0; i < 4; i++ {
		bar.Increment()
	}
	bar.Close()

	if !strings.Contains(out.String(), "100%") {
		t.Errorf("bar never reached 100%%: %q", out.String())
	}
	if !strings.Contains(out.String(), strings.Repeat("=", 10)) {
		t.Errorf("bar never filled: %q", out.String())
	}
}

func TestProgressBarIgnoresExtraIncrements(t *testing.T) {
	var out bytes.Buffer
	bar := NewWithWriter(10, 2, &out)

	bar.Increment()
	bar.Increment()
	before := out.Len()
	bar.Increment() // past max
	if out.Len() != before {
		t.Error("increment past max redrew the bar")
	}
	bar.Close()
}
