// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ProgressBar prints a textual progress bar. Increment should be
// called once per completed unit of work; the bar is redrawn in place
// on each call and finished with Close.
type ProgressBar struct {
	// width determines the number of characters wide that the
	// progress bar should be
	width int

	// max determines the number of times Increment should be called
	// before the progress bar reaches 100%
	max int

	current int
	out     io.Writer
	closed  bool
}

// New returns a new progress bar that is width characters wide and
// reaches 100% capacity after max Increment calls
func New(width, max int) *ProgressBar {
	return &ProgressBar{width: width, max: max, out: os.Stdout}
}

// NewWithWriter returns a new progress bar writing to out instead of
// standard output
func NewWithWriter(width, max int, out io.Writer) *ProgressBar {
	return &ProgressBar{width: width, max: max, out: out}
}

// Increment increments the internal progress counter and redraws the
// bar
func (p *ProgressBar) Increment() {
	if p.closed || p.current >= p.max {
		return
	}
	p.current++
	p.draw()
}

// Close finishes the bar, moving the terminal to the next line. The
// bar cannot be used after Close.
func (p *ProgressBar) Close() {
	if p.closed {
		return
	}
	p.closed = true
	fmt.Fprintln(p.out)
}

func (p *ProgressBar) draw() {
	filled := p.width * p.current / p.max
	bar := strings.Repeat("=", filled) +
		strings.Repeat(" ", p.width-filled)
	fmt.Fprintf(p.out, "\r[%v] %3.0f%%", bar,
		100*float64(p.current)/float64(p.max))
}
