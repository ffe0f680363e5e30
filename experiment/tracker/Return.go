package tracker

// Return tracks the total reward of every policy replay in a run and
// saves the returns to a file
type Return struct {
	filename string
	returns  []float64
}

// NewReturn returns a new Return tracker that saves to filename
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track caches the return of a completed replay
func (r *Return) Track(value float64) {
	r.returns = append(r.returns, value)
}

// Save saves all cached returns to disk
func (r *Return) Save() {
	save(r.filename, r.returns)
}
