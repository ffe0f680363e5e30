package tracker

// EpisodeLength tracks the length of every learning episode in a run
// and saves the lengths to a file
type EpisodeLength struct {
	filename string
	lengths  []float64
}

// NewEpisodeLength returns a new EpisodeLength tracker that saves to
// filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the length of a completed episode
func (e *EpisodeLength) Track(value float64) {
	e.lengths = append(e.lengths, value)
}

// Save saves all cached episode lengths to disk
func (e *EpisodeLength) Save() {
	save(e.filename, e.lengths)
}
