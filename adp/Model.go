package adp

// Frequencies counts how many times each state has been entered.
// Entries are created lazily on the first visit and only ever grow.
type Frequencies[S comparable] map[S]int

// Visit increments the visit count for state
func (f Frequencies[S]) Visit(state S) {
	f[state]++
}

// Utilities maps states to their estimated expected return. States
// that have never been updated read as 0.
type Utilities[S comparable] map[S]float64

// Get returns the utility estimate for state, defaulting to 0 for
// states that have never been updated
func (u Utilities[S]) Get(state S) float64 {
	return u[state]
}

// TransitionModel holds empirical successor counts for state-action
// pairs: how often taking an action in a state led to each successor.
// Counts only increase. The model also remembers the order in which
// actions were first recorded for each state so that estimation over
// the model's own action set is deterministic.
type TransitionModel[S, A comparable] struct {
	counts map[S]map[A]map[S]int
	order  map[S][]A
}

// NewTransitionModel returns a new, empty TransitionModel
func NewTransitionModel[S, A comparable]() *TransitionModel[S, A] {
	return &TransitionModel[S, A]{
		counts: make(map[S]map[A]map[S]int),
		order:  make(map[S][]A),
	}
}

// Record increments the count of the (state, action, next) transition
func (m *TransitionModel[S, A]) Record(state S, action A, next S) {
	actions, ok := m.counts[state]
	if !ok {
		actions = make(map[A]map[S]int)
		m.counts[state] = actions
	}

	successors, ok := actions[action]
	if !ok {
		successors = make(map[S]int)
		actions[action] = successors
		m.order[state] = append(m.order[state], action)
	}

	successors[next]++
}

// Successors returns the successor counts recorded for (state,
// action). The returned map is nil when the pair has never been
// recorded and must not be modified.
func (m *TransitionModel[S, A]) Successors(state S, action A) map[S]int {
	return m.counts[state][action]
}

// Actions returns the actions recorded for state in the order they
// were first recorded
func (m *TransitionModel[S, A]) Actions(state S) []A {
	recorded := m.order[state]
	actions := make([]A, len(recorded))
	copy(actions, recorded)
	return actions
}

// States returns every state with at least one recorded transition
func (m *TransitionModel[S, A]) States() []S {
	states := make([]S, 0, len(m.counts))
	for state := range m.counts {
		states = append(states, state)
	}
	return states
}

// Probabilities converts the successor counts for (state, action)
// into an empirical successor distribution. The returned map is nil
// when the pair has never been recorded.
func (m *TransitionModel[S, A]) Probabilities(state S, action A) map[S]float64 {
	successors := m.Successors(state, action)
	if successors == nil {
		return nil
	}

	total := 0
	for _, count := range successors {
		total += count
	}

	probabilities := make(map[S]float64, len(successors))
	for next, count := range successors {
		probabilities[next] = float64(count) / float64(total)
	}
	return probabilities
}

// Len returns the number of states with recorded transitions
func (m *TransitionModel[S, A]) Len() int {
	return len(m.counts)
}

// Tables bundles the three tables a learning run mutates: the visit
// frequencies, the empirical transition model, and the utility
// estimates. Strategies never own tables; an Agent (or a caller
// driving a strategy directly) constructs them with NewTables and
// passes the same Tables across episodes so experience accumulates.
type Tables[S, A comparable] struct {
	Freq  Frequencies[S]
	Model *TransitionModel[S, A]
	Utils Utilities[S]
}

// NewTables returns fresh, empty learning tables
func NewTables[S, A comparable]() *Tables[S, A] {
	return &Tables[S, A]{
		Freq:  make(Frequencies[S]),
		Model: NewTransitionModel[S, A](),
		Utils: make(Utilities[S]),
	}
}
