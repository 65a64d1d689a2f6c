package automata

// NFA is a non-deterministic finite automaton. Non-determinism and ε-moves
// are both carried by delta mapping a (state, symbol) pair to a set of
// destinations, with Epsilon as a pseudo-symbol outside the alphabet.
type NFA struct {
	states   *orderedSet[StateID]
	alphabet *orderedSet[Symbol]
	start    StateID
	finals   *orderedSet[StateID]
	delta    map[StateID]map[Symbol]*orderedSet[StateID]
}

// NewNFA returns an empty NFA.
func NewNFA() *NFA {
	return &NFA{
		states:   newOrderedSet[StateID](),
		alphabet: newOrderedSet[Symbol](),
		finals:   newOrderedSet[StateID](),
		delta:    make(map[StateID]map[Symbol]*orderedSet[StateID]),
	}
}

// AddState registers a state.
func (n *NFA) AddState(s StateID) { n.states.add(s) }

// AddSymbol adds a symbol to the alphabet.
func (n *NFA) AddSymbol(s Symbol) { n.alphabet.add(s) }

// SetStart sets the start state, registering it if needed.
func (n *NFA) SetStart(s StateID) {
	n.start = s
	n.states.add(s)
}

// AddFinal marks a state as accepting, registering it if needed.
func (n *NFA) AddFinal(s StateID) {
	n.finals.add(s)
	n.states.add(s)
}

// AddTransition adds from --sym--> to. Both endpoints are registered as
// states; transition targets imply membership.
func (n *NFA) AddTransition(from StateID, sym Symbol, to StateID) {
	n.states.add(from)
	n.states.add(to)
	row, ok := n.delta[from]
	if !ok {
		row = make(map[Symbol]*orderedSet[StateID])
		n.delta[from] = row
	}
	dests, ok := row[sym]
	if !ok {
		dests = newOrderedSet[StateID]()
		row[sym] = dests
	}
	dests.add(to)
}

// States returns all states in insertion order.
func (n *NFA) States() []StateID { return n.states.items() }

// Alphabet returns the alphabet in insertion order.
func (n *NFA) Alphabet() []Symbol { return n.alphabet.items() }

// Start returns the start state.
func (n *NFA) Start() StateID { return n.start }

// Finals returns the accepting states in insertion order.
func (n *NFA) Finals() []StateID { return n.finals.items() }

// IsFinal reports whether s is accepting.
func (n *NFA) IsFinal(s StateID) bool { return n.finals.has(s) }

// transitions returns the destinations of (from, sym), or nil.
func (n *NFA) transitions(from StateID, sym Symbol) *orderedSet[StateID] {
	row, ok := n.delta[from]
	if !ok {
		return nil
	}
	return row[sym]
}

// closure computes the ε-closure of the seed states: the smallest superset
// closed under following Epsilon transitions. Explicit stack; visited states
// are not re-pushed, so this terminates on any finite NFA.
func (n *NFA) closure(seed ...StateID) *orderedSet[StateID] {
	out := newOrderedSet[StateID]()
	stack := make([]StateID, 0, len(seed))
	for _, s := range seed {
		if out.add(s) {
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if dests := n.transitions(top, Epsilon); dests != nil {
			for _, next := range dests.items() {
				if out.add(next) {
					stack = append(stack, next)
				}
			}
		}
	}
	return out
}
