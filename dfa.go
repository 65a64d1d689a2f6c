package automata

import "slices"

// DFA is a deterministic finite automaton. The transition function may be
// partial until Complete is applied.
type DFA struct {
	states   *orderedSet[StateID]
	alphabet *orderedSet[Symbol]
	start    StateID
	finals   *orderedSet[StateID]
	delta    map[StateID]map[Symbol]StateID
}

// Edge is one entry of the transition relation.
type Edge struct {
	From StateID
	On   Symbol
	To   StateID
}

// NewDFA returns an empty DFA.
func NewDFA() *DFA {
	return &DFA{
		states:   newOrderedSet[StateID](),
		alphabet: newOrderedSet[Symbol](),
		finals:   newOrderedSet[StateID](),
		delta:    make(map[StateID]map[Symbol]StateID),
	}
}

// AddState registers a state.
func (d *DFA) AddState(s StateID) { d.states.add(s) }

// AddSymbol adds a symbol to the alphabet.
func (d *DFA) AddSymbol(s Symbol) { d.alphabet.add(s) }

// SetStart sets the start state, registering it if needed.
func (d *DFA) SetStart(s StateID) {
	d.start = s
	d.states.add(s)
}

// AddFinal marks a state as accepting, registering it if needed.
func (d *DFA) AddFinal(s StateID) {
	d.finals.add(s)
	d.states.add(s)
}

// AddTransition sets δ(from, sym) = to, overwriting any previous target, and
// registers both endpoints.
func (d *DFA) AddTransition(from StateID, sym Symbol, to StateID) {
	d.states.add(from)
	d.states.add(to)
	row, ok := d.delta[from]
	if !ok {
		row = make(map[Symbol]StateID)
		d.delta[from] = row
	}
	row[sym] = to
}

// States returns all states in insertion order.
func (d *DFA) States() []StateID { return d.states.items() }

// SortedStates returns the states sorted, with the start state forced first.
// This is the order reports enumerate states in.
func (d *DFA) SortedStates() []StateID {
	out := d.states.sorted()
	if i := slices.Index(out, d.start); i > 0 {
		out = slices.Delete(out, i, i+1)
		out = slices.Insert(out, 0, d.start)
	}
	return out
}

// Alphabet returns the alphabet in insertion order.
func (d *DFA) Alphabet() []Symbol { return d.alphabet.items() }

// Start returns the start state.
func (d *DFA) Start() StateID { return d.start }

// Finals returns the accepting states in insertion order.
func (d *DFA) Finals() []StateID { return d.finals.items() }

// SortedFinals returns the accepting states in ascending order.
func (d *DFA) SortedFinals() []StateID { return d.finals.sorted() }

// IsFinal reports whether s is accepting.
func (d *DFA) IsFinal(s StateID) bool { return d.finals.has(s) }

// Transition returns δ(from, sym) and whether it is defined.
func (d *DFA) Transition(from StateID, sym Symbol) (StateID, bool) {
	row, ok := d.delta[from]
	if !ok {
		return "", false
	}
	to, ok := row[sym]
	return to, ok
}

// Edges enumerates the transition relation ordered by SortedStates, then by
// alphabet insertion order.
func (d *DFA) Edges() []Edge {
	var out []Edge
	for _, from := range d.SortedStates() {
		for _, sym := range d.alphabet.items() {
			if to, ok := d.Transition(from, sym); ok {
				out = append(out, Edge{From: from, On: sym, To: to})
			}
		}
	}
	return out
}

// IsComplete reports whether every (state, symbol) pair has a transition.
func (d *DFA) IsComplete() bool {
	for _, s := range d.states.items() {
		for _, sym := range d.alphabet.items() {
			if _, ok := d.Transition(s, sym); !ok {
				return false
			}
		}
	}
	return true
}

// Accepts runs the DFA over the input. A missing transition rejects
// immediately, so partial DFAs can be simulated directly.
func (d *DFA) Accepts(input ...Symbol) bool {
	cur := d.start
	for _, sym := range input {
		next, ok := d.Transition(cur, sym)
		if !ok {
			return false
		}
		cur = next
	}
	return d.finals.has(cur)
}

// AcceptsString is Accepts over the runes of s. Symbols in this pipeline are
// single runes, so this is the convenient form for tests and tools.
func (d *DFA) AcceptsString(s string) bool {
	syms := make([]Symbol, 0, len(s))
	for _, r := range s {
		syms = append(syms, Symbol(r))
	}
	return d.Accepts(syms...)
}
