package automata

import (
	"errors"
	"fmt"
)

// DeadState is the sink state Complete adds for missing transitions.
const DeadState StateID = "DEAD"

// productSep joins the two component labels of a product state. Underscore
// does not occur in grammar labels, so joined names stay readable; product
// names are only ever compared whole.
const productSep = "_"

var (
	// ErrAlphabetMismatch is returned by Union and Intersection when the
	// operand alphabets are not equal as sets.
	ErrAlphabetMismatch = errors.New("alphabet mismatch")

	// ErrNotComplete is returned by Union and Intersection when an operand
	// has an undefined transition. Complete the operands first.
	ErrNotComplete = errors.New("DFA is not complete")
)

// Complete returns a copy of d whose transition function is total: missing
// transitions are redirected to a non-final DeadState sink that self-loops
// on every symbol. Completing an already-complete DFA only adds an
// unreachable sink, which Trim removes.
func Complete(d *DFA) *DFA {
	out := NewDFA()
	for _, sym := range d.Alphabet() {
		out.AddSymbol(sym)
	}
	for _, s := range d.States() {
		out.AddState(s)
	}
	out.AddState(DeadState)
	out.SetStart(d.Start())
	for _, f := range d.Finals() {
		out.AddFinal(f)
	}

	for _, s := range out.States() {
		for _, sym := range out.Alphabet() {
			to, ok := d.Transition(s, sym)
			if !ok {
				to = DeadState
			}
			out.AddTransition(s, sym, to)
		}
	}
	return out
}

// Complement returns a DFA accepting exactly the strings over the alphabet
// that d does not accept. d is completed first; the final-state set of the
// result is the complement of the completed DFA's within its state set.
func Complement(d *DFA) *DFA {
	c := Complete(d)

	out := NewDFA()
	for _, sym := range c.Alphabet() {
		out.AddSymbol(sym)
	}
	for _, s := range c.States() {
		out.AddState(s)
	}
	out.SetStart(c.Start())
	for _, s := range c.States() {
		if !c.IsFinal(s) {
			out.AddFinal(s)
		}
	}
	for _, e := range c.Edges() {
		out.AddTransition(e.From, e.On, e.To)
	}
	return out
}

// Union returns the product DFA accepting strings accepted by d1 or d2.
func Union(d1, d2 *DFA) (*DFA, error) {
	return product(d1, d2, func(f1, f2 bool) bool { return f1 || f2 })
}

// Intersection returns the product DFA accepting strings accepted by both d1
// and d2.
func Intersection(d1, d2 *DFA) (*DFA, error) {
	return product(d1, d2, func(f1, f2 bool) bool { return f1 && f2 })
}

// product builds the full Cartesian product of the operand state sets. Both
// operands must share an alphabet and be complete; the only difference
// between union and intersection is the final-state policy.
func product(d1, d2 *DFA, isFinal func(bool, bool) bool) (*DFA, error) {
	if !d1.alphabet.equal(d2.alphabet) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrAlphabetMismatch, d1.Alphabet(), d2.Alphabet())
	}
	if !d1.IsComplete() {
		return nil, fmt.Errorf("first operand: %w", ErrNotComplete)
	}
	if !d2.IsComplete() {
		return nil, fmt.Errorf("second operand: %w", ErrNotComplete)
	}

	out := NewDFA()
	for _, sym := range d1.Alphabet() {
		out.AddSymbol(sym)
	}

	pair := func(q1, q2 StateID) StateID {
		return q1 + productSep + q2
	}

	for _, q1 := range d1.States() {
		for _, q2 := range d2.States() {
			name := pair(q1, q2)
			out.AddState(name)
			if isFinal(d1.IsFinal(q1), d2.IsFinal(q2)) {
				out.AddFinal(name)
			}
		}
	}
	out.SetStart(pair(d1.Start(), d2.Start()))

	for _, q1 := range d1.States() {
		for _, q2 := range d2.States() {
			from := pair(q1, q2)
			for _, sym := range d1.Alphabet() {
				to1, _ := d1.Transition(q1, sym)
				to2, _ := d2.Transition(q2, sym)
				out.AddTransition(from, sym, pair(to1, to2))
			}
		}
	}
	return out, nil
}
