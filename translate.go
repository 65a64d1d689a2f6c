package automata

import "fmt"

// finalStateFor names the synthesized accepting state for a grammar. The name
// is derived from the grammar name so that several grammars in one pipeline
// never share a final state.
func finalStateFor(g *Grammar) StateID {
	return StateID("F_" + g.Name)
}

// NFA translates the grammar into an equivalent NFA.
//
// The alphabet is the grammar's terminal set and the start state is the start
// non-terminal. A single synthesized final state is added, and each rule
// becomes one transition:
//
//	A → ε   ε-transition from A to the final state
//	A → a   transition from A to the final state on a
//	A → aB  transition from A to B on a
//
// Only rule left-hand sides, transition targets, the start symbol and the
// final state populate the state set; declared variables alone create no
// states. Any other rule shape fails with ErrUnsupportedProduction.
func (g *Grammar) NFA() (*NFA, error) {
	n := NewNFA()
	for _, sym := range g.Alphabet() {
		n.AddSymbol(sym)
	}
	n.SetStart(g.Start)

	final := finalStateFor(g)
	n.AddFinal(final)

	for _, r := range g.Rules {
		from := StateID(r.Left)
		switch r.shape() {
		case shapeEpsilon:
			n.AddTransition(from, Epsilon, final)
		case shapeTerminal:
			n.AddTransition(from, Symbol(r.Right), final)
		case shapeStep:
			runes := []rune(r.Right)
			n.AddTransition(from, Symbol(runes[0]), StateID(runes[1]))
		default:
			return nil, fmt.Errorf("grammar %s: rule %q: %w", g.Name, r, ErrUnsupportedProduction)
		}
	}
	return n, nil
}
