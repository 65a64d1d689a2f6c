package automata

import "strings"

// subsetName builds the canonical DFA state name for a set of NFA states:
// the member labels sorted and concatenated. Two subsets with the same
// membership always synthesize the same name, which is what makes the
// visited check in Determinize correct.
func subsetName(set *orderedSet[StateID]) StateID {
	labels := set.sorted()
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(string(l))
	}
	return StateID(b.String())
}

// containsFinal reports whether the subset holds at least one NFA final
// state.
func containsFinal(n *NFA, set *orderedSet[StateID]) bool {
	for _, s := range set.items() {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}

// Determinize converts the NFA into an equivalent DFA over the same alphabet
// using subset construction.
//
// Exploration is breadth-first over ε-closed subsets starting from the
// closure of the start state. A subset whose move on a symbol is empty yields
// no transition at all — the result is partial in general, and never grows a
// reject state here; Complete is a separate, explicit step. A DFA state is
// final iff its subset contains an NFA final state.
func (n *NFA) Determinize() *DFA {
	d := NewDFA()
	for _, sym := range n.Alphabet() {
		d.AddSymbol(sym)
	}

	start := n.closure(n.start)
	startName := subsetName(start)
	d.SetStart(startName)
	if containsFinal(n, start) {
		d.AddFinal(startName)
	}

	// Visited table keyed by canonical subset name; the name is the
	// structural identity of the subset.
	seen := map[StateID]bool{startName: true}
	queue := []*orderedSet[StateID]{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curName := subsetName(cur)

		for _, sym := range n.Alphabet() {
			var moved []StateID
			for _, s := range cur.items() {
				if dests := n.transitions(s, sym); dests != nil {
					moved = append(moved, dests.items()...)
				}
			}
			if len(moved) == 0 {
				continue
			}
			next := n.closure(moved...)
			nextName := subsetName(next)

			d.AddState(nextName)
			d.AddTransition(curName, sym, nextName)

			if !seen[nextName] {
				seen[nextName] = true
				queue = append(queue, next)
				if containsFinal(n, next) {
					d.AddFinal(nextName)
				}
			}
		}
	}
	return d
}
