package automata

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// StartName is the reserved label the start state receives from
// RenameReadable.
const StartName StateID = "S"

// Trim removes every state not reachable from the start state, restricting
// states, finals and transitions to the reachable set. The start state is
// reachable by construction and always retained; unreachable final states
// are silently dropped. Trim mutates d.
func (d *DFA) Trim() {
	reachable := newOrderedSet[StateID](d.start)
	queue := []StateID{d.start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		row := d.delta[cur]
		syms := maps.Keys(row)
		slices.Sort(syms)
		for _, sym := range syms {
			if next := row[sym]; reachable.add(next) {
				queue = append(queue, next)
			}
		}
	}

	states := newOrderedSet[StateID]()
	finals := newOrderedSet[StateID]()
	for _, s := range d.states.items() {
		if !reachable.has(s) {
			delete(d.delta, s)
			continue
		}
		states.add(s)
		if d.finals.has(s) {
			finals.add(s)
		}
	}
	d.states = states
	d.finals = finals
}

// RenameReadable relabels every state with a short deterministic name: the
// start state becomes StartName, and the remaining states, visited in sorted
// order of their old labels, take A, B, C, ... skipping S. Past Z the
// sequence continues A1, B1, ... (again skipping S each round). Renaming
// mutates d.
func (d *DFA) RenameReadable() {
	names := make(map[StateID]StateID, d.states.len())
	names[d.start] = StartName

	next := newReadableNamer()
	for _, s := range d.states.sorted() {
		if s == d.start {
			continue
		}
		names[s] = next()
	}
	d.applyRename(names)
}

// Rename applies a caller-supplied partial old→new label map; states absent
// from the map keep their old label. The map is applied to states, finals,
// and both ends of every transition in one rebuild, so no partial renaming
// is ever observable. Renaming mutates d.
func (d *DFA) Rename(names map[StateID]StateID) {
	full := make(map[StateID]StateID, d.states.len())
	for _, s := range d.states.items() {
		if to, ok := names[s]; ok {
			full[s] = to
		} else {
			full[s] = s
		}
	}
	d.applyRename(full)
}

// applyRename rebuilds the automaton under a total old→new map. Targets must
// be relabeled atomically with their sources, hence the full rebuild rather
// than in-place edits.
func (d *DFA) applyRename(names map[StateID]StateID) {
	states := newOrderedSet[StateID]()
	finals := newOrderedSet[StateID]()
	delta := make(map[StateID]map[Symbol]StateID, len(d.delta))

	for _, old := range d.states.items() {
		s := names[old]
		states.add(s)
		if d.finals.has(old) {
			finals.add(s)
		}
		row := d.delta[old]
		if len(row) == 0 {
			continue
		}
		// A custom map may collapse states; merge rows rather than clobber.
		newRow, ok := delta[s]
		if !ok {
			newRow = make(map[Symbol]StateID, len(row))
			delta[s] = newRow
		}
		syms := maps.Keys(row)
		slices.Sort(syms)
		for _, sym := range syms {
			newRow[sym] = names[row[sym]]
		}
	}

	d.states = states
	d.finals = finals
	d.start = names[d.start]
	d.delta = delta
}

// newReadableNamer returns a generator for the A, B, ..., Z, A1, B1, ...
// sequence, skipping the reserved start letter in every round.
func newReadableNamer() func() StateID {
	letter, round := 0, 0
	return func() StateID {
		for {
			c, r := rune('A'+letter), round
			letter++
			if letter == 26 {
				letter = 0
				round++
			}
			if StateID(c) == StartName {
				continue
			}
			if r == 0 {
				return StateID(c)
			}
			return StateID(fmt.Sprintf("%c%d", c, r))
		}
	}
}
