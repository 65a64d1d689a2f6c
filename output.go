package automata

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport writes the canonical report for one DFA:
//
//	N:
//	# States
//	S A B
//	# Alphabet
//	a b
//	# Start State
//	S
//	# Final States
//	A
//	# Transitions
//	S a A
//	...
//
// States are sorted with the start state forced first, the alphabet keeps
// its insertion order, final states are sorted, and transitions are
// enumerated by the state list then the alphabet order.
func WriteReport(w io.Writer, id int, d *DFA) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:\n", id)

	b.WriteString("# States\n")
	writeIDs(&b, d.SortedStates())

	b.WriteString("\n# Alphabet\n")
	syms := d.Alphabet()
	for i, s := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(s))
	}
	b.WriteByte('\n')

	b.WriteString("\n# Start State\n")
	b.WriteString(string(d.Start()))
	b.WriteByte('\n')

	b.WriteString("\n# Final States\n")
	writeIDs(&b, d.SortedFinals())

	b.WriteString("\n# Transitions\n")
	for _, e := range d.Edges() {
		fmt.Fprintf(&b, "%s %s %s\n", e.From, e.On, e.To)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteReports writes the report for every result, separated by blank lines.
// A failed case is reported with its error in place of a DFA; later cases
// still appear.
func WriteReports(w io.Writer, results []Result) error {
	for i, res := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if res.Err != nil {
			if _, err := fmt.Fprintf(w, "%d: error: %v\n", res.Case.ID, res.Err); err != nil {
				return err
			}
			continue
		}
		if err := WriteReport(w, res.Case.ID, res.DFA); err != nil {
			return err
		}
	}
	return nil
}

func writeIDs(b *strings.Builder, ids []StateID) {
	for i, s := range ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(s))
	}
	b.WriteByte('\n')
}
