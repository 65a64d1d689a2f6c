package automata

import (
	"fmt"
	"io"
	"slices"

	"golang.org/x/exp/maps"
)

// WriteDot writes a digraph representing the DFA to the writer (in GraphViz
// syntax). Final states are drawn as double circles.
func (d *DFA) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tinitial [label=\"\", style=invis];\n\tinitial -> %q;\n", d.Start()); err != nil {
		return err
	}
	for _, s := range d.SortedStates() {
		shape := "circle"
		if d.IsFinal(s) {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\t%q [shape=%s];\n", s, shape); err != nil {
			return err
		}
	}
	for _, e := range d.Edges() {
		if _, err := fmt.Fprintf(w, "\t%q -> %q [label=%q];\n", e.From, e.To, e.On); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// WriteDot writes a digraph representing the NFA to the writer (in GraphViz
// syntax). ε-edges are labelled with the epsilon marker.
func (n *NFA) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tinitial [label=\"\", style=invis];\n\tinitial -> %q;\n", n.Start()); err != nil {
		return err
	}
	for _, s := range n.States() {
		shape := "circle"
		if n.IsFinal(s) {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\t%q [shape=%s];\n", s, shape); err != nil {
			return err
		}
	}
	for _, from := range n.States() {
		row := n.delta[from]
		syms := maps.Keys(row)
		slices.Sort(syms)
		for _, sym := range syms {
			for _, to := range row[sym].items() {
				if _, err := fmt.Fprintf(w, "\t%q -> %q [label=%q];\n", from, to, sym); err != nil {
					return err
				}
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
