// The fldot command renders the final DFA of one test case as a GraphViz
// digraph on stdout.
//
// Example:
//
//	$ fldot -in input.txt -case 2 | dot -Tsvg > case2.svg
package main

import (
	"flag"
	"fmt"
	"os"

	automata "github.com/BahramEmami/FL-Project"
)

func main() {
	in := flag.String("in", "input.txt", "input file with test cases")
	caseID := flag.Int("case", 0, "test case to render (0 = first)")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't open input: %v\n", err)
		os.Exit(1)
	}
	cases, err := automata.ParseInput(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't parse %q: %v\n", *in, err)
		os.Exit(1)
	}
	if len(cases) == 0 {
		fmt.Fprintln(os.Stderr, "No test cases in input")
		os.Exit(1)
	}

	tc := cases[0]
	if *caseID != 0 {
		tc = nil
		for _, c := range cases {
			if c.ID == *caseID {
				tc = c
				break
			}
		}
		if tc == nil {
			fmt.Fprintf(os.Stderr, "No test case with id %d\n", *caseID)
			os.Exit(1)
		}
	}

	d, err := tc.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't run case %d: %v\n", tc.ID, err)
		os.Exit(1)
	}
	if err := d.WriteDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
