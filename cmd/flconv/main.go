// The flconv command reads grammar test cases from an input file, runs the
// grammar → NFA → DFA pipeline with the requested operation for each case,
// and writes the canonical DFA reports to an output file.
//
// Example:
//
//	$ flconv -in input.txt -out output.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	automata "github.com/BahramEmami/FL-Project"
)

func main() {
	in := flag.String("in", "input.txt", "input file with test cases")
	out := flag.String("out", "output.txt", "output file for DFA reports")
	workers := flag.Int("workers", 1, "worker goroutines for independent test cases")
	trace := flag.Bool("trace", false, "log pipeline stages to stderr")
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

	opts := []automata.Option{automata.GoroutineLimit(*workers)}
	if *trace {
		opts = append(opts, automata.WithTraceLogs(os.Stderr))
	}
	results, err := automata.RunAll(context.Background(), cases, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't run test cases: %v\n", err)
		os.Exit(1)
	}

	g, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't create output: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()
	if err := automata.WriteReports(g, results); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write reports: %v\n", err)
		os.Exit(1)
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Case %d failed: %v\n", res.Case.ID, res.Err)
		}
	}
}
