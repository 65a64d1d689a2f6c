package automata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Operation names recognized in test cases. An empty operation passes the
// first grammar's DFA through unchanged.
const (
	OpComplement   = "complement"
	OpUnion        = "union"
	OpIntersection = "intersection"
)

var (
	// ErrUnknownOperation is returned for a non-empty operation name that is
	// not one of the Op constants. See LenientOperations.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingGrammar is returned when a test case has too few grammars
	// for its operation.
	ErrMissingGrammar = errors.New("not enough grammars for operation")
)

// TestCase is one unit of pipeline work: an ordered list of grammars and an
// operation combining them.
type TestCase struct {
	ID        int
	Grammars  []*Grammar
	Operation string

	// Renames, if non-empty, overrides RenameReadable for the final DFA.
	Renames map[StateID]StateID
}

// Result pairs a test case with its outcome. Exactly one of DFA and Err is
// set.
type Result struct {
	Case *TestCase
	DFA  *DFA
	Err  error
}

// Run executes the full pipeline for the test case: each grammar is
// translated to an NFA and determinized, the operation combines the
// resulting DFAs, and the outcome is trimmed and renamed. Any error aborts
// this case only and leaves no partially-built automaton behind.
func (tc *TestCase) Run(opts ...Option) (*DFA, error) {
	var cfg runConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return tc.run(&cfg)
}

func (tc *TestCase) run(cfg *runConfig) (*DFA, error) {
	if len(tc.Grammars) == 0 {
		return nil, fmt.Errorf("case %d: %w", tc.ID, ErrMissingGrammar)
	}

	dfas := make([]*DFA, 0, len(tc.Grammars))
	for _, g := range tc.Grammars {
		n, err := g.NFA()
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", tc.ID, err)
		}
		d := n.Determinize()
		cfg.logf("case %d: grammar %s determinized to %d states\n", tc.ID, g.Name, len(d.States()))
		dfas = append(dfas, d)
	}

	final, err := tc.combine(dfas, cfg)
	if err != nil {
		return nil, fmt.Errorf("case %d: %w", tc.ID, err)
	}

	final.Trim()
	if len(tc.Renames) > 0 {
		final.Rename(tc.Renames)
	} else {
		final.RenameReadable()
	}
	cfg.logf("case %d: final DFA has %d states\n", tc.ID, len(final.States()))
	return final, nil
}

func (tc *TestCase) combine(dfas []*DFA, cfg *runConfig) (*DFA, error) {
	switch op := strings.ToLower(strings.TrimSpace(tc.Operation)); op {
	case "":
		return dfas[0], nil

	case OpComplement:
		return Complement(dfas[0]), nil

	case OpUnion, OpIntersection:
		if len(dfas) < 2 {
			return nil, fmt.Errorf("%s: %w", op, ErrMissingGrammar)
		}
		d1, d2 := Complete(dfas[0]), Complete(dfas[1])
		if op == OpUnion {
			return Union(d1, d2)
		}
		return Intersection(d1, d2)

	default:
		if cfg.lenientOps {
			cfg.logf("case %d: operation %q unknown, passing first DFA through\n", tc.ID, tc.Operation)
			return dfas[0], nil
		}
		return nil, fmt.Errorf("%q: %w", tc.Operation, ErrUnknownOperation)
	}
}

// RunAll runs every test case, optionally on a bounded pool of worker
// goroutines. Cases share no state, so they are safe to run concurrently;
// results are delivered in input order regardless. A failing case is
// reported in its Result and does not stop the batch; RunAll itself only
// returns an error when the context is cancelled.
func RunAll(ctx context.Context, cases []*TestCase, opts ...Option) ([]Result, error) {
	var cfg runConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	if cfg.goroutines <= 0 || cfg.goroutines > len(cases) {
		cfg.goroutines = len(cases)
	}

	results := make([]Result, len(cases))
	workCh := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < cfg.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				tc := cases[idx]
				d, err := tc.run(&cfg)
				results[idx] = Result{Case: tc, DFA: d, Err: err}
			}
		}()
	}

	// Feed work to the workers.
	var ctxErr error
feed:
	for i := range cases {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break feed
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case workCh <- i:
		}
	}
	close(workCh)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	return results, nil
}

func (cfg *runConfig) logf(f string, v ...any) {
	if cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(cfg.traceLogger, f, v...)
}
