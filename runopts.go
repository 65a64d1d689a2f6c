package automata

import "io"

// Option functions optionally alter how Run and RunAll operate.
type Option = func(*runConfig)

type runConfig struct {
	goroutines  int
	traceLogger io.Writer
	lenientOps  bool
}

// GoroutineLimit caps the number of worker goroutines RunAll spins up.
// Values below 1 mean one worker per test case (up to the case count).
func GoroutineLimit(n int) Option {
	return func(cfg *runConfig) {
		cfg.goroutines = n
	}
}

// WithTraceLogs logs pipeline stages to the provided writer, for debugging
// the pipeline itself. Disabled by default.
func WithTraceLogs(out io.Writer) Option {
	return func(cfg *runConfig) {
		cfg.traceLogger = out
	}
}

// LenientOperations restores the permissive behavior for unrecognized
// operation names: instead of failing with ErrUnknownOperation, the first
// grammar's DFA passes through unchanged. Disabled by default.
func LenientOperations(enable bool) Option {
	return func(cfg *runConfig) {
		cfg.lenientOps = enable
	}
}
