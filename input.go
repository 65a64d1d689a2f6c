package automata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseInput reads a sequence of test cases from the fixed text format:
//
//	1:
//	G1:
//	# Alphabet
//	a b
//	# Variables
//	S A
//	# Start
//	S
//	# Rules
//	S -> aA
//	A -> ε
//	========
//	# Operation
//	complement
//
// Numeric `N:` lines open a test case, `GN:` lines open a grammar block,
// `========` closes one, and the first free-standing line after the grammar
// blocks names the operation. Blank lines and unrecognized comment lines are
// ignored.
func ParseInput(r io.Reader) ([]*TestCase, error) {
	var (
		cases        []*TestCase
		curCase      *TestCase
		curGrammar   *Grammar
		readingRules bool
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch {
		case isCaseHeader(line):
			id, err := strconv.Atoi(strings.TrimSuffix(line, ":"))
			if err != nil {
				return nil, fmt.Errorf("line %d: bad test case header %q: %w", lineNo, line, err)
			}
			curCase = &TestCase{ID: id}
			cases = append(cases, curCase)
			curGrammar = nil
			readingRules = false

		case strings.HasPrefix(line, "G") && strings.HasSuffix(line, ":"):
			curGrammar = NewGrammar(strings.TrimSuffix(line, ":"))
			if curCase != nil {
				curCase.Grammars = append(curCase.Grammars, curGrammar)
			}
			readingRules = false

		case line == "========":
			curGrammar = nil
			readingRules = false

		case strings.HasPrefix(line, "#"):
			// Only the rules section spans multiple free-form lines, so the
			// flag is all the sectioning state needed.
			readingRules = strings.HasPrefix(line, "# Rules")

		case readingRules && curGrammar != nil:
			left, right, ok := strings.Cut(line, "->")
			if !ok {
				return nil, fmt.Errorf("line %d: malformed rule %q", lineNo, line)
			}
			curGrammar.AddRule(strings.TrimSpace(left), strings.TrimSpace(right))

		case curGrammar != nil:
			fillGrammarMetadata(curGrammar, line)

		case curCase != nil && curCase.Operation == "":
			curCase.Operation = line
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return cases, nil
}

// isCaseHeader reports whether the line is all digits followed by a colon.
func isCaseHeader(line string) bool {
	body, ok := strings.CutSuffix(line, ":")
	if !ok || body == "" {
		return false
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// fillGrammarMetadata assigns a bare metadata line to the first unfilled
// grammar field, in declaration order: alphabet, then variables, then start
// symbol.
func fillGrammarMetadata(g *Grammar, line string) {
	switch {
	case g.alphabet.len() == 0:
		for _, f := range strings.Fields(line) {
			g.AddSymbol(Symbol(f))
		}
	case g.variables.len() == 0:
		for _, f := range strings.Fields(line) {
			g.AddVariable(StateID(f))
		}
	case g.Start == "":
		g.Start = StateID(line)
	}
}
