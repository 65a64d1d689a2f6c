// Package automata converts restricted right-linear grammars into DFAs and
// implements the classic automata operations on them: completion, complement,
// union and intersection.
package automata

import (
	"errors"
	"fmt"
)

// StateID labels a single automaton state. Labels double as identity:
// subset-construction and product states are named deterministically from
// their constituents, so equal labels mean equal states.
type StateID string

// Symbol is a single input symbol.
type Symbol string

// Epsilon is the pseudo-symbol for ε-transitions. It never belongs to an
// alphabet.
const Epsilon Symbol = "ε"

// ErrUnsupportedProduction is returned when a grammar rule is not one of the
// three right-linear shapes A → ε, A → a, A → aB.
var ErrUnsupportedProduction = errors.New("unsupported production")

// Rule is a single production. Left is a non-terminal; Right is the epsilon
// marker, a single terminal, or a terminal followed by a non-terminal.
type Rule struct {
	Left  string
	Right string
}

func (r Rule) String() string {
	return r.Left + " -> " + r.Right
}

type ruleShape int

const (
	shapeEpsilon ruleShape = iota // A → ε
	shapeTerminal                 // A → a
	shapeStep                     // A → aB
	shapeBad
)

// shape classifies the production body. Symbols and non-terminals are single
// runes in this format, so the body length decides.
func (r Rule) shape() ruleShape {
	if r.Right == string(Epsilon) {
		return shapeEpsilon
	}
	switch runes := []rune(r.Right); len(runes) {
	case 1:
		return shapeTerminal
	case 2:
		return shapeStep
	default:
		return shapeBad
	}
}

// Grammar is a regular grammar: a named alphabet, variable set, start symbol
// and ordered rule list. A grammar is filled in by its producer (typically
// ParseInput) and must not be modified once handed to NFA.
type Grammar struct {
	Name  string
	Start StateID
	Rules []Rule

	alphabet  *orderedSet[Symbol]
	variables *orderedSet[StateID]
}

// NewGrammar returns an empty grammar with the given name.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		Name:      name,
		alphabet:  newOrderedSet[Symbol](),
		variables: newOrderedSet[StateID](),
	}
}

// AddSymbol adds a terminal to the grammar's alphabet.
func (g *Grammar) AddSymbol(s Symbol) { g.alphabet.add(s) }

// AddVariable adds a non-terminal.
func (g *Grammar) AddVariable(v StateID) { g.variables.add(v) }

// AddRule appends a production to the rule list.
func (g *Grammar) AddRule(left, right string) {
	g.Rules = append(g.Rules, Rule{Left: left, Right: right})
}

// Alphabet returns the terminals in insertion order.
func (g *Grammar) Alphabet() []Symbol { return g.alphabet.items() }

// Variables returns the non-terminals in insertion order.
func (g *Grammar) Variables() []StateID { return g.variables.items() }

func (g *Grammar) String() string {
	return fmt.Sprintf("%s: start=%s alphabet=%v variables=%v rules=%v",
		g.Name, g.Start, g.alphabet.items(), g.variables.items(), g.Rules)
}
