// Package grammar implements the symbol/grammar model and the FIRST/FOLLOW
// fixed-point engines of the parser-generator core (spec.md §3, §4.1–§4.3).
package grammar

import (
	"fmt"

	"github.com/grachale/lr-parser-generator/internal/lrcore/diag"
	"github.com/grachale/lr-parser-generator/internal/lrcore/symbols"
	"github.com/grachale/lr-parser-generator/internal/util"
)

// ProductionInput is the (lhs, rhs) shape accepted by NewGrammar, before
// production numbering exists. An empty RHS denotes an ε-body.
type ProductionInput struct {
	LHS string
	RHS []string
}

// Grammar is a context-free grammar: terminals, non-terminals, productions,
// and a start symbol (spec.md §3 "Grammar"). It supports exactly one
// augmentation, after which productions are densely numbered 0..P-1 with
// the augmented start production always at index 0.
type Grammar struct {
	terminals    []string
	nonTerminals []string
	termSet      util.StringSet
	nonTermSet   util.StringSet

	productions []Production
	startSymbol string

	augmentedStartSymbol string
	augmented            bool

	prodNumbers map[string]int
}

// NewGrammar validates and builds a Grammar. It rejects reserved symbol
// names ("$", "ε") used as declared terminals or non-terminals, rejects any
// RHS symbol that was not declared, and requires start to be a declared
// non-terminal.
func NewGrammar(terminals, nonTerminals []string, productions []ProductionInput, start string) (*Grammar, error) {
	g := &Grammar{
		terminals:    append([]string(nil), terminals...),
		nonTerminals: append([]string(nil), nonTerminals...),
		termSet:      util.NewStringSet(terminals...),
		nonTermSet:   util.NewStringSet(nonTerminals...),
		startSymbol:  start,
	}

	for _, t := range terminals {
		if symbols.Reserved(t) {
			return nil, diag.New("build grammar", diag.ErrReservedName, t)
		}
		if g.nonTermSet.Has(t) {
			return nil, diag.New("build grammar", diag.ErrUndeclaredSymbol, fmt.Sprintf("%q declared as both terminal and non-terminal", t))
		}
	}
	for _, nt := range nonTerminals {
		if symbols.Reserved(nt) {
			return nil, diag.New("build grammar", diag.ErrReservedName, nt)
		}
	}

	if !g.nonTermSet.Has(start) {
		return nil, diag.New("build grammar", diag.ErrUndeclaredSymbol, fmt.Sprintf("start symbol %q is not a declared non-terminal", start))
	}

	for _, p := range productions {
		if !g.nonTermSet.Has(p.LHS) {
			return nil, diag.New("build grammar", diag.ErrUndeclaredSymbol, fmt.Sprintf("production LHS %q is not a declared non-terminal", p.LHS))
		}
		for _, sym := range p.RHS {
			if !g.termSet.Has(sym) && !g.nonTermSet.Has(sym) {
				return nil, diag.New("build grammar", diag.ErrUndeclaredSymbol, fmt.Sprintf("symbol %q in production %s -> %v", sym, p.LHS, p.RHS))
			}
		}
		g.productions = append(g.productions, Production{LHS: p.LHS, RHS: append([]string(nil), p.RHS...), ID: -1})
	}

	return g, nil
}

// IsTerminal reports whether name was declared as a terminal.
func (g *Grammar) IsTerminal(name string) bool { return g.termSet.Has(name) }

// IsNonTerminal reports whether name was declared as a non-terminal
// (including the augmented start symbol, once Augment has run).
func (g *Grammar) IsNonTerminal(name string) bool { return g.nonTermSet.Has(name) }

// Terminals returns the declared terminals in declaration order.
func (g *Grammar) Terminals() []string { return append([]string(nil), g.terminals...) }

// NonTerminals returns the declared non-terminals in declaration order
// (the augmented start symbol first, once Augment has run).
func (g *Grammar) NonTerminals() []string { return append([]string(nil), g.nonTerminals...) }

// Productions returns the grammar's productions. Before Augment, IDs are -1.
func (g *Grammar) Productions() []Production { return append([]Production(nil), g.productions...) }

// Production returns the production with the given id, and whether it exists.
func (g *Grammar) Production(id int) (Production, bool) {
	if id < 0 || id >= len(g.productions) {
		return Production{}, false
	}
	return g.productions[id], true
}

// StartSymbol returns the grammar's original (pre-augmentation) start symbol.
func (g *Grammar) StartSymbol() string { return g.startSymbol }

// AugmentedStartSymbol returns the synthetic start symbol added by Augment,
// or "" if Augment has not run.
func (g *Grammar) AugmentedStartSymbol() string { return g.augmentedStartSymbol }

// Augmented reports whether Augment has already run.
func (g *Grammar) Augmented() bool { return g.augmented }

// Augment adds the augmented start production S' -> S at production index
// 0 (spec.md §4.1). It is idempotent-guarded: a second call returns
// ErrAlreadyAugmented. S' is StartSymbol()+"'", with additional primes
// appended until the name is unique among declared symbols.
func (g *Grammar) Augment() error {
	if g.augmented {
		return diag.New("augment", diag.ErrAlreadyAugmented, "")
	}

	newStart := g.startSymbol + "'"
	for g.termSet.Has(newStart) || g.nonTermSet.Has(newStart) {
		newStart += "'"
	}

	g.augmentedStartSymbol = newStart
	g.nonTerminals = append([]string{newStart}, g.nonTerminals...)
	g.nonTermSet.Add(newStart)
	g.productions = append([]Production{{LHS: newStart, RHS: []string{g.startSymbol}, ID: -1}}, g.productions...)
	g.augmented = true

	g.numberProductions()
	return nil
}

// numberProductions assigns dense ids 0..P-1 in slice order, matching
// insertion order (spec.md §4.1 "number_productions").
func (g *Grammar) numberProductions() {
	g.prodNumbers = make(map[string]int, len(g.productions))
	for i := range g.productions {
		g.productions[i].ID = i
		g.prodNumbers[g.productions[i].key()] = i
	}
}

// ProductionID looks up the dense id for the production (lhs, rhs), or
// (-1, false) if no such production exists.
func (g *Grammar) ProductionID(lhs string, rhs []string) (int, bool) {
	id, ok := g.prodNumbers[(Production{LHS: lhs, RHS: rhs}).key()]
	if !ok {
		return -1, false
	}
	return id, true
}
