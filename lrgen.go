// Package lrgen is the top-level entry point of the parser-generator
// core: build a grammar, build a parser for it under one of the four LR
// disciplines, and drive it over a token stream. It composes the
// internal/lrcore packages (grammar, item, automaton, lrtable, driver)
// the way ictiobus.go composes its own internal packages — a thin facade
// that owns no algorithmic logic of its own.
package lrgen

import (
	"github.com/google/uuid"

	"github.com/grachale/lr-parser-generator/internal/lrcore/automaton"
	"github.com/grachale/lr-parser-generator/internal/lrcore/diag"
	"github.com/grachale/lr-parser-generator/internal/lrcore/driver"
	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/grachale/lr-parser-generator/internal/lrcore/lrtable"
	"github.com/grachale/lr-parser-generator/internal/util"
)

// Discipline selects which of the four canonical LR table-construction
// strategies BuildParser uses.
type Discipline int

const (
	LR0 Discipline = iota
	SLR1
	LALR1
	LR1
)

func (d Discipline) String() string {
	switch d {
	case LR0:
		return "LR(0)"
	case SLR1:
		return "SLR(1)"
	case LALR1:
		return "LALR(1)"
	case LR1:
		return "LR(1)"
	default:
		return "unknown discipline"
	}
}

// usesLookahead reports whether this discipline builds its canonical
// collection with per-item lookahead propagation.
func (d Discipline) usesLookahead() bool {
	return d == LALR1 || d == LR1
}

// BuildGrammar validates and constructs a Grammar from its declared
// symbols, productions, and start symbol (spec.md §3). It does not
// augment the grammar; BuildParser does that as part of building a
// parser from it.
func BuildGrammar(terminals, nonTerminals []string, productions []grammar.ProductionInput, start string) (*grammar.Grammar, error) {
	return grammar.NewGrammar(terminals, nonTerminals, productions, start)
}

// Parser is a fully built LR parser: the augmented grammar, its FIRST and
// FOLLOW sets, its canonical collection, its ACTION/GOTO tables, and any
// unresolved conflicts recorded along the way. Build it with BuildParser.
type Parser struct {
	id         string
	discipline Discipline

	g      *grammar.Grammar
	first  map[string]util.StringSet
	follow map[string]util.StringSet

	collection *automaton.Collection
	table      *lrtable.Table

	drv *driver.Driver
}

// BuildParser augments g and builds its FIRST/FOLLOW sets, canonical
// collection, and ACTION/GOTO tables under the given discipline (spec.md
// §4). g is mutated in place by the augmentation step; callers that need
// the pre-augmentation grammar should build it again from BuildGrammar.
//
// Each built Parser gets a random build ID, available through ID(), so
// that different builds of the same grammar — e.g. across disciplines in
// a comparison run — can be told apart without reference equality. The
// ID is not included in trace output or in rendered tables.
func BuildParser(g *grammar.Grammar, discipline Discipline) (*Parser, error) {
	if !g.Augmented() {
		if err := g.Augment(); err != nil {
			return nil, diag.New("build parser", err, "")
		}
	}

	first := g.ComputeFirst()
	follow := g.ComputeFollow(first)

	mode := automaton.ModeNoLookahead
	if discipline.usesLookahead() {
		mode = automaton.ModeLookahead
	}
	col := automaton.BuildCanonicalCollection(g, first, mode)

	var lookaheadMode lrtable.Lookahead
	if discipline == LALR1 {
		merged, err := automaton.MergeLALR(col)
		if err != nil {
			return nil, diag.New("build parser", err, "")
		}
		col = merged
		lookaheadMode = lrtable.FromItem
	} else if discipline == LR1 {
		lookaheadMode = lrtable.FromItem
	} else {
		lookaheadMode = lrtable.FromFollow
	}

	var reduceFollow map[string]util.StringSet
	if discipline == LR0 {
		reduceFollow = everyTerminalAndEnd(g)
	} else {
		reduceFollow = follow
	}

	table := lrtable.Build(g, col, lookaheadMode, reduceFollow)

	p := &Parser{
		id:         uuid.NewString(),
		discipline: discipline,
		g:          g,
		first:      first,
		follow:     follow,
		collection: col,
		table:      table,
	}
	p.drv = driver.New(g, table)
	return p, nil
}

// everyTerminalAndEnd builds the constant "follow set" a pure LR(0)
// table build wants: every reduce action fires on every terminal (plus
// $), since LR(0) never consults FOLLOW to disambiguate.
func everyTerminalAndEnd(g *grammar.Grammar) map[string]util.StringSet {
	all := util.NewStringSet(g.Terminals()...)
	all.Add("$")
	result := make(map[string]util.StringSet, len(g.NonTerminals()))
	for _, nt := range g.NonTerminals() {
		result[nt] = all
	}
	return result
}

// ID returns this build's random identifier.
func (p *Parser) ID() string { return p.id }

// Discipline returns the discipline this parser was built under.
func (p *Parser) Discipline() Discipline { return p.discipline }

// Grammar returns the (now augmented) grammar this parser was built from.
func (p *Parser) Grammar() *grammar.Grammar { return p.g }

// AugmentedProductions returns the grammar's productions after
// augmentation, production 0 always being the synthetic start rule.
func (p *Parser) AugmentedProductions() []grammar.Production { return p.g.Productions() }

// First returns FIRST(X) for every declared terminal and non-terminal.
func (p *Parser) First() map[string]util.StringSet { return p.first }

// Follow returns FOLLOW(A) for every declared non-terminal.
func (p *Parser) Follow() map[string]util.StringSet { return p.follow }

// ItemSets returns the states of the canonical collection this parser's
// tables were built from (post-merge, for LALR1).
func (p *Parser) ItemSets() []automaton.ItemSet { return p.collection.States }

// ActionTable returns the built ACTION table.
func (p *Parser) ActionTable() map[lrtable.ActionKey]lrtable.Action { return p.table.Action }

// GotoTable returns the built GOTO table.
func (p *Parser) GotoTable() map[lrtable.GotoKey]int { return p.table.Goto }

// Conflicts returns every ACTION table conflict recorded while building
// this parser's table. An empty slice means the grammar is unambiguous
// under this discipline.
func (p *Parser) Conflicts() []diag.Conflict { return p.table.Conflicts }

// Parse drives tokens (terminal names, without a trailing end marker)
// through the shift-reduce algorithm and returns the full configuration
// trace plus whether the input was accepted.
func (p *Parser) Parse(tokens []string) ([]driver.Configuration, bool) {
	return p.drv.Parse(tokens)
}

// RegisterTraceListener adds a callback invoked with a description of
// every driver step taken during a subsequent Parse call.
func (p *Parser) RegisterTraceListener(listener func(string)) {
	p.drv.RegisterTraceListener(listener)
}
