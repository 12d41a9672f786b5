package lrtable

import (
	"github.com/grachale/lr-parser-generator/internal/lrcore/automaton"
	"github.com/grachale/lr-parser-generator/internal/lrcore/diag"
	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/grachale/lr-parser-generator/internal/lrcore/item"
	"github.com/grachale/lr-parser-generator/internal/util"
)

// Lookahead selects how a Build call sizes a reduce action's lookahead
// set: either from the item's own (already-merged, for LALR1) lookahead
// set, or from FOLLOW(LHS) of the production being reduced.
type Lookahead int

const (
	// FromFollow sizes reduce actions from FOLLOW(LHS) — used by the LR0
	// and SLR1 disciplines. LR0 additionally reduces on every terminal
	// (FromFollow with follow == every terminal, by convention of the
	// caller passing the full terminal set as "follow").
	FromFollow Lookahead = iota
	// FromItem sizes reduce actions from each item's own lookahead set —
	// used by the LALR1 and LR1 disciplines.
	FromItem
)

// Table is the built ACTION/GOTO pair plus whatever conflicts the
// discipline could not resolve on its own.
type Table struct {
	Action    map[ActionKey]Action
	Goto      map[GotoKey]int
	Conflicts []diag.Conflict
}

// Build assembles ACTION and GOTO from a canonical collection (spec.md
// §4.7). follow is consulted only when mode == FromFollow. g must be
// augmented, since the accept action is recognized by a completed
// augmented-start item.
//
// On an ACTION collision, Build keeps the first action recorded for that
// (state, terminal) cell and appends a diag.Conflict describing the
// discarded alternative; it never aborts construction (spec.md §4.8).
func Build(g *grammar.Grammar, col *automaton.Collection, mode Lookahead, follow map[string]util.StringSet) *Table {
	t := &Table{
		Action: make(map[ActionKey]Action),
		Goto:   make(map[GotoKey]int),
	}

	for edge, target := range col.Edges {
		if g.IsNonTerminal(edge.Symbol) {
			t.Goto[GotoKey{State: edge.From, NonTerminal: edge.Symbol}] = target
		} else {
			t.record(edge.From, edge.Symbol, Action{Kind: Shift, NextState: target})
		}
	}

	for _, state := range col.States {
		for _, it := range state.Items {
			if !it.Kernel.AtEnd(g) {
				continue
			}
			p, _ := g.Production(it.Kernel.Prod)

			if p.LHS == g.AugmentedStartSymbol() {
				t.record(state.ID, "$", Action{Kind: Accept})
				continue
			}

			for _, terminal := range reduceLookahead(it, mode, follow, p.LHS) {
				t.record(state.ID, terminal, Action{Kind: Reduce, Production: it.Kernel.Prod})
			}
		}
	}

	return t
}

func reduceLookahead(it item.LR1, mode Lookahead, follow map[string]util.StringSet, lhs string) []string {
	if mode == FromItem {
		return it.Lookahead.Elements()
	}
	return follow[lhs].Elements()
}

// record installs an action, or — if the cell is already occupied by a
// different action — appends a Conflict and leaves the existing entry in
// place.
func (t *Table) record(state int, terminal string, act Action) {
	key := ActionKey{State: state, Terminal: terminal}
	existing, occupied := t.Action[key]
	if !occupied {
		t.Action[key] = act
		return
	}
	if existing.Equal(act) {
		return
	}

	t.Conflicts = append(t.Conflicts, diag.Conflict{
		Kind:      classify(existing, act),
		State:     state,
		Terminal:  terminal,
		Kept:      existing,
		Discarded: act,
	})
}

func classify(kept, discarded Action) diag.ConflictKind {
	switch {
	case kept.Kind == Accept || discarded.Kind == Accept:
		if kept.Kind == Reduce || discarded.Kind == Reduce {
			return diag.AcceptReduce
		}
		return diag.AcceptShift
	case kept.Kind == Shift && discarded.Kind == Shift:
		// Two distinct shift targets for one (state, terminal) cell would
		// mean the canonical collection itself is non-deterministic; goto
		// construction guarantees this doesn't happen, so this case is
		// unreachable in practice and classified the same as shift/reduce.
		return diag.ShiftReduce
	case kept.Kind == Reduce && discarded.Kind == Reduce:
		return diag.ReduceReduce
	default:
		return diag.ShiftReduce
	}
}
