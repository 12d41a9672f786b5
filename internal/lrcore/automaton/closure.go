// Package automaton builds the canonical collection of LR item sets: the
// closure and goto operations (spec.md §4.4), the BFS construction of the
// collection (spec.md §4.5), and the LALR(1) kernel merge (spec.md §4.6).
//
// Every item carries an item.LR1 shape regardless of discipline. For the
// LR(0) and SLR(1) disciplines the Lookahead set is simply left empty:
// those disciplines size a reduce action at table-build time (SLR(1) from
// FOLLOW(LHS), LR(0) from every terminal plus $) rather than from a
// per-item lookahead set, but the item and state
// representation stays uniform across all four disciplines.
package automaton

import (
	"sort"

	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/grachale/lr-parser-generator/internal/lrcore/item"
	"github.com/grachale/lr-parser-generator/internal/util"
)

// ClosureLR0 computes the closure of a kernel item set without lookahead
// propagation (spec.md §4.4, LR(0)/SLR(1) path): for every item with the
// dot before a non-terminal A, add A -> .γ for every production of A, with
// an empty lookahead set, until no new items appear.
func ClosureLR0(g *grammar.Grammar, kernel []item.LR1) []item.LR1 {
	return closure(g, kernel, nil, false)
}

// ClosureLR1 computes the closure of an LR(1) kernel, propagating
// lookahead (spec.md §4.4, LR(1)/LALR(1) path): for an item
// [A -> α.Bβ, a], every production B -> γ contributes
// [B -> .γ, b] for every b in FIRST(βa). If multiple items contribute the
// same kernel, their lookahead sets are unioned rather than kept as
// separate items — closures always return one item per distinct kernel.
func ClosureLR1(g *grammar.Grammar, first map[string]util.StringSet, kernel []item.LR1) []item.LR1 {
	return closure(g, kernel, first, true)
}

func closure(g *grammar.Grammar, kernel []item.LR1, first map[string]util.StringSet, propagate bool) []item.LR1 {
	byKernel := make(map[item.Kernel]item.LR1)
	var order []item.Kernel

	put := func(it item.LR1) bool {
		existing, ok := byKernel[it.Kernel]
		if !ok {
			byKernel[it.Kernel] = it
			order = append(order, it.Kernel)
			return true
		}
		if propagate {
			before := existing.Lookahead.Len()
			merged := existing.MergeLookahead(it)
			byKernel[it.Kernel] = merged
			return merged.Lookahead.Len() != before
		}
		return false
	}

	for _, it := range kernel {
		put(it)
	}

	changed := true
	for changed {
		changed = false
		for _, k := range append([]item.Kernel(nil), order...) {
			it := byKernel[k]
			sym, ok := it.Kernel.NextSymbol(g)
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}

			var trailerLookahead util.StringSet
			if propagate {
				rest := restAfterSymbol(g, it.Kernel)
				trailer, nullable := grammar.FirstOfSequence(first, rest)
				trailerLookahead = trailer
				if nullable {
					trailerLookahead = trailerLookahead.Union(it.Lookahead)
				}
			} else {
				trailerLookahead = util.NewStringSet()
			}

			for _, p := range g.Productions() {
				if p.LHS != sym {
					continue
				}
				newKernel := item.Kernel{Prod: p.ID, Dot: 0}
				if put(item.NewLR1(newKernel, trailerLookahead)) {
					changed = true
				}
			}
		}
	}

	result := make([]item.LR1, 0, len(order))
	for _, k := range order {
		result = append(result, byKernel[k])
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Kernel.Prod != result[j].Kernel.Prod {
			return result[i].Kernel.Prod < result[j].Kernel.Prod
		}
		return result[i].Kernel.Dot < result[j].Kernel.Dot
	})
	return result
}

// restAfterSymbol returns the RHS symbols strictly after the symbol
// immediately following the dot, i.e. β in [A -> α.Bβ, a].
func restAfterSymbol(g *grammar.Grammar, k item.Kernel) []string {
	p, ok := g.Production(k.Prod)
	if !ok || k.Dot+1 > len(p.RHS) {
		return nil
	}
	return p.RHS[k.Dot+1:]
}

// Goto computes goto(items, X): advance the dot over X in every item of
// items whose next symbol is X, without taking the closure (spec.md §4.4).
// The caller is responsible for closing the result with ClosureLR0/LR1.
func Goto(items []item.LR1, symbol string, g *grammar.Grammar) []item.LR1 {
	var moved []item.LR1
	for _, it := range items {
		sym, ok := it.Kernel.NextSymbol(g)
		if !ok || sym != symbol {
			continue
		}
		moved = append(moved, item.NewLR1(it.Kernel.Advance(), it.Lookahead))
	}
	return moved
}
