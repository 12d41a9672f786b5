package grammar

import "github.com/grachale/lr-parser-generator/internal/util"

// ComputeFirst runs the standard worklist fixed-point (spec.md §4.2) and
// returns FIRST(X) for every declared terminal and non-terminal. FIRST of a
// terminal is always the singleton {terminal}. ε is recorded in a
// non-terminal's set whenever some production for it can derive the empty
// string, using symbols.EpsilonMarker as the set element.
func (g *Grammar) ComputeFirst() map[string]util.StringSet {
	first := make(map[string]util.StringSet, len(g.terminals)+len(g.nonTerminals))

	for _, t := range g.terminals {
		first[t] = util.NewStringSet(t)
	}
	for _, nt := range g.nonTerminals {
		first[nt] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			before := first[p.LHS].Len()

			if p.IsEpsilon() {
				first[p.LHS].Add(epsilonSentinel)
			} else {
				g.addFirstOfRHS(first, p.LHS, p.RHS)
			}

			if first[p.LHS].Len() != before {
				changed = true
			}
		}
	}

	return first
}

// epsilonSentinel is the FIRST-set element recording that a symbol can
// derive the empty string. It is never exposed outside the first/follow
// machinery as a grammar symbol.
const epsilonSentinel = "ε"

// addFirstOfRHS folds FIRST(RHS) into first[lhs], walking symbols left to
// right and stopping at the first one that cannot derive ε.
func (g *Grammar) addFirstOfRHS(first map[string]util.StringSet, lhs string, rhs []string) {
	allNullable := true
	for _, sym := range rhs {
		set := first[sym]
		for _, e := range set.Elements() {
			if e != epsilonSentinel {
				first[lhs].Add(e)
			}
		}
		if !set.Has(epsilonSentinel) {
			allNullable = false
			break
		}
	}
	if allNullable {
		first[lhs].Add(epsilonSentinel)
	}
}

// FirstOfSequence computes FIRST of a symbol sequence (e.g. the symbols
// following a dot plus a trailing lookahead) given a precomputed FIRST
// table. It is used by closure construction for LR(1) lookahead
// propagation (spec.md §4.4). The returned set never contains the epsilon
// sentinel; instead the second return value reports whether the whole
// sequence is nullable.
func FirstOfSequence(first map[string]util.StringSet, seq []string) (util.StringSet, bool) {
	result := util.NewStringSet()
	for _, sym := range seq {
		set, ok := first[sym]
		if !ok {
			return result, false
		}
		for _, e := range set.Elements() {
			if e != epsilonSentinel {
				result.Add(e)
			}
		}
		if !set.Has(epsilonSentinel) {
			return result, false
		}
	}
	return result, true
}
