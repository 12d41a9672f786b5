package grammar

import (
	"github.com/grachale/lr-parser-generator/internal/lrcore/symbols"
	"github.com/grachale/lr-parser-generator/internal/util"
)

// ComputeFollow computes FOLLOW to a fixed point (spec.md §4.3) given a
// precomputed FIRST table: for every non-terminal occurrence in a
// production's RHS it adds FIRST of the symbols after it, plus FOLLOW(LHS)
// when those symbols are all nullable. FOLLOW(StartSymbol()) always
// contains "$" — the original start symbol, not the augmented one, since
// Augment hasn't necessarily run yet when this is called.
func (g *Grammar) ComputeFollow(first map[string]util.StringSet) map[string]util.StringSet {
	follow := make(map[string]util.StringSet, len(g.nonTerminals))
	for _, nt := range g.nonTerminals {
		follow[nt] = util.NewStringSet()
	}
	follow[g.startSymbol].Add(symbols.EndMarker)

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			for i, sym := range p.RHS {
				if !g.nonTermSet.Has(sym) {
					continue
				}
				before := follow[sym].Len()

				rest := p.RHS[i+1:]
				trailer, nullable := FirstOfSequence(first, rest)
				follow[sym].AddAll(trailer)
				if nullable {
					follow[sym].AddAll(follow[p.LHS])
				}

				if follow[sym].Len() != before {
					changed = true
				}
			}
		}
	}

	return follow
}
