package automaton

import (
	"testing"

	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/grachale/lr-parser-generator/internal/lrcore/item"
	"github.com/grachale/lr-parser-generator/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildExprGrammar(t *testing.T) (*grammar.Grammar, map[string]util.StringSet) {
	t.Helper()
	g, err := grammar.NewGrammar(
		[]string{"+", "*", "(", ")", "id"},
		[]string{"E", "T", "F"},
		[]grammar.ProductionInput{
			{LHS: "E", RHS: []string{"E", "+", "T"}},
			{LHS: "E", RHS: []string{"T"}},
			{LHS: "T", RHS: []string{"T", "*", "F"}},
			{LHS: "T", RHS: []string{"F"}},
			{LHS: "F", RHS: []string{"(", "E", ")"}},
			{LHS: "F", RHS: []string{"id"}},
		},
		"E",
	)
	require.NoError(t, err)
	require.NoError(t, g.Augment())
	first := g.ComputeFirst()
	return g, first
}

func Test_ClosureLR0(t *testing.T) {
	assert := assert.New(t)
	g, _ := buildExprGrammar(t)

	start := item.NewLR1(item.Kernel{Prod: 0, Dot: 0}, util.NewStringSet())
	closed := ClosureLR0(g, []item.LR1{start})

	// closure(E' -> .E) includes every production reachable via dotted
	// non-terminals at position 0: E, T, F productions, 6 total plus the
	// start kernel itself.
	assert.Len(closed, 7)
	for _, it := range closed {
		assert.True(it.Lookahead.Empty())
	}
}

func Test_ClosureLR1_PropagatesLookahead(t *testing.T) {
	assert := assert.New(t)
	g, first := buildExprGrammar(t)

	start := item.NewLR1(item.Kernel{Prod: 0, Dot: 0}, util.NewStringSet("$"))
	closed := ClosureLR1(g, first, []item.LR1{start})

	var found bool
	for _, it := range closed {
		p, _ := g.Production(it.Kernel.Prod)
		if p.LHS == "T" && it.Kernel.Dot == 0 {
			found = true
			assert.ElementsMatch([]string{"+", "$", "*"}, it.Lookahead.Elements())
		}
	}
	assert.True(found, "expected closure to contain a T production at dot 0")
}

func Test_Goto(t *testing.T) {
	assert := assert.New(t)
	g, first := buildExprGrammar(t)

	start := item.NewLR1(item.Kernel{Prod: 0, Dot: 0}, util.NewStringSet("$"))
	closed := ClosureLR1(g, first, []item.LR1{start})

	moved := Goto(closed, "T", g)
	require.NotEmpty(t, moved)
	for _, it := range moved {
		sym, ok := it.Kernel.NextSymbol(g)
		p, _ := g.Production(it.Kernel.Prod)
		assert.True(p.LHS == "E" || p.LHS == "T")
		if p.LHS == "T" && it.Kernel.Dot == 1 && len(p.RHS) > 1 {
			assert.True(ok)
			assert.Equal("*", sym)
		}
	}
}
