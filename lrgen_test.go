package lrgen

import (
	"testing"

	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exprGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := BuildGrammar(
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
	return g
}

func Test_BuildParser_AllDisciplines(t *testing.T) {
	// The classic expression grammar is SLR(1) but not LR(0): the state
	// reached after a T has both the completed item E -> T. and the
	// shiftable item T -> T. * F, which LR(0) can only resolve by
	// reducing unconditionally on every terminal.
	wantConflicts := map[Discipline]bool{
		LR0:   true,
		SLR1:  false,
		LALR1: false,
		LR1:   false,
	}

	for d, expectConflicts := range wantConflicts {
		d, expectConflicts := d, expectConflicts
		t.Run(d.String(), func(t *testing.T) {
			assert := assert.New(t)
			g := exprGrammar(t)

			p, err := BuildParser(g, d)
			require.NoError(t, err)
			assert.Equal(expectConflicts, len(p.Conflicts()) > 0)
			assert.NotEmpty(p.ActionTable())
			assert.NotEmpty(p.ItemSets())
			assert.NotEmpty(p.ID())
		})
	}
}

func Test_Parser_Parse(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		accept bool
	}{
		{"simple id", []string{"id"}, true},
		{"sum and product", []string{"id", "+", "id", "*", "id"}, true},
		{"parenthesized", []string{"(", "id", "+", "id", ")", "*", "id"}, true},
		{"trailing operator rejected", []string{"id", "+"}, false},
		{"unbalanced parens rejected", []string{"(", "id"}, false},
		{"bare operator rejected", []string{"+"}, false},
	}

	// LR0 is excluded here: the classic expression grammar has a genuine
	// LR(0) shift/reduce conflict (see Test_BuildParser_AllDisciplines),
	// so its accept/reject behavior on this grammar isn't the clean
	// SLR/LALR/LR1 baseline these cases assert against.
	for _, disc := range []Discipline{SLR1, LALR1, LR1} {
		disc := disc
		for _, c := range cases {
			c := c
			t.Run(disc.String()+"/"+c.name, func(t *testing.T) {
				assert := assert.New(t)
				g := exprGrammar(t)
				p, err := BuildParser(g, disc)
				require.NoError(t, err)

				trace, ok := p.Parse(c.tokens)
				assert.Equal(c.accept, ok)
				assert.NotEmpty(trace)
			})
		}
	}
}

func Test_Parser_TraceListener(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar(t)
	p, err := BuildParser(g, LALR1)
	require.NoError(t, err)

	var lines []string
	p.RegisterTraceListener(func(s string) { lines = append(lines, s) })

	_, ok := p.Parse([]string{"id", "+", "id"})
	assert.True(ok)
	assert.NotEmpty(lines)
}

func Test_BuildParser_RecordsAmbiguityInsteadOfFailing(t *testing.T) {
	assert := assert.New(t)
	g, err := BuildGrammar(
		[]string{"if", "then", "else", "a"},
		[]string{"S", "E"},
		[]grammar.ProductionInput{
			{LHS: "S", RHS: []string{"if", "E", "then", "S"}},
			{LHS: "S", RHS: []string{"if", "E", "then", "S", "else", "S"}},
			{LHS: "S", RHS: []string{"a"}},
			{LHS: "E", RHS: []string{"a"}},
		},
		"S",
	)
	require.NoError(t, err)

	p, err := BuildParser(g, SLR1)
	require.NoError(t, err)
	assert.NotEmpty(p.Conflicts())

	_, ok := p.Parse([]string{"if", "a", "then", "if", "a", "then", "a", "else", "a"})
	assert.True(ok)
}

func Test_BuildGrammar_RejectsUndeclaredSymbol(t *testing.T) {
	assert := assert.New(t)
	_, err := BuildGrammar([]string{"a"}, []string{"S"}, []grammar.ProductionInput{{LHS: "S", RHS: []string{"b"}}}, "S")
	assert.Error(err)
}
