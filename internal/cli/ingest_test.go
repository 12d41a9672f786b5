package cli

import (
	"testing"

	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseGrammarText(t *testing.T) {
	t.Run("classic expression grammar", func(t *testing.T) {
		assert := assert.New(t)
		src := `
%terminals: +, *, (, ), id
%nonterminals: E, T, F
%start: E

E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`
		gf, err := ParseGrammarText(src)
		require.NoError(t, err)

		assert.Equal([]string{"+", "*", "(", ")", "id"}, gf.Terminals)
		assert.Equal([]string{"E", "T", "F"}, gf.NonTerminals)
		assert.Equal("E", gf.Start)
		assert.Len(gf.Productions, 6)

		g, err := grammar.NewGrammar(gf.Terminals, gf.NonTerminals, gf.Productions, gf.Start)
		require.NoError(t, err)
		assert.Equal("E", g.StartSymbol())
	})

	t.Run("epsilon alternative becomes an empty RHS", func(t *testing.T) {
		assert := assert.New(t)
		src := `
%terminals: a
%nonterminals: S
%start: S

S -> a | ε
`
		gf, err := ParseGrammarText(src)
		require.NoError(t, err)

		require.Len(t, gf.Productions, 2)
		assert.Nil(gf.Productions[1].RHS)
		assert.True((grammar.Production{RHS: gf.Productions[1].RHS}).IsEpsilon())
	})

	t.Run("missing arrow is an error", func(t *testing.T) {
		assert := assert.New(t)
		_, err := ParseGrammarText("S a b c")
		assert.Error(err)
	})

	t.Run("start symbol defaults to first production's LHS", func(t *testing.T) {
		assert := assert.New(t)
		gf, err := ParseGrammarText("%terminals: a\n%nonterminals: S\nS -> a\n")
		require.NoError(t, err)
		assert.Equal("S", gf.Start)
	})
}
