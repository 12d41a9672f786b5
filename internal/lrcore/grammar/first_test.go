package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ComputeFirst(t *testing.T) {
	t.Run("classic expression grammar", func(t *testing.T) {
		assert := assert.New(t)
		g := exprGrammar(t)
		first := g.ComputeFirst()

		assert.Equal([]string{"(", "id"}, first["E"].Elements())
		assert.Equal([]string{"(", "id"}, first["T"].Elements())
		assert.Equal([]string{"(", "id"}, first["F"].Elements())
		assert.Equal([]string{"+"}, first["+"].Elements())
	})

	t.Run("nullable non-terminal propagates epsilon", func(t *testing.T) {
		assert := assert.New(t)
		g, err := NewGrammar(
			[]string{"a", "b"},
			[]string{"S", "A"},
			[]ProductionInput{
				{LHS: "S", RHS: []string{"A", "b"}},
				{LHS: "A", RHS: []string{"a"}},
				{LHS: "A", RHS: nil},
			},
			"S",
		)
		require.NoError(t, err)
		first := g.ComputeFirst()

		assert.True(first["A"].Has(epsilonSentinel))
		assert.ElementsMatch([]string{"a", "b"}, first["S"].Elements())
	})

	t.Run("indirect epsilon chain", func(t *testing.T) {
		assert := assert.New(t)
		g, err := NewGrammar(
			[]string{"a"},
			[]string{"S", "A", "B"},
			[]ProductionInput{
				{LHS: "S", RHS: []string{"A", "B", "a"}},
				{LHS: "A", RHS: nil},
				{LHS: "B", RHS: nil},
			},
			"S",
		)
		require.NoError(t, err)
		first := g.ComputeFirst()

		assert.Equal([]string{"a"}, first["S"].Elements())
	})
}

func Test_FirstOfSequence(t *testing.T) {
	g := exprGrammar(t)
	first := g.ComputeFirst()

	t.Run("non-nullable prefix stops early", func(t *testing.T) {
		assert := assert.New(t)
		set, nullable := FirstOfSequence(first, []string{"T", "+", "E"})
		assert.False(nullable)
		assert.Equal([]string{"(", "id"}, set.Elements())
	})

	t.Run("empty sequence is nullable", func(t *testing.T) {
		assert := assert.New(t)
		set, nullable := FirstOfSequence(first, nil)
		assert.True(nullable)
		assert.True(set.Empty())
	})
}
