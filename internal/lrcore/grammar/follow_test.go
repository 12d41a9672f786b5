package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ComputeFollow(t *testing.T) {
	t.Run("classic expression grammar", func(t *testing.T) {
		assert := assert.New(t)
		g := exprGrammar(t)
		first := g.ComputeFirst()
		follow := g.ComputeFollow(first)

		assert.ElementsMatch([]string{"$", "+", ")"}, follow["E"].Elements())
		assert.ElementsMatch([]string{"$", "+", ")", "*"}, follow["T"].Elements())
		assert.ElementsMatch([]string{"$", "+", ")", "*"}, follow["F"].Elements())
	})

	t.Run("nullable non-terminal passes trailer through", func(t *testing.T) {
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
		follow := g.ComputeFollow(first)

		assert.ElementsMatch([]string{"b"}, follow["A"].Elements())
		assert.ElementsMatch([]string{"$"}, follow["S"].Elements())
	})

	t.Run("trailing non-terminal inherits LHS follow", func(t *testing.T) {
		assert := assert.New(t)
		g, err := NewGrammar(
			[]string{"a"},
			[]string{"S", "A"},
			[]ProductionInput{
				{LHS: "S", RHS: []string{"a", "A"}},
				{LHS: "A", RHS: []string{"a"}},
			},
			"S",
		)
		require.NoError(t, err)
		first := g.ComputeFirst()
		follow := g.ComputeFollow(first)

		assert.ElementsMatch([]string{"$"}, follow["A"].Elements())
	})
}
