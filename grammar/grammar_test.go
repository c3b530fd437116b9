package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewGrammar_LR0Example(t *testing.T) {
	g, err := buildLR0ExampleGrammar()
	require.NoError(t, err)

	assert.True(t, g.IsTerminal(lr0A))
	assert.True(t, g.IsTerminal(lr0B))
	assert.True(t, g.IsNonTerminal(lr0S))
	assert.True(t, g.IsNonTerminal(lr0Bnt))
	assert.False(t, g.IsTerminal(lr0Eps))
	assert.False(t, g.IsNonTerminal(lr0Eps))

	assert.ElementsMatch(t, []int{lr0A, lr0B, lr0End}, g.Terminals())

	aug := g.Augmented()
	assert.Equal(t, lr0S, aug.Right[0])
	assert.Equal(t, g.StartPrime(), aug.Left)
}

func Test_NewGrammar_RejectsUnknownSymbolOnRHS(t *testing.T) {
	prods := []Production{
		{Left: lr0S, Right: []int{lr0Bnt, 99}},
	}
	_, err := NewGrammar(prods, lr0Count, lr0S, lr0Eps, lr0End, lr0Names, lr0IsTerminal)
	assert.Error(t, err)
}

func Test_NewGrammar_RejectsEndOfInputOnRHS(t *testing.T) {
	prods := []Production{
		{Left: lr0S, Right: []int{lr0Bnt, lr0End}},
	}
	_, err := NewGrammar(prods, lr0Count, lr0S, lr0Eps, lr0End, lr0Names, lr0IsTerminal)
	assert.Error(t, err)
}

func Test_NewGrammar_RejectsReservedName(t *testing.T) {
	badNames := func(id int) string {
		if id == lr0S {
			return "S'"
		}
		return lr0Names(id)
	}
	_, err := NewGrammar(nil, lr0Count, lr0S, lr0Eps, lr0End, badNames, lr0IsTerminal)
	assert.Error(t, err)
}

// Test_FollowS_AlwaysHasEndOfInput verifies testable property 2.
func Test_FollowS_AlwaysHasEndOfInput(t *testing.T) {
	for name, build := range map[string]func() (*Grammar, error){
		"lr0":          buildLR0ExampleGrammar,
		"arithmetic":   buildArithmeticGrammar,
		"assignment":   buildAssignmentGrammar,
	} {
		t.Run(name, func(t *testing.T) {
			g, err := build()
			require.NoError(t, err)
			sets := BuildSetTable(g)
			assert.True(t, sets.Follow(g.Start()).Has(g.EndOfInput()))
		})
	}
}

// Test_Select_Invariant verifies testable property 1.
func Test_Select_Invariant(t *testing.T) {
	g, err := buildArithmeticGrammar()
	require.NoError(t, err)
	sets := BuildSetTable(g)

	for _, p := range g.Productions() {
		sel := sets.Select(p)
		assert.False(t, sel.Has(g.Epsilon()), "SELECT must not contain epsilon")

		first := sets.FirstOfSequence(p.Right)
		follow := sets.Follow(p.Left)
		for v := range sel {
			inFirst := first.Has(v)
			inFollow := follow.Has(v)
			assert.True(t, inFirst || inFollow, "SELECT(%v) has %d not in FIRST(alpha) U FOLLOW(A)", p, v)
		}
	}
}
