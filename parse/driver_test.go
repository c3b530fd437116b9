package parse

import (
	"testing"

	"github.com/adrcodes/lrforge/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// symbol ids for `E -> E + T | T; T -> id`
const (
	tPlus = iota
	tID
	tE
	tT
	tEps
	tEnd
	tCount
)

func tNames(id int) string { return [...]string{"+", "id", "E", "T", "ε", "$"}[id] }
func tIsTerminal(id int) bool {
	return id == tPlus || id == tID || id == tEps || id == tEnd
}

func buildSmallTable(t *testing.T) *grammar.LRParseTable {
	t.Helper()
	prods := []grammar.Production{
		{Left: tE, Right: []int{tE, tPlus, tT}},
		{Left: tE, Right: []int{tT}},
		{Left: tT, Right: []int{tID}},
	}
	g, err := grammar.NewGrammar(prods, tCount, tE, tEps, tEnd, tNames, tIsTerminal)
	require.NoError(t, err)

	items := grammar.BuildItems(g)
	coll := grammar.BuildCanonicalCollection(g, items)
	sets := grammar.BuildSetTable(g)

	mt, err := grammar.BuildMultiActionTable(g, items, coll, sets, true)
	require.NoError(t, err)

	tbl, err := grammar.Collapse(g, mt)
	require.NoError(t, err)
	return tbl
}

func Test_Driver_ParsesIdPlusId(t *testing.T) {
	tbl := buildSmallTable(t)

	var shifts, reduces, gotos int
	accepted := false

	d := NewDriver(tbl, Callbacks{
		OnShift:  func(state, symbol int) int { shifts++; return 0 },
		OnGoto:   func(state, symbol int) int { gotos++; return 0 },
		OnReduce: func(production, n int) int { reduces++; return 0 },
		OnAccept: func() int { accepted = true; return 0 },
		OnError:  func(state, symbol int) int { t.Fatalf("unexpected parse error at state %d on symbol %d", state, symbol); return 1 },
	})

	input := []int{tID, tPlus, tID, tEnd}
	for _, sym := range input {
		status := d.Step(sym)
		require.Equal(t, 0, status)
		assert.True(t, d.StacksBalanced())
	}

	assert.True(t, accepted)
	assert.Greater(t, shifts, 0)
	assert.Greater(t, reduces, 0)
	assert.Greater(t, gotos, 0)
}

func Test_Driver_OnErrorCalledOnBadInput(t *testing.T) {
	tbl := buildSmallTable(t)

	var errState, errSymbol int
	called := false

	d := NewDriver(tbl, Callbacks{
		OnShift:  func(state, symbol int) int { return 0 },
		OnGoto:   func(state, symbol int) int { return 0 },
		OnReduce: func(production, n int) int { return 0 },
		OnAccept: func() int { return 0 },
		OnError: func(state, symbol int) int {
			called = true
			errState, errSymbol = state, symbol
			return 1
		},
	})

	// "+ id" is not a valid start of input.
	status := d.Step(tPlus)
	assert.Equal(t, 1, status)
	assert.True(t, called)
	assert.Equal(t, 0, errState)
	assert.Equal(t, tPlus, errSymbol)
}

func Test_Driver_Reset(t *testing.T) {
	tbl := buildSmallTable(t)
	d := NewDriver(tbl, Callbacks{
		OnShift:  func(state, symbol int) int { return 0 },
		OnGoto:   func(state, symbol int) int { return 0 },
		OnReduce: func(production, n int) int { return 0 },
		OnAccept: func() int { return 0 },
		OnError:  func(state, symbol int) int { return 1 },
	})

	d.Step(tID)
	assert.NotEmpty(t, d.stateStack)

	d.Reset()
	assert.Empty(t, d.stateStack)
	assert.Empty(t, d.symbolStack)
	assert.True(t, d.StacksBalanced())
}
