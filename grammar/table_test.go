package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, g *Grammar) (lr0 Class, slr1 Class) {
	t.Helper()
	items := BuildItems(g)
	coll := BuildCanonicalCollection(g, items)
	sets := BuildSetTable(g)

	lr0Table, err := BuildMultiActionTable(g, items, coll, sets, false)
	require.NoError(t, err)

	slrTable, err := BuildMultiActionTable(g, items, coll, sets, true)
	require.NoError(t, err)

	return lr0Table.Classify(false), slrTable.Classify(true)
}

func Test_Classify_LR0Example_IsLR0AndSLR1(t *testing.T) {
	g, err := buildLR0ExampleGrammar()
	require.NoError(t, err)

	lr0Class, slrClass := classify(t, g)
	assert.Equal(t, ClassLR0, lr0Class)
	assert.Equal(t, ClassSLR1, slrClass)
}

func Test_Classify_Arithmetic_IsSLR1NotLR0(t *testing.T) {
	g, err := buildArithmeticGrammar()
	require.NoError(t, err)

	lr0Class, slrClass := classify(t, g)
	assert.Equal(t, ClassUnknown, lr0Class)
	assert.Equal(t, ClassSLR1, slrClass)
}

func Test_Classify_Assignment_IsNeitherLR0NorSLR1(t *testing.T) {
	g, err := buildAssignmentGrammar()
	require.NoError(t, err)

	lr0Class, slrClass := classify(t, g)
	assert.Equal(t, ClassUnknown, lr0Class)
	assert.Equal(t, ClassUnknown, slrClass)
}

// Test_Collapse_RoundTrip verifies testable property 5: expanding then
// collapsing a conflict-free multi-action table yields the same
// single-action table every time.
func Test_Collapse_RoundTrip(t *testing.T) {
	g, err := buildArithmeticGrammar()
	require.NoError(t, err)
	items := BuildItems(g)
	coll := BuildCanonicalCollection(g, items)
	sets := BuildSetTable(g)

	mt, err := BuildMultiActionTable(g, items, coll, sets, true)
	require.NoError(t, err)

	first, err := Collapse(g, mt)
	require.NoError(t, err)
	second, err := Collapse(g, mt)
	require.NoError(t, err)

	assert.Equal(t, len(first.Cells), len(second.Cells))
	for k, act := range first.Cells {
		other, ok := second.Cells[k]
		require.True(t, ok)
		assert.True(t, act.Equal(other))
	}
}

func Test_Collapse_ReportsConflict(t *testing.T) {
	g, err := buildAssignmentGrammar()
	require.NoError(t, err)
	items := BuildItems(g)
	coll := BuildCanonicalCollection(g, items)
	sets := BuildSetTable(g)

	mt, err := BuildMultiActionTable(g, items, coll, sets, true)
	require.NoError(t, err)

	_, err = Collapse(g, mt)
	assert.Error(t, err)
}

func Test_MultiActionTable_AcceptAction(t *testing.T) {
	g, err := buildLR0ExampleGrammar()
	require.NoError(t, err)
	items := BuildItems(g)
	coll := BuildCanonicalCollection(g, items)
	sets := BuildSetTable(g)

	mt, err := BuildMultiActionTable(g, items, coll, sets, true)
	require.NoError(t, err)

	found := false
	for state := range coll.States() {
		for _, act := range mt.Actions(state, g.EndOfInput()) {
			if act.Kind == ActionAccept {
				found = true
			}
		}
	}
	assert.True(t, found, "expected an accept action somewhere on $")
}
