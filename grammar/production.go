package grammar

import "fmt"

// maxProductionLength is the bound on the length of a production's
// right-hand side, per the data model's "bounded length <= 10" invariant.
const maxProductionLength = 10

// Production is a single rule `Left -> Right`. An empty production is
// encoded as a Right of exactly one element holding the grammar's epsilon
// symbol.
type Production struct {
	Left  int
	Right []int
}

func (p Production) String() string {
	return fmt.Sprintf("%d -> %v", p.Left, p.Right)
}

// IsEpsilon returns whether p's right side is the single-symbol epsilon
// production, given the grammar's epsilon symbol id.
func (p Production) IsEpsilon(epsilon int) bool {
	return len(p.Right) == 1 && p.Right[0] == epsilon
}
