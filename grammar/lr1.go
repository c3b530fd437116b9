package grammar

import "errors"

// ErrLR1Unimplemented is returned by the LR(1) scaffolding below. Full
// LR(1)/LALR table construction is an explicit non-goal of this package —
// this file exists only so the extension point the data model leaves room
// for (a Lookahead field on Item that LR(0)/SLR never populate) has a named
// place to grow into, mirroring internal/ictiobus/parse/clr1.go and
// lalr.go's more complete but out-of-scope construction in the teacher
// toolkit.
var ErrLR1Unimplemented = errors.New("grammar: LR(1)/LALR canonical collection construction is not implemented")

// LR1Item extends Item with a concrete, non-placeholder lookahead set. It is
// defined here for forward compatibility with a future LR(1) extension;
// nothing in this package currently constructs one.
type LR1Item struct {
	Item
	Lookaheads IntSet
}

// BuildLR1CanonicalCollection is a recognized extension point, not required
// behavior: spec.md explicitly scopes full LR(1)/LALR construction out.
// Calling it always fails.
func BuildLR1CanonicalCollection(g *Grammar, items *ItemSet) (*Collection, error) {
	return nil, ErrLR1Unimplemented
}
