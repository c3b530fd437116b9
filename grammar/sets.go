package grammar

// SetTable caches the FIRST and FOLLOW sets of every non-terminal in a
// grammar, computed once by fixed-point iteration. This is the Go analogue
// of the teacher's Grammar.FIRST/Grammar.FOLLOW pair
// (internal/tunascript/grammar.go), generalized from recomputing on every
// call to a cached table keyed by the spec's integer symbol ids.
type SetTable struct {
	g      *Grammar
	first  map[int]IntSet
	follow map[int]IntSet
}

// BuildSetTable computes FIRST(X) for every non-terminal X and FOLLOW(X) for
// every non-terminal X, per spec §4.B.
func BuildSetTable(g *Grammar) *SetTable {
	t := &SetTable{g: g, first: map[int]IntSet{}, follow: map[int]IntSet{}}
	t.computeFirst()
	t.computeFollow()
	return t
}

// computeFirst iterates productions to a fixpoint: seed epsilon for any
// non-terminal heading an epsilon production, then for every production
// A -> alpha, add every element of FIRST(alpha) to FIRST(A). Terminates
// when no set grows.
func (t *SetTable) computeFirst() {
	g := t.g
	for _, nt := range g.NonTerminals() {
		t.first[nt] = NewIntSet()
	}

	for {
		grew := false
		for _, p := range g.productions {
			addition := t.firstOfSequenceUsingPartial(p.Right)
			if t.first[p.Left].AddAll(addition) {
				grew = true
			}
		}
		// the augmented production participates too, since FIRST(S') is
		// needed by callers that inspect the augmented grammar directly.
		addition := t.firstOfSequenceUsingPartial(g.augmented.Right)
		if _, ok := t.first[g.startPrime]; !ok {
			t.first[g.startPrime] = NewIntSet()
		}
		if t.first[g.startPrime].AddAll(addition) {
			grew = true
		}
		if !grew {
			break
		}
	}
}

// firstOfSequenceUsingPartial computes FIRST(alpha) using whatever partial
// results are in t.first so far; used during the fixed-point loop before
// the table is fully converged.
func (t *SetTable) firstOfSequenceUsingPartial(alpha []int) IntSet {
	g := t.g
	result := NewIntSet()

	if len(alpha) == 0 || (len(alpha) == 1 && alpha[0] == g.epsilon) {
		result.Add(g.epsilon)
		return result
	}

	allEpsilon := true
	for _, x := range alpha {
		if g.IsTerminal(x) {
			result.Add(x)
			allEpsilon = false
			break
		}
		// non-terminal
		fx := t.first[x]
		for v := range fx {
			if v != g.epsilon {
				result.Add(v)
			}
		}
		if !fx.Has(g.epsilon) {
			allEpsilon = false
			break
		}
	}
	if allEpsilon {
		result.Add(g.epsilon)
	}
	return result
}

// FirstOfSequence computes FIRST(alpha) for an arbitrary symbol sequence
// using the fully-converged table, per spec §4.B.
func (t *SetTable) FirstOfSequence(alpha []int) IntSet {
	return t.firstOfSequenceUsingPartial(alpha)
}

// First returns FIRST(X) for a single symbol X (terminal or non-terminal).
func (t *SetTable) First(x int) IntSet {
	if t.g.IsTerminal(x) {
		return NewIntSet(x)
	}
	return t.first[x]
}

// computeFollow seeds FOLLOW(S) = {$} and iterates productions to a
// fixpoint, per spec §4.B.
func (t *SetTable) computeFollow() {
	g := t.g
	for _, nt := range g.NonTerminals() {
		t.follow[nt] = NewIntSet()
	}
	t.follow[g.start].Add(g.endOfInput)

	for {
		grew := false
		for _, p := range g.productions {
			if t.followPass(p.Left, p.Right) {
				grew = true
			}
		}
		if t.followPass(g.augmented.Left, g.augmented.Right) {
			grew = true
		}
		if !grew {
			break
		}
	}
}

// followPass applies one production A -> alpha's contribution to FOLLOW,
// scanning every non-terminal B in alpha: FIRST(beta) \ {epsilon} goes into
// FOLLOW(B) where beta is whatever follows B in alpha, and if beta can
// derive epsilon (including being empty), FOLLOW(A) also goes into
// FOLLOW(B).
func (t *SetTable) followPass(a int, alpha []int) (grew bool) {
	g := t.g
	for i, b := range alpha {
		if !g.IsNonTerminal(b) {
			continue
		}
		beta := alpha[i+1:]
		firstBeta := t.firstOfSequenceUsingPartial(beta)

		for v := range firstBeta {
			if v == g.epsilon {
				continue
			}
			if !t.follow[b].Has(v) {
				t.follow[b].Add(v)
				grew = true
			}
		}
		if firstBeta.Has(g.epsilon) {
			if t.follow[b].AddAll(t.follow[a]) {
				grew = true
			}
		}
	}
	return grew
}

// Follow returns FOLLOW(X) for a non-terminal X.
func (t *SetTable) Follow(x int) IntSet {
	return t.follow[x]
}

// Select computes SELECT(p) for production p: A -> alpha. If epsilon is not
// in FIRST(alpha), SELECT = FIRST(alpha); otherwise SELECT is
// (FIRST(alpha) \ {epsilon}) union FOLLOW(A).
func (t *SetTable) Select(p Production) IntSet {
	g := t.g
	first := t.FirstOfSequence(p.Right)
	result := NewIntSet()

	if !first.Has(g.epsilon) {
		for v := range first {
			result.Add(v)
		}
		return result
	}

	for v := range first {
		if v != g.epsilon {
			result.Add(v)
		}
	}
	result.AddAll(t.Follow(p.Left))
	return result
}
