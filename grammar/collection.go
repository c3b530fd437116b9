package grammar

// State is one member of a canonical collection: a set of item indices into
// the grammar's flat ItemSet.
type State struct {
	ID    int
	Items IntSet
}

// Collection is the canonical collection of component D: an ordered list of
// deduplicated closed item sets plus the GOTO relation between them.
type Collection struct {
	g      *Grammar
	items  *ItemSet
	states []State
	byKey  map[string]int
	goTo   map[[2]int]int // (state id, symbol) -> state id
}

// Closure computes CLOSURE(i) for a set of item indices i: iterate to a
// fixpoint, adding the dot-0 items of every production headed by a
// non-terminal that immediately follows a dot in some item already in the
// set.
func Closure(g *Grammar, items *ItemSet, i IntSet) IntSet {
	result := NewIntSet()
	result.AddAll(i)

	worklist := i.Sorted()
	for len(worklist) > 0 {
		idx := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		it := items.Item(idx)
		sym, ok := items.NextSymbol(it)
		if !ok || !g.IsNonTerminal(sym) {
			continue
		}
		for _, kernelIdx := range items.KernelItemsFor(sym) {
			if !result.Has(kernelIdx) {
				result.Add(kernelIdx)
				worklist = append(worklist, kernelIdx)
			}
		}
	}

	return result
}

// Goto computes GOTO(i, x): the closure of every item obtained by advancing
// the dot over x in a non-reduce item of i whose next symbol is x. An empty
// i (or one in which no item has next symbol x) yields an empty set.
func Goto(g *Grammar, items *ItemSet, i IntSet, x int) IntSet {
	j := NewIntSet()
	for idx := range i {
		it := items.Item(idx)
		if it.IsReduce() {
			continue
		}
		sym, ok := items.NextSymbol(it)
		if !ok || sym != x {
			continue
		}
		j.Add(it.Next)
	}
	if len(j) == 0 {
		return j
	}
	return Closure(g, items, j)
}

// BuildCanonicalCollection constructs the canonical LR(0) collection of
// component D. State 0 is CLOSURE({dot-0 item of S' -> S}); states are
// discovered breadth-first in the order of spec §4.D, with ties broken by
// the enumerated symbol order of the grammar, making the result
// deterministic and reproducible.
func BuildCanonicalCollection(g *Grammar, items *ItemSet) *Collection {
	c := &Collection{
		g:     g,
		items: items,
		byKey: make(map[string]int),
		goTo:  make(map[[2]int]int),
	}

	startKernel := NewIntSet(items.KernelItemsFor(g.startPrime)...)
	start := Closure(g, items, startKernel)
	c.addState(start)

	// V in enumerated (id) order: every valid symbol except epsilon.
	allSymbols := make([]int, 0, len(g.symbols))
	for id, s := range g.symbols {
		if id != g.epsilon && s.Valid {
			allSymbols = append(allSymbols, id)
		}
	}

	for i := 0; i < len(c.states); i++ {
		for _, x := range allSymbols {
			j := Goto(g, items, c.states[i].Items, x)
			if len(j) == 0 {
				continue
			}
			jID := c.addState(j)
			c.goTo[[2]int{i, x}] = jID
		}
	}

	return c
}

// addState deduplicates j against existing states by structural equality
// and returns its (possibly newly assigned) state id.
func (c *Collection) addState(j IntSet) int {
	key := j.Key()
	if id, ok := c.byKey[key]; ok {
		return id
	}
	id := len(c.states)
	c.states = append(c.states, State{ID: id, Items: j})
	c.byKey[key] = id
	return id
}

// States returns the canonical collection's states in insertion order.
func (c *Collection) States() []State {
	return c.states
}

// Goto returns the GOTO[state, symbol] transition recorded during
// construction, and whether one exists.
func (c *Collection) Goto(state, symbol int) (int, bool) {
	id, ok := c.goTo[[2]int{state, symbol}]
	return id, ok
}

// ItemsOf returns the items of a given state, resolved from their flat
// indices.
func (c *Collection) ItemsOf(state int) []Item {
	out := make([]Item, 0, len(c.states[state].Items))
	for idx := range c.states[state].Items {
		out = append(out, c.items.Item(idx))
	}
	return out
}
