package grammar

// Item is a dotted LR item: production, dot position, and (for non-reduce
// items) the index of the item with the dot advanced by one. Lookahead is
// unused (-1) for LR(0) and SLR items; it is carried here so a future LR(1)
// extension (see lr1.go) can reuse the same flat representation.
type Item struct {
	Production int
	Dot        int
	Next       int
	Lookahead  int
}

// IsKernel reports whether the item's dot is at the start of the production
// (spec calls this IsMoveIn).
func (it Item) IsKernel() bool {
	return it.Dot == 0
}

// IsReduce reports whether the item's dot is at the end of the production.
func (it Item) IsReduce() bool {
	return it.Next == -1
}

// ItemSet is the flat, contiguously-numbered enumeration of every LR item of
// a grammar, built once by BuildItems. A canonical-collection state is a set
// of indices into this slice.
type ItemSet struct {
	g             *Grammar
	items         []Item
	kernelByNonTm map[int][]int
}

// BuildItems enumerates items for P' followed by each production p_i in
// index order. A production of right-length r emits r+1 items with dot
// positions 0..r; non-reduce items store the index of the subsequent entry
// in this same flat list, per spec §4.C.
func BuildItems(g *Grammar) *ItemSet {
	is := &ItemSet{g: g}

	emit := func(prodIdx int, right []int) {
		base := len(is.items)
		n := len(right)
		for dot := 0; dot <= n; dot++ {
			next := -1
			if dot < n {
				next = base + dot + 1
			}
			is.items = append(is.items, Item{
				Production: prodIdx,
				Dot:        dot,
				Next:       next,
				Lookahead:  -1,
			})
		}
	}

	emit(-1, g.augmented.Right)
	for i, p := range g.productions {
		if p.IsEpsilon(g.epsilon) {
			// a single item with the dot already past the ε: nothing to
			// shift over.
			is.items = append(is.items, Item{Production: i, Dot: 0, Next: -1, Lookahead: -1})
			continue
		}
		emit(i, p.Right)
	}

	is.kernelByNonTm = make(map[int][]int)
	for idx, it := range is.items {
		if it.Dot != 0 {
			continue
		}
		nt := g.startPrime
		if it.Production != -1 {
			nt = g.productions[it.Production].Left
		}
		is.kernelByNonTm[nt] = append(is.kernelByNonTm[nt], idx)
	}

	return is
}

// Len returns the number of enumerated items.
func (is *ItemSet) Len() int { return len(is.items) }

// Item returns the item at the given flat index.
func (is *ItemSet) Item(idx int) Item { return is.items[idx] }

// ProductionOf returns the production (or the augmented production for -1)
// that an item belongs to.
func (is *ItemSet) ProductionOf(it Item) Production {
	if it.Production == -1 {
		return is.g.augmented
	}
	return is.g.productions[it.Production]
}

// NextSymbol returns the symbol immediately right of the dot, and whether
// one exists (it does not for reduce items).
func (is *ItemSet) NextSymbol(it Item) (int, bool) {
	p := is.ProductionOf(it)
	if it.Dot >= len(p.Right) {
		return 0, false
	}
	if p.IsEpsilon(is.g.epsilon) {
		return 0, false
	}
	return p.Right[it.Dot], true
}

// KernelItemsFor returns the flat indices of the dot-0 items for every
// production headed by the given non-terminal, used by CLOSURE.
func (is *ItemSet) KernelItemsFor(nonTerminal int) []int {
	return is.kernelByNonTm[nonTerminal]
}
