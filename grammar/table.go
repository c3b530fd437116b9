package grammar

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionGoto
	ActionAccept
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionGoto:
		return "goto"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is a tagged variant over the four action kinds of component E.
// State is used by Shift and Goto; Production is used by Reduce.
type Action struct {
	Kind       ActionKind
	State      int
	Production int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce P%d", a.Production)
	case ActionGoto:
		return fmt.Sprintf("goto %d", a.State)
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Equal reports whether two actions denote the same operation.
func (a Action) Equal(o Action) bool {
	return a == o
}

// Class classifies a grammar as LR(0), SLR(1), or neither, per spec §4.E.
type Class int

const (
	ClassUnknown Class = iota
	ClassLR0
	ClassSLR1
)

func (c Class) String() string {
	switch c {
	case ClassLR0:
		return "LR(0)"
	case ClassSLR1:
		return "SLR(1)"
	default:
		return "neither LR(0) nor SLR(1)"
	}
}

// MultiActionTable is the (num_states x (N+1)) table of action sets used
// during construction and conflict detection, before collapsing to a
// runtime single-action table.
type MultiActionTable struct {
	g        *Grammar
	coll     *Collection
	cells    map[[2]int][]Action
	numState int

	// useFollowSets records which reduce rule BuildMultiActionTable was
	// built with, so Collapse can report the table's actual class without
	// the caller having to repeat the choice.
	useFollowSets bool
}

// cellKey canonicalizes (state, symbol) lookups.
func cellKey(state, symbol int) [2]int { return [2]int{state, symbol} }

// add appends act to the cell if it is not already present (by Equal), per
// spec §9's note that identical derivations of the same action are not a
// conflict.
func (t *MultiActionTable) add(state, symbol int, act Action) {
	k := cellKey(state, symbol)
	for _, existing := range t.cells[k] {
		if existing.Equal(act) {
			return
		}
	}
	t.cells[k] = append(t.cells[k], act)
}

// Actions returns the set of actions recorded for (state, symbol).
func (t *MultiActionTable) Actions(state, symbol int) []Action {
	return t.cells[cellKey(state, symbol)]
}

// BuildMultiActionTable builds the multi-action table for the given
// canonical collection, using the SLR(1) reduce rule (gate reduces by
// FOLLOW) when useFollowSets is true, and the LR(0) rule (reduce on every
// terminal column) otherwise. This mirrors
// internal/ictiobus/parse/slr.go's constructSimpleLRParseTable, generalized
// from per-state-name string lookups to per-state-integer slice lookups.
func BuildMultiActionTable(g *Grammar, items *ItemSet, coll *Collection, sets *SetTable, useFollowSets bool) (*MultiActionTable, error) {
	t := &MultiActionTable{
		g:             g,
		coll:          coll,
		cells:         make(map[[2]int][]Action),
		numState:      len(coll.States()),
		useFollowSets: useFollowSets,
	}

	for _, state := range coll.States() {
		for idx := range state.Items {
			it := items.Item(idx)

			if it.IsReduce() {
				prod := items.ProductionOf(it)
				if it.Production == -1 {
					// S' -> S., accept on $.
					t.add(state.ID, g.EndOfInput(), Action{Kind: ActionAccept})
					continue
				}

				if useFollowSets {
					for a := range sets.Follow(prod.Left) {
						t.add(state.ID, a, Action{Kind: ActionReduce, Production: it.Production})
					}
				} else {
					for _, a := range g.Terminals() {
						t.add(state.ID, a, Action{Kind: ActionReduce, Production: it.Production})
					}
					t.add(state.ID, g.EndOfInput(), Action{Kind: ActionReduce, Production: it.Production})
				}
				continue
			}

			x, ok := items.NextSymbol(it)
			if !ok {
				continue
			}
			j, hasGoto := coll.Goto(state.ID, x)
			if !hasGoto {
				return nil, fmt.Errorf("grammar: state %d has no GOTO on symbol %q despite a shift kernel item; grammar is malformed", state.ID, g.Name(x))
			}
			if g.IsTerminal(x) {
				t.add(state.ID, x, Action{Kind: ActionShift, State: j})
			} else {
				t.add(state.ID, x, Action{Kind: ActionGoto, State: j})
			}
		}
	}

	return t, nil
}

// Classify reports LR0/SLR1/Unknown for this table: LR(0) or SLR(1) iff no
// cell holds more than one action (the concrete class depends on which
// reduce rule BuildMultiActionTable was built with).
func (t *MultiActionTable) Classify(slr bool) Class {
	for _, acts := range t.cells {
		if len(acts) > 1 {
			return ClassUnknown
		}
	}
	if slr {
		return ClassSLR1
	}
	return ClassLR0
}

// Conflict names one multi-action cell with more than one action.
type Conflict struct {
	State   int
	Symbol  int
	Actions []Action
}

func (c Conflict) Error() string {
	return fmt.Sprintf("conflict in state %d on symbol %d: %v", c.State, c.Symbol, c.Actions)
}

// Conflicts returns every cell with more than one action, in a
// deterministic (state, then symbol) order.
func (t *MultiActionTable) Conflicts() []Conflict {
	var out []Conflict
	for state := 0; state < t.numState; state++ {
		for symbol := range t.g.symbols {
			acts := t.cells[cellKey(state, symbol)]
			if len(acts) > 1 {
				out = append(out, Conflict{State: state, Symbol: symbol, Actions: acts})
			}
		}
	}
	return out
}

// ReduceInfo is the production metadata a state-machine driver needs to
// execute a Reduce action: how many stack entries to pop and which
// non-terminal to re-enter the table on.
type ReduceInfo struct {
	Left     int
	RightLen int
}

// LRParseTable is the runtime single-action table of component E: one
// action per (state, symbol) cell, produced by collapsing a conflict-free
// MultiActionTable.
type LRParseTable struct {
	// BuildID is copied from the Grammar this table was built from, so a
	// serialized table can be checked against the grammar that produced it.
	BuildID    [16]byte
	NumStates  int
	NumSymbols int
	Cells      map[[2]int]Action
	Reduces    map[int]ReduceInfo
	Class      Class
}

// Action returns the action for (state, symbol), or the zero-value
// ActionError if the cell is empty.
func (tbl *LRParseTable) Action(state, symbol int) Action {
	if a, ok := tbl.Cells[cellKey(state, symbol)]; ok {
		return a
	}
	return Action{Kind: ActionError}
}

// ReduceInfo returns the left symbol and right-hand-side length of the
// given production index, as recorded at Collapse time.
func (tbl *LRParseTable) ReduceInfo(production int) (ReduceInfo, bool) {
	info, ok := tbl.Reduces[production]
	return info, ok
}

// String renders the table as a state-by-symbol grid, grounded on
// internal/ictiobus/parse/slr.go's slrTable.String() use of
// rosed.Edit("").InsertTableOpts(...), adapted from per-state-name lookups
// to per-state-integer lookups.
func (tbl *LRParseTable) String(g *Grammar) string {
	headers := []string{"state"}
	for _, t := range g.Terminals() {
		headers = append(headers, "A:"+g.Name(t))
	}
	headers = append(headers, "|")
	for _, nt := range g.NonTerminals() {
		headers = append(headers, "G:"+g.Name(nt))
	}

	data := [][]string{headers}
	cols := g.Terminals()

	for state := 0; state < tbl.NumStates; state++ {
		row := []string{fmt.Sprintf("%d", state)}
		for _, sym := range cols {
			act := tbl.Action(state, sym)
			cell := ""
			switch act.Kind {
			case ActionShift:
				cell = fmt.Sprintf("s%d", act.State)
			case ActionReduce:
				cell = fmt.Sprintf("r%d", act.Production)
			case ActionAccept:
				cell = "acc"
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range g.NonTerminals() {
			cell := ""
			if act := tbl.Action(state, nt); act.Kind == ActionGoto {
				cell = fmt.Sprintf("%d", act.State)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// Collapse produces a single-action LRParseTable from a conflict-free
// MultiActionTable, per spec §4.E. It fails with the conflict report if any
// cell holds more than one action.
func Collapse(g *Grammar, t *MultiActionTable) (*LRParseTable, error) {
	if conflicts := t.Conflicts(); len(conflicts) > 0 {
		return nil, fmt.Errorf("grammar: %d conflict(s), first: %w", len(conflicts), conflicts[0])
	}

	tbl := &LRParseTable{
		BuildID:    g.BuildID,
		NumStates:  t.numState,
		NumSymbols: len(g.symbols),
		Cells:      make(map[[2]int]Action),
		Reduces:    make(map[int]ReduceInfo),
		Class:      t.Classify(t.useFollowSets),
	}
	for k, acts := range t.cells {
		if len(acts) == 1 {
			tbl.Cells[k] = acts[0]
		}
	}
	for i, p := range g.productions {
		rightLen := len(p.Right)
		if p.IsEpsilon(g.epsilon) {
			rightLen = 0
		}
		tbl.Reduces[i] = ReduceInfo{Left: p.Left, RightLen: rightLen}
	}
	return tbl, nil
}
