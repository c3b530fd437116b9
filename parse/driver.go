// Package parse implements the generic LR shift-reduce state machine driver
// of component F: a stack-pair interpreter over a grammar.LRParseTable whose
// behavior is entirely delegated to a caller-supplied Callbacks value.
package parse

import "github.com/adrcodes/lrforge/grammar"

// Callbacks is the capability set a Driver dispatches to. All five are
// required; a caller that wants a default no-op behavior must supply one
// explicitly rather than relying on a nil receiver, per spec §6.
//
// Each callback returns a status: 0 means continue, non-zero aborts the
// in-progress Step call with that value.
type Callbacks struct {
	OnShift  func(state, symbol int) int
	OnGoto   func(state, symbol int) int
	OnReduce func(production, nsymbols int) int
	OnAccept func() int
	OnError  func(state, symbol int) int
}

// Driver holds exclusive mutable ownership of a parser's two parallel
// stacks, grounded on internal/ictiobus/parse/lr.go's lrParser.Parse, but
// restructured from a single Parse(stream) loop into the spec's required
// single-symbol Step contract so it can be driven token-by-token by a
// caller that interleaves lexing and parsing itself.
type Driver struct {
	table *grammar.LRParseTable
	cb    Callbacks

	stateStack  []int
	symbolStack []int
}

// NewDriver returns a Driver over the given table, dispatching to cb.
func NewDriver(table *grammar.LRParseTable, cb Callbacks) *Driver {
	d := &Driver{table: table, cb: cb}
	d.Reset()
	return d
}

// Reset empties both stacks, putting the driver back in its initial state
// (state 0 on top once a state push occurs; an empty stack is taken to mean
// state 0, per spec §4.F).
func (d *Driver) Reset() {
	d.stateStack = d.stateStack[:0]
	d.symbolStack = d.symbolStack[:0]
}

// top returns the state on top of state_stack, or 0 if the stack is empty.
func (d *Driver) top() int {
	if len(d.stateStack) == 0 {
		return 0
	}
	return d.stateStack[len(d.stateStack)-1]
}

func (d *Driver) pushState(s int)  { d.stateStack = append(d.stateStack, s) }
func (d *Driver) pushSymbol(s int) { d.symbolStack = append(d.symbolStack, s) }

func (d *Driver) popN(n int) {
	d.stateStack = d.stateStack[:len(d.stateStack)-n]
	d.symbolStack = d.symbolStack[:len(d.symbolStack)-n]
}

// StacksBalanced reports whether the state and symbol stacks have equal
// length, the invariant that must hold at every quiescent point (testable
// property 6).
func (d *Driver) StacksBalanced() bool {
	return len(d.stateStack) == len(d.symbolStack)
}

// Step consumes one input symbol and returns 0 to continue or a non-zero
// status from whichever callback decided the outcome, per the action table
// in spec §4.F. A Reduce action applies its GOTO and then re-enters Step
// with the same input symbol, without actually consuming it, so a single
// call may drive arbitrarily many chained reductions before returning.
func (d *Driver) Step(symbol int) int {
	s := d.top()
	act := d.table.Action(s, symbol)

	switch act.Kind {
	case grammar.ActionShift:
		d.pushState(act.State)
		d.pushSymbol(symbol)
		return d.cb.OnShift(act.State, symbol)

	case grammar.ActionReduce:
		return d.reduce(act.Production, symbol)

	case grammar.ActionGoto:
		d.pushState(act.State)
		d.pushSymbol(symbol)
		return d.cb.OnGoto(act.State, symbol)

	case grammar.ActionAccept:
		return d.cb.OnAccept()

	default: // grammar.ActionError
		return d.cb.OnError(s, symbol)
	}
}

// reduce implements the Reduce row of spec §4.F's table: pop |right(p)|
// entries from both stacks, invoke OnReduce, apply the new top state's GOTO
// entry for the reduced non-terminal, and (absent an early return) retry
// the original lookahead against the post-GOTO state. Retrying the same
// lookahead rather than substituting the reduced non-terminal for it is
// what lets chain/unit productions (every layer of exprlang's T0..T17
// ladder) collapse through several reduces under one external Step call,
// since a non-terminal can only ever head to another GOTO or an error, not
// a further reduce.
func (d *Driver) reduce(production, lookahead int) int {
	info, ok := d.table.ReduceInfo(production)
	if !ok {
		// a malformed table named a production Collapse never recorded;
		// surface it the same way an OnError would.
		return d.cb.OnError(d.top(), lookahead)
	}

	n := info.RightLen
	d.popN(n)

	if status := d.cb.OnReduce(production, n); status != 0 {
		return status
	}

	s := d.top()
	act := d.table.Action(s, info.Left)
	if act.Kind != grammar.ActionGoto {
		// malformed table: no GOTO recorded for the reduced non-terminal.
		return d.cb.OnError(s, info.Left)
	}
	d.pushState(act.State)
	d.pushSymbol(info.Left)
	if status := d.cb.OnGoto(act.State, info.Left); status != 0 {
		return status
	}

	return d.Step(lookahead)
}
