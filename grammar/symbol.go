// Package grammar implements the symbol table, production list, FIRST/
// FOLLOW/SELECT set computation, LR item enumeration, canonical collection
// construction, and parse-table building for LR(0) and SLR(1) grammars.
//
// The design follows the arena+index conventions of the ictiobus toolkit
// this package is descended from: grammars, items, and states are built once
// and then read only, with all cross-references expressed as plain integer
// ids rather than pointers.
package grammar

import "fmt"

// Symbol is one entry of a grammar's alphabet. Ids are dense integers in
// [0, N] where N is the number of user-defined symbols; the id equal to the
// symbol count is always reserved for the augmented start symbol S'.
type Symbol struct {
	ID         int
	Name       string
	IsTerminal bool

	// Valid is false for reserved ids that were never populated by the
	// caller. A grammar built successfully never exposes an invalid symbol
	// on a production's right-hand side.
	Valid bool
}

func (s Symbol) String() string {
	return s.Name
}

// reservedNames lists the symbol names NewGrammar refuses to accept from a
// caller, since the analyzer assigns them itself.
var reservedNames = map[string]bool{
	"ε":  true,
	"$":  true,
	"S'": true,
}

func isReservedName(name string) bool {
	return reservedNames[name]
}

// SymbolError reports that a symbol referenced during construction does not
// name a valid member of the grammar's alphabet.
type SymbolError struct {
	ID int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("grammar: symbol %d is not a valid symbol of this grammar", e.ID)
}
