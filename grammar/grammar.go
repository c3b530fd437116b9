package grammar

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
)

// Grammar is the symbol table, production list, and derived terminal/
// non-terminal/production indices of component A. Once constructed by
// NewGrammar a Grammar is immutable.
type Grammar struct {
	// BuildID stamps this Grammar with a random identity distinct from any
	// other Grammar built from logically equal input, so that two tables
	// serialized from separate analyzer runs are distinguishable even when
	// structurally identical.
	BuildID uuid.UUID

	symbols      []Symbol
	productions  []Production
	augmented    Production
	byNonTerm    map[int][]int
	terminals    []int
	nonTerminals []int

	start      int
	epsilon    int
	endOfInput int
	startPrime int // id of S', always len(symbols)-1
}

// NewGrammar builds a Grammar from a flat production list over a caller's
// symbol enumeration. symbolCount is N, the size of the caller's alphabet
// (not counting S'); ids [0, symbolCount) are the caller's symbols, and the
// returned Grammar reserves id symbolCount for the augmented start symbol.
//
// toString and isTerminal are queried for every id in [0, symbolCount); a
// symbol is marked Valid if toString returns a non-empty name for it. A
// reserved name ("ε", "$", "S'") on any id other than epsilon and
// endOfInput makes NewGrammar return an error.
func NewGrammar(prods []Production, symbolCount int, start, epsilon, endOfInput int, toString func(id int) string, isTerminal func(id int) bool) (*Grammar, error) {
	if symbolCount < 1 {
		return nil, fmt.Errorf("grammar: symbolCount must be positive")
	}

	// step 1: resize symbol-info table to N+1, reserving the last slot for S'.
	symbols := make([]Symbol, symbolCount+1)

	// step 2: populate each entry from the caller's predicates. epsilon and
	// endOfInput are exempt from the reserved-name check: they are expected
	// to carry the analyzer's own canonical names ("ε"/"$"). The
	// special-casing below always names endOfInput "$", and names epsilon
	// "ε" when the caller supplied no name for it.
	for id := 0; id < symbolCount; id++ {
		name := toString(id)
		if id != epsilon && id != endOfInput && isReservedName(name) {
			return nil, fmt.Errorf("grammar: symbol %d uses reserved name %q", id, name)
		}
		symbols[id] = Symbol{
			ID:         id,
			Name:       name,
			IsTerminal: isTerminal(id),
			Valid:      name != "",
		}
	}

	if !symbols[epsilon].Valid && epsilon != -1 {
		// epsilon is permitted to be a dedicated id whose name the caller
		// supplied; if it came back empty, give it the canonical name so
		// downstream rendering still works.
		symbols[epsilon] = Symbol{ID: epsilon, Name: "ε", IsTerminal: true, Valid: true}
	}
	if endOfInput >= 0 && endOfInput < symbolCount {
		symbols[endOfInput].Name = "$"
		symbols[endOfInput].IsTerminal = true
		symbols[endOfInput].Valid = true
	}

	// step 3: partition valid symbols into terminals / non-terminals,
	// excluding epsilon.
	var terminals, nonTerminals []int
	for id := 0; id < symbolCount; id++ {
		if id == epsilon || !symbols[id].Valid {
			continue
		}
		if symbols[id].IsTerminal {
			terminals = append(terminals, id)
		} else {
			nonTerminals = append(nonTerminals, id)
		}
	}

	// step 4: append S' as a fresh non-terminal.
	startPrime := symbolCount
	symbols[startPrime] = Symbol{ID: startPrime, Name: "S'", IsTerminal: false, Valid: true}
	nonTerminals = append(nonTerminals, startPrime)

	g := &Grammar{
		symbols:      symbols,
		productions:  make([]Production, len(prods)),
		terminals:    terminals,
		nonTerminals: nonTerminals,
		byNonTerm:    make(map[int][]int),
		start:        start,
		epsilon:      epsilon,
		endOfInput:   endOfInput,
		startPrime:   startPrime,
	}

	uid, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("grammar: generating build id: %w", err)
	}
	g.BuildID = uid

	copy(g.productions, prods)

	for i, p := range g.productions {
		if len(p.Right) == 0 {
			return nil, fmt.Errorf("grammar: production %d has empty right-hand side; use epsilon explicitly", i)
		}
		if len(p.Right) > maxProductionLength {
			return nil, fmt.Errorf("grammar: production %d exceeds max length %d", i, maxProductionLength)
		}
		if !g.IsValidSymbol(p.Left) || g.IsTerminal(p.Left) {
			return nil, fmt.Errorf("grammar: production %d has invalid non-terminal left side %d", i, p.Left)
		}
		for _, sym := range p.Right {
			if !g.IsValidSymbol(sym) {
				return nil, fmt.Errorf("grammar: production %d: %w", i, &SymbolError{ID: sym})
			}
		}
		g.byNonTerm[p.Left] = append(g.byNonTerm[p.Left], i)
	}

	if !g.IsValidSymbol(start) || g.IsTerminal(start) {
		return nil, fmt.Errorf("grammar: start symbol %d is not a valid non-terminal", start)
	}

	// step 6: construct P' = S' -> S.
	g.augmented = Production{Left: startPrime, Right: []int{start}}

	if err := g.validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// validate checks the invariants of the data model: epsilon excluded from
// V_T/V_N, $ never appears on a right-hand side, every right-hand-side
// symbol is valid.
func (g *Grammar) validate() error {
	for i, p := range g.productions {
		for _, sym := range p.Right {
			if sym == g.endOfInput {
				return fmt.Errorf("grammar: production %d: %q may not appear on a right-hand side", i, g.Name(sym))
			}
		}
	}
	return nil
}

// Symbol looks up symbol information by id. The second return is false if
// id is out of range or was never populated.
func (g *Grammar) Symbol(id int) (Symbol, bool) {
	if id < 0 || id >= len(g.symbols) {
		return Symbol{}, false
	}
	s := g.symbols[id]
	return s, s.Valid
}

// Name renders a symbol's name, or a placeholder if id is invalid.
func (g *Grammar) Name(id int) string {
	if s, ok := g.Symbol(id); ok {
		return s.Name
	}
	return fmt.Sprintf("<invalid:%d>", id)
}

// IsValidSymbol reports whether id names a populated symbol of this
// grammar (including the augmented S' and the reserved epsilon/end ids).
func (g *Grammar) IsValidSymbol(id int) bool {
	s, ok := g.Symbol(id)
	return ok && s.Valid
}

// IsTerminal reports whether id is a terminal symbol.
func (g *Grammar) IsTerminal(id int) bool {
	s, ok := g.Symbol(id)
	return ok && s.IsTerminal && id != g.epsilon
}

// IsNonTerminal reports whether id is a non-terminal symbol.
func (g *Grammar) IsNonTerminal(id int) bool {
	s, ok := g.Symbol(id)
	return ok && !s.IsTerminal
}

// Terminals returns V_T, the grammar's terminal symbol ids.
func (g *Grammar) Terminals() []int {
	return g.terminals
}

// NonTerminals returns V_N, the grammar's non-terminal symbol ids
// (including S').
func (g *Grammar) NonTerminals() []int {
	return g.nonTerminals
}

// Productions returns P, the grammar's production list in index order.
func (g *Grammar) Productions() []Production {
	return g.productions
}

// Production returns P(i), or the augmented production P' for i == -1.
func (g *Grammar) Production(i int) (Production, error) {
	if i == -1 {
		return g.augmented, nil
	}
	if i < 0 || i >= len(g.productions) {
		return Production{}, fmt.Errorf("grammar: no production at index %d", i)
	}
	return g.productions[i], nil
}

// Augmented returns P', the production S' -> S.
func (g *Grammar) Augmented() Production {
	return g.augmented
}

// ProductionsFor returns the indices of the productions headed by the given
// non-terminal, in the order they were declared.
func (g *Grammar) ProductionsFor(nonTerminal int) []int {
	return g.byNonTerm[nonTerminal]
}

// Start returns S, the grammar's (unaugmented) start symbol.
func (g *Grammar) Start() int { return g.start }

// StartPrime returns S', the id reserved for the augmented start symbol.
func (g *Grammar) StartPrime() int { return g.startPrime }

// Epsilon returns ε, the empty-string marker.
func (g *Grammar) Epsilon() int { return g.epsilon }

// EndOfInput returns $, the end-of-input marker.
func (g *Grammar) EndOfInput() int { return g.endOfInput }

// String renders the production list as a two-column table, grounded on
// internal/ictiobus/parse/slr.go's String() use of
// rosed.Edit("").InsertTableOpts(...).
func (g *Grammar) String() string {
	data := [][]string{{"#", "production"}}
	for i, p := range g.productions {
		right := ""
		for j, sym := range p.Right {
			if j > 0 {
				right += " "
			}
			right += g.Name(sym)
		}
		data = append(data, []string{fmt.Sprintf("%d", i), fmt.Sprintf("%s -> %s", g.Name(p.Left), right)})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
