// Package serialize implements component J: turning a precomputed
// grammar.LRParseTable into an artifact that can be read back without
// re-running the analyzer, in two concrete formats — a compact binary form
// and a Go source-text form — fulfilling spec §4.J's "format chosen by the
// implementer" with both instead of picking just one.
package serialize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adrcodes/lrforge/grammar"
	"github.com/dekarrin/rezi"
)

// Marshal encodes a table with github.com/dekarrin/rezi, grounded on
// server/dao/sqlite/sqlite.go's convertToDB_GameStatePtr use of
// rezi.EncBinary on a plain struct pointer.
func Marshal(tbl *grammar.LRParseTable) ([]byte, error) {
	if tbl == nil {
		return nil, fmt.Errorf("serialize: cannot marshal a nil table")
	}
	return rezi.EncBinary(tbl), nil
}

// Unmarshal decodes a table previously produced by Marshal, grounded on
// server/dao/sqlite/sqlite.go's convertFromDB_GameStatePtr use of
// rezi.DecBinary and its consumed-byte-count check.
func Unmarshal(data []byte) (*grammar.LRParseTable, error) {
	tbl := &grammar.LRParseTable{}
	n, err := rezi.DecBinary(data, tbl)
	if err != nil {
		return nil, fmt.Errorf("serialize: REZI decode: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("serialize: decoded byte count mismatch; consumed %d/%d bytes", n, len(data))
	}
	return tbl, nil
}

// MarshalSource renders tbl as Go source text: a map[[2]int]grammar.Action
// literal of the table's cells plus the reduce metadata needed to drive a
// parse.Driver, suitable for `cmd/lrgen --header` to emit into a generated
// file that never needs to re-run the analyzer at runtime. The generated
// file imports the grammar package for its Action and LRParseTable types.
func MarshalSource(pkg, varName string, tbl *grammar.LRParseTable) (string, error) {
	if tbl == nil {
		return "", fmt.Errorf("serialize: cannot render a nil table")
	}

	type cell struct {
		state, symbol int
		act           grammar.Action
	}
	cells := make([]cell, 0, len(tbl.Cells))
	for k, a := range tbl.Cells {
		cells = append(cells, cell{state: k[0], symbol: k[1], act: a})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].state != cells[j].state {
			return cells[i].state < cells[j].state
		}
		return cells[i].symbol < cells[j].symbol
	})

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by lrforge/serialize.MarshalSource. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/adrcodes/lrforge/grammar\"\n\n")
	fmt.Fprintf(&b, "var %sCells = map[[2]int]grammar.Action{\n", varName)
	for _, c := range cells {
		fmt.Fprintf(&b, "\t{%d, %d}: {Kind: %s, State: %d, Production: %d},\n",
			c.state, c.symbol, actionKindSource(c.act.Kind), c.act.State, c.act.Production)
	}
	fmt.Fprintf(&b, "}\n\n")

	prodIdxs := make([]int, 0, len(tbl.Reduces))
	for p := range tbl.Reduces {
		prodIdxs = append(prodIdxs, p)
	}
	sort.Ints(prodIdxs)

	fmt.Fprintf(&b, "var %sReduces = map[int]grammar.ReduceInfo{\n", varName)
	for _, p := range prodIdxs {
		info := tbl.Reduces[p]
		fmt.Fprintf(&b, "\t%d: {Left: %d, RightLen: %d},\n", p, info.Left, info.RightLen)
	}
	fmt.Fprintf(&b, "}\n\n")

	fmt.Fprintf(&b, "var %sTable = grammar.LRParseTable{\n", varName)
	fmt.Fprintf(&b, "\tNumStates:  %d,\n", tbl.NumStates)
	fmt.Fprintf(&b, "\tNumSymbols: %d,\n", tbl.NumSymbols)
	fmt.Fprintf(&b, "\tCells:      %sCells,\n", varName)
	fmt.Fprintf(&b, "\tReduces:    %sReduces,\n", varName)
	fmt.Fprintf(&b, "\tClass:      grammar.Class(%d),\n", tbl.Class)
	fmt.Fprintf(&b, "}\n")

	return b.String(), nil
}

func actionKindSource(k grammar.ActionKind) string {
	switch k {
	case grammar.ActionShift:
		return "grammar.ActionShift"
	case grammar.ActionReduce:
		return "grammar.ActionReduce"
	case grammar.ActionGoto:
		return "grammar.ActionGoto"
	case grammar.ActionAccept:
		return "grammar.ActionAccept"
	default:
		return "grammar.ActionError"
	}
}
