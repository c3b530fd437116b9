/*
Lrgen builds the bundled expression grammar's LR parse table and prints it,
serializes it, or drives an interactive inspector over it.

Usage:

	lrgen [flags]

The flags are:

	-c, --config FILE
		Load grammar/output selection from the given TOML config file.

	-o, --output MODE
		One of "table" (default), "binary", or "source".

	--header
		Alias for --output source; emits a generated Go source file on
		stdout instead of a human-readable table.

	--repl
		Start an interactive token/parse trace inspector instead of
		printing a table.
*/
package main

import (
	"fmt"
	"os"

	"github.com/adrcodes/lrforge/config"
	"github.com/adrcodes/lrforge/exprlang"
	"github.com/adrcodes/lrforge/grammar"
	"github.com/adrcodes/lrforge/internal/lrlog"
	"github.com/adrcodes/lrforge/lex"
	"github.com/adrcodes/lrforge/parse"
	"github.com/adrcodes/lrforge/serialize"
	"github.com/chzyer/readline"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitConfigError indicates a problem reading or validating config.
	ExitConfigError

	// ExitBuildError indicates a problem constructing the grammar or table.
	ExitBuildError

	// ExitReplError indicates a problem running the interactive inspector.
	ExitReplError
)

var (
	returnCode int = ExitSuccess

	flagConfig = pflag.StringP("config", "c", "", "TOML config file selecting grammar/output")
	flagOutput = pflag.StringP("output", "o", "", "Output mode: table, binary, or source")
	flagHeader = pflag.Bool("header", false, "Emit a generated Go source file (shorthand for --output source)")
	flagRepl   = pflag.Bool("repl", false, "Start an interactive token/parse trace inspector")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()
	lrlog.SetWriter(os.Stderr)

	cfg := config.Config{}
	if *flagConfig != "" {
		loaded, err := config.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitConfigError
			return
		}
		cfg = loaded
	}
	if *flagOutput != "" {
		cfg.Output = *flagOutput
	}
	if *flagHeader {
		cfg.Output = string(config.OutputSource)
	}
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitConfigError
		return
	}

	lrlog.Log("lrgen: building grammar %q", cfg.Grammar)
	g, err := exprlang.BuildGrammar()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitBuildError
		return
	}

	tbl, err := buildTable(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitBuildError
		return
	}

	if *flagRepl {
		if err := runRepl(g, tbl); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitReplError
		}
		return
	}

	switch config.OutputMode(cfg.Output) {
	case config.OutputBinary:
		data, err := serialize.Marshal(tbl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitBuildError
			return
		}
		os.Stdout.Write(data)
	case config.OutputSource:
		src, err := serialize.MarshalSource(cfg.SourcePkg, cfg.SourceName, tbl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitBuildError
			return
		}
		fmt.Print(src)
	default:
		fmt.Println(g.String())
		fmt.Println()
		fmt.Println(tbl.String(g))
	}
}

// buildTable runs the full component E pipeline over g: items, canonical
// collection, FIRST/FOLLOW/SELECT sets, the SLR(1) multi-action table, then
// collapse to a runtime table.
func buildTable(g *grammar.Grammar) (*grammar.LRParseTable, error) {
	items := grammar.BuildItems(g)
	coll := grammar.BuildCanonicalCollection(g, items)
	sets := grammar.BuildSetTable(g)

	mt, err := grammar.BuildMultiActionTable(g, items, coll, sets, true)
	if err != nil {
		return nil, fmt.Errorf("lrgen: building table: %w", err)
	}

	lrlog.Log("lrgen: grammar classified as %s", mt.Classify(true))

	tbl, err := grammar.Collapse(g, mt)
	if err != nil {
		return nil, fmt.Errorf("lrgen: collapsing table: %w", err)
	}
	return tbl, nil
}

// runRepl drives the chzyer/readline-based interactive inspector, grounded
// on internal/input/input.go's InteractiveCommandReader: each line is
// tokenized with the bundled lexer and driven through a fresh parse.Driver,
// printing the shift/reduce/goto trace as it goes.
func runRepl(g *grammar.Grammar, tbl *grammar.LRParseTable) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: "lrgen> "})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	lxr, err := exprlang.BuildLexer()
	if err != nil {
		return fmt.Errorf("build lexer: %w", err)
	}

	fmt.Println("enter an expression to see its token and parse trace; Ctrl-D to quit")
	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		if line == "" {
			continue
		}

		if err := lxr.Reset([]lex.Source{{Path: "<repl>", Content: append([]byte(line), 0)}}); err != nil {
			fmt.Fprintf(os.Stderr, "lex error: %s\n", err)
			continue
		}

		driver := parse.NewDriver(tbl, parse.Callbacks{
			OnShift: func(state, symbol int) int {
				fmt.Printf("  shift %s -> state %d\n", g.Name(symbol), state)
				return 0
			},
			OnReduce: func(production, nsymbols int) int {
				p, _ := g.Production(production)
				fmt.Printf("  reduce %s\n", g.Name(p.Left))
				return 0
			},
			OnGoto: func(state, symbol int) int {
				fmt.Printf("  goto %s -> state %d\n", g.Name(symbol), state)
				return 0
			},
			OnAccept: func() int {
				fmt.Println("  accept")
				return 1
			},
			OnError: func(state, symbol int) int {
				fmt.Printf("  error: unexpected %s in state %d\n", g.Name(symbol), state)
				return 1
			},
		})

		for {
			tok := lxr.Advance()
			if tok.Kind == lex.KindEOS {
				driver.Step(g.EndOfInput())
				break
			}
			fmt.Printf("token %s %q\n", g.Name(tok.Kind), tok.Lexeme)
			if driver.Step(tok.Kind) != 0 {
				break
			}
		}
	}
}
