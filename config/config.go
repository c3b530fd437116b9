// Package config describes how the bundled cmd/lrgen CLI selects a grammar
// and output mode, loaded from a TOML file in the manner of
// internal/tqw's FileInfo/toml.Unmarshal usage.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Grammar names which bundled grammar cmd/lrgen should build a table for.
// Grammar-from-file declaration parsing is explicitly out of scope (spec
// §1 non-goals), so "expr" is the only value presently recognized.
type Grammar string

const (
	GrammarNone Grammar = ""
	GrammarExpr Grammar = "expr"
)

// ParseGrammar parses a string found in a config file or flag into a
// Grammar, in the manner of server.ParseDBType.
func ParseGrammar(s string) (Grammar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(GrammarExpr):
		return GrammarExpr, nil
	default:
		return GrammarNone, fmt.Errorf("grammar not one of 'expr': %q", s)
	}
}

// OutputMode selects the form cmd/lrgen renders its built table in.
type OutputMode string

const (
	OutputTable  OutputMode = "table"
	OutputBinary OutputMode = "binary"
	OutputSource OutputMode = "source"
)

// ParseOutputMode parses a string into an OutputMode.
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(OutputTable):
		return OutputTable, nil
	case string(OutputBinary):
		return OutputBinary, nil
	case string(OutputSource):
		return OutputSource, nil
	default:
		return "", fmt.Errorf("output mode not one of 'table', 'binary', 'source': %q", s)
	}
}

// Config is the full configuration for a cmd/lrgen run.
type Config struct {
	Grammar    string `toml:"grammar"`
	Output     string `toml:"output"`
	LogFile    string `toml:"log_file"`
	SourcePkg  string `toml:"source_package"`
	SourceName string `toml:"source_var"`
}

// FillDefaults returns a copy of cfg with unset fields set to their
// defaults, in the manner of server.Config.FillDefaults.
func (cfg Config) FillDefaults() Config {
	out := cfg
	if out.Grammar == "" {
		out.Grammar = string(GrammarExpr)
	}
	if out.Output == "" {
		out.Output = string(OutputTable)
	}
	if out.SourcePkg == "" {
		out.SourcePkg = "tables"
	}
	if out.SourceName == "" {
		out.SourceName = "expr"
	}
	return out
}

// Validate returns an error if cfg's fields do not parse as valid grammar/
// output selections.
func (cfg Config) Validate() error {
	if _, err := ParseGrammar(cfg.Grammar); err != nil {
		return fmt.Errorf("grammar: %w", err)
	}
	if _, err := ParseOutputMode(cfg.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// Load reads and parses a TOML config file at path, in the manner of
// tqw.ParseFileInfo's toml.Unmarshal usage.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}
