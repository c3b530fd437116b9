package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseGrammar(t *testing.T) {
	g, err := ParseGrammar("EXPR")
	require.NoError(t, err)
	assert.Equal(t, GrammarExpr, g)

	_, err = ParseGrammar("bogus")
	assert.Error(t, err)
}

func Test_ParseOutputMode(t *testing.T) {
	m, err := ParseOutputMode("Binary")
	require.NoError(t, err)
	assert.Equal(t, OutputBinary, m)

	_, err = ParseOutputMode("")
	assert.Error(t, err)
}

func Test_FillDefaults(t *testing.T) {
	cfg := Config{}.FillDefaults()
	assert.Equal(t, "expr", cfg.Grammar)
	assert.Equal(t, "table", cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func Test_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lrgen.toml")
	require.NoError(t, os.WriteFile(path, []byte("grammar = \"expr\"\noutput = \"source\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expr", cfg.Grammar)
	assert.Equal(t, "source", cfg.Output)
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
