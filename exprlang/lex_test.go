package exprlang

import (
	"testing"

	"github.com/adrcodes/lrforge/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildLexer_TokenizesArithmeticExpression(t *testing.T) {
	lx, err := BuildLexer()
	require.NoError(t, err)

	require.NoError(t, lx.Reset([]lex.Source{{Path: "expr", Content: []byte("x + 1 ** 2\x00")}}))

	var kinds []int
	for {
		tok := lx.Advance()
		if tok.Kind == lex.KindEOS {
			break
		}
		kinds = append(kinds, tok.Kind)
	}

	assert.Equal(t, []int{Identifier, Plus, IntegerLit, StarStar, IntegerLit}, kinds)
}

func Test_BuildLexer_PrefersLongestOperator(t *testing.T) {
	lx, err := BuildLexer()
	require.NoError(t, err)

	require.NoError(t, lx.Reset([]lex.Source{{Path: "expr", Content: []byte("a <= b\x00")}}))

	_ = lx.Advance()
	op := lx.Advance()
	assert.Equal(t, Le, op.Kind)
	assert.Equal(t, "<=", op.Lexeme)
}
