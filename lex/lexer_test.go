package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kind ids used only by this test file, standing in for grammar terminal
// ids a real caller would share with exprlang.
const (
	kBool = iota
	kInteger
	kFloat
	kString
	kStruct
	kIdentifier
	kPlus
	kPlusPlus
	kBlank
	kEOL
)

func buildTestLexer(t *testing.T) *Lexer {
	t.Helper()
	lx := NewLexer()

	require.NoError(t, lx.AddRule(kBool, `true|false`, PropBool, false))
	require.NoError(t, lx.AddRule(kStruct, `struct`, PropNone, false))
	require.NoError(t, lx.AddRule(kFloat, `(?:[0-9]*\.[0-9]+|[0-9]+\.[0-9]*)(?:[eE][+-]?[0-9]+)?`, PropFloat, false))
	require.NoError(t, lx.AddRule(kInteger, `[0-9]+|'(?:[^'\\]|\\.)+'`, PropInteger, false))
	require.NoError(t, lx.AddRule(kString, `"(?:[^"\\]|\\.)*"`, PropString, false))
	require.NoError(t, lx.AddRule(kPlusPlus, `\+\+`, PropNone, false))
	require.NoError(t, lx.AddRule(kPlus, `\+`, PropNone, false))
	require.NoError(t, lx.AddRule(kIdentifier, `[$_A-Za-z\x80-\xFF][$_A-Za-z0-9\x80-\xFF]*`, PropIdentifier, false))
	require.NoError(t, lx.AddRule(kBlank, `[ \t\v\f]+`, PropNone, true))
	require.NoError(t, lx.AddRule(kEOL, `\r?\n`, PropNone, true))

	return lx
}

// Test_Advance_SuppressesBlanksAndYieldsExpectedKinds exercises the literal
// scenario of spec.md §8.
func Test_Advance_SuppressesBlanksAndYieldsExpectedKinds(t *testing.T) {
	lx := buildTestLexer(t)

	input := "true false 123 1. .33 \"a\" struct identifier + ++\x00"
	require.NoError(t, lx.Reset([]Source{{Path: "<test>", Content: []byte(input)}}))

	want := []int{kBool, kBool, kInteger, kFloat, kFloat, kString, kStruct, kIdentifier, kPlus, kPlusPlus}

	var got []int
	for i := 0; i < len(want); i++ {
		got = append(got, lx.Token(0).Kind)
		lx.Advance()
	}

	assert.Equal(t, want, got)
}

func Test_Token_PeekIdempotence(t *testing.T) {
	lx := buildTestLexer(t)
	require.NoError(t, lx.Reset([]Source{{Path: "<test>", Content: []byte("true false\x00")}}))

	first := lx.Token(1)
	second := lx.Token(1)
	assert.Equal(t, first, second)

	lx.Advance()
	assert.Equal(t, first, lx.Token(0))
}

func Test_Advance_EOSAfterLastSource(t *testing.T) {
	lx := buildTestLexer(t)
	require.NoError(t, lx.Reset([]Source{{Path: "<test>", Content: []byte("true\x00")}}))

	assert.Equal(t, kBool, lx.Token(0).Kind)
	lx.Advance()
	assert.Equal(t, KindEOS, lx.Token(0).Kind)
	lx.Advance()
	assert.Equal(t, KindEOS, lx.Token(0).Kind)
}

func Test_Advance_UnknownByteYieldsUnknownToken(t *testing.T) {
	lx := buildTestLexer(t)
	require.NoError(t, lx.Reset([]Source{{Path: "<test>", Content: []byte("@\x00")}}))

	assert.Equal(t, KindUnknown, lx.Token(0).Kind)
	assert.Equal(t, "@", lx.Token(0).Lexeme)
}

func Test_DecodeProperty_IntegerAndFloat(t *testing.T) {
	p := decodeProperty(PropInteger, "42")
	assert.Equal(t, int64(42), p.Int)

	p = decodeProperty(PropFloat, "3.5")
	assert.InDelta(t, 3.5, p.Float, 0.0001)

	p = decodeProperty(PropString, `"a\nb"`)
	assert.Equal(t, "a\nb", p.Text)
}
