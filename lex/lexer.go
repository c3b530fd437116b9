// Package lex implements component H: a DFA-equivalent lexer built from an
// ordered list of regex rules, unifying its token type ids with a grammar's
// terminal ids so generated parse tables can consume its output directly.
package lex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Lexer holds an ordered rule table and, once Reset binds a set of Sources,
// a one-token lookahead buffer over them. Grounded on
// internal/ictiobus/lex/lazy.go's lazyLex, adapted from its per-state
// super-regex and io.Reader-backed stream to a single flat rule list over
// in-memory Source buffers, since spec §4.H defines no lexer sub-states.
type Lexer struct {
	rules []Rule
	super *regexp.Regexp

	sources []Source
	linePos [][]int
	cursor

	tok0, tok1 Token
	done       bool
}

// NewLexer returns an empty Lexer; rules must be added with AddRule before
// Reset is called.
func NewLexer() *Lexer {
	return &Lexer{}
}

// AddRule appends a rule to the end of the table. Rule order is significant:
// GNU-lex-style tie-breaking prefers the earliest rule when two rules match
// the same length at the same cursor position — callers should declare
// keywords and the bool literal before a general identifier rule so the
// longer/earlier literal wins, per spec §4.H.
func (lx *Lexer) AddRule(kind int, pattern string, property PropertyKind, discard bool) error {
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("lex: rule for kind %d: %w", kind, err)
	}
	lx.rules = append(lx.rules, Rule{Kind: kind, Pattern: pattern, Discard: discard, Property: property})
	lx.super = nil
	return nil
}

// Reset binds sources for lexing, resets the cursor to the start of the
// first source, and primes the one-token lookahead buffer (Token(0) and
// Token(1)) by scanning twice.
func (lx *Lexer) Reset(sources []Source) error {
	if lx.super == nil {
		re, err := compileSuperRegex(lx.rules)
		if err != nil {
			return err
		}
		lx.super = re
	}

	lx.sources = sources
	lx.linePos = make([][]int, len(sources))
	for i := range lx.linePos {
		lx.linePos[i] = []int{0}
	}
	lx.cursor = cursor{}
	lx.done = len(sources) == 0

	lx.tok0 = lx.scanNext()
	lx.tok1 = lx.scanNext()
	return nil
}

// Token returns the current token (n == 0) or the one-token peek (n == 1).
// Any other n is not defined.
func (lx *Lexer) Token(n int) Token {
	if n == 0 {
		return lx.tok0
	}
	return lx.tok1
}

// Advance consumes the current token and returns it, shifting the peek into
// its place and scanning a fresh peek. Successive calls after Reset thus
// return every non-blank, non-comment, non-eol token of the bound sources in
// order, then KindEOS indefinitely once every source is exhausted.
func (lx *Lexer) Advance() Token {
	consumed := lx.tok0
	lx.tok0 = lx.tok1
	lx.tok1 = lx.scanNext()
	return consumed
}

func (lx *Lexer) eosToken() Token {
	return Token{Kind: KindEOS, Location: Location{SourceIndex: lx.srcIdx, Line: lx.line, Column: lx.col}}
}

// scanNext runs the rule table at the current cursor position until it
// finds a non-discard match (or reaches the end of every source), applying
// the NUL sentinel as a source-boundary marker rather than a rule match.
func (lx *Lexer) scanNext() Token {
	for {
		if lx.done {
			return lx.eosToken()
		}

		content := lx.sources[lx.srcIdx].Content
		if lx.offset >= len(content) || content[lx.offset] == 0 {
			if !lx.nextSource() {
				return lx.eosToken()
			}
			continue
		}

		idx := lx.super.FindSubmatchIndex(content[lx.offset:])
		if idx == nil {
			tok := Token{
				Kind:     KindUnknown,
				Location: Location{SourceIndex: lx.srcIdx, Line: lx.line, Column: lx.col, Size: 1},
				Lexeme:   string(content[lx.offset : lx.offset+1]),
			}
			lx.advance(tok.Lexeme, &lx.linePos)
			return tok
		}

		ruleIdx, lexeme := selectMatch(lx.rules, content[lx.offset:], idx)
		rule := lx.rules[ruleIdx]

		tok := Token{
			Kind:   rule.Kind,
			Lexeme: lexeme,
			Location: Location{
				SourceIndex: lx.srcIdx,
				Line:        lx.line,
				Column:      lx.col,
				Size:        len(lexeme),
			},
			Property: decodeProperty(rule.Property, lexeme),
		}
		lx.advance(lexeme, &lx.linePos)

		if rule.Discard {
			continue
		}
		return tok
	}
}

// decodeProperty turns a matched lexeme into the typed Property its rule
// declared, per spec §3's tagged-variant Token.property.
func decodeProperty(kind PropertyKind, lexeme string) Property {
	switch kind {
	case PropBool:
		return Property{Kind: PropBool, Bool: lexeme == "true"}
	case PropInteger:
		return decodeInteger(lexeme)
	case PropFloat:
		f, _ := strconv.ParseFloat(lexeme, 64)
		return Property{Kind: PropFloat, Float: f, Precision: 64}
	case PropString:
		return Property{Kind: PropString, Text: unescapeQuoted(lexeme, '"')}
	case PropIdentifier:
		return Property{Kind: PropIdentifier, Text: lexeme}
	default:
		return Property{Kind: PropNone}
	}
}

// decodeInteger handles both the digit-run form and the single-quoted
// character-literal form of spec §4.H's integer rule.
func decodeInteger(lexeme string) Property {
	if strings.HasPrefix(lexeme, "'") {
		unescaped := unescapeQuoted(lexeme, '\'')
		var r rune
		for _, c := range unescaped {
			r = c
			break
		}
		return Property{Kind: PropInteger, Int: int64(r), Precision: 32}
	}

	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Property{Kind: PropInteger}
	}
	return Property{Kind: PropInteger, Int: v, Sign: v < 0, Precision: 64}
}

// unescapeQuoted strips the surrounding quote character and resolves the
// backslash escapes the string_literal/integer char-literal rules allow.
func unescapeQuoted(lexeme string, quote byte) string {
	if len(lexeme) < 2 {
		return lexeme
	}
	body := lexeme[1 : len(lexeme)-1]

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case quote:
				b.WriteByte(quote)
			default:
				b.WriteByte(body[i])
			}
			continue
		}
		b.WriteByte(body[i])
	}
	return b.String()
}
