package exprlang

import (
	"fmt"

	"github.com/adrcodes/lrforge/lex"
)

// BuildLexer returns a lex.Lexer whose rule table emits exactly this
// package's terminal ids, so its output can drive a parse.Driver built over
// BuildGrammar's table without any id translation, fulfilling spec §1's
// lexer/grammar unification requirement. Multi-character operators are
// registered before their single-character prefixes (`**` before `*`, `<=`
// before `<`) so the longest-match tie-break in lex.selectMatch never needs
// to break a tie between them.
func BuildLexer() (*lex.Lexer, error) {
	lx := lex.NewLexer()

	type rule struct {
		kind     int
		pattern  string
		property lex.PropertyKind
		discard  bool
	}

	rules := []rule{
		{kind: -1, pattern: `[ \t\r\n]+`, discard: true},
		{kind: -1, pattern: `//[^\n]*`, discard: true},

		{kind: BoolLit, pattern: `true|false`, property: lex.PropBool},
		{kind: Identifier, pattern: `[A-Za-z_][A-Za-z0-9_]*`, property: lex.PropIdentifier},
		{kind: FloatLit, pattern: `(?:[0-9]+\.[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`, property: lex.PropFloat},
		{kind: IntegerLit, pattern: `[0-9]+|'(?:[^'\\]|\\.)'`, property: lex.PropInteger},
		{kind: StringLit, pattern: `"(?:[^"\\]|\\.)*"`, property: lex.PropString},

		{kind: DotDot, pattern: `\.\.`},
		{kind: Dot, pattern: `\.`},
		{kind: Comma, pattern: `,`},
		{kind: Question, pattern: `\?`},
		{kind: Colon, pattern: `:`},
		{kind: LParen, pattern: `\(`},
		{kind: RParen, pattern: `\)`},
		{kind: LBracket, pattern: `\[`},
		{kind: RBracket, pattern: `\]`},

		{kind: StarStar, pattern: `\*\*`},
		{kind: PlusPlus, pattern: `\+\+`},
		{kind: MinusMinus, pattern: `--`},
		{kind: Shl, pattern: `<<`},
		{kind: Shr, pattern: `>>`},
		{kind: Le, pattern: `<=`},
		{kind: Ge, pattern: `>=`},
		{kind: Eq, pattern: `==`},
		{kind: Ne, pattern: `!=`},
		{kind: AmpAmp, pattern: `&&`},
		{kind: PipePipe, pattern: `\|\|`},

		{kind: Not, pattern: `!`},
		{kind: BitNot, pattern: `~`},
		{kind: Plus, pattern: `\+`},
		{kind: Minus, pattern: `-`},
		{kind: Star, pattern: `\*`},
		{kind: Slash, pattern: `/`},
		{kind: Percent, pattern: `%`},
		{kind: Lt, pattern: `<`},
		{kind: Gt, pattern: `>`},
		{kind: Amp, pattern: `&`},
		{kind: Caret, pattern: `\^`},
		{kind: Pipe, pattern: `\|`},
		{kind: Assign, pattern: `=`},
	}

	for _, r := range rules {
		if err := lx.AddRule(r.kind, r.pattern, r.property, r.discard); err != nil {
			return nil, fmt.Errorf("exprlang: %w", err)
		}
	}

	return lx, nil
}
