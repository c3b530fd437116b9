// Package exprlang defines the bundled stratified expression grammar of
// component G: an operator-precedence grammar layered T0 (primary) through
// T17 (comma), with associativity encoded structurally per spec §4.G —
// left-associative layers recurse on themselves to the left of the
// operator, right-associative layers recurse on themselves to the right.
package exprlang

import "github.com/adrcodes/lrforge/grammar"

// Terminal ids. Kept unified with lex.Token.Kind so a lex.Lexer configured
// with these same ids can feed a parse.Driver built over this grammar's
// table directly, per spec §1's lexer/grammar unification requirement.
const (
	Identifier = iota
	IntegerLit
	FloatLit
	StringLit
	BoolLit

	LParen
	RParen
	LBracket
	RBracket
	Dot
	Comma
	Question
	Colon
	DotDot

	Not
	BitNot
	Plus
	Minus
	Star
	Slash
	Percent
	StarStar

	Shl
	Shr
	Lt
	Le
	Gt
	Ge
	Eq
	Ne
	Amp
	Caret
	Pipe
	AmpAmp
	PipePipe
	Assign

	PlusPlus
	MinusMinus

	terminalCount
)

// Non-terminal ids, one per precedence layer plus the call-argument list.
const (
	T0 = terminalCount + iota // primary
	T1                        // postfix
	T2                        // unary
	T3                        // exponent (right-assoc)
	T4                        // multiplicative
	T5                        // additive
	T6                        // shift
	T7                        // relational
	T8                        // equality
	T9                        // bitwise AND
	T10                       // bitwise XOR
	T11                       // bitwise OR
	T12                       // logical AND
	T13                       // logical OR
	T14                       // conditional (right-assoc ternary)
	T15                       // assignment (right-assoc)
	T16                       // range
	T17                       // comma

	argList

	epsilon
	endOfInput

	symbolCount
)

var names = map[int]string{
	Identifier: "identifier", IntegerLit: "integer", FloatLit: "float",
	StringLit: "string_literal", BoolLit: "bool",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	Dot: ".", Comma: ",", Question: "?", Colon: ":", DotDot: "..",
	Not: "!", BitNot: "~", Plus: "+", Minus: "-", Star: "*", Slash: "/",
	Percent: "%", StarStar: "**",
	Shl: "<<", Shr: ">>", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	Eq: "==", Ne: "!=", Amp: "&", Caret: "^", Pipe: "|",
	AmpAmp: "&&", PipePipe: "||", Assign: "=",
	PlusPlus: "++", MinusMinus: "--",

	T0: "T0", T1: "T1", T2: "T2", T3: "T3", T4: "T4", T5: "T5", T6: "T6",
	T7: "T7", T8: "T8", T9: "T9", T10: "T10", T11: "T11", T12: "T12",
	T13: "T13", T14: "T14", T15: "T15", T16: "T16", T17: "T17",
	argList: "ArgList",

	epsilon:    "ε",
	endOfInput: "$",
}

// Name renders the stable name for a terminal or non-terminal id, primarily
// for diagnostics and for feeding grammar.NewGrammar's to_string parameter.
func Name(id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return ""
}

// IsTerminal reports whether id is one of this grammar's lexical terminals.
func IsTerminal(id int) bool {
	return id < terminalCount || id == epsilon || id == endOfInput
}

// BuildGrammar constructs the stratified expression grammar, stratum by
// stratum from primary (T0) up to comma (T17). The call-argument list uses
// the assignment layer (T15) rather than the full comma expression (T17),
// matching the convention that a comma inside a call's parens separates
// arguments rather than forming a single comma expression.
func BuildGrammar() (*grammar.Grammar, error) {
	p := func(left int, right ...int) grammar.Production {
		return grammar.Production{Left: left, Right: right}
	}

	prods := []grammar.Production{
		// T0: primary
		p(T0, Identifier),
		p(T0, IntegerLit),
		p(T0, FloatLit),
		p(T0, StringLit),
		p(T0, BoolLit),
		p(T0, LParen, T17, RParen),

		// T1: postfix
		p(T1, T0),
		p(T1, T1, LBracket, T17, RBracket),
		p(T1, T1, LParen, RParen),
		p(T1, T1, LParen, argList, RParen),
		p(T1, T1, Dot, Identifier),
		p(T1, T1, PlusPlus),
		p(T1, T1, MinusMinus),

		p(argList, T15),
		p(argList, argList, Comma, T15),

		// T2: unary (prefix)
		p(T2, T1),
		p(T2, Not, T2),
		p(T2, BitNot, T2),
		p(T2, Minus, T2),
		p(T2, Plus, T2),
		p(T2, PlusPlus, T2),
		p(T2, MinusMinus, T2),

		// T3: exponent, right-associative
		p(T3, T2),
		p(T3, T2, StarStar, T3),

		// T4: multiplicative, left-associative
		p(T4, T3),
		p(T4, T4, Star, T3),
		p(T4, T4, Slash, T3),
		p(T4, T4, Percent, T3),

		// T5: additive, left-associative
		p(T5, T4),
		p(T5, T5, Plus, T4),
		p(T5, T5, Minus, T4),

		// T6: shift, left-associative
		p(T6, T5),
		p(T6, T6, Shl, T5),
		p(T6, T6, Shr, T5),

		// T7: relational, left-associative
		p(T7, T6),
		p(T7, T7, Lt, T6),
		p(T7, T7, Le, T6),
		p(T7, T7, Gt, T6),
		p(T7, T7, Ge, T6),

		// T8: equality, left-associative
		p(T8, T7),
		p(T8, T8, Eq, T7),
		p(T8, T8, Ne, T7),

		// T9: bitwise AND
		p(T9, T8),
		p(T9, T9, Amp, T8),

		// T10: bitwise XOR
		p(T10, T9),
		p(T10, T10, Caret, T9),

		// T11: bitwise OR
		p(T11, T10),
		p(T11, T11, Pipe, T10),

		// T12: logical AND
		p(T12, T11),
		p(T12, T12, AmpAmp, T11),

		// T13: logical OR
		p(T13, T12),
		p(T13, T13, PipePipe, T12),

		// T14: conditional, right-associative ternary
		p(T14, T13),
		p(T14, T13, Question, T15, Colon, T14),

		// T15: assignment, right-associative
		p(T15, T14),
		p(T15, T14, Assign, T15),

		// T16: range
		p(T16, T15),
		p(T16, T15, DotDot, T15),

		// T17: comma, left-associative
		p(T17, T16),
		p(T17, T17, Comma, T16),
	}

	return grammar.NewGrammar(prods, symbolCount, T17, epsilon, endOfInput, Name, IsTerminal)
}
