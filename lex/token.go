package lex

import "fmt"

// PropertyKind tags the variant held by a Property.
type PropertyKind int

const (
	PropNone PropertyKind = iota
	PropBool
	PropInteger
	PropFloat
	PropString
	PropIdentifier
)

// Property is the typed payload carried by a Token, a tagged variant over
// the five kinds a lexed value can take. Only the fields relevant to Kind
// are meaningful; the rest are zero.
type Property struct {
	Kind PropertyKind

	Bool bool

	// Sign and Precision describe an Integer: Sign is true for a negative
	// value, Precision is the bit width the value was parsed at.
	Sign      bool
	Precision int
	Int       int64
	Float     float64

	// Text holds the decoded body of a String or Identifier.
	Text string
}

func (p Property) String() string {
	switch p.Kind {
	case PropBool:
		return fmt.Sprintf("%v", p.Bool)
	case PropInteger:
		return fmt.Sprintf("%d", p.Int)
	case PropFloat:
		return fmt.Sprintf("%g", p.Float)
	case PropString:
		return fmt.Sprintf("%q", p.Text)
	case PropIdentifier:
		return p.Text
	default:
		return "<none>"
	}
}

// Location pinpoints a token's origin: which source, which 0-indexed line
// and column, and its byte length.
type Location struct {
	SourceIndex int
	Line        int
	Column      int
	Size        int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d:%d", l.SourceIndex, l.Line+1, l.Column+1)
}

// Token is one lexed unit: a caller-defined type id (unified with grammar
// terminal ids), the source span it came from, the raw lexeme text, and a
// typed Property decoded from that text.
type Token struct {
	Kind     int
	Location Location
	Lexeme   string
	Property Property
}

// well-known kinds produced by the lexer itself rather than by a caller
// rule; negative so they can never collide with a caller's (non-negative)
// terminal id space.
const (
	// KindEOS is returned by every Advance call once every source has been
	// exhausted, and continues to be returned indefinitely thereafter.
	KindEOS int = -1

	// KindUnknown is returned for a cursor position no rule matches; the
	// lexer advances one byte past it so scanning can continue.
	KindUnknown int = -2
)
