package lex

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule binds one regex pattern to a token kind and the way its lexeme
// should be decoded into a Property. Discard rules (blank, eol, comment)
// are matched and consumed like any other but never surfaced by Advance,
// per spec §4.H.
//
// Patterns must not contain capturing groups of their own — the super-regex
// built in compileSuperRegex relies on each rule occupying exactly one top-level
// group — mirroring the same constraint internal/ictiobus/lex/lazy.go's
// super-regex construction imposes on its callers.
type Rule struct {
	Kind     int
	Pattern  string
	Discard  bool
	Property PropertyKind

	re *regexp.Regexp
}

// compileSuperRegex builds the single "super-regex" alternation used to
// match all rules at once, ported from internal/ictiobus/lex/lazy.go's
// LazyLex construction: one parenthesized group per rule, joined by `|`,
// anchored at the start of the remaining input. The regex is switched to
// leftmost-longest matching so the longest rule match is reported, with
// the earliest-declared rule kept on equal length.
func compileSuperRegex(rules []Rule) (*regexp.Regexp, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("lex: no rules defined")
	}

	var b strings.Builder
	b.WriteString("^(?:")
	for i, r := range rules {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString("(" + r.Pattern + ")")
	}
	b.WriteByte(')')

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("lex: composing rule table: %w", err)
	}
	re.Longest()
	return re, nil
}

// selectMatch picks which rule's capturing group actually matched out of a
// FindSubmatchIndex-shaped result, applying GNU-lex tie-breaking: the
// longest lexeme wins, and ties are broken by earliest rule declaration.
// Ported from internal/ictiobus/lex/lazy.go's lazyLex.selectMatch,
// generalized from index-offset bookkeeping over []string matches to the
// same bookkeeping over byte slices.
func selectMatch(rules []Rule, input []byte, idx []int) (ruleIdx int, lexeme string) {
	candidates := map[int]string{}
	for i := 1; i*2 < len(idx); i++ {
		start, end := idx[i*2], idx[i*2+1]
		if start != -1 && end != -1 {
			candidates[i-1] = string(input[start:end])
		}
	}

	if len(candidates) > 1 {
		longest := 0
		for _, m := range candidates {
			if n := utf8.RuneCountInString(m); n > longest {
				longest = n
			}
		}
		keep := map[int]string{}
		for i, m := range candidates {
			if utf8.RuneCountInString(m) == longest {
				keep[i] = m
			}
		}
		candidates = keep

		if len(candidates) > 1 {
			lowest := math.MaxInt
			for i := range candidates {
				if i < lowest {
					lowest = i
				}
			}
			candidates = map[int]string{lowest: candidates[lowest]}
		}
	}

	for i, m := range candidates {
		return i, m
	}
	return -1, ""
}
