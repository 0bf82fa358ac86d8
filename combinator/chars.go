// Package combinator provides the standard parser combinators built on
// top of the generic monad in package parser: character- and
// text-level primitives, tuple combinators, bounded repetition,
// bounded sub-parsing, and indentation-aware line aggregation.
package combinator

import (
	"unicode"

	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// AnyChar consumes a single character, failing only on empty input.
func AnyChar(s parser.State) parser.Outcome[tape.FatChar] {
	c, rest, ok := s.Tape.Uncons()
	if !ok {
		return parser.Break[tape.FatChar](s)
	}
	return parser.Continue(c, s.WithTape(rest))
}

// CharIf consumes a single character matching pred.
func CharIf(pred func(rune) bool) parser.Parser[tape.FatChar] {
	return func(s parser.State) parser.Outcome[tape.FatChar] {
		c, rest, ok := s.Tape.Uncons()
		if !ok || !pred(c.Value) {
			return parser.Break[tape.FatChar](s)
		}
		return parser.Continue(c, s.WithTape(rest))
	}
}

// Char consumes a single character equal to want.
func Char(want rune) parser.Parser[tape.FatChar] {
	return CharIf(func(r rune) bool { return r == want })
}

// Token consumes the exact string s from the head of the tape.
func Token(s string) parser.Parser[tape.Tape] {
	return func(st parser.State) parser.Outcome[tape.Tape] {
		prefix, remainder, ok := st.Tape.SplitPrefix(s)
		if !ok {
			return parser.Break[tape.Tape](st)
		}
		return parser.Continue(prefix, st.WithTape(remainder))
	}
}

// RunsOf consumes zero or more characters matching pred, always
// succeeding (possibly with an empty tape).
func RunsOf(pred func(rune) bool) parser.Parser[tape.Tape] {
	return func(s parser.State) parser.Outcome[tape.Tape] {
		chars := s.Tape.Chars()
		n := 0
		for n < len(chars) && pred(chars[n].Value) {
			n++
		}
		prefix, remainder := s.Tape.Take(uint64(n))
		return parser.Continue(prefix, s.WithTape(remainder))
	}
}

// SomeRunsOf consumes one or more characters matching pred, failing if
// none match.
func SomeRunsOf(pred func(rune) bool) parser.Parser[tape.Tape] {
	return func(s parser.State) parser.Outcome[tape.Tape] {
		o := RunsOf(pred)(s)
		if o.Value().IsEmpty() {
			return parser.Break[tape.Tape](s)
		}
		return o
	}
}

func isInlineSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// Whitespace consumes zero or more spaces or tabs (not newlines).
var Whitespace = RunsOf(isInlineSpace)

// RestOfLine consumes one or more non-newline characters.
var RestOfLine = SomeRunsOf(func(r rune) bool { return r != '\n' })

// Newline consumes a single newline character.
var Newline = Char('\n')

// Space consumes a single space or tab character.
var Space = CharIf(isInlineSpace)

// Digit consumes a single decimal digit.
var Digit = CharIf(unicode.IsDigit)
