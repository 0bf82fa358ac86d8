package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// specialLead is the set of characters that can open a recognized
// inline construct other than plain text. PlainText stops as soon as
// one of these appears at the head, so the dispatcher below gets a
// chance to try the more specific parsers.
func isSpecialLead(r rune) bool {
	switch r {
	case '[', '!', '*', '_', '=', '~', '^', '`':
		return true
	default:
		return false
	}
}

func matchesTerminatorAt(chars []tape.FatChar, pos int, term string) bool {
	runes := []rune(term)
	if pos+len(runes) > len(chars) {
		return false
	}
	for i, r := range runes {
		if chars[pos+i].Value != r {
			return false
		}
	}
	return true
}

// plainTextRun consumes a non-empty run of characters that are
// neither a newline, a special lead character, nor the start of the
// active terminator. It Breaks on a zero-length run, leaving the
// dispatcher below to try the more specific inline parsers.
func plainTextRun(env Env) parser.Parser[tape.Tape] {
	term, hasTerm := env.ActiveTerminator()
	return func(s parser.State) parser.Outcome[tape.Tape] {
		chars := s.Tape.Chars()
		n := 0
		for n < len(chars) {
			r := chars[n].Value
			if r == '\n' || isSpecialLead(r) {
				break
			}
			if hasTerm && matchesTerminatorAt(chars, n, term) {
				break
			}
			n++
		}
		if n == 0 {
			return parser.Break[tape.Tape](s)
		}
		prefix, remainder := s.Tape.Take(uint64(n))
		return parser.Continue(prefix, s.WithTape(remainder))
	}
}

// PlainText is the first alternative tried by the inline dispatcher.
func PlainText(env Env) parser.Parser[ast.Inline] {
	return parser.Map(plainTextRun(env), func(t tape.Tape) ast.Inline {
		return ast.PlainText{Text: t}
	})
}

// LineBreakParser consumes a single bare newline inside inline
// content, e.g. a soft line break in the middle of a paragraph's
// whole-chunk span. It is not part of the fixed PlainText..InlineCode
// ordering since it only ever matches where every other alternative
// has already declined (PlainText itself stops at '\n').
func LineBreakParser(s parser.State) parser.Outcome[ast.Inline] {
	o := combinator.Newline(s)
	if o.IsBreak() {
		return parser.Break[ast.Inline](s)
	}
	return parser.Continue[ast.Inline](ast.LineBreak{Newline: tape.Single(o.Value())}, o.State())
}

// InlineParser is the recursion core: options([PlainText, Link,
// Image, Emphasis, Highlight, Strikethrough, Sub, Sup, InlineCode])
// tried in exactly this order, which determines tie-breaking (see
// scenario S6), with LineBreak as a final fallback for embedded
// newlines.
func InlineParser(env Env) parser.Parser[ast.Inline] {
	return parser.Options(
		PlainText(env),
		LinkParser(env),
		ImageParser(env),
		EmphasisParser(env),
		HighlightParser(env),
		StrikethroughParser(env),
		SubParser(env),
		SupParser(env),
		InlineCodeParser(env),
		LineBreakParser,
	)
}

// ParseInlines runs InlineParser(env) until the innermost scope's
// terminator would match at the head, no inline alternative matches,
// or the input runs out.
func ParseInlines(env Env) parser.Parser[ast.Inlines] {
	return parser.Map(
		combinator.ManyUnless(InlineParser(env), terminatorFlow(env)),
		func(items []ast.Inline) ast.Inlines { return ast.Inlines(items) },
	)
}
