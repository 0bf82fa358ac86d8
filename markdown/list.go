package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// indentedBody captures everything after a list item's leader: blank
// lines unconditionally, and any line whose first non-whitespace
// character sits at a column strictly greater than indent. The first
// "line" scanned is really the unconsumed tail of the leader's own
// line, which by construction starts one column past indent, so it
// qualifies under the same rule as true continuation lines.
//
// Each qualifying line's leading whitespace up to and including
// column indent is stripped before the line is appended to the
// result, so the body comes back de-indented (scenario S5). This
// means a continuation line's indentation is not individually
// reconstructable from the resulting tree: see the list item entry in
// the design ledger. Trailing whitespace on the aggregated body is
// trimmed and discarded, not put back, so the outer stream resumes
// exactly at the next sibling.
func indentedBody(indent uint64) parser.Parser[tape.Tape] {
	return func(s parser.State) parser.Outcome[tape.Tape] {
		chars := s.Tape.Chars()
		var captured []tape.FatChar
		n := 0
		for n < len(chars) {
			lineStart := n
			lineEnd := lineStart
			for lineEnd < len(chars) && chars[lineEnd].Value != '\n' {
				lineEnd++
			}
			firstContent := lineStart
			for firstContent < lineEnd && isInlineSpace(chars[firstContent].Value) {
				firstContent++
			}
			blank := firstContent == lineEnd
			qualifies := blank || chars[firstContent].Position.Column > indent
			if !qualifies {
				break
			}
			stripEnd := lineStart
			for stripEnd < lineEnd && chars[stripEnd].Position.Column <= indent {
				stripEnd++
			}
			hasNewline := lineEnd < len(chars)
			lineTotalEnd := lineEnd
			if hasNewline {
				lineTotalEnd++
			}
			captured = append(captured, chars[stripEnd:lineTotalEnd]...)
			n = lineTotalEnd
			if !hasNewline {
				break
			}
		}
		_, remainder := s.Tape.Take(uint64(n))
		trimmed, _ := tape.FromChars(captured).TrimTrailingWhitespace()
		return parser.Continue(trimmed, s.WithTape(remainder))
	}
}

func listItemContent(indent uint64) parser.Parser[ast.Blocks] {
	extract := indentedBody(indent)
	execute := parser.Map(combinator.ManyUntilEnd(BlockParser, combinator.AtEnd), func(t combinator.Terminated[ast.Block, struct{}]) ast.Blocks {
		return ast.Blocks(t.Items)
	})
	return func(s parser.State) parser.Outcome[ast.Blocks] {
		o := combinator.Bounded(extract, execute)(s)
		if o.IsBreak() {
			return parser.Break[ast.Blocks](s)
		}
		content := ast.Blocks{}
		if o.Value().Value != nil {
			content = *o.Value().Value
		}
		if !o.Value().Remainder.IsEmpty() {
			content = append(content, ast.RawBlock{Text: o.Value().Remainder})
		}
		return parser.Continue(content, o.State())
	}
}

func isBullet(r rune) bool { return r == '-' || r == '*' || r == '+' }

// UnorderedListItemParser implements `-`/`*`/`+` followed by a space
// and an indentation-captured body.
func UnorderedListItemParser(s parser.State) parser.Outcome[ast.Block] {
	bulletOutcome := combinator.CharIf(isBullet)(s)
	if bulletOutcome.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	bullet := bulletOutcome.Value()
	spaceOutcome := combinator.Space(bulletOutcome.State())
	if spaceOutcome.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	space := spaceOutcome.Value()
	indent := space.Position.Column

	contentOutcome := listItemContent(indent)(spaceOutcome.State())
	return parser.Continue[ast.Block](ast.UnorderedListItem{
		Bullet:  tape.Single(bullet),
		Space:   tape.Single(space),
		Content: contentOutcome.Value(),
	}, contentOutcome.State())
}

// OrderedListItemParser implements `digits.` followed by a space and
// an indentation-captured body.
func OrderedListItemParser(s parser.State) parser.Outcome[ast.Block] {
	numberOutcome := combinator.SomeRunsOf(func(r rune) bool { return r >= '0' && r <= '9' })(s)
	if numberOutcome.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	dotOutcome := combinator.Char('.')(numberOutcome.State())
	if dotOutcome.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	spaceOutcome := combinator.Space(dotOutcome.State())
	if spaceOutcome.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	space := spaceOutcome.Value()
	indent := space.Position.Column

	contentOutcome := listItemContent(indent)(spaceOutcome.State())
	return parser.Continue[ast.Block](ast.OrderedListItem{
		Number:  numberOutcome.Value(),
		Dot:     tape.Single(dotOutcome.Value()),
		Space:   tape.Single(space),
		Content: contentOutcome.Value(),
	}, contentOutcome.State())
}

func isTaskMark(r rune) bool {
	return r == ' ' || r == 'x' || r == 'X' || r == '-'
}

// TaskListItemParser implements `[ ]`/`[x]`/`[X]`/`[-]` followed by a
// space and a body shaped like UnorderedListItemParser's.
func TaskListItemParser(s parser.State) parser.Outcome[ast.Block] {
	bracketed := combinator.Between(parser.Optional(combinator.CharIf(isTaskMark)), combinator.Char('['), combinator.Char(']'))(s)
	if bracketed.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	b := bracketed.Value()
	spaceOutcome := combinator.Space(bracketed.State())
	if spaceOutcome.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	space := spaceOutcome.Value()
	indent := space.Position.Column

	contentOutcome := listItemContent(indent)(spaceOutcome.State())
	return parser.Continue[ast.Block](ast.TaskListItem{
		Header: ast.InSquareBrackets[*tape.FatChar]{
			Open:    tape.Single(b.Open),
			Content: b.Content,
			Close:   tape.Single(b.Close),
		},
		Space:   tape.Single(space),
		Content: contentOutcome.Value(),
	}, contentOutcome.State())
}

// ListItemParser dispatches to whichever list item flavor matches.
func ListItemParser(s parser.State) parser.Outcome[ast.Block] {
	return parser.Options(TaskListItemParser, UnorderedListItemParser, OrderedListItemParser)(s)
}
