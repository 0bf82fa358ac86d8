package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// NewlineParser implements a bare blank line, kept in the tree so
// blank lines between blocks remain reconstructable.
func NewlineParser(s parser.State) parser.Outcome[ast.Block] {
	o := combinator.Newline(s)
	if o.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	return parser.Continue[ast.Block](ast.Newline{Char: tape.Single(o.Value())}, o.State())
}

// ParagraphParser is the fallback block: it captures everything up to
// a blank line or the end of input, then re-parses that span as
// inline content.
func ParagraphParser(s parser.State) parser.Outcome[ast.Block] {
	chars := s.Tape.Chars()
	n := len(chars)
	for i := 0; i < len(chars); i++ {
		if chars[i].Value == '\n' && i+1 < len(chars) && chars[i+1].Value == '\n' {
			n = i
			break
		}
	}
	if n == 0 {
		return parser.Break[ast.Block](s)
	}
	prefix, remainder := s.Tape.Take(uint64(n))

	extract := func(st parser.State) parser.Outcome[tape.Tape] {
		return parser.Continue(prefix, st.WithTape(remainder))
	}
	execute := ParseInlines(Env{})

	boundedOutcome := combinator.Bounded(extract, execute)(s)
	content := ast.Inlines{}
	if boundedOutcome.Value().Value != nil {
		content = *boundedOutcome.Value().Value
	}
	if !boundedOutcome.Value().Remainder.IsEmpty() {
		content = append(content, ast.Raw{Text: boundedOutcome.Value().Remainder})
	}
	return parser.Continue[ast.Block](ast.Paragraph{Content: content}, boundedOutcome.State())
}

// BlockParser dispatches to whichever block flavor matches, in the
// order blank lines, fenced code, headings, list items, blockquotes,
// horizontal rules, tables, and finally paragraphs.
func BlockParser(s parser.State) parser.Outcome[ast.Block] {
	return parser.Options(
		NewlineParser,
		FencedCodeBlockParser,
		HeadingParser,
		ListItemParser,
		BlockquoteParser,
		HorizontalRuleParser,
		TableParser,
		ParagraphParser,
	)(s)
}
