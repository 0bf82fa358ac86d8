package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

func isHash(r rune) bool { return r == '#' }

func headingId(s parser.State) parser.Outcome[ast.HeadingId] {
	bracketed := combinator.Between(rawTextUntil(func(r rune) bool { return r == '}' }), combinator.Char('{'), combinator.Char('}'))(s)
	if bracketed.IsBreak() {
		return parser.Break[ast.HeadingId](s)
	}
	b := bracketed.Value()
	return parser.Continue(ast.HeadingId{
		Open:  tape.Single(b.Open),
		Text:  b.Content,
		Close: tape.Single(b.Close),
	}, bracketed.State())
}

// HeadingParser implements 1-6 `#` followed by inline content and an
// optional trailing `{id}`. Content and id are bounded to the current
// physical line: a heading never spans multiple source lines. Content
// is parsed with `{` as the active scope terminator so a trailing id
// is never swallowed as plain text.
func HeadingParser(s parser.State) parser.Outcome[ast.Block] {
	hashesOutcome := combinator.SomeRunsOf(isHash)(s)
	if hashesOutcome.IsBreak() {
		return parser.Break[ast.Block](s)
	}
	hashes := hashesOutcome.Value()
	if hashes.Len() > 6 {
		return parser.Break[ast.Block](s)
	}
	cur := hashesOutcome.State()

	extract := func(st parser.State) parser.Outcome[tape.Tape] {
		chars := st.Tape.Chars()
		lineEnd := 0
		for lineEnd < len(chars) && chars[lineEnd].Value != '\n' {
			lineEnd++
		}
		line, remainder := st.Tape.Take(uint64(lineEnd))
		return parser.Continue(line, st.WithTape(remainder))
	}
	contentEnv := Env{}.Push(Scope{Label: "heading", Terminator: "{"})
	execute := parser.AndThen(ParseInlines(contentEnv), func(content ast.Inlines) parser.Parser[headingBody] {
		return parser.AndThen(parser.Optional[ast.HeadingId](headingId), func(id *ast.HeadingId) parser.Parser[headingBody] {
			return parser.Pure(headingBody{content: content, id: id})
		})
	})
	boundedOutcome := combinator.Bounded(extract, execute)(cur)

	var content ast.Inlines
	var id *ast.HeadingId
	if boundedOutcome.Value().Value != nil {
		content = boundedOutcome.Value().Value.content
		id = boundedOutcome.Value().Value.id
	}
	if !boundedOutcome.Value().Remainder.IsEmpty() {
		content = append(content, ast.Raw{Text: boundedOutcome.Value().Remainder})
	}

	return parser.Continue[ast.Block](ast.Heading{
		Hashes:  hashes,
		Content: content,
		Id:      id,
	}, boundedOutcome.State())
}

type headingBody struct {
	content ast.Inlines
	id      *ast.HeadingId
}
