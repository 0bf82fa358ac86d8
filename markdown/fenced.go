package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

func isBacktickRune(r rune) bool { return r == '`' }

// FencedCodeBlockParser implements a triple-backtick-or-longer fence,
// an optional info string on the opening line, and content scanned
// verbatim until a line that is, once surrounding whitespace is
// trimmed, a backtick run at least as long as the opening fence.
func FencedCodeBlockParser(s parser.State) parser.Outcome[ast.Block] {
	openOutcome := combinator.SomeRunsOf(isBacktickRune)(s)
	if openOutcome.IsBreak() || openOutcome.Value().Len() < 3 {
		return parser.Break[ast.Block](s)
	}
	openFence := openOutcome.Value()
	fenceLen := openFence.Len()
	cur := openOutcome.State()

	var infoString *tape.Tape
	infoOutcome := parser.Optional(combinator.RestOfLine)(cur)
	cur = infoOutcome.State()
	infoString = infoOutcome.Value()

	nlOutcome := parser.Optional(combinator.Newline)(cur)
	cur = nlOutcome.State()

	var content []tape.FatChar
	if nlOutcome.Value() != nil {
		content = append(content, *nlOutcome.Value())
	}
	for {
		chars := cur.Tape.Chars()
		if len(chars) == 0 {
			return parser.Continue[ast.Block](ast.FencedCodeBlock{
				OpenFence:  openFence,
				InfoString: infoString,
				Content:    tape.FromChars(content),
				CloseFence: tape.Empty,
			}, cur)
		}

		lineEnd := 0
		for lineEnd < len(chars) && chars[lineEnd].Value != '\n' {
			lineEnd++
		}
		hasNewline := lineEnd < len(chars)
		lineLen := lineEnd
		if hasNewline {
			lineLen++
		}

		trimStart := 0
		for trimStart < lineEnd && isInlineSpace(chars[trimStart].Value) {
			trimStart++
		}
		trimEnd := lineEnd
		for trimEnd > trimStart && isInlineSpace(chars[trimEnd-1].Value) {
			trimEnd--
		}
		runLen := trimEnd - trimStart
		allBackticks := runLen > 0
		for k := trimStart; k < trimEnd && allBackticks; k++ {
			if chars[k].Value != '`' {
				allBackticks = false
			}
		}

		line, remainder := cur.Tape.Take(uint64(lineLen))
		if allBackticks && runLen >= fenceLen {
			return parser.Continue[ast.Block](ast.FencedCodeBlock{
				OpenFence:  openFence,
				InfoString: infoString,
				Content:    tape.FromChars(content),
				CloseFence: line,
			}, cur.WithTape(remainder))
		}
		content = append(content, line.Chars()...)
		cur = cur.WithTape(remainder)
	}
}
