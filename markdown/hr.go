package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
)

var horizontalRuleChars = []rune{'-', '*', '_'}

// HorizontalRuleParser implements 3+ repetitions of a single
// character from `- * _`, requiring that only inline whitespace (if
// anything) stands between the run and a newline or end of input.
// The lookahead whitespace is not consumed: it is left for whatever
// parses the next line.
func HorizontalRuleParser(s parser.State) parser.Outcome[ast.Block] {
	for _, ch := range horizontalRuleChars {
		ch := ch
		runOutcome := combinator.SomeRunsOf(func(r rune) bool { return r == ch })(s)
		if runOutcome.IsBreak() || runOutcome.Value().Len() < 3 {
			continue
		}
		rest := runOutcome.State().Tape.Chars()
		onlyTrailingWhitespace := true
		for _, c := range rest {
			if c.Value == '\n' {
				break
			}
			if !isInlineSpace(c.Value) {
				onlyTrailingWhitespace = false
				break
			}
		}
		if onlyTrailingWhitespace {
			return parser.Continue[ast.Block](ast.HorizontalRule{Tokens: runOutcome.Value()}, runOutcome.State())
		}
	}
	return parser.Break[ast.Block](s)
}
