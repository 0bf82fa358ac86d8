package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

func isBacktick(r rune) bool { return r == '`' }

// InlineCodeParser consumes a run of one or more backticks as the
// opening delimiter, then scans verbatim (no recursion) until it
// finds a run of backticks of the exact same length, which closes
// the span. A backtick run of any other length found along the way
// is treated as literal content (scenario S3). Content is never
// handed back to ParseInlines, so no inline_code scope is ever
// pushed onto env: there is nothing recursive here for a terminator
// to guard.
func InlineCodeParser(env Env) parser.Parser[ast.Inline] {
	return func(s parser.State) parser.Outcome[ast.Inline] {
		chars := s.Tape.Chars()
		openLen := 0
		for openLen < len(chars) && chars[openLen].Value == '`' {
			openLen++
		}
		if openLen == 0 {
			return parser.Break[ast.Inline](s)
		}
		openPrefix, remainder := s.Tape.Take(uint64(openLen))
		cur := s.WithTape(remainder)

		var content []tape.FatChar
		for {
			rest := cur.Tape.Chars()
			if len(rest) == 0 {
				return parser.Break[ast.Inline](s)
			}
			if rest[0].Value == '`' {
				runLen := 0
				for runLen < len(rest) && rest[runLen].Value == '`' {
					runLen++
				}
				runPrefix, runRemainder := cur.Tape.Take(uint64(runLen))
				if runLen == openLen {
					return parser.Continue[ast.Inline](ast.InlineCode{
						OpenTicks:  openPrefix,
						Content:    tape.FromChars(content),
						CloseTicks: runPrefix,
					}, cur.WithTape(runRemainder))
				}
				content = append(content, runPrefix.Chars()...)
				cur = cur.WithTape(runRemainder)
				continue
			}
			c, remainder, _ := cur.Tape.Uncons()
			content = append(content, c)
			cur = cur.WithTape(remainder)
		}
	}
}
