package combinator

import (
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// LinesResult is the aggregate of a Lines parse: the leader consumed
// on each line (e.g. "> " for a blockquote, the indent of a list
// item) and the concatenated line content with any trailing
// whitespace trimmed off.
type LinesResult struct {
	Leaders []tape.Tape
	Content tape.Tape
}

// Lines repeats leader + rest-of-line + optional newline, the way a
// blockquote or list item gathers its body. The column of the last
// character consumed by the first leader becomes the guard column:
// every subsequent line's leader must end on that same column, or the
// line belongs to an outer construct and is left unconsumed. Trailing
// whitespace on the aggregated content is trimmed and put back onto
// the stream for whatever runs next.
func Lines(leader parser.Parser[tape.Tape]) parser.Parser[LinesResult] {
	return func(s parser.State) parser.Outcome[LinesResult] {
		first := leader(s)
		if first.IsBreak() {
			return parser.Break[LinesResult](s)
		}
		guardColumn, _ := lastColumn(first.Value())

		leaders := []tape.Tape{first.Value()}
		var lines []tape.Tape
		cur := first.State()

		for i := 0; i < maxIterations; i++ {
			restOutcome := parser.Optional(RestOfLine)(cur)
			cur = restOutcome.State()
			line := tape.Empty
			if restOutcome.Value() != nil {
				line = *restOutcome.Value()
			}

			nlOutcome := parser.Optional(Newline)(cur)
			cur = nlOutcome.State()
			hadNewline := nlOutcome.Value() != nil
			if hadNewline {
				line = line.Concat(tape.Single(*nlOutcome.Value()))
			}
			lines = append(lines, line)
			if !hadNewline {
				break
			}

			nextLeader := leader(cur)
			if nextLeader.IsBreak() {
				break
			}
			col, ok := lastColumn(nextLeader.Value())
			if !ok || col != guardColumn {
				break
			}
			leaders = append(leaders, nextLeader.Value())
			cur = nextLeader.State()
		}

		content := tape.ConcatAll(lines...)
		trimmed, trailing := content.TrimTrailingWhitespace()
		result := LinesResult{Leaders: leaders, Content: trimmed}
		return parser.PutBack(trailing, parser.Pure(result))(cur)
	}
}

func lastColumn(t tape.Tape) (uint64, bool) {
	c, ok := t.Last()
	if !ok {
		return 0, false
	}
	return c.Position.Column, true
}
