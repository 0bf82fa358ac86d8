package markdown

import (
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// rawTextUntil consumes characters verbatim up to (not including) the
// first character for which stop reports true, or a newline. It
// always succeeds, possibly with an empty tape.
func rawTextUntil(stop func(rune) bool) parser.Parser[tape.Tape] {
	return func(s parser.State) parser.Outcome[tape.Tape] {
		chars := s.Tape.Chars()
		n := 0
		for n < len(chars) && chars[n].Value != '\n' && !stop(chars[n].Value) {
			n++
		}
		prefix, remainder := s.Tape.Take(uint64(n))
		return parser.Continue(prefix, s.WithTape(remainder))
	}
}

func isInlineSpace(r rune) bool { return r == ' ' || r == '\t' }
