package markdown

import (
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
)

// terminatorFlow builds the lookahead-only Flow parser that the
// inline sequence consults before every element: Continue means the
// innermost scope's terminator token matches at the head of the
// input (so the sequence should stop without consuming it); Break
// means it does not, or there is no enclosing scope at all.
func terminatorFlow(env Env) parser.Parser[combinator.Flow] {
	tok, ok := env.ActiveTerminator()
	if !ok {
		return func(s parser.State) parser.Outcome[combinator.Flow] {
			return parser.Continue(combinator.FlowBreak, s)
		}
	}
	return combinator.WrapTry(combinator.Token(tok))
}
