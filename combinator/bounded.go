package combinator

import (
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// BoundedResult is the outcome of a bounded sub-parse: the inner
// parser's value (nil if the inner parser Broke; a parse that stops
// partway still yields a value) and whatever tape it left unconsumed
// inside the extracted region.
type BoundedResult[T any] struct {
	Value     *T
	Remainder tape.Tape
}

// Bounded isolates a region of the input using extract, then runs
// execute as a completely fresh parse over just that region. The
// outer state always advances past the extracted region, regardless
// of whether execute succeeds: a failed or partial inner parse never
// leaks back into the outer stream, it only shows up as a non-empty
// Remainder.
func Bounded[T any](extract parser.Parser[tape.Tape], execute parser.Parser[T]) parser.Parser[BoundedResult[T]] {
	return func(s parser.State) parser.Outcome[BoundedResult[T]] {
		region := extract(s)
		if region.IsBreak() {
			return parser.Break[BoundedResult[T]](s)
		}
		inner := parser.NewState(region.Value())
		io := execute(inner)
		if io.IsBreak() {
			return parser.Continue(BoundedResult[T]{
				Value:     nil,
				Remainder: io.State().Tape,
			}, region.State())
		}
		v := io.Value()
		return parser.Continue(BoundedResult[T]{
			Value:     &v,
			Remainder: io.State().Tape,
		}, region.State())
	}
}
