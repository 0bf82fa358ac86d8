package combinator

import "github.com/colbyn/monado/parser"

// Flow is a lookahead-only signal distinct from Outcome: it never
// carries a value and is only used to tell a repetition combinator
// whether to keep going or stop, without implying consumption either
// way.
type Flow bool

const (
	// FlowContinue tells a repetition loop to keep iterating.
	FlowContinue Flow = true
	// FlowBreak tells a repetition loop to stop.
	FlowBreak Flow = false
)

// ControlFlow adapts a value-producing parser into a pure Flow signal:
// Continue maps to FlowContinue, Break to FlowBreak. State is always
// returned as given by p; ControlFlow does not itself decide whether
// the underlying consumption should be kept or reverted, that's the
// caller's job.
func ControlFlow[A any](p parser.Parser[A]) parser.Parser[Flow] {
	return func(s parser.State) parser.Outcome[Flow] {
		o := p(s)
		if o.IsBreak() {
			return parser.Continue(FlowBreak, o.State())
		}
		return parser.Continue(FlowContinue, o.State())
	}
}

// WrapTry runs p purely as lookahead: whatever p does to the state is
// discarded, and the original state is always returned alongside the
// FlowContinue/FlowBreak signal of whether p matched.
func WrapTry[A any](p parser.Parser[A]) parser.Parser[Flow] {
	return func(s parser.State) parser.Outcome[Flow] {
		o := p(s)
		if o.IsBreak() {
			return parser.Continue(FlowBreak, s)
		}
		return parser.Continue(FlowContinue, s)
	}
}

// Flip inverts a Flow signal: FlowContinue becomes FlowBreak and vice
// versa. Used to turn "terminator matched" into "stop iterating".
func Flip(p parser.Parser[Flow]) parser.Parser[Flow] {
	return parser.Map(p, func(f Flow) Flow { return !f })
}
