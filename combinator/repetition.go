package combinator

import (
	"log"

	"github.com/colbyn/monado/parser"
)

// maxIterations is the hard ceiling on a single repetition's loop
// count. Exceeding it is not a parse failure: the loop simply stops
// and the diagnostic is logged, since a well-formed grammar should
// never reach it on real input.
const maxIterations = 1000

// sequence is the shared core behind Many/Some/ManyUnless/SomeUnless.
// terminator, when non-nil, is consulted before each element attempt;
// FlowBreak stops the loop without consuming. elem is then tried; a
// Break from elem also stops the loop. A successful elem run that
// makes no tape progress keeps its result but stops the loop,
// guarding against infinite repetition on zero-width matches.
func sequence[A any](elem parser.Parser[A], terminator parser.Parser[Flow], allowEmpty bool) parser.Parser[[]A] {
	return func(s parser.State) parser.Outcome[[]A] {
		var results []A
		cur := s
		for i := 0; i < maxIterations; i++ {
			if terminator != nil {
				to := terminator(cur)
				if to.Value() == FlowBreak {
					break
				}
				cur = to.State()
			}
			eo := elem(cur)
			if eo.IsBreak() {
				break
			}
			progressed := !eo.State().Tape.Equal(cur.Tape)
			results = append(results, eo.Value())
			cur = eo.State()
			if !progressed {
				break
			}
		}
		if len(results) >= maxIterations {
			log.Printf("combinator: sequence hit the %d iteration ceiling", maxIterations)
		}
		if !allowEmpty && len(results) == 0 {
			return parser.Break[[]A](s)
		}
		return parser.Continue(results, cur)
	}
}

// Many runs p zero or more times, always succeeding.
func Many[A any](p parser.Parser[A]) parser.Parser[[]A] {
	return sequence(p, nil, true)
}

// Some runs p one or more times, failing if p never matches.
func Some[A any](p parser.Parser[A]) parser.Parser[[]A] {
	return sequence(p, nil, false)
}

// ManyUnless runs p zero or more times, stopping as soon as terminator
// matches (checked, as lookahead, before each element).
func ManyUnless[A any](p parser.Parser[A], terminator parser.Parser[Flow]) parser.Parser[[]A] {
	return sequence(p, Flip(terminator), true)
}

// SomeUnless runs p one or more times, stopping as soon as terminator
// matches. Fails if p never matches even once.
func SomeUnless[A any](p parser.Parser[A], terminator parser.Parser[Flow]) parser.Parser[[]A] {
	return sequence(p, Flip(terminator), false)
}

// AtEnd matches, consuming nothing, only when the tape is exhausted.
// It is the terminator instantiation ManyUntilEnd/SomeUntilEnd are
// used with at every call site in this module, but any value-bearing
// parser can serve as a terminator: see Terminated.
func AtEnd(s parser.State) parser.Outcome[struct{}] {
	if s.Tape.IsEmpty() {
		return parser.Continue(struct{}{}, s)
	}
	return parser.Break[struct{}](s)
}

// Terminated is the result of a many_until_end/some_until_end
// repetition: the items gathered before the terminator matched, plus
// the terminator's own captured value. Unlike ManyUnless/SomeUnless,
// the terminator here is required (the overall parser Breaks if it
// never matches) and is consumed rather than merely peeked at.
type Terminated[A any, T any] struct {
	Items      []A
	Terminator T
}

// untilEnd is the shared core behind ManyUntilEnd/SomeUntilEnd: unlike
// sequence, the terminator is tried first each iteration and, on
// match, is consumed and its value captured; elem is tried only when
// the terminator does not yet match. A required terminator that never
// matches is a Break, same as elem running out with allowEmpty false.
func untilEnd[A any, T any](elem parser.Parser[A], terminator parser.Parser[T], allowEmpty bool) parser.Parser[Terminated[A, T]] {
	return func(s parser.State) parser.Outcome[Terminated[A, T]] {
		var results []A
		cur := s
		for i := 0; i < maxIterations; i++ {
			to := terminator(cur)
			if to.IsContinue() {
				if !allowEmpty && len(results) == 0 {
					return parser.Break[Terminated[A, T]](s)
				}
				return parser.Continue(Terminated[A, T]{Items: results, Terminator: to.Value()}, to.State())
			}
			eo := elem(cur)
			if eo.IsBreak() {
				return parser.Break[Terminated[A, T]](s)
			}
			if eo.State().Tape.Equal(cur.Tape) {
				return parser.Break[Terminated[A, T]](s)
			}
			results = append(results, eo.Value())
			cur = eo.State()
		}
		log.Printf("combinator: untilEnd hit the %d iteration ceiling", maxIterations)
		var zero T
		return parser.Continue(Terminated[A, T]{Items: results, Terminator: zero}, cur)
	}
}

// ManyUntilEnd runs p zero or more times, then requires terminator to
// match; terminator is consumed and its value returned alongside the
// collected items.
func ManyUntilEnd[A any, T any](p parser.Parser[A], terminator parser.Parser[T]) parser.Parser[Terminated[A, T]] {
	return untilEnd(p, terminator, true)
}

// SomeUntilEnd runs p one or more times, then requires terminator to
// match. Fails if p never matches even once, or if terminator never
// matches.
func SomeUntilEnd[A any, T any](p parser.Parser[A], terminator parser.Parser[T]) parser.Parser[Terminated[A, T]] {
	return untilEnd(p, terminator, false)
}
