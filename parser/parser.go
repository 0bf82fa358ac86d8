package parser

import "github.com/colbyn/monado/tape"

// Parser is an opaque, composable parsing action. It must not retain
// any reference to the State it was called with beyond the Outcome it
// returns.
type Parser[A any] func(State) Outcome[A]

// Pure succeeds with a, consuming nothing.
func Pure[A any](a A) Parser[A] {
	return func(s State) Outcome[A] {
		return Continue(a, s)
	}
}

// Fail always Breaks without consuming anything.
func Fail[A any]() Parser[A] {
	return func(s State) Outcome[A] {
		return Break[A](s)
	}
}

// AndThen runs p; if it Continues, f is applied to the result to
// produce the next parser, which runs on the advanced state. A Break
// from p short-circuits the whole chain.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(s State) Outcome[B] {
		o := p(s)
		if o.IsBreak() {
			return Break[B](o.State())
		}
		return f(o.Value())(o.State())
	}
}

// Map transforms a successful result with f, leaving failures alone.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return AndThen(p, func(a A) Parser[B] {
		return Pure(f(a))
	})
}

// Or runs p; on Break it runs q against the *original* state, so a
// partial consumption by p is fully discarded (unlimited backtracking).
func Or[A any](p, q Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		o := p(s)
		if o.IsContinue() {
			return o
		}
		return q(s)
	}
}

// Options tries each parser in order against the original state and
// returns the first Continue. If all Break, the result Breaks with the
// state from the final attempt.
func Options[A any](ps ...Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		last := Break[A](s)
		for _, p := range ps {
			o := p(s)
			if o.IsContinue() {
				return o
			}
			last = o
		}
		return last
	}
}

// Either tags which side of an EitherOr succeeded.
type Either[L, R any] struct {
	Left  *L
	Right *R
}

// EitherOr tries p, then q (both against the original state on
// failure), tagging which branch produced the result.
func EitherOr[L, R any](p Parser[L], q Parser[R]) Parser[Either[L, R]] {
	return func(s State) Outcome[Either[L, R]] {
		po := p(s)
		if po.IsContinue() {
			v := po.Value()
			return Continue(Either[L, R]{Left: &v}, po.State())
		}
		qo := q(s)
		if qo.IsContinue() {
			v := qo.Value()
			return Continue(Either[L, R]{Right: &v}, qo.State())
		}
		return Break[Either[L, R]](s)
	}
}

// Optional runs p; if it Breaks, Optional Continues with a nil value
// and the state unchanged.
func Optional[A any](p Parser[A]) Parser[*A] {
	return func(s State) Outcome[*A] {
		o := p(s)
		if o.IsBreak() {
			return Continue[*A](nil, s)
		}
		v := o.Value()
		return Continue(&v, o.State())
	}
}

// PutBack prepends t to the current input before running p. This is
// how trailing whitespace trimmed by one combinator (e.g. Lines) is
// handed back to whatever consumes the outer stream next.
func PutBack[A any](t tape.Tape, p Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		return p(s.WithTape(t.Concat(s.Tape)))
	}
}

// WithDebugLabel pushes label onto the state's debug scopes before
// running p, so the label is present in the resulting state whether p
// succeeds or fails.
func WithDebugLabel[A any](label string, p Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		return p(s.PushScope(label))
	}
}

// Evaluate is the sole root entry point: it wraps source in an initial
// State and runs p. Evaluate never panics; a failed parse simply
// returns a nil value alongside the failure state.
func Evaluate[A any](source string, p Parser[A]) (*A, State) {
	initial := NewState(tape.FromString(source))
	o := p(initial)
	if o.IsBreak() {
		return nil, o.State()
	}
	v := o.Value()
	return &v, o.State()
}
