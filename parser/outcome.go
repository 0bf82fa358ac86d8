package parser

// Outcome is the result of a single parser invocation: either the
// parser Continued with a value and an advanced State, or it Broke and
// only the failure State is available.
//
// No mutation escapes a Break: Or and Options re-run their fallback on
// the state as it existed *before* the failed branch, never on the
// failed branch's own state.
type Outcome[A any] struct {
	ok    bool
	value A
	state State
}

// Continue builds a successful Outcome.
func Continue[A any](value A, state State) Outcome[A] {
	return Outcome[A]{ok: true, value: value, state: state}
}

// Break builds a failed Outcome carrying the state at the point of
// failure.
func Break[A any](state State) Outcome[A] {
	return Outcome[A]{state: state}
}

// IsContinue reports whether the parse succeeded.
func (o Outcome[A]) IsContinue() bool {
	return o.ok
}

// IsBreak reports whether the parse failed.
func (o Outcome[A]) IsBreak() bool {
	return !o.ok
}

// Value returns the parsed value. It is only meaningful when
// IsContinue is true.
func (o Outcome[A]) Value() A {
	return o.value
}

// State returns the state threaded through by this outcome: the
// advanced state on success, or the failure state on Break.
func (o Outcome[A]) State() State {
	return o.state
}
