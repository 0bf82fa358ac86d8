// Package parser implements the generic combinator monad that threads a
// position-annotated tape.Tape through composable parsing actions.
//
// A Parser[A] is an opaque value wrapping a function from State to
// Outcome[A]. Parsers never mutate their input; every combinator here
// produces a new State rather than modifying one in place, which is
// what makes backtracking (Or, Options) trivial: reverting to a prior
// state just means holding onto a value you already have.
package parser

import "github.com/colbyn/monado/tape"

// State is a parser's view of the unconsumed input plus a path of
// diagnostic labels. DebugScopes never influences parsing outcomes; it
// exists purely so a failed parse can report the deepest constructs it
// attempted (see WithDebugLabel).
type State struct {
	Tape        tape.Tape
	DebugScopes []string
}

// NewState wraps a tape in a fresh State with no debug scopes.
func NewState(t tape.Tape) State {
	return State{Tape: t}
}

// PushScope returns a new State with label appended to DebugScopes.
func (s State) PushScope(label string) State {
	scopes := make([]string, len(s.DebugScopes)+1)
	copy(scopes, s.DebugScopes)
	scopes[len(s.DebugScopes)] = label
	return State{Tape: s.Tape, DebugScopes: scopes}
}

// WithTape returns a new State with the same debug scopes but a
// different tape.
func (s State) WithTape(t tape.Tape) State {
	return State{Tape: t, DebugScopes: s.DebugScopes}
}
