package combinator

import "github.com/colbyn/monado/parser"

// Pair is the result of And: the two consecutive results in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// And runs p then q, succeeding only if both do.
func And[A, B any](p parser.Parser[A], q parser.Parser[B]) parser.Parser[Pair[A, B]] {
	return parser.AndThen(p, func(a A) parser.Parser[Pair[A, B]] {
		return parser.AndThen(q, func(b B) parser.Parser[Pair[A, B]] {
			return parser.Pure(Pair[A, B]{First: a, Second: b})
		})
	})
}

// Triple is the result of And2: three consecutive results in order.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// And2 runs p, q, then r in sequence.
func And2[A, B, C any](p parser.Parser[A], q parser.Parser[B], r parser.Parser[C]) parser.Parser[Triple[A, B, C]] {
	return parser.AndThen(And(p, q), func(pair Pair[A, B]) parser.Parser[Triple[A, B, C]] {
		return parser.AndThen(r, func(c C) parser.Parser[Triple[A, B, C]] {
			return parser.Pure(Triple[A, B, C]{First: pair.First, Second: pair.Second, Third: c})
		})
	})
}

// Quadruple is the result of And3: four consecutive results in order.
type Quadruple[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// And3 runs p, q, r, then s in sequence.
func And3[A, B, C, D any](p parser.Parser[A], q parser.Parser[B], r parser.Parser[C], s parser.Parser[D]) parser.Parser[Quadruple[A, B, C, D]] {
	return parser.AndThen(And2(p, q, r), func(tri Triple[A, B, C]) parser.Parser[Quadruple[A, B, C, D]] {
		return parser.AndThen(s, func(d D) parser.Parser[Quadruple[A, B, C, D]] {
			return parser.Pure(Quadruple[A, B, C, D]{First: tri.First, Second: tri.Second, Third: tri.Third, Fourth: d})
		})
	})
}

// Bracketed is the result of Between: the open delimiter, the enclosed
// content, and the close delimiter.
type Bracketed[O, A, C any] struct {
	Open    O
	Content A
	Close   C
}

// Between runs open, then p, then close, returning all three results.
func Between[O, A, C any](p parser.Parser[A], open parser.Parser[O], close parser.Parser[C]) parser.Parser[Bracketed[O, A, C]] {
	return parser.AndThen(And2(open, p, close), func(t Triple[O, A, C]) parser.Parser[Bracketed[O, A, C]] {
		return parser.Pure(Bracketed[O, A, C]{Open: t.First, Content: t.Second, Close: t.Third})
	})
}

// BetweenBoth uses the same parser for both the open and close
// delimiter.
func BetweenBoth[D, A any](p parser.Parser[A], delim parser.Parser[D]) parser.Parser[Bracketed[D, A, D]] {
	return Between(p, delim, delim)
}
