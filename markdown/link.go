package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// literalTextUntil consumes characters verbatim (no inline recursion)
// up to the active scope's terminator, a newline, or, when
// stopAtSpace is set, the first inline whitespace character.
func literalTextUntil(env Env, stopAtSpace bool) parser.Parser[tape.Tape] {
	term, hasTerm := env.ActiveTerminator()
	return func(s parser.State) parser.Outcome[tape.Tape] {
		chars := s.Tape.Chars()
		n := 0
		for n < len(chars) {
			r := chars[n].Value
			if r == '\n' {
				break
			}
			if stopAtSpace && (r == ' ' || r == '\t') {
				break
			}
			if hasTerm && matchesTerminatorAt(chars, n, term) {
				break
			}
			n++
		}
		prefix, remainder := s.Tape.Take(uint64(n))
		return parser.Continue(prefix, s.WithTape(remainder))
	}
}

func linkLabel(env Env) parser.Parser[ast.InSquareBrackets[ast.Inlines]] {
	squareEnv := env.Push(scopeLinkSquare())
	bracketed := combinator.Between(ParseInlines(squareEnv), combinator.Char('['), combinator.Char(']'))
	return parser.Map(bracketed, func(b combinator.Bracketed[tape.FatChar, ast.Inlines, tape.FatChar]) ast.InSquareBrackets[ast.Inlines] {
		return ast.InSquareBrackets[ast.Inlines]{
			Open:    tape.Single(b.Open),
			Content: b.Content,
			Close:   tape.Single(b.Close),
		}
	})
}

func linkTitle(env Env) parser.Parser[ast.InDoubleQuotes[tape.Tape]] {
	stringEnv := env.Push(scopeString())
	bracketed := combinator.BetweenBoth(literalTextUntil(stringEnv, false), combinator.Char('"'))
	return parser.Map(bracketed, func(b combinator.Bracketed[tape.FatChar, tape.Tape, tape.FatChar]) ast.InDoubleQuotes[tape.Tape] {
		return ast.InDoubleQuotes[tape.Tape]{
			Open:    tape.Single(b.Open),
			Content: b.Content,
			Close:   tape.Single(b.Close),
		}
	})
}

// LinkParser implements `[text](destination "title"?)`.
func LinkParser(env Env) parser.Parser[ast.Inline] {
	roundEnv := env.Push(scopeLinkRound())
	return parser.AndThen(linkLabel(env), func(text ast.InSquareBrackets[ast.Inlines]) parser.Parser[ast.Inline] {
		return parser.AndThen(combinator.Char('('), func(openParen tape.FatChar) parser.Parser[ast.Inline] {
			return parser.AndThen(literalTextUntil(roundEnv, true), func(dest tape.Tape) parser.Parser[ast.Inline] {
				return parser.AndThen(combinator.Whitespace, func(tape.Tape) parser.Parser[ast.Inline] {
					return parser.AndThen(parser.Optional(linkTitle(env)), func(title *ast.InDoubleQuotes[tape.Tape]) parser.Parser[ast.Inline] {
						return parser.AndThen(combinator.Whitespace, func(tape.Tape) parser.Parser[ast.Inline] {
							return parser.AndThen(combinator.Char(')'), func(closeParen tape.FatChar) parser.Parser[ast.Inline] {
								return parser.Pure[ast.Inline](ast.Link{
									Text:        text,
									OpenParen:   tape.Single(openParen),
									Destination: dest,
									Title:       title,
									CloseParen:  tape.Single(closeParen),
								})
							})
						})
					})
				})
			})
		})
	})
}

// ImageParser implements `!` followed by a Link.
func ImageParser(env Env) parser.Parser[ast.Inline] {
	return parser.AndThen(combinator.Char('!'), func(bang tape.FatChar) parser.Parser[ast.Inline] {
		return parser.AndThen(LinkParser(env), func(link ast.Inline) parser.Parser[ast.Inline] {
			l := link.(ast.Link)
			return parser.Pure[ast.Inline](ast.Image{Bang: tape.Single(bang), Link: l})
		})
	})
}
