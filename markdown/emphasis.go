package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// delimitedSpan is the shared shape behind Emphasis, Highlight,
// Strikethrough, Sub, and Sup: an exact marker string opens the span,
// the content is parsed as inline under a scope whose terminator is
// that same marker, and the identical marker must close it.
func delimitedSpan(env Env, marker string, kind ast.EmphasisKind) parser.Parser[ast.Inline] {
	open := combinator.Token(marker)
	childEnv := env.Push(scopeForSpan(kind, marker))
	return parser.AndThen(open, func(openTape tape.Tape) parser.Parser[ast.Inline] {
		return parser.AndThen(ParseInlines(childEnv), func(content ast.Inlines) parser.Parser[ast.Inline] {
			return parser.AndThen(combinator.Token(marker), func(closeTape tape.Tape) parser.Parser[ast.Inline] {
				return parser.Pure[ast.Inline](ast.Emphasis{
					Kind:       kind,
					OpenDelim:  openTape,
					Content:    content,
					CloseDelim: closeTape,
				})
			})
		})
	})
}

// scopeForSpan picks the scope a delimited span pushes while its
// content is parsed, so debug scopes and ActiveTerminator carry the
// span's own name rather than a generic one.
func scopeForSpan(kind ast.EmphasisKind, marker string) Scope {
	switch kind {
	case ast.KindHighlight:
		return scopeHighlight()
	case ast.KindStrikethrough:
		return scopeStrikethrough()
	case ast.KindSub:
		return scopeSub()
	case ast.KindSup:
		return scopeSup()
	default:
		runes := []rune(marker)
		return scopeEmphasis(runes[0], len(runes))
	}
}

// EmphasisParser tries, in order, "***", "**", "*", "___", "__", "_".
// The ordering is load-bearing: it determines whether "***x***"
// parses as a single triple-delimited span or as nested emphases
// (scenario S6).
func EmphasisParser(env Env) parser.Parser[ast.Inline] {
	return parser.Options(
		delimitedSpan(env, "***", ast.KindEmphasis),
		delimitedSpan(env, "**", ast.KindEmphasis),
		delimitedSpan(env, "*", ast.KindEmphasis),
		delimitedSpan(env, "___", ast.KindEmphasis),
		delimitedSpan(env, "__", ast.KindEmphasis),
		delimitedSpan(env, "_", ast.KindEmphasis),
	)
}

// HighlightParser implements `==content==`.
func HighlightParser(env Env) parser.Parser[ast.Inline] {
	return delimitedSpan(env, "==", ast.KindHighlight)
}

// StrikethroughParser implements `~~content~~`, tried ahead of Sub so
// that a literal "~~" is never swallowed one tilde at a time.
func StrikethroughParser(env Env) parser.Parser[ast.Inline] {
	return delimitedSpan(env, "~~", ast.KindStrikethrough)
}

// SubParser implements `~content~`.
func SubParser(env Env) parser.Parser[ast.Inline] {
	return delimitedSpan(env, "~", ast.KindSub)
}

// SupParser implements `^content^`.
func SupParser(env Env) parser.Parser[ast.Inline] {
	return delimitedSpan(env, "^", ast.KindSup)
}
