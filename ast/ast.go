// Package ast defines the lossless document tree produced by package
// markdown: inline and block node variants, each storing its own
// delimiter tokens as tapes so the source text can be reconstructed
// exactly from the tree.
package ast

import "github.com/colbyn/monado/tape"

// Inline is any node that can appear inside a paragraph, heading, or
// other inline-bearing context.
type Inline interface {
	inlineNode()
	Renderable
}

// Inlines is a sequence of Inline nodes, the result of parsing a
// scoped run of inline content.
type Inlines []Inline

// InSquareBrackets wraps content that was found between a matching
// pair of square brackets, keeping the brackets themselves as tapes.
type InSquareBrackets[T any] struct {
	Open    tape.Tape
	Content T
	Close   tape.Tape
}

// InDoubleQuotes wraps content found between a matching pair of
// double quotes.
type InDoubleQuotes[T any] struct {
	Open    tape.Tape
	Content T
	Close   tape.Tape
}

// PlainText is a run of characters with no special inline meaning.
type PlainText struct {
	Text tape.Tape
}

func (PlainText) inlineNode() {}

func (PlainText) Label() string { return "PlainText" }

func (n PlainText) Fields() []Field {
	return []Field{leafField("text", n.Text.String())}
}

// Link is `[text](destination "title"?)`.
type Link struct {
	Text        InSquareBrackets[Inlines]
	OpenParen   tape.Tape
	Destination tape.Tape
	Title       *InDoubleQuotes[tape.Tape]
	CloseParen  tape.Tape
}

func (Link) inlineNode() {}

func (Link) Label() string { return "Link" }

func (n Link) Fields() []Field {
	fields := []Field{
		leafField("open_bracket", n.Text.Open.String()),
		childrenField("text", inlinesToRenderables(n.Text.Content)),
		leafField("close_bracket", n.Text.Close.String()),
		leafField("open_paren", n.OpenParen.String()),
		leafField("destination", n.Destination.String()),
	}
	if n.Title != nil {
		fields = append(fields,
			leafField("title_open", n.Title.Open.String()),
			leafField("title", n.Title.Content.String()),
			leafField("title_close", n.Title.Close.String()),
		)
	}
	fields = append(fields, leafField("close_paren", n.CloseParen.String()))
	return fields
}

// Image is `![...]` where the bang is stored separately from the
// wrapped Link so both can be replayed losslessly.
type Image struct {
	Bang tape.Tape
	Link Link
}

func (Image) inlineNode() {}

func (Image) Label() string { return "Image" }

func (n Image) Fields() []Field {
	return []Field{
		leafField("bang", n.Bang.String()),
		childField("link", n.Link),
	}
}

// EmphasisKind distinguishes the flavors of run-delimited inline
// spans that share the Emphasis-shaped layout.
type EmphasisKind int

const (
	KindEmphasis EmphasisKind = iota
	KindHighlight
	KindStrikethrough
	KindSub
	KindSup
)

// Emphasis covers Emphasis, Highlight, Strikethrough, Sub, and Sup:
// all are an open delimiter, inline content, and a matching close
// delimiter of identical length and character.
type Emphasis struct {
	Kind       EmphasisKind
	OpenDelim  tape.Tape
	Content    Inlines
	CloseDelim tape.Tape
}

func (Emphasis) inlineNode() {}

func (n Emphasis) Label() string {
	switch n.Kind {
	case KindHighlight:
		return "Highlight"
	case KindStrikethrough:
		return "Strikethrough"
	case KindSub:
		return "Sub"
	case KindSup:
		return "Sup"
	default:
		return "Emphasis"
	}
}

func (n Emphasis) Fields() []Field {
	return []Field{
		leafField("open_delim", n.OpenDelim.String()),
		childrenField("content", inlinesToRenderables(n.Content)),
		leafField("close_delim", n.CloseDelim.String()),
	}
}

// InlineCode is a run of backticks, verbatim content, and a matching
// closing run of the same length.
type InlineCode struct {
	OpenTicks  tape.Tape
	Content    tape.Tape
	CloseTicks tape.Tape
}

func (InlineCode) inlineNode() {}

func (InlineCode) Label() string { return "InlineCode" }

func (n InlineCode) Fields() []Field {
	return []Field{
		leafField("open_ticks", n.OpenTicks.String()),
		leafField("content", n.Content.String()),
		leafField("close_ticks", n.CloseTicks.String()),
	}
}

// LineBreak is a bare newline encountered inside inline content.
type LineBreak struct {
	Newline tape.Tape
}

func (LineBreak) inlineNode() {}

func (LineBreak) Label() string { return "LineBreak" }

func (n LineBreak) Fields() []Field {
	return []Field{leafField("newline", n.Newline.String())}
}

// Raw is unparsed source text retained verbatim, used as the fallback
// when a bounded sub-parse leaves a remainder.
type Raw struct {
	Text tape.Tape
}

func (Raw) inlineNode() {}

func (Raw) Label() string { return "Raw" }

func (n Raw) Fields() []Field {
	return []Field{leafField("text", n.Text.String())}
}
