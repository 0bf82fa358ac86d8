package ast

import "github.com/colbyn/monado/tape"

// Block is any node that can appear at document or container level.
type Block interface {
	blockNode()
	Renderable
}

// Blocks is a sequence of Block nodes.
type Blocks []Block

// Document is the root of a parsed tree: an ordered sequence of
// blocks.
type Document struct {
	Content Blocks
}

func (Document) Label() string { return "Document" }

func (n Document) Fields() []Field {
	return []Field{childrenField("content", blocksToRenderables(n.Content))}
}

// HeadingId is the optional trailing `{id}` after a heading's
// content.
type HeadingId struct {
	Open  tape.Tape
	Text  tape.Tape
	Close tape.Tape
}

// Heading is 1-6 `#` characters followed by inline content and an
// optional id.
type Heading struct {
	Hashes  tape.Tape
	Content Inlines
	Id      *HeadingId
}

func (Heading) blockNode() {}

func (Heading) Label() string { return "Heading" }

func (n Heading) Fields() []Field {
	fields := []Field{
		leafField("hashes", n.Hashes.String()),
		childrenField("content", inlinesToRenderables(n.Content)),
	}
	if n.Id != nil {
		fields = append(fields,
			leafField("id_open", n.Id.Open.String()),
			leafField("id", n.Id.Text.String()),
			leafField("id_close", n.Id.Close.String()),
		)
	}
	return fields
}

// Paragraph is the fallback block: a run of inline content up to a
// blank line or the end of input.
type Paragraph struct {
	Content Inlines
}

func (Paragraph) blockNode() {}

func (Paragraph) Label() string { return "Paragraph" }

func (n Paragraph) Fields() []Field {
	return []Field{childrenField("content", inlinesToRenderables(n.Content))}
}

// Blockquote is a run of lines each led by `>`, re-parsed as blocks.
type Blockquote struct {
	StartDelim tape.Tape
	Content    Blocks
}

func (Blockquote) blockNode() {}

func (Blockquote) Label() string { return "Blockquote" }

func (n Blockquote) Fields() []Field {
	return []Field{
		leafField("start_delim", n.StartDelim.String()),
		childrenField("content", blocksToRenderables(n.Content)),
	}
}

// UnorderedListItem is `-`/`*`/`+` followed by a space and a body
// re-parsed as blocks.
type UnorderedListItem struct {
	Bullet  tape.Tape
	Space   tape.Tape
	Content Blocks
}

func (UnorderedListItem) blockNode() {}

func (UnorderedListItem) Label() string { return "UnorderedListItem" }

func (n UnorderedListItem) Fields() []Field {
	return []Field{
		leafField("bullet", n.Bullet.String()),
		leafField("space", n.Space.String()),
		childrenField("content", blocksToRenderables(n.Content)),
	}
}

// OrderedListItem is `digits.` followed by a space and a body
// re-parsed as blocks.
type OrderedListItem struct {
	Number  tape.Tape
	Dot     tape.Tape
	Space   tape.Tape
	Content Blocks
}

func (OrderedListItem) blockNode() {}

func (OrderedListItem) Label() string { return "OrderedListItem" }

func (n OrderedListItem) Fields() []Field {
	return []Field{
		leafField("number", n.Number.String()),
		leafField("dot", n.Dot.String()),
		leafField("space", n.Space.String()),
		childrenField("content", blocksToRenderables(n.Content)),
	}
}

// TaskListItem is `[ ]`/`[x]`/`[X]`/`[-]` followed by a space and a
// body re-parsed as blocks, shaped like UnorderedListItem.
type TaskListItem struct {
	Header  InSquareBrackets[*tape.FatChar]
	Space   tape.Tape
	Content Blocks
}

func (TaskListItem) blockNode() {}

func (TaskListItem) Label() string { return "TaskListItem" }

func (n TaskListItem) Fields() []Field {
	mark := ""
	if n.Header.Content != nil {
		mark = string(n.Header.Content.Value)
	}
	return []Field{
		leafField("open_bracket", n.Header.Open.String()),
		leafField("mark", mark),
		leafField("close_bracket", n.Header.Close.String()),
		leafField("space", n.Space.String()),
		childrenField("content", blocksToRenderables(n.Content)),
	}
}

// FencedCodeBlock is a triple-backtick-delimited code span with an
// optional info string on the opening fence's line.
type FencedCodeBlock struct {
	OpenFence  tape.Tape
	InfoString *tape.Tape
	Content    tape.Tape
	CloseFence tape.Tape
}

func (FencedCodeBlock) blockNode() {}

func (FencedCodeBlock) Label() string { return "FencedCodeBlock" }

func (n FencedCodeBlock) Fields() []Field {
	fields := []Field{leafField("open_fence", n.OpenFence.String())}
	if n.InfoString != nil {
		fields = append(fields, leafField("info_string", n.InfoString.String()))
	}
	fields = append(fields,
		leafField("content", n.Content.String()),
		leafField("close_fence", n.CloseFence.String()),
	)
	return fields
}

// HorizontalRule is 3+ of a single repeated character from `- * _`.
type HorizontalRule struct {
	Tokens tape.Tape
}

func (HorizontalRule) blockNode() {}

func (HorizontalRule) Label() string { return "HorizontalRule" }

func (n HorizontalRule) Fields() []Field {
	return []Field{leafField("tokens", n.Tokens.String())}
}

// TableRow is a sequence of pipe-delimited cells, each stored as Raw
// text (cell inline re-parsing is left to a future grammar revision).
type TableRow struct {
	Cells []Raw
}

func (TableRow) Label() string { return "Row" }

func (n TableRow) Fields() []Field {
	cells := make([]Renderable, len(n.Cells))
	for i, c := range n.Cells {
		cells[i] = c
	}
	return []Field{childrenField("cells", cells)}
}

// TableSeparatorRow is the `:?---+:?`-per-column row that follows a
// table's header row.
type TableSeparatorRow struct {
	Cells []tape.Tape
}

func (TableSeparatorRow) Label() string { return "SeparatorRow" }

func (n TableSeparatorRow) Fields() []Field {
	fields := make([]Field, len(n.Cells))
	for i, c := range n.Cells {
		fields[i] = leafField("cell", c.String())
	}
	return fields
}

// Table is a header row, its separator row, and zero or more body
// rows.
type Table struct {
	Header    TableRow
	Separator TableSeparatorRow
	Rows      []TableRow
}

func (Table) blockNode() {}

func (Table) Label() string { return "Table" }

func (n Table) Fields() []Field {
	rows := make([]Renderable, len(n.Rows))
	for i, r := range n.Rows {
		rows[i] = r
	}
	return []Field{
		childField("header", n.Header),
		childField("separator", n.Separator),
		childrenField("rows", rows),
	}
}

// RawBlock is unparsed source text retained verbatim at block level,
// used as the fallback when a bounded sub-parse over block content
// leaves a remainder (see Raw for the inline equivalent).
type RawBlock struct {
	Text tape.Tape
}

func (RawBlock) blockNode() {}

func (RawBlock) Label() string { return "RawBlock" }

func (n RawBlock) Fields() []Field {
	return []Field{leafField("text", n.Text.String())}
}

// Newline is a blank line retained between blocks so the tree stays
// lossless.
type Newline struct {
	Char tape.Tape
}

func (Newline) blockNode() {}

func (Newline) Label() string { return "Newline" }

func (n Newline) Fields() []Field {
	return []Field{leafField("char", n.Char.String())}
}
