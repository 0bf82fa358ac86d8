package ast

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Renderable is the only output interface a node needs to support: it
// reports a label and a list of fields, each either a raw-string leaf
// or one or more child Renderables, sufficient for an external
// TreeRenderer to pretty-print the tree without knowing any concrete
// node type.
type Renderable interface {
	Label() string
	Fields() []Field
}

// Field is one entry in a node's rendering: either a leaf string, a
// single child, or a list of children sharing the same key (e.g. the
// content of a Paragraph).
type Field struct {
	Key      string
	Leaf     string
	IsLeaf   bool
	Child    Renderable
	Children []Renderable
}

func leafField(key, text string) Field {
	return Field{Key: key, Leaf: text, IsLeaf: true}
}

func childField(key string, r Renderable) Field {
	return Field{Key: key, Child: r}
}

func childrenField(key string, rs []Renderable) Field {
	return Field{Key: key, Children: rs}
}

func inlinesToRenderables(xs Inlines) []Renderable {
	out := make([]Renderable, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func blocksToRenderables(xs Blocks) []Renderable {
	out := make([]Renderable, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

// Reconstruct concatenates every leaf field of r, in source order,
// recursing into children depth-first. For a losslessly parsed tree
// this reproduces the original source text exactly.
func Reconstruct(r Renderable) string {
	var b strings.Builder
	reconstruct(&b, r)
	return b.String()
}

func reconstruct(b *strings.Builder, r Renderable) {
	for _, f := range r.Fields() {
		switch {
		case f.IsLeaf:
			b.WriteString(f.Leaf)
		case f.Child != nil:
			reconstruct(b, f.Child)
		default:
			for _, c := range f.Children {
				reconstruct(b, c)
			}
		}
	}
}

// TreeRenderer is the opaque external collaborator the AST knows how
// to feed: it receives a depth-first walk of a Renderable tree and is
// responsible for any actual pretty-printing or highlighting.
type TreeRenderer interface {
	OpenNode(key, label string) error
	Leaf(key, text string) error
	CloseNode() error
}

// Feed walks r depth-first, driving renderer through its OpenNode,
// Leaf, and CloseNode calls. The key passed for the root node is the
// empty string.
func Feed(renderer TreeRenderer, r Renderable) error {
	return feed(renderer, "", r)
}

// dumpRenderer is the built-in TreeRenderer used by Dump: an indented
// "key: Label" / "key: "text"" listing, one entry per line.
type dumpRenderer struct {
	b     strings.Builder
	depth int
}

func (d *dumpRenderer) indent() {
	for i := 0; i < d.depth; i++ {
		d.b.WriteString("  ")
	}
}

func (d *dumpRenderer) OpenNode(key, label string) error {
	d.indent()
	if key != "" {
		d.b.WriteString(key)
		d.b.WriteString(": ")
	}
	d.b.WriteString(label)
	d.b.WriteString("\n")
	d.depth++
	return nil
}

func (d *dumpRenderer) Leaf(key, text string) error {
	d.indent()
	d.b.WriteString(key)
	d.b.WriteString(": ")
	d.b.WriteString(strconv.Quote(text))
	d.b.WriteString("\n")
	return nil
}

func (d *dumpRenderer) CloseNode() error {
	d.depth--
	return nil
}

// Dump renders r as an indented, human-readable tree: one line per
// node or leaf field. It is the structural counterpart to Reconstruct
// — meant for diagnostics and tests, not for round-tripping source.
func Dump(r Renderable) string {
	d := &dumpRenderer{}
	if err := Feed(d, r); err != nil {
		return err.Error()
	}
	return d.b.String()
}

func feed(renderer TreeRenderer, key string, r Renderable) error {
	if err := renderer.OpenNode(key, r.Label()); err != nil {
		return errors.Wrapf(err, "opening node %q (%s)", key, r.Label())
	}
	for _, f := range r.Fields() {
		switch {
		case f.IsLeaf:
			if err := renderer.Leaf(f.Key, f.Leaf); err != nil {
				return errors.Wrapf(err, "leaf %q under %s", f.Key, r.Label())
			}
		case f.Child != nil:
			if err := feed(renderer, f.Key, f.Child); err != nil {
				return err
			}
		default:
			for _, c := range f.Children {
				if err := feed(renderer, f.Key, c); err != nil {
					return err
				}
			}
		}
	}
	if err := renderer.CloseNode(); err != nil {
		return errors.Wrapf(err, "closing node %q (%s)", key, r.Label())
	}
	return nil
}
