package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
)

// Parse runs BlockParser to exhaustion over source and wraps the
// result in a Document. The returned state's leftover tape is empty
// on a fully consumed source.
func Parse(source string) (*ast.Document, parser.State) {
	p := parser.Map(combinator.ManyUntilEnd(BlockParser, combinator.AtEnd), func(t combinator.Terminated[ast.Block, struct{}]) ast.Document {
		return ast.Document{Content: ast.Blocks(t.Items)}
	})
	doc, state := parser.Evaluate(source, p)
	if doc == nil {
		return &ast.Document{}, state
	}
	return doc, state
}
