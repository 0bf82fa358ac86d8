package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbyn/monado/ast"
)

func TestNewlineParser(t *testing.T) {
	o := NewlineParser(newTestState("\nrest"))
	require.True(t, o.IsContinue())
	_, ok := o.Value().(ast.Newline)
	assert.True(t, ok)
	assert.Equal(t, "rest", o.State().Tape.String())
}

func TestParagraphParserSingleLine(t *testing.T) {
	o := ParagraphParser(newTestState("just some text"))
	require.True(t, o.IsContinue())
	p, ok := o.Value().(ast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "just some text", ast.Reconstruct(p))
	assert.True(t, o.State().Tape.IsEmpty())
}

func TestParagraphParserStopsAtBlankLine(t *testing.T) {
	o := ParagraphParser(newTestState("line one\nline two\n\nnext paragraph"))
	require.True(t, o.IsContinue())
	p := o.Value().(ast.Paragraph)
	assert.Equal(t, "line one\nline two", ast.Reconstruct(p))
	assert.Equal(t, "\n\nnext paragraph", o.State().Tape.String())
}

func TestBlockParserDispatchesHeadingBeforeParagraph(t *testing.T) {
	o := BlockParser(newTestState("# A Title\nBody text"))
	require.True(t, o.IsContinue())
	_, ok := o.Value().(ast.Heading)
	assert.True(t, ok)
}

func TestBlockParserDispatchesFencedBeforeParagraph(t *testing.T) {
	o := BlockParser(newTestState("```\ncode\n```"))
	require.True(t, o.IsContinue())
	_, ok := o.Value().(ast.FencedCodeBlock)
	assert.True(t, ok)
}

func TestBlockParserFallsBackToParagraph(t *testing.T) {
	o := BlockParser(newTestState("not a special line"))
	require.True(t, o.IsContinue())
	_, ok := o.Value().(ast.Paragraph)
	assert.True(t, ok)
}

func TestBlockParserNewlineBeforeParagraph(t *testing.T) {
	o := BlockParser(newTestState("\ntext"))
	require.True(t, o.IsContinue())
	_, ok := o.Value().(ast.Newline)
	assert.True(t, ok)
}
