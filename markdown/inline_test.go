package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbyn/monado/ast"
)

func TestPlainTextStopsAtSpecialLead(t *testing.T) {
	o := PlainText(Env{})(newTestState("Alpha *Beta*"))
	require.True(t, o.IsContinue())
	pt, ok := o.Value().(ast.PlainText)
	require.True(t, ok)
	assert.Equal(t, "Alpha ", pt.Text.String())
	assert.Equal(t, "*Beta*", o.State().Tape.String())
}

func TestPlainTextStopsAtNewline(t *testing.T) {
	o := PlainText(Env{})(newTestState("line one\nline two"))
	require.True(t, o.IsContinue())
	pt := o.Value().(ast.PlainText)
	assert.Equal(t, "line one", pt.Text.String())
}

func TestPlainTextBreaksOnImmediateSpecialLead(t *testing.T) {
	o := PlainText(Env{})(newTestState("*Beta*"))
	assert.True(t, o.IsBreak())
}

func TestPlainTextStopsAtActiveTerminator(t *testing.T) {
	env := Env{}.Push(scopeLinkSquare())
	o := PlainText(env)(newTestState("text]rest"))
	require.True(t, o.IsContinue())
	pt := o.Value().(ast.PlainText)
	assert.Equal(t, "text", pt.Text.String())
}

func TestParseInlinesS2NestedEmphasis(t *testing.T) {
	o := ParseInlines(Env{})(newTestState("Alpha *Beta Gamma* Delta"))
	require.True(t, o.IsContinue())
	inlines := o.Value()
	require.Len(t, inlines, 3)

	first, ok := inlines[0].(ast.PlainText)
	require.True(t, ok)
	assert.Equal(t, "Alpha ", first.Text.String())

	em, ok := inlines[1].(ast.Emphasis)
	require.True(t, ok)
	assert.Equal(t, ast.KindEmphasis, em.Kind)
	assert.Equal(t, "*", em.OpenDelim.String())
	assert.Equal(t, "*", em.CloseDelim.String())
	require.Len(t, em.Content, 1)
	inner, ok := em.Content[0].(ast.PlainText)
	require.True(t, ok)
	assert.Equal(t, "Beta Gamma", inner.Text.String())

	last, ok := inlines[2].(ast.PlainText)
	require.True(t, ok)
	assert.Equal(t, " Delta", last.Text.String())

	assert.Equal(t, "Alpha *Beta Gamma* Delta", ast.Reconstruct(ast.Paragraph{Content: ast.Inlines(inlines)}))
}

func TestEmphasisS6TripleBeforeSingle(t *testing.T) {
	o := ParseInlines(Env{})(newTestState("***x***"))
	require.True(t, o.IsContinue())
	inlines := o.Value()
	require.Len(t, inlines, 1)
	em, ok := inlines[0].(ast.Emphasis)
	require.True(t, ok)
	assert.Equal(t, "***", em.OpenDelim.String())
	assert.Equal(t, "***", em.CloseDelim.String())
	require.Len(t, em.Content, 1)
	inner, ok := em.Content[0].(ast.PlainText)
	require.True(t, ok)
	assert.Equal(t, "x", inner.Text.String())
}

func TestInlineCodeS3RunLength(t *testing.T) {
	o := InlineCodeParser(Env{})(newTestState("`` a ` b ``"))
	require.True(t, o.IsContinue())
	code, ok := o.Value().(ast.InlineCode)
	require.True(t, ok)
	assert.Equal(t, "``", code.OpenTicks.String())
	assert.Equal(t, " a ` b ", code.Content.String())
	assert.Equal(t, "``", code.CloseTicks.String())
}

func TestStrikethroughTriedBeforeSub(t *testing.T) {
	o := ParseInlines(Env{})(newTestState("~~gone~~"))
	require.True(t, o.IsContinue())
	inlines := o.Value()
	require.Len(t, inlines, 1)
	em, ok := inlines[0].(ast.Emphasis)
	require.True(t, ok)
	assert.Equal(t, ast.KindStrikethrough, em.Kind)
}

func TestHighlightParser(t *testing.T) {
	o := ParseInlines(Env{})(newTestState("==marked=="))
	require.True(t, o.IsContinue())
	inlines := o.Value()
	require.Len(t, inlines, 1)
	em, ok := inlines[0].(ast.Emphasis)
	require.True(t, ok)
	assert.Equal(t, ast.KindHighlight, em.Kind)
}

func TestLineBreakInsideInlines(t *testing.T) {
	o := ParseInlines(Env{})(newTestState("one\ntwo"))
	require.True(t, o.IsContinue())
	inlines := o.Value()
	require.Len(t, inlines, 3)
	_, isLineBreak := inlines[1].(ast.LineBreak)
	assert.True(t, isLineBreak)
	assert.Equal(t, "one\ntwo", ast.Reconstruct(ast.Paragraph{Content: ast.Inlines(inlines)}))
}
