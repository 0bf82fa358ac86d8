package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbyn/monado/ast"
)

func TestBlockquoteS4Aggregation(t *testing.T) {
	src := "> A1 Red\n> A2 Blue\n> A3 Green\n\n> B1 Alpha"
	o := BlockquoteParser(newTestState(src))
	require.True(t, o.IsContinue())
	bq, ok := o.Value().(ast.Blockquote)
	require.True(t, ok)
	assert.Equal(t, "> ", bq.StartDelim.String())

	got := ast.Reconstruct(ast.Blocks(bq.Content)[0])
	for _, b := range bq.Content[1:] {
		got += ast.Reconstruct(b)
	}
	assert.Equal(t, "A1 Red\nA2 Blue\nA3 Green", got)

	assert.Equal(t, "\n\n> B1 Alpha", o.State().Tape.String())
}

func TestBlockquoteSingleLineLossless(t *testing.T) {
	o := BlockquoteParser(newTestState("> hello world"))
	require.True(t, o.IsContinue())
	bq := o.Value().(ast.Blockquote)
	reconstructed := bq.StartDelim.String()
	for _, b := range bq.Content {
		reconstructed += ast.Reconstruct(b)
	}
	assert.Equal(t, "> hello world", reconstructed)
}

func TestBlockquoteRejectsNonLeader(t *testing.T) {
	o := BlockquoteParser(newTestState("not a quote"))
	assert.True(t, o.IsBreak())
}
