package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// extractBrackets extracts the content between a [ and a matching ],
// leaving the outer state positioned right after the closing bracket.
func extractBrackets(s parser.State) parser.Outcome[tape.Tape] {
	o := Between(SomeRunsOf(func(r rune) bool { return r != ']' }), Char('['), Char(']'))(s)
	if o.IsBreak() {
		return parser.Break[tape.Tape](s)
	}
	return parser.Continue(o.Value().Content, o.State())
}

func TestBoundedRunsInnerParserOverExtractedRegion(t *testing.T) {
	inner := Some(Char('x'))
	p := Bounded(extractBrackets, inner)
	o := p(parser.NewState(tape.FromString("[xxx]rest")))
	require.True(t, o.IsContinue())
	require.NotNil(t, o.Value().Value)
	assert.Len(t, *o.Value().Value, 3)
	assert.True(t, o.Value().Remainder.IsEmpty())
	assert.Equal(t, "rest", o.State().Tape.String())
}

func TestBoundedLeavesRemainderOnPartialInnerParse(t *testing.T) {
	inner := Some(Char('x'))
	p := Bounded(extractBrackets, inner)
	o := p(parser.NewState(tape.FromString("[xxyy]rest")))
	require.True(t, o.IsContinue())
	require.NotNil(t, o.Value().Value)
	assert.Len(t, *o.Value().Value, 2)
	assert.Equal(t, "yy", o.Value().Remainder.String())
	// Outer state always advances past the extracted region regardless
	// of how much of it the inner parser consumed.
	assert.Equal(t, "rest", o.State().Tape.String())
}

func TestBoundedReportsNilValueOnInnerFailure(t *testing.T) {
	inner := Some(Char('z'))
	p := Bounded(extractBrackets, inner)
	o := p(parser.NewState(tape.FromString("[xxx]rest")))
	require.True(t, o.IsContinue())
	assert.Nil(t, o.Value().Value)
	assert.Equal(t, "xxx", o.Value().Remainder.String())
	assert.Equal(t, "rest", o.State().Tape.String())
}

func TestBoundedFailsWhenExtractFails(t *testing.T) {
	inner := Some(Char('x'))
	p := Bounded(extractBrackets, inner)
	o := p(parser.NewState(tape.FromString("no brackets here")))
	assert.True(t, o.IsBreak())
}
