package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

func newTestState(src string) parser.State {
	return parser.NewState(tape.FromString(src))
}

func TestEnvActiveTerminatorEmpty(t *testing.T) {
	var env Env
	_, ok := env.ActiveTerminator()
	assert.False(t, ok)
}

func TestEnvActiveTerminatorInnermostOnly(t *testing.T) {
	env := Env{}.Push(scopeLinkSquare()).Push(scopeEmphasis('*', 1))
	term, ok := env.ActiveTerminator()
	assert.True(t, ok)
	assert.Equal(t, "*", term)
}

func TestEnvPushDoesNotMutateReceiver(t *testing.T) {
	base := Env{}.Push(scopeLinkSquare())
	_ = base.Push(scopeEmphasis('_', 2))
	term, _ := base.ActiveTerminator()
	assert.Equal(t, "]", term)
}

func TestTerminatorFlowNoScopeAlwaysBreaks(t *testing.T) {
	env := Env{}
	o := terminatorFlow(env)(newTestState("anything"))
	assert.True(t, o.IsContinue())
	assert.Equal(t, combinator.FlowBreak, o.Value())
}

func TestTerminatorFlowMatchesActiveScope(t *testing.T) {
	env := Env{}.Push(scopeLinkSquare())
	o := terminatorFlow(env)(newTestState("]rest"))
	assert.True(t, o.IsContinue())
	assert.Equal(t, combinator.FlowContinue, o.Value())
}

func TestTerminatorFlowNoMatchIsBreakFlow(t *testing.T) {
	env := Env{}.Push(scopeLinkSquare())
	o := terminatorFlow(env)(newTestState("x"))
	assert.True(t, o.IsContinue())
	assert.Equal(t, combinator.FlowBreak, o.Value())
}
