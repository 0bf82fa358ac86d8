package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

func blockquoteLeader(s parser.State) parser.Outcome[tape.Tape] {
	o := combinator.And(combinator.Char('>'), parser.Optional(combinator.Space))(s)
	if o.IsBreak() {
		return parser.Break[tape.Tape](s)
	}
	p := o.Value()
	leader := tape.Single(p.First)
	if p.Second != nil {
		leader = leader.Concat(tape.Single(*p.Second))
	}
	return parser.Continue(leader, o.State())
}

// BlockquoteParser implements a run of `>`-led lines, re-parsed as
// blocks once the leader and trailing whitespace are stripped
// (scenario S4). Only the first line's leader is retained on the
// node: see the blockquote entry in the design ledger for why the
// continuation lines' leaders are not individually reconstructable.
func BlockquoteParser(s parser.State) parser.Outcome[ast.Block] {
	extract := func(st parser.State) parser.Outcome[tape.Tape] {
		o := combinator.Lines(blockquoteLeader)(st)
		if o.IsBreak() {
			return parser.Break[tape.Tape](st)
		}
		return parser.Continue(o.Value().Content, o.State())
	}
	execute := parser.Map(combinator.ManyUntilEnd(BlockParser, combinator.AtEnd), func(t combinator.Terminated[ast.Block, struct{}]) ast.Blocks {
		return ast.Blocks(t.Items)
	})

	boundedOutcome := combinator.Bounded(extract, execute)(s)
	if boundedOutcome.IsBreak() {
		return parser.Break[ast.Block](s)
	}

	firstLeaderOutcome := blockquoteLeader(s)
	startDelim := tape.Empty
	if firstLeaderOutcome.IsContinue() {
		startDelim = firstLeaderOutcome.Value()
	}

	content := ast.Blocks{}
	if boundedOutcome.Value().Value != nil {
		content = *boundedOutcome.Value().Value
	}
	if !boundedOutcome.Value().Remainder.IsEmpty() {
		content = append(content, ast.RawBlock{Text: boundedOutcome.Value().Remainder})
	}
	return parser.Continue[ast.Block](ast.Blockquote{
		StartDelim: startDelim,
		Content:    content,
	}, boundedOutcome.State())
}
