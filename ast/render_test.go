package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbyn/monado/tape"
)

// recordingRenderer captures the sequence of calls Feed makes, so
// tests can assert on traversal shape without depending on any real
// pretty-printer.
type recordingRenderer struct {
	events []string
	fail   error
}

func (r *recordingRenderer) OpenNode(key, label string) error {
	r.events = append(r.events, "open:"+key+":"+label)
	return r.fail
}

func (r *recordingRenderer) Leaf(key, text string) error {
	r.events = append(r.events, "leaf:"+key+":"+text)
	return r.fail
}

func (r *recordingRenderer) CloseNode() error {
	r.events = append(r.events, "close")
	return r.fail
}

func TestFeedWalksPlainTextLeaf(t *testing.T) {
	n := PlainText{Text: tape.FromString("hi")}
	r := &recordingRenderer{}
	require.NoError(t, Feed(r, n))
	assert.Equal(t, []string{"open::PlainText", "leaf:text:hi", "close"}, r.events)
}

func TestFeedWalksNestedChildren(t *testing.T) {
	n := Emphasis{
		Kind:       KindEmphasis,
		OpenDelim:  tape.FromString("*"),
		Content:    Inlines{PlainText{Text: tape.FromString("x")}},
		CloseDelim: tape.FromString("*"),
	}
	r := &recordingRenderer{}
	require.NoError(t, Feed(r, n))
	assert.Equal(t, []string{
		"open::Emphasis",
		"leaf:open_delim:*",
		"open:content:PlainText",
		"leaf:text:x",
		"close",
		"leaf:close_delim:*",
		"close",
	}, r.events)
}

func TestFeedPropagatesRendererError(t *testing.T) {
	n := PlainText{Text: tape.FromString("hi")}
	r := &recordingRenderer{fail: assertError}
	err := Feed(r, n)
	assert.Error(t, err)
}

func TestEmphasisLabelVariesByKind(t *testing.T) {
	cases := map[EmphasisKind]string{
		KindEmphasis:      "Emphasis",
		KindHighlight:     "Highlight",
		KindStrikethrough: "Strikethrough",
		KindSub:           "Sub",
		KindSup:           "Sup",
	}
	for kind, label := range cases {
		assert.Equal(t, label, Emphasis{Kind: kind}.Label())
	}
}

func TestReconstructRecoversSourceText(t *testing.T) {
	doc := Document{Content: Blocks{
		Paragraph{Content: Inlines{
			PlainText{Text: tape.FromString("Alpha ")},
			Emphasis{
				Kind:       KindEmphasis,
				OpenDelim:  tape.FromString("*"),
				Content:    Inlines{PlainText{Text: tape.FromString("Beta Gamma")}},
				CloseDelim: tape.FromString("*"),
			},
			PlainText{Text: tape.FromString(" Delta")},
		}},
	}}
	assert.Equal(t, "Alpha *Beta Gamma* Delta", Reconstruct(doc))
}

func TestReconstructLinkRoundTrips(t *testing.T) {
	link := Link{
		Text: InSquareBrackets[Inlines]{
			Open:    tape.FromString("["),
			Content: Inlines{PlainText{Text: tape.FromString("link text")}},
			Close:   tape.FromString("]"),
		},
		OpenParen:   tape.FromString("("),
		Destination: tape.FromString("http://dev.nodeca.com"),
		CloseParen:  tape.FromString(")"),
	}
	assert.Equal(t, "[link text](http://dev.nodeca.com)", Reconstruct(link))
}

func TestDumpProducesIndentedTree(t *testing.T) {
	n := Emphasis{
		Kind:       KindEmphasis,
		OpenDelim:  tape.FromString("*"),
		Content:    Inlines{PlainText{Text: tape.FromString("x")}},
		CloseDelim: tape.FromString("*"),
	}
	got := Dump(n)
	assert.Contains(t, got, "Emphasis")
	assert.Contains(t, got, `open_delim: "*"`)
	assert.Contains(t, got, "content: PlainText")
	assert.Contains(t, got, `text: "x"`)
}

var assertError = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
