package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colbyn/monado/tape"
)

func TestHeadingSlugDerivedWhenIdAbsent(t *testing.T) {
	h := Heading{
		Hashes:  tape.FromString("#"),
		Content: Inlines{PlainText{Text: tape.FromString("Hello World!")}},
	}
	assert.Nil(t, h.Id)
	assert.Equal(t, "hello-world", h.Slug())
}

func TestHeadingSlugPrefersExplicitId(t *testing.T) {
	h := Heading{
		Hashes:  tape.FromString("#"),
		Content: Inlines{PlainText{Text: tape.FromString("Ignored Text")}},
		Id: &HeadingId{
			Open:  tape.FromString("{"),
			Text:  tape.FromString("custom-id"),
			Close: tape.FromString("}"),
		},
	}
	assert.Equal(t, "custom-id", h.Slug())
}
