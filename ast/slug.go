package ast

import "github.com/shurcooL/sanitized_anchor_name"

// Slug derives a GitHub-style anchor id from h's content when the
// source did not spell one out explicitly. It is a pure read-side
// projection over the already-parsed tree, not a parse path: it
// consumes nothing and adds no field, so it has no bearing on
// losslessness. Callers that need the id the source actually wrote
// should read h.Id directly; Slug is for generating a link target
// when h.Id is nil.
func (h Heading) Slug() string {
	if h.Id != nil {
		return h.Id.Text.String()
	}
	return sanitized_anchor_name.Create(Reconstruct(inlinesRenderable(h.Content)))
}

// inlinesRenderable adapts an Inlines slice to Renderable so
// Reconstruct can walk it directly, without pretending a slice of
// inline nodes is itself a single Inline.
type inlinesRenderable Inlines

func (n inlinesRenderable) Label() string { return "Inlines" }

func (n inlinesRenderable) Fields() []Field {
	return []Field{childrenField("content", inlinesToRenderables(Inlines(n)))}
}
