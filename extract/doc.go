// Package extract provides strategies for shortening prompt text to a
// character budget.
//
// An Extractor is any function that reduces text to at most maxLen
// characters:
//
//	type Extractor func(text string, maxLen int) string
//
// The builder package calls a configured Extractor when a section does
// not fit whole in the remaining budget. The contract is strict: the
// result must never exceed maxLen characters, as the builder does not
// re-validate.
//
// # Strategies
//
// Prefix is the naive fallback, an exact-length cut with no marker:
//
//	short := extract.Prefix(text, 100)
//
// Truncator inserts a marker where content was removed, with three
// placement strategies:
//
//	tr := extract.NewFromMiddle().WithMarker("\n[...]\n")
//	short := tr.Extract(text, 500)
//
// Boundary prefers sentence and word boundaries over hard cuts:
//
//	short := extract.Boundary(text, 500)
//
// Any of these can be handed to a builder:
//
//	b := builder.New(4096, builder.WithExtractor(extract.Boundary))
//	b := builder.New(4096, builder.WithExtractor(extract.NewFromEnd().Extractor()))
//
// All lengths are Unicode code points, not bytes, so multi-byte
// characters are never split.
package extract
