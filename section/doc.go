// Package section defines the unit of prompt content: a piece of text
// paired with a provenance tag.
//
// The Section interface is deliberately small. Anything that can name
// where it came from and produce text on demand can participate in
// prompt assembly:
//
//	type Section interface {
//	    Source() string
//	    Text() string
//	}
//
// # Built-in Sections
//
// Plain wraps a fixed string:
//
//	s := section.New("system", "You are a helpful assistant.")
//	anon := section.NewText("raw text with no source")
//
// File reads its content from disk each time Text is called:
//
//	s := section.NewFile("prompts/guidelines.md")
//
// Template renders variables into a prompt template:
//
//	s := section.NewTemplate("greeting", "Hello, {{name}}!",
//	    map[string]any{"name": "World"})
//
// Func produces text from an arbitrary function:
//
//	s := section.NewFunc("clock", func() string { return time.Now().String() })
//
// Sections that produce empty text are always accepted for free by the
// builder, so a File section pointing at a missing file degrades to a
// harmless no-op rather than an error.
package section
