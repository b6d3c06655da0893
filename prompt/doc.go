// Package prompt provides the ordered section container that a builder
// assembles into.
//
// A Prompt holds accepted sections in insertion order and renders them
// into the final composite text:
//
//	p := prompt.New()
//	p.Append(section.New("system", "Be concise."))
//	p.AppendText("user", "Summarize the report.")
//	text := p.Render("\n\n")
//
// Sections can be reordered in place without changing total length:
//
//	p.Rotate(1, 3) // left-rotate sections 1..3 by one position
//
// A Prompt is owned exclusively by the builder that fills it; see the
// builder package.
package prompt
