// Package promptbuild assembles labeled text sections into prompts that
// never exceed a character budget.
//
// promptbuild is designed to be imported à la carte. Each subpackage can
// be used independently:
//
//   - builder: budgeted accumulation of sections into a prompt
//   - prompt: the ordered section container and its rendering
//   - section: the section abstraction (plain, file, template, func)
//   - extract: strategies for shortening oversized sections
//   - template: prompt template rendering with {{variable}} syntax
//   - library: directories of section files with YAML frontmatter
//   - config: declarative pipelines from YAML, TOML, or JSON
//   - tokens: character counting and model context-window limits
//
// # Quick Start
//
// Accumulate sections under a budget:
//
//	import "github.com/randalmurphal/promptbuild/builder"
//	b := builder.New(4096)
//	ok, _ := b.Add(section.New("system", "Be concise."))
//	text := b.Prompt().Render("\n\n")
//
// Shorten sections that don't fit instead of rejecting them:
//
//	b := builder.New(4096, builder.WithExtractor(extract.Boundary))
//
// Build a whole pipeline from a file:
//
//	import "github.com/randalmurphal/promptbuild/config"
//	p, _ := config.Load("pipeline.yaml")
//	b, fit, _ := p.Build()
//
// # Design Philosophy
//
//   - Each package usable independently
//   - Capacity rejection is a boolean, never an error
//   - Lengths are raw characters (Unicode code points), never bytes
//   - Interfaces for extensibility, concrete types for simplicity
package promptbuild
