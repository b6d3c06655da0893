// Package config loads declarative prompt pipelines from YAML, TOML,
// or JSON files and builds them.
//
// A pipeline file names a character budget (directly or via a model),
// an extraction strategy, and the sections to assemble:
//
//	max_length: 4096
//	extractor: boundary
//	sections:
//	  - source: system
//	    file: prompts/system.md
//	  - source: greeting
//	    template: "Hello, {{name}}!"
//	    vars:
//	      name: World
//	  - source: footer
//	    text: "Answer concisely."
//
// The same pipeline in TOML:
//
//	max_length = 4096
//	extractor = "boundary"
//
//	[[sections]]
//	source = "footer"
//	text = "Answer concisely."
//
// # Usage
//
//	p, err := config.Load("pipeline.yaml")
//	b, fit, err := p.Build()
//	text := b.Prompt().Render("\n\n")
//
// The boolean from Build reports whether every declared section fit the
// budget.
//
// # Schema
//
// config.Schema returns a JSON Schema for pipeline files, usable for
// editor completion or CI validation.
package config
