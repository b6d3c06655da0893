// Package library loads prompt sections from a directory of markdown
// files with YAML frontmatter.
//
// Each .md file in a library directory is one section:
//
//	---
//	source: guidelines
//	weight: 10
//	enabled: true
//	---
//	Always answer in complete sentences.
//
// The frontmatter names the section's source tag and its assembly
// weight; lighter sections come first, ties break on filename. Files
// without a frontmatter block are body-only sections tagged with their
// filename. Entries marked enabled: false are skipped.
//
// # Usage
//
//	lib, err := library.Load("prompts/")
//	b := builder.New(8192)
//	ok, err := b.AddAll(lib.Sections())
//
// # Watching
//
// A library directory can be watched for edits, so long-running callers
// can rebuild their prompt when section files change:
//
//	events, err := lib.Watch(ctx)
//	for range events {
//	    lib, _ = library.Load(lib.Dir())
//	    // rebuild
//	}
package library
