package section

import "os"

// Section is a unit of prompt text with an associated provenance tag.
// Implementations produce their text on demand; the builder treats
// plain and structured sections uniformly through this surface.
type Section interface {
	// Source returns the provenance tag for this section.
	// It may be empty for anonymous text.
	Source() string

	// Text returns the section's content. An empty result is valid
	// and means the section contributes nothing to the prompt.
	Text() string
}

// Plain is a section backed by a fixed string.
type Plain struct {
	source string
	text   string
}

// New creates a section with the given source tag and text.
func New(source, text string) Plain {
	return Plain{source: source, text: text}
}

// NewText creates an anonymous section from raw text.
func NewText(text string) Plain {
	return Plain{text: text}
}

// Source returns the section's provenance tag.
func (p Plain) Source() string {
	return p.source
}

// Text returns the section's content.
func (p Plain) Text() string {
	return p.text
}

// Func adapts a function into a Section. The function is invoked each
// time the text is requested, so it can produce dynamic content.
type Func struct {
	source string
	fn     func() string
}

// NewFunc creates a section whose text is produced by fn.
func NewFunc(source string, fn func() string) Func {
	return Func{source: source, fn: fn}
}

// Source returns the section's provenance tag.
func (f Func) Source() string {
	return f.source
}

// Text invokes the underlying function. A nil function yields empty text.
func (f Func) Text() string {
	if f.fn == nil {
		return ""
	}
	return f.fn()
}

// File is a section whose text is read from disk on demand.
// The file path doubles as the source tag.
type File struct {
	path string
}

// NewFile creates a section backed by the file at path.
func NewFile(path string) File {
	return File{path: path}
}

// Source returns the file path.
func (f File) Source() string {
	return f.path
}

// Text reads the file. Missing or unreadable files yield empty text,
// which the builder treats as a free no-op.
func (f File) Text() string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}
	return string(data)
}
