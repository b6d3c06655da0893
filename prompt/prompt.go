package prompt

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/promptbuild/section"
)

// ErrRange is returned when a rotation range falls outside the prompt.
var ErrRange = errors.New("rotation range out of bounds")

// Prompt is an insertion-ordered collection of accepted sections.
// It is the composite artifact a builder assembles; rendering joins
// the section texts in order.
type Prompt struct {
	sections []section.Section
}

// New creates an empty prompt.
func New() *Prompt {
	return &Prompt{}
}

// Append adds a section to the end of the prompt.
func (p *Prompt) Append(s section.Section) {
	p.sections = append(p.sections, s)
}

// AppendText adds a synthesized section from a source tag and text.
// Used when a truncated replacement must keep the original's provenance.
func (p *Prompt) AppendText(source, text string) {
	p.sections = append(p.sections, section.New(source, text))
}

// Clear removes all sections.
func (p *Prompt) Clear() {
	p.sections = p.sections[:0]
}

// Len returns the number of sections.
func (p *Prompt) Len() int {
	return len(p.sections)
}

// Sections returns the accumulated sections in order.
// The returned slice is the prompt's backing store; callers must not modify it.
func (p *Prompt) Sections() []section.Section {
	return p.sections
}

// Rotate left-rotates the contiguous sub-range starting at start and
// spanning count sections by one position, so the first section of the
// range moves to its end. Rotation reorders content without changing
// total length. A count below 2 is a no-op.
func (p *Prompt) Rotate(start, count int) error {
	if start < 0 || count < 0 || start+count > len(p.sections) {
		return ErrRange
	}
	if count < 2 {
		return nil
	}
	window := p.sections[start : start+count]
	first := window[0]
	copy(window, window[1:])
	window[count-1] = first
	return nil
}

// Render joins the section texts in order using the given separator.
func (p *Prompt) Render(sep string) string {
	parts := make([]string, len(p.sections))
	for i, s := range p.sections {
		parts[i] = s.Text()
	}
	return strings.Join(parts, sep)
}

// String renders the prompt with no separator between sections.
func (p *Prompt) String() string {
	return p.Render("")
}

// TotalLen returns the summed character length of all section texts.
func (p *Prompt) TotalLen() int {
	total := 0
	for _, s := range p.sections {
		total += utf8.RuneCountInString(s.Text())
	}
	return total
}
