package builder

import (
	"github.com/randalmurphal/promptbuild/extract"
	"github.com/randalmurphal/promptbuild/prompt"
	"github.com/randalmurphal/promptbuild/section"
	"github.com/randalmurphal/promptbuild/tokens"
)

// Builder accumulates sections into a prompt under a character budget.
// Each Add decides whether the section fits whole, fits after extraction,
// or is rejected. The invariant 0 <= Len() <= MaxLength() holds after
// every operation.
//
// A Builder is not safe for concurrent use; callers needing that must
// serialize access externally.
type Builder struct {
	maxLen    int
	curLen    int
	extractor extract.Extractor
	prompt    *prompt.Prompt
}

// Option configures a Builder.
type Option func(*Builder)

// WithExtractor sets the extraction strategy used when a section does
// not fit whole in the remaining budget. Without one, oversized sections
// are rejected outright.
func WithExtractor(fn extract.Extractor) Option {
	return func(b *Builder) {
		b.extractor = fn
	}
}

// New creates a builder with the given character budget. The budget is
// not validated; a negative value simply means no non-empty section
// will ever fit.
func New(maxLength int, opts ...Option) *Builder {
	b := &Builder{
		maxLen: maxLength,
		prompt: prompt.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewForModel creates a builder whose character budget is derived from
// the named model's context window.
func NewForModel(model string, opts ...Option) *Builder {
	return New(tokens.CharBudget(model), opts...)
}

// Add offers a section to the builder. It returns true if the section
// was accepted, whole or after extraction, and false if it was rejected
// for capacity. Rejection is a normal outcome, not an error; the only
// error is a nil section.
//
// Sections with empty text are always accepted for free: nothing is
// appended and the committed length does not move.
func (b *Builder) Add(s section.Section) (bool, error) {
	if s == nil {
		return false, ErrNilSection
	}

	text := s.Text()
	if text == "" {
		return true, nil
	}

	length := tokens.CountChars(text)
	available := b.maxLen - b.curLen

	if length <= available {
		b.prompt.Append(s)
		b.curLen += length
		return true, nil
	}

	if b.extractor != nil {
		extracted := b.extractor(text, available)
		b.prompt.AppendText(s.Source(), extracted)
		b.curLen += tokens.CountChars(extracted)
		return true, nil
	}

	return false, nil
}

// AddText offers raw text as an anonymous section.
func (b *Builder) AddText(text string) (bool, error) {
	return b.Add(section.NewText(text))
}

// AddAll offers each section in order, stopping at the first rejection.
// Sections accepted before the rejection stay committed; there is no
// rollback, and later sections are never queried. It returns true only
// if every section was accepted.
func (b *Builder) AddAll(sections []section.Section) (bool, error) {
	if sections == nil {
		return false, ErrNilSections
	}
	for _, s := range sections {
		ok, err := b.Add(s)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Clear empties the prompt and resets the committed length to zero.
func (b *Builder) Clear() {
	b.prompt.Clear()
	b.curLen = 0
}

// SetMaxLength updates the character budget. Shrinking below the length
// already committed is rejected and leaves the budget unchanged.
func (b *Builder) SetMaxLength(n int) error {
	if n < b.curLen {
		return ErrShrinkBelowCommitted
	}
	b.maxLen = n
	return nil
}

// Rotate left-rotates a contiguous sub-range of the prompt's sections
// by one position. Reordering never changes total length, so the
// committed length is untouched.
func (b *Builder) Rotate(start, count int) error {
	return b.prompt.Rotate(start, count)
}

// Len returns the number of characters committed to the prompt.
func (b *Builder) Len() int {
	return b.curLen
}

// MaxLength returns the current character budget.
func (b *Builder) MaxLength() int {
	return b.maxLen
}

// Remaining returns the characters still available before the budget
// is exhausted.
func (b *Builder) Remaining() int {
	return b.maxLen - b.curLen
}

// Prompt returns the prompt the builder assembles into. The prompt is
// owned by the builder; callers must not mutate it directly.
func (b *Builder) Prompt() *prompt.Prompt {
	return b.prompt
}
