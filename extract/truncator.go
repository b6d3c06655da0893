package extract

import (
	"strings"
	"unicode/utf8"
)

// Strategy selects where a Truncator removes content.
type Strategy int

const (
	// FromEnd removes content from the end, keeping the start (default).
	FromEnd Strategy = iota

	// FromMiddle removes content from the middle, keeping start and end.
	FromMiddle

	// FromStart removes content from the start, keeping the end.
	FromStart
)

// DefaultEndMarker is the default marker for end truncation.
const DefaultEndMarker = "..."

// DefaultMiddleMarker is the default marker for middle truncation.
const DefaultMiddleMarker = "\n...[content truncated]...\n"

// DefaultStartMarker is the default marker for start truncation.
const DefaultStartMarker = "..."

// Truncator shortens text to a character budget using a configurable
// strategy, inserting a marker where content was removed. The marker
// counts toward the budget, so results never exceed the requested length.
type Truncator struct {
	strategy Strategy
	marker   string
}

// New creates a truncator with the given strategy and its default marker.
func New(strategy Strategy) *Truncator {
	marker := DefaultEndMarker
	if strategy == FromMiddle {
		marker = DefaultMiddleMarker
	}
	return &Truncator{strategy: strategy, marker: marker}
}

// NewFromEnd creates a truncator that removes content from the end.
func NewFromEnd() *Truncator {
	return New(FromEnd)
}

// NewFromMiddle creates a truncator that removes content from the middle.
func NewFromMiddle() *Truncator {
	return New(FromMiddle)
}

// NewFromStart creates a truncator that removes content from the start.
func NewFromStart() *Truncator {
	return New(FromStart)
}

// WithMarker sets a custom truncation marker.
func (t *Truncator) WithMarker(marker string) *Truncator {
	t.marker = marker
	return t
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Marker returns the truncator's marker.
func (t *Truncator) Marker() string {
	return t.marker
}

// Extract shortens text to at most maxLen characters. Text that already
// fits is returned unchanged.
func (t *Truncator) Extract(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	switch t.strategy {
	case FromMiddle:
		return t.extractMiddle(text, maxLen)
	case FromStart:
		return t.extractStart(text, maxLen)
	default:
		return t.extractEnd(text, maxLen)
	}
}

// Extractor returns the truncator bound as an Extractor function.
func (t *Truncator) Extractor() Extractor {
	return t.Extract
}

// extractEnd keeps a prefix and appends the marker.
func (t *Truncator) extractEnd(text string, maxLen int) string {
	keep := maxLen - utf8.RuneCountInString(t.marker)
	if keep <= 0 {
		return clip(t.marker, maxLen)
	}
	return string([]rune(text)[:keep]) + t.marker
}

// extractStart keeps a suffix and prepends the marker.
func (t *Truncator) extractStart(text string, maxLen int) string {
	keep := maxLen - utf8.RuneCountInString(t.marker)
	if keep <= 0 {
		return clip(t.marker, maxLen)
	}
	runes := []rune(text)
	return t.marker + string(runes[len(runes)-keep:])
}

// extractMiddle keeps both ends with the marker between them.
func (t *Truncator) extractMiddle(text string, maxLen int) string {
	keep := maxLen - utf8.RuneCountInString(t.marker)
	if keep <= 0 {
		return clip(t.marker, maxLen)
	}

	head := keep / 2
	tail := keep - head
	runes := []rune(text)

	var sb strings.Builder
	sb.WriteString(string(runes[:head]))
	sb.WriteString(t.marker)
	sb.WriteString(string(runes[len(runes)-tail:]))
	return sb.String()
}

// clip hard-truncates s to at most maxLen characters.
func clip(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
