package tokens

import (
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// Counter measures text against a limit. Implementations may count
// exact characters or estimate tokens.
type Counter interface {
	// Count returns the measured size of the given text.
	Count(text string) int

	// Fits returns true if the text fits within the limit.
	Fits(text string, limit int) bool
}

// RuneCounter counts exact Unicode code points. This is the unit the
// builder package budgets in: raw character count, never bytes.
type RuneCounter struct{}

// Count returns the number of characters in the text.
func (RuneCounter) Count(text string) int {
	return utf8.RuneCountInString(text)
}

// Fits returns true if the text has at most limit characters.
func (c RuneCounter) Fits(text string, limit int) bool {
	return c.Count(text) <= limit
}

// EstimatingCounter estimates token counts from a character-to-token
// ratio. Useful for sizing character budgets against model context
// windows without a model-specific tokenizer.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken float64
}

// NewEstimatingCounter creates a token estimator with the default ratio.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{CharsPerToken: DefaultCharsPerToken}
}

// NewEstimatingCounterWithRatio creates a token estimator with a custom
// ratio. If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{CharsPerToken: charsPerToken}
}

// Count estimates the number of tokens in the given text, rounded to
// the nearest integer. Actual counts vary by tokenizer.
func (c *EstimatingCounter) Count(text string) int {
	runeCount := utf8.RuneCountInString(text)
	return int(float64(runeCount)/c.CharsPerToken + 0.5)
}

// Fits returns true if the estimated token count is within the limit.
func (c *EstimatingCounter) Fits(text string, limit int) bool {
	return c.Count(text) <= limit
}

// CountChars is a convenience function returning the exact character
// count of the text.
func CountChars(text string) int {
	return RuneCounter{}.Count(text)
}
