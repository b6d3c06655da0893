package extract

import "unicode/utf8"

// Extractor shortens text to fit within maxLen characters. The result
// must never exceed maxLen characters; the builder relies on this and
// does not re-validate. maxLen may be zero, in which case the only
// valid result is the empty string.
type Extractor func(text string, maxLen int) string

// Prefix returns a whole-text prefix of exactly maxLen characters.
// It is the naive fallback strategy: no marker, no boundary awareness.
// Text already within the limit is returned unchanged.
func Prefix(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	return string([]rune(text)[:maxLen])
}
