package extract

import (
	"strings"
	"unicode/utf8"
)

// Boundary shortens text to at most maxLen characters, preferring to cut
// at a sentence boundary, then a word boundary, before falling back to a
// hard cut with an ellipsis. The search window is the second half of the
// budget, so a boundary is only used when it keeps most of the allowance.
func Boundary(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	cut := maxLen - 3 // reserve for "..."
	if cut <= 0 {
		return string(runes[:maxLen])
	}

	// Sentence boundary (. ! ?) keeps the terminator, no ellipsis.
	for i := cut; i > maxLen/2; i-- {
		switch runes[i] {
		case '.', '!', '?':
			return string(runes[:i+1])
		}
	}

	// Word boundary.
	for i := cut; i > maxLen/2; i-- {
		if runes[i] == ' ' || runes[i] == '\n' {
			return string(runes[:i]) + "..."
		}
	}

	return string(runes[:cut]) + "..."
}

// Lines shortens text to at most maxLines lines, appending an ellipsis
// line when content was removed.
func Lines(text string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	return strings.Join(lines[:maxLines], "\n") + "\n..."
}
