package template

import (
	"strings"
	"text/template"
	"unicode/utf8"
)

// defaultFuncs returns the built-in helper functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": truncate,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trim":     strings.TrimSpace,
		"join":     strings.Join,
		"default":  defaultValue,
		"indent":   indent,
	}
}

// truncate cuts a string to at most maxLen characters, appending an
// ellipsis when content was removed. For maxLen <= 3 the string is
// simply cut.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// defaultValue returns the fallback if the value is nil or an empty
// string; other values, including zero numbers, pass through.
func defaultValue(val, fallback any) any {
	if val == nil {
		return fallback
	}
	if s, ok := val.(string); ok && s == "" {
		return fallback
	}
	return val
}

// indent prefixes each line of the input with the given number of spaces.
func indent(s string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
