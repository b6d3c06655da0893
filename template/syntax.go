package template

import (
	"regexp"
	"strings"
)

// helperNames lists the built-in helper function names for argument
// conversion. Custom funcs registered with AddFunc must use Go template
// syntax directly.
var helperNames = []string{
	"truncate", "upper", "lower", "trim", "join", "default", "indent",
}

// goTemplateKeywords are Go template reserved words that must not be
// rewritten as variable references.
var goTemplateKeywords = map[string]bool{
	"else":     true,
	"end":      true,
	"if":       true,
	"range":    true,
	"with":     true,
	"define":   true,
	"template": true,
	"block":    true,
}

var (
	ifPattern      = regexp.MustCompile(`\{\{#if\s+(\w+)\}\}`)
	eachPattern    = regexp.MustCompile(`\{\{#each\s+(\w+)\}\}`)
	varPattern     = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\}\}`)
	controlPattern = regexp.MustCompile(`\{\{#(?:if|each)\s+([a-zA-Z_]\w*)\}\}`)
	helperArgs     = regexp.MustCompile(`\{\{(\w+)((?:\s+[^{}\s]+)+)\}\}`)
)

// convertSyntax rewrites Handlebars-like syntax into Go template syntax:
//
//   - {{variable}}                -> {{.variable}}
//   - {{#if x}}...{{/if}}         -> {{if .x}}...{{end}}
//   - {{#each items}}...{{/each}} -> {{range .items}}...{{end}}
//   - {{upper name}}              -> {{upper .name}}
func convertSyntax(input string) string {
	result := ifPattern.ReplaceAllString(input, "{{if .$1}}")
	result = strings.ReplaceAll(result, "{{/if}}", "{{end}}")
	result = eachPattern.ReplaceAllString(result, "{{range .$1}}")
	result = strings.ReplaceAll(result, "{{/each}}", "{{end}}")

	result = varPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := match[2 : len(match)-2]
		if goTemplateKeywords[name] {
			return match
		}
		return "{{." + name + "}}"
	})

	return helperArgs.ReplaceAllStringFunc(result, convertHelperCall)
}

// convertHelperCall rewrites the arguments of a built-in helper call,
// dot-prefixing bare identifiers while leaving literals untouched.
func convertHelperCall(match string) string {
	inner := strings.TrimSpace(match[2 : len(match)-2])
	fields := strings.Fields(inner)
	if len(fields) < 2 || !isHelper(fields[0]) {
		return match
	}
	for i, arg := range fields[1:] {
		if isBareIdentifier(arg) {
			fields[i+1] = "." + arg
		}
	}
	return "{{" + strings.Join(fields, " ") + "}}"
}

func isHelper(name string) bool {
	for _, h := range helperNames {
		if h == name {
			return true
		}
	}
	return false
}

// isBareIdentifier reports whether arg is a variable name rather than a
// literal (number, quoted string, boolean) or an existing Go template
// expression.
func isBareIdentifier(arg string) bool {
	if arg == "" || arg == "true" || arg == "false" {
		return false
	}
	if strings.HasPrefix(arg, ".") || strings.HasPrefix(arg, `"`) || strings.HasPrefix(arg, "'") {
		return false
	}
	for i, ch := range arg {
		if ch >= '0' && ch <= '9' {
			if i == 0 {
				return false // number literal
			}
			continue
		}
		isLetter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		if !isLetter && ch != '_' {
			return false
		}
	}
	return true
}

// extractVariables returns the variable names a template references,
// deduplicated in order of first appearance.
func extractVariables(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if !seen[name] && !goTemplateKeywords[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, m := range varPattern.FindAllStringSubmatch(templateStr, -1) {
		add(m[1])
	}
	for _, m := range controlPattern.FindAllStringSubmatch(templateStr, -1) {
		add(m[1])
	}
	for _, m := range helperArgs.FindAllStringSubmatch(templateStr, -1) {
		if !isHelper(m[1]) {
			continue
		}
		for _, arg := range strings.Fields(m[2]) {
			if isBareIdentifier(arg) {
				add(arg)
			}
		}
	}
	return result
}
