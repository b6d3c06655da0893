// Package template provides prompt template rendering with variable
// substitution.
//
// Templates use a simplified Handlebars-like syntax that is converted
// to Go template syntax before execution:
//
//	Hello, {{name}}!
//	{{#if urgent}}URGENT: {{/if}}{{title}}
//	{{#each items}}{{.}} {{/each}}
//	{{truncate description 100}}
//
// # Built-in Functions
//
//   - truncate(s string, maxLen int) string - cut to max characters with ellipsis
//   - upper(s string) string - convert to uppercase
//   - lower(s string) string - convert to lowercase
//   - trim(s string) string - remove leading/trailing whitespace
//   - join(slice []string, sep string) string - join strings with separator
//   - default(val, fallback any) any - fallback if val is nil/empty
//   - indent(s string, spaces int) string - prefix each line with spaces
//
// # Example
//
//	engine := template.NewEngine()
//	result, err := engine.Render("Hello, {{name}}!", map[string]any{"name": "World"})
//	// result: "Hello, World!"
//
// Parse extracts the variables a template references:
//
//	vars, err := engine.Parse("{{greeting}}, {{name}}!")
//	// vars: ["greeting", "name"]
//
// Custom functions are registered with AddFunc and called using Go
// template syntax (.name rather than name):
//
//	engine.AddFunc("double", func(s string) string { return s + s })
//	result, _ := engine.Render("{{double .word}}", map[string]any{"word": "ha"})
package template
