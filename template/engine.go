// Package template provides prompt template rendering with variable substitution.
package template

import (
	"fmt"
	"strings"
	"text/template"
)

// Engine renders prompt templates with variable substitution. Templates
// use a simplified Handlebars-like syntax ({{variable}}) which is
// converted to Go template syntax before execution; Go template syntax
// also works directly.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates an engine with the default helper functions.
func NewEngine() *Engine {
	return &Engine{funcs: defaultFuncs()}
}

// Render executes the template with the given variables.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	tmpl, err := template.New("section").Funcs(e.funcs).Parse(convertSyntax(templateStr))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, err)
	}
	return buf.String(), nil
}

// Parse validates the template and returns the variable names it
// references, deduplicated in order of first appearance.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if templateStr == "" {
		return nil, ErrEmpty
	}
	if _, err := template.New("section").Funcs(e.funcs).Parse(convertSyntax(templateStr)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return extractVariables(templateStr), nil
}

// AddFunc registers a custom helper function under the given name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// ValidateVariables checks that every required variable is provided.
// The first missing variable is reported wrapping ErrVariable.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
