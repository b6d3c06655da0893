package template

import (
	"errors"
	"reflect"
	"testing"
)

func TestRender_Variables(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]any
		want     string
	}{
		{
			name:     "simple variable",
			template: "Hello, {{name}}!",
			vars:     map[string]any{"name": "World"},
			want:     "Hello, World!",
		},
		{
			name:     "multiple variables",
			template: "{{greeting}}, {{name}}!",
			vars:     map[string]any{"greeting": "Hi", "name": "Go"},
			want:     "Hi, Go!",
		},
		{
			name:     "conditional true",
			template: "{{#if urgent}}URGENT: {{/if}}{{title}}",
			vars:     map[string]any{"urgent": true, "title": "Review"},
			want:     "URGENT: Review",
		},
		{
			name:     "conditional false",
			template: "{{#if urgent}}URGENT: {{/if}}{{title}}",
			vars:     map[string]any{"urgent": false, "title": "Review"},
			want:     "Review",
		},
		{
			name:     "iteration",
			template: "{{#each items}}{{.}} {{/each}}",
			vars:     map[string]any{"items": []string{"a", "b", "c"}},
			want:     "a b c ",
		},
		{
			name:     "go template syntax passes through",
			template: "Hello, {{.name}}!",
			vars:     map[string]any{"name": "World"},
			want:     "Hello, World!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine()
			got, err := engine.Render(tt.template, tt.vars)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_HelperFunctions(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]any
		want     string
	}{
		{
			name:     "upper",
			template: "{{upper name}}",
			vars:     map[string]any{"name": "go"},
			want:     "GO",
		},
		{
			name:     "truncate with literal length",
			template: "{{truncate description 8}}",
			vars:     map[string]any{"description": "a very long description"},
			want:     "a ver...",
		},
		{
			name:     "trim",
			template: "{{trim padded}}",
			vars:     map[string]any{"padded": "  spaced  "},
			want:     "spaced",
		},
		{
			name:     "default with empty string",
			template: "{{default name \"anonymous\"}}",
			vars:     map[string]any{"name": ""},
			want:     "anonymous",
		},
		{
			name:     "indent",
			template: "{{indent body 2}}",
			vars:     map[string]any{"body": "a\nb"},
			want:     "  a\n  b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine()
			got, err := engine.Render(tt.template, tt.vars)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Empty(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Render("", nil)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("Render(\"\") error = %v, want ErrEmpty", err)
	}
}

func TestRender_ParseError(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Render("{{if}}", nil)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Render() error = %v, want ErrParse", err)
	}
}

func TestAddFunc(t *testing.T) {
	engine := NewEngine()
	engine.AddFunc("double", func(s string) string { return s + s })

	got, err := engine.Render("{{double .word}}", map[string]any{"word": "ha"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "haha" {
		t.Errorf("Render() = %q, want %q", got, "haha")
	}
}

func TestParse_ExtractsVariables(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{
			name:     "simple variables",
			template: "{{greeting}}, {{name}}!",
			want:     []string{"greeting", "name"},
		},
		{
			name:     "deduplicated",
			template: "{{name}} and {{name}} again",
			want:     []string{"name"},
		},
		{
			name:     "control structures",
			template: "{{#if flag}}{{#each rows}}{{.}}{{/each}}{{/if}}",
			want:     []string{"flag", "rows"},
		},
		{
			name:     "helper arguments",
			template: "{{truncate description 100}}",
			want:     []string{"description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine()
			got, err := engine.Parse(tt.template)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateVariables(t *testing.T) {
	provided := map[string]any{"name": "x"}

	if err := ValidateVariables([]string{"name"}, provided); err != nil {
		t.Errorf("ValidateVariables() error = %v, want nil", err)
	}

	err := ValidateVariables([]string{"name", "missing"}, provided)
	if !errors.Is(err, ErrVariable) {
		t.Fatalf("ValidateVariables() error = %v, want ErrVariable", err)
	}
}
