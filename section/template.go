package section

import "github.com/randalmurphal/promptbuild/template"

// Template is a section whose text is produced by rendering a prompt
// template with a set of variables. Rendering happens each time Text
// is called; render failures yield empty text.
type Template struct {
	source   string
	template string
	vars     map[string]any
	engine   *template.Engine
}

// NewTemplate creates a template-backed section. A nil engine uses a
// fresh engine with the default helper functions.
func NewTemplate(source, templateStr string, vars map[string]any) Template {
	return Template{
		source:   source,
		template: templateStr,
		vars:     vars,
		engine:   template.NewEngine(),
	}
}

// WithEngine returns a copy of the section that renders with the given engine.
func (t Template) WithEngine(engine *template.Engine) Template {
	t.engine = engine
	return t
}

// Source returns the section's provenance tag.
func (t Template) Source() string {
	return t.source
}

// Text renders the template. If rendering fails the section contributes
// nothing rather than injecting a partial or broken render into the prompt.
func (t Template) Text() string {
	engine := t.engine
	if engine == nil {
		engine = template.NewEngine()
	}
	out, err := engine.Render(t.template, t.vars)
	if err != nil {
		return ""
	}
	return out
}
