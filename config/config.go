package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/promptbuild/builder"
	"github.com/randalmurphal/promptbuild/extract"
	"github.com/randalmurphal/promptbuild/section"
)

// Sentinel errors for pipeline configuration.
var (
	// ErrNoBudget indicates neither max_length nor model was set.
	ErrNoBudget = errors.New("pipeline needs max_length or model")

	// ErrUnknownExtractor indicates an unrecognized extractor name.
	ErrUnknownExtractor = errors.New("unknown extractor")

	// ErrBadSection indicates a section spec with zero or multiple
	// content fields.
	ErrBadSection = errors.New("section needs exactly one of text, file, template")

	// ErrUnknownFormat indicates a config file extension that is not
	// yaml, toml, or json.
	ErrUnknownFormat = errors.New("unknown config format")
)

// Extractor names accepted in pipeline files.
const (
	ExtractorNone     = "none"
	ExtractorPrefix   = "prefix"
	ExtractorEnd      = "end"
	ExtractorStart    = "start"
	ExtractorMiddle   = "middle"
	ExtractorBoundary = "boundary"
)

// Pipeline declares a builder setup: a character budget, an extraction
// strategy, and the sections to assemble, in order.
type Pipeline struct {
	// MaxLength is the character budget. Ignored when Model is set.
	MaxLength int `json:"max_length,omitempty" yaml:"max_length,omitempty" toml:"max_length,omitempty"`

	// Model derives the character budget from a model's context window.
	Model string `json:"model,omitempty" yaml:"model,omitempty" toml:"model,omitempty"`

	// Extractor selects the strategy for sections that don't fit whole:
	// "none" (reject, the default), "prefix", "end", "start", "middle",
	// or "boundary".
	Extractor string `json:"extractor,omitempty" yaml:"extractor,omitempty" toml:"extractor,omitempty"`

	// Marker overrides the truncation marker for the end, start, and
	// middle strategies.
	Marker string `json:"marker,omitempty" yaml:"marker,omitempty" toml:"marker,omitempty"`

	// Sections are assembled in order.
	Sections []SectionSpec `json:"sections" yaml:"sections" toml:"sections"`
}

// SectionSpec declares one section. Exactly one of Text, File, or
// Template must be set.
type SectionSpec struct {
	// Source is the section's provenance tag.
	Source string `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`

	// Text is inline section content.
	Text string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`

	// File reads section content from a path.
	File string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`

	// Template renders section content from a prompt template.
	Template string `json:"template,omitempty" yaml:"template,omitempty" toml:"template,omitempty"`

	// Vars are the variables for Template rendering.
	Vars map[string]any `json:"vars,omitempty" yaml:"vars,omitempty" toml:"vars,omitempty"`
}

// Load reads a pipeline file, dispatching on extension: .yaml/.yml,
// .toml, or .json.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline file: %w", err)
	}

	p := &Pipeline{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parse yaml pipeline: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parse toml pipeline: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parse json pipeline: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the pipeline for a usable budget, a known extractor
// name, and well-formed section specs.
func (p *Pipeline) Validate() error {
	if p.MaxLength == 0 && p.Model == "" {
		return ErrNoBudget
	}
	if _, err := p.extractor(); err != nil {
		return err
	}
	for i, s := range p.Sections {
		set := 0
		if s.Text != "" {
			set++
		}
		if s.File != "" {
			set++
		}
		if s.Template != "" {
			set++
		}
		if set != 1 {
			return fmt.Errorf("%w (section %d)", ErrBadSection, i)
		}
	}
	return nil
}

// Build constructs the builder and assembles the declared sections.
// The boolean reports whether every section fit.
func (p *Pipeline) Build() (*builder.Builder, bool, error) {
	if err := p.Validate(); err != nil {
		return nil, false, err
	}

	fn, err := p.extractor()
	if err != nil {
		return nil, false, err
	}

	var opts []builder.Option
	if fn != nil {
		opts = append(opts, builder.WithExtractor(fn))
	}

	var b *builder.Builder
	if p.Model != "" {
		b = builder.NewForModel(p.Model, opts...)
	} else {
		b = builder.New(p.MaxLength, opts...)
	}

	ok, err := b.AddAll(p.sections())
	if err != nil {
		return nil, false, err
	}
	return b, ok, nil
}

// extractor resolves the named extraction strategy.
func (p *Pipeline) extractor() (extract.Extractor, error) {
	switch p.Extractor {
	case "", ExtractorNone:
		return nil, nil
	case ExtractorPrefix:
		return extract.Prefix, nil
	case ExtractorEnd:
		return p.truncator(extract.NewFromEnd()), nil
	case ExtractorStart:
		return p.truncator(extract.NewFromStart()), nil
	case ExtractorMiddle:
		return p.truncator(extract.NewFromMiddle()), nil
	case ExtractorBoundary:
		return extract.Boundary, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtractor, p.Extractor)
	}
}

func (p *Pipeline) truncator(t *extract.Truncator) extract.Extractor {
	if p.Marker != "" {
		t = t.WithMarker(p.Marker)
	}
	return t.Extractor()
}

// sections materializes the section specs.
func (p *Pipeline) sections() []section.Section {
	sections := make([]section.Section, 0, len(p.Sections))
	for _, s := range p.Sections {
		switch {
		case s.File != "":
			sections = append(sections, section.NewFile(s.File))
		case s.Template != "":
			sections = append(sections, section.NewTemplate(s.Source, s.Template, s.Vars))
		default:
			sections = append(sections, section.New(s.Source, s.Text))
		}
	}
	return sections
}
