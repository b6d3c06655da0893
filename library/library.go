package library

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/promptbuild/section"
)

// Entry is one section file loaded from a library directory. The file
// format is YAML frontmatter between --- delimiters followed by the
// section body:
//
//	---
//	source: guidelines
//	weight: 10
//	---
//	Always answer in complete sentences.
type Entry struct {
	// Frontmatter fields
	Source  string `yaml:"source"`
	Weight  int    `yaml:"weight,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"`

	// Body is the markdown content after the frontmatter.
	Body string `yaml:"-"`

	// Path is the file the entry was loaded from.
	Path string `yaml:"-"`
}

// enabled reports whether the entry participates in assembly.
// Entries are enabled unless the frontmatter says otherwise.
func (e *Entry) enabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// Section returns the entry as a prompt section.
func (e *Entry) Section() section.Section {
	return section.New(e.Source, e.Body)
}

// Library is a directory of section files.
type Library struct {
	dir     string
	entries []*Entry
}

// Load reads all .md files in dir, parses their frontmatter, drops
// disabled entries, and orders the rest by weight then filename.
func Load(dir string) (*Library, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("list library dir: %w", err)
	}
	sort.Strings(files)

	lib := &Library{dir: dir}
	for _, path := range files {
		entry, err := ParseEntry(path)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
		if !entry.enabled() {
			continue
		}
		lib.entries = append(lib.entries, entry)
	}

	sort.SliceStable(lib.entries, func(i, j int) bool {
		return lib.entries[i].Weight < lib.entries[j].Weight
	})
	return lib, nil
}

// Dir returns the directory the library was loaded from.
func (l *Library) Dir() string {
	return l.dir
}

// Entries returns the loaded entries in assembly order.
func (l *Library) Entries() []*Entry {
	return l.entries
}

// Sections returns the entries as prompt sections in assembly order,
// ready for builder.AddAll.
func (l *Library) Sections() []section.Section {
	sections := make([]section.Section, len(l.entries))
	for i, e := range l.entries {
		sections[i] = e.Section()
	}
	return sections
}

// ParseEntry reads and parses a single section file.
func ParseEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read section file: %w", err)
	}
	entry, err := parseEntryContent(data)
	if err != nil {
		return nil, err
	}
	entry.Path = path
	if entry.Source == "" {
		entry.Source = strings.TrimSuffix(filepath.Base(path), ".md")
	}
	return entry, nil
}

// parseEntryContent splits YAML frontmatter from the section body.
// Files without a frontmatter block are treated as body-only entries.
func parseEntryContent(data []byte) (*Entry, error) {
	entry := &Entry{}

	if !bytes.HasPrefix(data, []byte("---")) {
		entry.Body = strings.TrimSpace(string(data))
		return entry, nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	var frontmatterLines []string
	var bodyLines []string
	inFrontmatter := false
	foundEnd := false

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 && line == "---" {
			inFrontmatter = true
			continue
		}
		if inFrontmatter && line == "---" {
			inFrontmatter = false
			foundEnd = true
			continue
		}
		if inFrontmatter {
			frontmatterLines = append(frontmatterLines, line)
		} else if foundEnd {
			bodyLines = append(bodyLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan content: %w", err)
	}
	if !foundEnd {
		return nil, errors.New("frontmatter not closed (missing ---)")
	}

	frontmatter := strings.Join(frontmatterLines, "\n")
	if err := yaml.Unmarshal([]byte(frontmatter), entry); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	entry.Body = strings.TrimSpace(strings.Join(bodyLines, "\n"))
	return entry, nil
}
