package rules

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Ayoub-D1/downloads-organizer/internal/util"
)

// DefaultFallback is the category for files whose extension has no
// table entry, including files with no extension at all.
const DefaultFallback = "misc"

// Table maps file extensions to category names. It is immutable after
// construction; classification is a pure lookup with no I/O.
type Table struct {
	byExt    map[string]string
	fallback string
}

// Category groups a set of extensions under one subdirectory name.
type Category struct {
	Name       string
	Extensions []string
}

// New builds a table from an ordered category list. Extensions are
// normalized to lowercase with a leading dot. When an extension is
// listed under more than one category, the category listed last wins.
// An empty fallback defaults to [DefaultFallback].
func New(categories []Category, fallback string) *Table {
	if fallback == "" {
		fallback = DefaultFallback
	}
	t := &Table{
		byExt:    make(map[string]string),
		fallback: fallback,
	}

	for _, category := range categories {
		for _, ext := range category.Extensions {
			if ext = util.NormalizeExt(ext); ext != "" {
				t.byExt[ext] = category.Name
			}
		}
	}

	return t
}

// Classify returns the category for filename. The extension is matched
// case-insensitively; unknown and missing extensions classify to the
// fallback category.
func (t *Table) Classify(filename string) string {
	_, ext := util.SplitExt(filename)
	if category, ok := t.byExt[util.NormalizeExt(ext)]; ok {
		return category
	}
	return t.fallback
}

// Lookup returns the category for an extension and whether the table
// contains it.
func (t *Table) Lookup(ext string) (string, bool) {
	category, ok := t.byExt[util.NormalizeExt(ext)]
	return category, ok
}

// Fallback returns the fallback category name.
func (t *Table) Fallback() string {
	return t.fallback
}

// Categories returns the distinct category names in the table, sorted,
// with the fallback last.
func (t *Table) Categories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, category := range t.byExt {
		if !seen[category] {
			seen[category] = true
			names = append(names, category)
		}
	}
	sort.Strings(names)
	if !seen[t.fallback] {
		names = append(names, t.fallback)
	}
	return names
}

// Extensions returns the extensions mapped to category, sorted.
func (t *Table) Extensions(category string) []string {
	var exts []string
	for ext, c := range t.byExt {
		if c == category {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

type rulesFile struct {
	Fallback   string    `yaml:"fallback"`
	Categories yaml.Node `yaml:"categories"`
}

// Load reads a YAML rules file and returns the table it defines. The
// file replaces the built-in table entirely. Categories are applied in
// document order, so a duplicate extension resolves to the category
// listed last.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML rules file contents.
func Parse(data []byte) (*Table, error) {
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	if rf.Categories.Kind == 0 {
		return nil, fmt.Errorf("rules file defines no categories")
	}
	if rf.Categories.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rules file: 'categories' must be a mapping")
	}

	// Mapping nodes store keys and values interleaved; walking the
	// pairs preserves document order.
	var categories []Category
	for i := 0; i+1 < len(rf.Categories.Content); i += 2 {
		key := rf.Categories.Content[i]
		val := rf.Categories.Content[i+1]

		if key.Value == "" {
			return nil, fmt.Errorf("rules file: empty category name")
		}
		var exts []string
		if err := val.Decode(&exts); err != nil {
			return nil, fmt.Errorf("rules file: category '%s': %w", key.Value, err)
		}
		categories = append(categories, Category{Name: key.Value, Extensions: exts})
	}

	t := New(categories, rf.Fallback)
	if len(t.byExt) == 0 {
		return nil, fmt.Errorf("rules file defines no extensions")
	}

	return t, nil
}
