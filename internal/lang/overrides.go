package lang

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// All lists every ID the engine can name, Plain excluded.
var All = []ID{
	Go, Rust, Python, JavaScript, TypeScript, TSX,
	YAML, TOML, JSON, Bash, C, CPP, Zig,
	HTML, XML, CSS, SCSS,
}

var known = func() map[ID]bool {
	m := make(map[ID]bool, len(All)+1)
	m[Plain] = true
	for _, id := range All {
		m[id] = true
	}
	return m
}()

// Known reports whether id names a language this package defines.
func Known(id ID) bool {
	return known[id]
}

// Overrides carries user-configured detection rules, mapping extensions
// (with leading dot) and exact filenames to language IDs. They win over the
// built-in tables.
type Overrides struct {
	Extensions map[string]string `yaml:"extensions"`
	Filenames  map[string]string `yaml:"filenames"`
}

// LoadOverrides reads an override file. A missing file is not an error;
// it yields empty overrides.
func LoadOverrides(path string) (Overrides, error) {
	var o Overrides
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return o, nil
		}
		return o, fmt.Errorf("reading language overrides: %w", err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parsing language overrides %q: %w", path, err)
	}
	for ext, name := range o.Extensions {
		if !Known(ID(name)) {
			return o, fmt.Errorf("language overrides: unknown language %q for extension %q", name, ext)
		}
	}
	for file, name := range o.Filenames {
		if !Known(ID(name)) {
			return o, fmt.Errorf("language overrides: unknown language %q for filename %q", name, file)
		}
	}
	return o, nil
}

// Resolve returns the override for path, if one applies.
func (o Overrides) Resolve(path string) (ID, bool) {
	base := filepath.Base(path)
	if name, ok := o.Filenames[base]; ok {
		return ID(name), true
	}
	ext := strings.ToLower(filepath.Ext(base))
	if name, ok := o.Extensions[ext]; ok {
		return ID(name), true
	}
	return Plain, false
}
