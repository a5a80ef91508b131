package style

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry is a named theme lookup. Lookups never fail: unknown names fall
// back to the default preset, keeping rendering total.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry returns a registry seeded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Theme)}
	for _, t := range []Theme{architectural, minimal, blueprint, presentation} {
		r.themes[t.Name] = t
	}
	return r
}

// Get resolves a theme by name, falling back to the default preset for
// unknown or empty names. Calling on a nil registry also works.
func (r *Registry) Get(name string) Theme {
	if r == nil {
		return Default()
	}
	if t, ok := r.themes[name]; ok {
		return t
	}
	return Default()
}

// Add registers a theme, overlaying default values under unset fields.
// Themes without a name are ignored.
func (r *Registry) Add(t Theme) {
	if t.Name == "" {
		return
	}
	fillDefaults(&t)
	r.themes[t.Name] = t
}

// Names returns the registered theme names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// themeFile is the YAML document shape for preset files.
type themeFile struct {
	Themes []Theme `yaml:"themes"`
}

// Load parses YAML theme presets and registers them over the built-ins.
func (r *Registry) Load(data []byte) error {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse theme presets: %w", err)
	}
	for _, t := range file.Themes {
		r.Add(t)
	}
	return nil
}

// LoadFile reads a YAML preset file and registers its themes.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read theme presets: %w", err)
	}
	return r.Load(data)
}
