package profile

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pkgsmith-labs/pkgsmith/internal/plugins"
	"github.com/pkgsmith-labs/pkgsmith/internal/scaffold"
)

// Load reads, validates, and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating profile %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("profile %s is invalid:\n%s", path, result.Format())
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return &p, nil
}

// Template converts the profile into a generation template, instantiating
// the listed plugins. Unset optional fields keep the template's zero
// values so callers can layer their own defaults first.
func (p *Profile) Template() (*scaffold.Template, error) {
	set := plugins.NewSet()
	for _, name := range p.Plugins {
		kind, ok := plugins.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown plugin %q (known: %v)", name, plugins.AllKinds())
		}
		plugin, err := plugins.New(kind)
		if err != nil {
			return nil, err
		}
		if err := set.Add(plugin); err != nil {
			return nil, err
		}
	}

	t := &scaffold.Template{
		Dir:          p.Dir,
		Host:         p.Host,
		User:         p.User,
		License:      p.License,
		Years:        p.Years,
		Authors:      p.Authors,
		JuliaVersion: p.Julia,
		Requires:     p.Requires,
		GitConfig:    p.GitConfig,
		Plugins:      set,
	}
	if p.Precompile != nil {
		t.Precompile = *p.Precompile
	}
	return t, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
