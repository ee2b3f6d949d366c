package scaffold

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkgsmith-labs/pkgsmith/internal/fsutil"
	"github.com/pkgsmith-labs/pkgsmith/internal/license"
	"github.com/pkgsmith-labs/pkgsmith/internal/render"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// gitignoreSeed is always the first ignore pattern.
const gitignoreSeed = ".DS_Store"

// Generator produces one artifact kind under dir for package pkg and
// returns the relative paths it created.
type Generator func(dir, pkg string, t *Template) ([]string, error)

// GenerateAll runs every generator in the fixed order — entrypoint, tests,
// manifest, README, ignore file, license, then plugin files in set
// insertion order — and concatenates the created paths.
func GenerateAll(dir, pkg string, t *Template) ([]string, error) {
	generators := []Generator{
		Entrypoint,
		Tests,
		Manifest,
		Readme,
		Gitignore,
		License,
	}

	var files []string
	for _, gen := range generators {
		created, err := gen(dir, pkg, t)
		if err != nil {
			return nil, err
		}
		files = append(files, created...)
	}

	view, err := t.DefaultView(pkg)
	if err != nil {
		return nil, err
	}
	for _, p := range t.Plugins.Plugins() {
		created, err := p.GenerateFiles(dir, pkg, view)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Kind(), err)
		}
		files = append(files, created...)
	}

	return files, nil
}

// Entrypoint writes the module stub at src/<pkg>.jl. The body is empty;
// a __precompile__() directive is included when the template requests it.
func Entrypoint(dir, pkg string, t *Template) ([]string, error) {
	view, err := t.DefaultView(pkg)
	if err != nil {
		return nil, err
	}
	view = render.Merge(view, render.View{"Precompile": t.Precompile})

	if err := renderToFile("module.jl.tmpl", dir, filepath.Join("src", pkg+".jl"), view); err != nil {
		return nil, err
	}
	return []string{"src/"}, nil
}

// Tests writes test/runtests.jl with a single failing placeholder
// assertion, signaling that real tests are still to be written.
func Tests(dir, pkg string, t *Template) ([]string, error) {
	view, err := t.DefaultView(pkg)
	if err != nil {
		return nil, err
	}

	if err := renderToFile("runtests.jl.tmpl", dir, filepath.Join("test", "runtests.jl"), view); err != nil {
		return nil, err
	}
	return []string{"test/"}, nil
}

// Manifest writes the REQUIRE file: the floored platform version on the
// first line, then the requirement strings in the order supplied.
func Manifest(dir, pkg string, t *Template) ([]string, error) {
	floored, err := Floor(t.JuliaVersion)
	if err != nil {
		return nil, err
	}

	lines := append([]string{"julia " + floored}, t.Requires...)
	if _, err := fsutil.WriteFile(filepath.Join(dir, "REQUIRE"), strings.Join(lines, "\n")); err != nil {
		return nil, err
	}
	return []string{"REQUIRE"}, nil
}

// Readme writes README.md: a "# <pkg>" heading followed by one
// blank-line-separated block of badge lines per active plugin, in
// canonical badge order.
func Readme(dir, pkg string, t *Template) ([]string, error) {
	view, err := t.DefaultView(pkg)
	if err != nil {
		return nil, err
	}

	blocks := []string{"# " + pkg}
	for _, p := range t.Plugins.BadgeOrder() {
		lines, err := p.Badges(pkg, view)
		if err != nil {
			return nil, fmt.Errorf("plugin %s badges: %w", p.Kind(), err)
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}

	if _, err := fsutil.WriteFile(filepath.Join(dir, "README.md"), strings.Join(blocks, "\n\n")); err != nil {
		return nil, err
	}
	return []string{"README.md"}, nil
}

// Gitignore writes .gitignore: the fixed seed pattern first, then every
// pattern contributed by the active plugins, first-seen order, no
// duplicates.
func Gitignore(dir, pkg string, t *Template) ([]string, error) {
	patterns := []string{gitignoreSeed}
	seen := map[string]bool{gitignoreSeed: true}

	for _, p := range t.Plugins.Plugins() {
		for _, pattern := range p.GitignorePatterns() {
			if seen[pattern] {
				continue
			}
			seen[pattern] = true
			patterns = append(patterns, pattern)
		}
	}

	if _, err := fsutil.WriteFile(filepath.Join(dir, ".gitignore"), strings.Join(patterns, "\n")); err != nil {
		return nil, err
	}
	return []string{".gitignore"}, nil
}

// License writes LICENSE from the template's license identifier, with a
// copyright line built from the years and authors prepended. An empty
// identifier generates nothing.
func License(dir, pkg string, t *Template) ([]string, error) {
	if t.License == "" {
		return nil, nil
	}

	body, err := license.Resolve(t.License)
	if err != nil {
		return nil, err
	}

	header := fmt.Sprintf("Copyright (c) %s: %s.", t.Years, strings.Join(t.Authors, ", "))
	if _, err := fsutil.WriteFile(filepath.Join(dir, "LICENSE"), header+"\n\n"+body); err != nil {
		return nil, err
	}
	return []string{"LICENSE"}, nil
}

func renderToFile(name, dir, relPath string, view render.View) error {
	raw, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	content, err := render.Render(string(raw), view)
	if err != nil {
		return fmt.Errorf("rendering template %s: %w", name, err)
	}

	if _, err := fsutil.WriteFile(filepath.Join(dir, relPath), content); err != nil {
		return err
	}
	return nil
}
