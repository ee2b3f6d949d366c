package plugins

import "github.com/pkgsmith-labs/pkgsmith/internal/render"

// Kind identifies a supported plugin integration.
type Kind string

const (
	TravisCI    Kind = "travis"
	AppVeyor    Kind = "appveyor"
	Coveralls   Kind = "coveralls"
	Codecov     Kind = "codecov"
	Documenter  Kind = "documenter"
	GitHubPages Kind = "ghpages"
)

// Plugin contributes generated files, README badge lines, and .gitignore
// patterns for one integration. At most one plugin per kind is active in
// a Set. Embed Base to get empty defaults for capabilities a plugin does
// not provide.
type Plugin interface {
	Kind() Kind

	// GenerateFiles writes any extra files under dir and returns the
	// relative paths it created. A plugin may generate no files.
	GenerateFiles(dir, pkg string, view render.View) ([]string, error)

	// Badges returns markdown badge lines for the README.
	Badges(pkg string, view render.View) ([]string, error)

	// GitignorePatterns returns patterns to append to the ignore file.
	GitignorePatterns() []string
}

// Base provides no-op defaults for the Plugin capabilities.
type Base struct{}

func (Base) GenerateFiles(dir, pkg string, view render.View) ([]string, error) {
	return nil, nil
}

func (Base) Badges(pkg string, view render.View) ([]string, error) {
	return nil, nil
}

func (Base) GitignorePatterns() []string { return nil }
