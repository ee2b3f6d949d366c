package scaffold

import (
	"strings"

	"github.com/pkgsmith-labs/pkgsmith/internal/plugins"
	"github.com/pkgsmith-labs/pkgsmith/internal/render"
)

// Template is the immutable descriptor for one package generation run.
// It is created once by the caller and never mutated during generation.
type Template struct {
	// Dir is the parent directory the finished package is published into.
	Dir string

	// Host and User form the remote URL (e.g. github.com / alice).
	Host string
	User string

	// License is a license identifier, or empty for no LICENSE file.
	License string

	// Years and Authors build the copyright line.
	Years   string
	Authors []string

	// JuliaVersion is the target platform version, floored into the
	// manifest (see Floor).
	JuliaVersion string

	// Precompile controls the __precompile__() directive in the
	// entrypoint.
	Precompile bool

	// Requires are dependency requirement lines, emitted in order.
	Requires []string

	// GitConfig holds key/value pairs applied to the repository's local
	// configuration (e.g. "user.name").
	GitConfig map[string]string

	// Plugins are the active integrations, at most one per kind.
	Plugins *plugins.Set
}

// NormalizeName strips a redundant ".jl" suffix from a package name.
func NormalizeName(name string) string {
	return strings.TrimSuffix(name, ".jl")
}

// DefaultView derives the substitution view for pkg from the template:
// the remote user, the floored version string, one boolean per known
// docs/coverage integration, and After, which is true when any of those
// integrations needs a post-build reporting step. Callers may override
// entries via render.Merge.
func (t *Template) DefaultView(pkg string) (render.View, error) {
	version, err := Floor(t.JuliaVersion)
	if err != nil {
		return nil, err
	}

	docs := t.Plugins.Has(plugins.Documenter) || t.Plugins.Has(plugins.GitHubPages)
	codecov := t.Plugins.Has(plugins.Codecov)
	coveralls := t.Plugins.Has(plugins.Coveralls)

	return render.View{
		"Pkg":        pkg,
		"User":       t.User,
		"Version":    version,
		"Documenter": docs,
		"Codecov":    codecov,
		"Coveralls":  coveralls,
		"After":      docs || codecov || coveralls,
	}, nil
}
