package plugins

import "github.com/pkgsmith-labs/pkgsmith/internal/render"

// coveragePatterns are the ignore patterns shared by the coverage plugins.
var coveragePatterns = []string{"*.jl.cov", "*.jl.*.cov", "*.jl.mem"}

// CoverallsCoverage contributes a Coveralls badge and coverage ignore
// patterns. The upload step itself lives in the CI configuration.
type CoverallsCoverage struct {
	Base
}

func (*CoverallsCoverage) Kind() Kind { return Coveralls }

func (*CoverallsCoverage) Badges(pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	return renderLines([]string{
		"[![Coverage Status](https://coveralls.io/repos/{{.User}}/{{.Pkg}}.jl/badge.svg?branch=master)](https://coveralls.io/r/{{.User}}/{{.Pkg}}.jl?branch=master)",
	}, view)
}

func (*CoverallsCoverage) GitignorePatterns() []string { return coveragePatterns }

// CodecovCoverage contributes a Codecov badge and coverage ignore patterns.
type CodecovCoverage struct {
	Base
}

func (*CodecovCoverage) Kind() Kind { return Codecov }

func (*CodecovCoverage) Badges(pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	return renderLines([]string{
		"[![codecov.io](https://codecov.io/github/{{.User}}/{{.Pkg}}.jl/coverage.svg?branch=master)](https://codecov.io/github/{{.User}}/{{.Pkg}}.jl?branch=master)",
	}, view)
}

func (*CodecovCoverage) GitignorePatterns() []string { return coveragePatterns }
