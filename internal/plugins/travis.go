package plugins

import "github.com/pkgsmith-labs/pkgsmith/internal/render"

// Travis generates a .travis.yml build matrix and a build-status badge.
type Travis struct {
	Base
}

func (*Travis) Kind() Kind { return TravisCI }

func (*Travis) GenerateFiles(dir, pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	if err := renderToFile("travis.yml.tmpl", dir, ".travis.yml", view); err != nil {
		return nil, err
	}
	return []string{".travis.yml"}, nil
}

func (*Travis) Badges(pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	return renderLines([]string{
		"[![Build Status](https://travis-ci.org/{{.User}}/{{.Pkg}}.jl.svg?branch=master)](https://travis-ci.org/{{.User}}/{{.Pkg}}.jl)",
	}, view)
}
