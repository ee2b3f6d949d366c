package plugins

import "github.com/pkgsmith-labs/pkgsmith/internal/render"

// AppVeyorCI generates an appveyor.yml Windows build and its status badge.
type AppVeyorCI struct {
	Base
}

func (*AppVeyorCI) Kind() Kind { return AppVeyor }

func (*AppVeyorCI) GenerateFiles(dir, pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	if err := renderToFile("appveyor.yml.tmpl", dir, "appveyor.yml", view); err != nil {
		return nil, err
	}
	return []string{"appveyor.yml"}, nil
}

func (*AppVeyorCI) Badges(pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	return renderLines([]string{
		"[![Build status](https://ci.appveyor.com/api/projects/status/github/{{.User}}/{{.Pkg}}.jl?svg=true)](https://ci.appveyor.com/project/{{.User}}/{{.Pkg}}-jl)",
	}, view)
}
