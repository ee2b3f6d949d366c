package plugins

import "github.com/pkgsmith-labs/pkgsmith/internal/render"

// docsPatterns are the ignore patterns for Documenter build output.
var docsPatterns = []string{"docs/build/", "docs/site/"}

// DocumenterDocs scaffolds a Documenter.jl docs tree deployed from CI.
type DocumenterDocs struct {
	Base
}

func (*DocumenterDocs) Kind() Kind { return Documenter }

func (*DocumenterDocs) GenerateFiles(dir, pkg string, view render.View) ([]string, error) {
	return generateDocsTree(dir, pkg, view)
}

func (*DocumenterDocs) Badges(pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	return renderLines([]string{
		"[![](https://img.shields.io/badge/docs-stable-blue.svg)](https://{{.User}}.github.io/{{.Pkg}}.jl/stable)",
		"[![](https://img.shields.io/badge/docs-latest-blue.svg)](https://{{.User}}.github.io/{{.Pkg}}.jl/latest)",
	}, view)
}

func (*DocumenterDocs) GitignorePatterns() []string { return docsPatterns }

// Pages scaffolds the same docs tree but publishes it through a dedicated
// gh-pages branch; its presence makes repository setup create that branch.
type Pages struct {
	Base
}

func (*Pages) Kind() Kind { return GitHubPages }

func (*Pages) GenerateFiles(dir, pkg string, view render.View) ([]string, error) {
	return generateDocsTree(dir, pkg, view)
}

func (*Pages) Badges(pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	return renderLines([]string{
		"[![](https://img.shields.io/badge/docs-latest-blue.svg)](https://{{.User}}.github.io/{{.Pkg}}.jl)",
	}, view)
}

func (*Pages) GitignorePatterns() []string { return docsPatterns }

func generateDocsTree(dir, pkg string, view render.View) ([]string, error) {
	view = render.Merge(view, render.View{"Pkg": pkg})
	if err := renderToFile("docs-make.jl.tmpl", dir, "docs/make.jl", view); err != nil {
		return nil, err
	}
	if err := renderToFile("docs-index.md.tmpl", dir, "docs/src/index.md", view); err != nil {
		return nil, err
	}
	return []string{"docs/"}, nil
}
