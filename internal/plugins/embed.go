package plugins

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/pkgsmith-labs/pkgsmith/internal/fsutil"
	"github.com/pkgsmith-labs/pkgsmith/internal/render"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// renderToFile renders the named embedded template against view and writes
// the result to dir/relPath.
func renderToFile(name, dir, relPath string, view render.View) error {
	raw, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	content, err := render.Render(string(raw), view)
	if err != nil {
		return fmt.Errorf("rendering template %s: %w", name, err)
	}

	if _, err := fsutil.WriteFile(filepath.Join(dir, filepath.FromSlash(relPath)), content); err != nil {
		return err
	}
	return nil
}

// renderLines renders each badge template line against view.
func renderLines(lines []string, view render.View) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered, err := render.Render(line, view)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}
