// Package render is the text substitution service used by the generators and
// plugins. Templates use Go template syntax against a flat View. Placeholders
// absent from the view never fail the render: a conditional section on a
// missing key evaluates as false.
package render

import (
	"bytes"
	"fmt"
	"text/template"
)

// View maps placeholder names to values. Values are strings for
// interpolation and bools for conditional sections.
type View map[string]any

// Merge returns a new view with overrides applied on top of base.
// Neither input is modified.
func Merge(base, overrides View) View {
	merged := make(View, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Render executes text as a template against view.
func Render(text string, view View) (string, error) {
	tmpl, err := template.New("render").Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}
