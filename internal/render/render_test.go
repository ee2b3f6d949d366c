package render

import (
	"strings"
	"testing"
)

func TestRender_Interpolation(t *testing.T) {
	out, err := Render("Hello {{.Name}}!", View{"Name": "world"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if out != "Hello world!" {
		t.Fatalf("Render() = %q, want %q", out, "Hello world!")
	}
}

func TestRender_MissingConditionalIsFalse(t *testing.T) {
	out, err := Render("{{if .Missing}}yes{{else}}no{{end}}", View{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if out != "no" {
		t.Fatalf("Render() = %q, want %q", out, "no")
	}
}

func TestRender_PresentConditional(t *testing.T) {
	out, err := Render("{{if .Flag}}on{{end}}", View{"Flag": true})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if out != "on" {
		t.Fatalf("Render() = %q, want %q", out, "on")
	}
}

func TestRender_InvalidTemplate(t *testing.T) {
	if _, err := Render("{{if}}", View{}); err == nil {
		t.Fatal("Render() succeeded on invalid template, want error")
	}
	if _, err := Render("{{.Unclosed", View{}); err == nil {
		t.Fatal("Render() succeeded on unclosed action, want error")
	}
}

func TestMerge(t *testing.T) {
	base := View{"A": "base", "B": "base"}
	overrides := View{"B": "override", "C": "new"}

	merged := Merge(base, overrides)

	if merged["A"] != "base" || merged["B"] != "override" || merged["C"] != "new" {
		t.Fatalf("Merge() = %v", merged)
	}
	if base["B"] != "base" {
		t.Fatal("Merge() mutated base view")
	}
}

func TestRender_OverridesWinOverDefaults(t *testing.T) {
	view := Merge(View{"User": "default"}, View{"User": "custom"})
	out, err := Render("{{.User}}", view)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "custom") {
		t.Fatalf("Render() = %q, want override value", out)
	}
}
