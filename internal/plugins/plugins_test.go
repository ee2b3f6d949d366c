package plugins

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkgsmith-labs/pkgsmith/internal/render"
)

func testView() render.View {
	return render.View{
		"User":       "alice",
		"Version":    "1.0",
		"Documenter": false,
		"Codecov":    false,
		"Coveralls":  false,
		"After":      false,
	}
}

func TestTravis_GenerateFiles(t *testing.T) {
	dir := t.TempDir()

	files, err := (&Travis{}).GenerateFiles(dir, "Foo", testView())
	if err != nil {
		t.Fatalf("GenerateFiles() error: %v", err)
	}
	if len(files) != 1 || files[0] != ".travis.yml" {
		t.Fatalf("GenerateFiles() = %v, want [.travis.yml]", files)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".travis.yml"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "language: julia") {
		t.Errorf("missing julia language:\n%s", content)
	}
	if !strings.Contains(content, "- 1.0\n") {
		t.Errorf("missing floored version in build matrix:\n%s", content)
	}
	if strings.Contains(content, "after_success") {
		t.Errorf("after_success present without reporting plugins:\n%s", content)
	}
}

func TestTravis_Badges(t *testing.T) {
	badges, err := (&Travis{}).Badges("Foo", testView())
	if err != nil {
		t.Fatalf("Badges() error: %v", err)
	}
	if len(badges) != 1 {
		t.Fatalf("Badges() returned %d lines, want 1", len(badges))
	}
	if !strings.Contains(badges[0], "travis-ci.org/alice/Foo.jl") {
		t.Errorf("badge = %q", badges[0])
	}
}

func TestAppVeyor_GenerateFiles(t *testing.T) {
	dir := t.TempDir()

	files, err := (&AppVeyorCI{}).GenerateFiles(dir, "Foo", testView())
	if err != nil {
		t.Fatalf("GenerateFiles() error: %v", err)
	}
	if len(files) != 1 || files[0] != "appveyor.yml" {
		t.Fatalf("GenerateFiles() = %v, want [appveyor.yml]", files)
	}

	data, err := os.ReadFile(filepath.Join(dir, "appveyor.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "julia_version: 1.0") {
		t.Errorf("missing julia_version:\n%s", string(data))
	}
}

func TestCoveragePlugins_NoFiles(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []Plugin{&CoverallsCoverage{}, &CodecovCoverage{}} {
		files, err := p.GenerateFiles(dir, "Foo", testView())
		if err != nil {
			t.Fatalf("%s GenerateFiles() error: %v", p.Kind(), err)
		}
		if len(files) != 0 {
			t.Errorf("%s generated files %v, want none", p.Kind(), files)
		}
	}
}

func TestCoveragePlugins_IgnorePatterns(t *testing.T) {
	for _, p := range []Plugin{&CoverallsCoverage{}, &CodecovCoverage{}} {
		patterns := p.GitignorePatterns()
		want := []string{"*.jl.cov", "*.jl.*.cov", "*.jl.mem"}
		if len(patterns) != len(want) {
			t.Fatalf("%s patterns = %v, want %v", p.Kind(), patterns, want)
		}
		for i := range want {
			if patterns[i] != want[i] {
				t.Errorf("%s patterns[%d] = %q, want %q", p.Kind(), i, patterns[i], want[i])
			}
		}
	}
}

func TestDocumenter_GenerateFiles(t *testing.T) {
	dir := t.TempDir()

	files, err := (&DocumenterDocs{}).GenerateFiles(dir, "Foo", testView())
	if err != nil {
		t.Fatalf("GenerateFiles() error: %v", err)
	}
	if len(files) != 1 || files[0] != "docs/" {
		t.Fatalf("GenerateFiles() = %v, want [docs/]", files)
	}

	makejl, err := os.ReadFile(filepath.Join(dir, "docs", "make.jl"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(makejl), "using Documenter, Foo") {
		t.Errorf("make.jl content:\n%s", string(makejl))
	}
	if !strings.Contains(string(makejl), "github.com/alice/Foo.jl.git") {
		t.Errorf("make.jl missing deploy repo:\n%s", string(makejl))
	}

	if _, err := os.Stat(filepath.Join(dir, "docs", "src", "index.md")); err != nil {
		t.Fatalf("docs index missing: %v", err)
	}
}

func TestPages_Badges(t *testing.T) {
	badges, err := (&Pages{}).Badges("Foo", testView())
	if err != nil {
		t.Fatalf("Badges() error: %v", err)
	}
	if len(badges) != 1 || !strings.Contains(badges[0], "alice.github.io/Foo.jl") {
		t.Errorf("Badges() = %v", badges)
	}
}

func TestDocumenter_Badges_TwoLines(t *testing.T) {
	badges, err := (&DocumenterDocs{}).Badges("Foo", testView())
	if err != nil {
		t.Fatalf("Badges() error: %v", err)
	}
	if len(badges) != 2 {
		t.Fatalf("Badges() returned %d lines, want 2", len(badges))
	}
	if !strings.Contains(badges[0], "stable") || !strings.Contains(badges[1], "latest") {
		t.Errorf("Badges() = %v", badges)
	}
}
