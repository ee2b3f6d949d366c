package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
)

func initRepo(t *testing.T) (*Repo, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := Init(dir)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return repo, dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInitAndOpen(t *testing.T) {
	_, dir := initRepo(t)

	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Fatalf(".git directory missing: %v", err)
	}
	if _, err := Open(dir); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
}

func TestOpen_NotARepository(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("Open() succeeded on a plain directory, want error")
	}
}

func TestApplyConfig(t *testing.T) {
	repo, _ := initRepo(t)

	err := repo.ApplyConfig(map[string]string{
		"user.name":          "Alice",
		"user.email":         "alice@example.com",
		"branch.master.note": "kept",
	})
	if err != nil {
		t.Fatalf("ApplyConfig() error: %v", err)
	}

	cfg, err := repo.repo.Config()
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Raw.Section("user").Option("name"); got != "Alice" {
		t.Errorf("user.name = %q, want %q", got, "Alice")
	}
	if got := cfg.Raw.Section("user").Option("email"); got != "alice@example.com" {
		t.Errorf("user.email = %q", got)
	}
	if got := cfg.Raw.Section("branch").Subsection("master").Option("note"); got != "kept" {
		t.Errorf("branch.master.note = %q", got)
	}
}

func TestApplyConfig_InvalidKey(t *testing.T) {
	repo, _ := initRepo(t)

	if err := repo.ApplyConfig(map[string]string{"noperiod": "x"}); err == nil {
		t.Fatal("ApplyConfig() accepted key without section, want error")
	}
	if err := repo.ApplyConfig(map[string]string{"a.b.c.d": "x"}); err == nil {
		t.Fatal("ApplyConfig() accepted four-part key, want error")
	}
}

func TestEmptyCommit(t *testing.T) {
	repo, _ := initRepo(t)

	if err := repo.EmptyCommit("initial"); err != nil {
		t.Fatalf("EmptyCommit() error: %v", err)
	}

	count, err := repo.CommitCount()
	if err != nil {
		t.Fatalf("CommitCount() error: %v", err)
	}
	if count != 1 {
		t.Fatalf("CommitCount() = %d, want 1", count)
	}
}

func TestCommit_StagesFilesAndDirectories(t *testing.T) {
	repo, dir := initRepo(t)
	writeFile(t, dir, "REQUIRE", "julia 1.0\n")
	writeFile(t, dir, "src/Foo.jl", "module Foo\nend\n")

	if err := repo.EmptyCommit("initial"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Commit([]string{"REQUIRE", "src/"}, "generated files"); err != nil {
		t.Fatalf("Commit() error: %v", err)
	}

	count, err := repo.CommitCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("CommitCount() = %d, want 2", count)
	}
}

func TestCommit_UsesConfiguredAuthor(t *testing.T) {
	repo, _ := initRepo(t)
	if err := repo.ApplyConfig(map[string]string{
		"user.name":  "Alice",
		"user.email": "alice@example.com",
	}); err != nil {
		t.Fatal(err)
	}
	if err := repo.EmptyCommit("initial"); err != nil {
		t.Fatal(err)
	}

	head, err := repo.repo.Head()
	if err != nil {
		t.Fatal(err)
	}
	commit, err := repo.repo.CommitObject(head.Hash())
	if err != nil {
		t.Fatal(err)
	}
	if commit.Author.Name != "Alice" || commit.Author.Email != "alice@example.com" {
		t.Fatalf("author = %q <%q>", commit.Author.Name, commit.Author.Email)
	}
}

func TestCommit_FallbackAuthor(t *testing.T) {
	repo, _ := initRepo(t)
	if err := repo.EmptyCommit("initial"); err != nil {
		t.Fatal(err)
	}

	head, err := repo.repo.Head()
	if err != nil {
		t.Fatal(err)
	}
	commit, err := repo.repo.CommitObject(head.Hash())
	if err != nil {
		t.Fatal(err)
	}
	if commit.Author.Name != fallbackAuthorName || commit.Author.Email != fallbackAuthorEmail {
		t.Fatalf("author = %q <%q>, want fallbacks", commit.Author.Name, commit.Author.Email)
	}
}

func TestAttachOrigin(t *testing.T) {
	repo, _ := initRepo(t)

	url := "https://github.com/alice/Foo.jl"
	if err := repo.AttachOrigin(url); err != nil {
		t.Fatalf("AttachOrigin() error: %v", err)
	}

	remote, err := repo.repo.Remote("origin")
	if err != nil {
		t.Fatalf("origin remote missing: %v", err)
	}
	if got := remote.Config().URLs[0]; got != url {
		t.Errorf("origin URL = %q, want %q", got, url)
	}

	if err := repo.AttachOrigin(url); err == nil {
		t.Fatal("AttachOrigin() succeeded twice, want error")
	}
}

func TestCreatePagesBranch(t *testing.T) {
	repo, _ := initRepo(t)
	if err := repo.EmptyCommit("initial"); err != nil {
		t.Fatal(err)
	}

	if err := repo.CreatePagesBranch(); err != nil {
		t.Fatalf("CreatePagesBranch() error: %v", err)
	}

	branches, err := repo.Branches()
	if err != nil {
		t.Fatalf("Branches() error: %v", err)
	}
	if len(branches) != 2 || branches[0] != PagesBranch || branches[1] != DefaultBranch {
		t.Fatalf("Branches() = %v, want [%s %s]", branches, PagesBranch, DefaultBranch)
	}

	head, err := repo.repo.Head()
	if err != nil {
		t.Fatal(err)
	}
	if head.Name().Short() != DefaultBranch {
		t.Fatalf("HEAD on %q after pages branch, want %q", head.Name().Short(), DefaultBranch)
	}
}

func TestBranches_SingleBranch(t *testing.T) {
	repo, _ := initRepo(t)
	if err := repo.EmptyCommit("initial"); err != nil {
		t.Fatal(err)
	}

	branches, err := repo.Branches()
	if err != nil {
		t.Fatal(err)
	}
	if len(branches) != 1 || branches[0] != DefaultBranch {
		t.Fatalf("Branches() = %v, want [%s]", branches, DefaultBranch)
	}
}

func TestRemoteURL(t *testing.T) {
	cases := []struct {
		name string
		ssh  bool
		want string
	}{
		{"https", false, "https://github.com/alice/Foo.jl"},
		{"ssh", true, "git@github.com:alice/Foo.jl.git"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemoteURL("github.com", "alice", "Foo", tc.ssh)
			if got != tc.want {
				t.Fatalf("RemoteURL() = %q, want %q", got, tc.want)
			}
		})
	}
}
