// Package gitrepo wraps the go-git primitives used during package
// generation: repository init, local configuration, empty and staged
// commits, the origin remote, and the optional gh-pages branch.
package gitrepo

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	// DefaultBranch is the primary branch name for new repositories.
	DefaultBranch = "master"

	// PagesBranch is the branch created for gh-pages style publishing.
	PagesBranch = "gh-pages"

	fallbackAuthorName  = "pkgsmith"
	fallbackAuthorEmail = "pkgsmith@localhost"
)

// Repo is a repository under construction in the staging area.
type Repo struct {
	repo *git.Repository
}

// Init creates a new repository rooted at path.
func Init(path string) (*Repo, error) {
	repo, err := git.PlainInitWithOptions(path, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(DefaultBranch),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("initializing repository at %s: %w", path, err)
	}
	return &Repo{repo: repo}, nil
}

// Open opens an existing repository rooted at path.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return &Repo{repo: repo}, nil
}

// ApplyConfig sets every key/value pair in the repository's local
// configuration. Keys are dotted ("user.name", "branch.master.remote");
// they are applied in sorted order so the result is deterministic.
func (r *Repo) ApplyConfig(pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return fmt.Errorf("reading repository config: %w", err)
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		section, subsection, name, err := splitConfigKey(key)
		if err != nil {
			return err
		}
		if subsection == "" {
			cfg.Raw.Section(section).SetOption(name, pairs[key])
		} else {
			cfg.Raw.Section(section).Subsection(subsection).SetOption(name, pairs[key])
		}
	}

	if err := r.repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("writing repository config: %w", err)
	}
	return nil
}

// EmptyCommit creates a commit with no staged content.
func (r *Repo) EmptyCommit(msg string) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	_, err = w.Commit(msg, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author:            r.signature(),
	})
	if err != nil {
		return fmt.Errorf("creating empty commit: %w", err)
	}
	return nil
}

// Commit stages the given worktree-relative paths and creates a single
// commit containing all of them. Directory paths are staged recursively.
func (r *Repo) Commit(paths []string, msg string) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	for _, p := range paths {
		if _, err := w.Add(filepath.Clean(p)); err != nil {
			return fmt.Errorf("staging %s: %w", p, err)
		}
	}

	if _, err := w.Commit(msg, &git.CommitOptions{Author: r.signature()}); err != nil {
		return fmt.Errorf("committing staged files: %w", err)
	}
	return nil
}

// AttachOrigin creates the "origin" remote pointing at url. The remote
// handle is confined to this call; nothing retains it afterwards.
func (r *Repo) AttachOrigin(url string) error {
	_, err := r.repo.CreateRemote(&gitcfg.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{url},
	})
	if err != nil {
		return fmt.Errorf("attaching origin remote %s: %w", url, err)
	}
	return nil
}

// CreatePagesBranch creates the gh-pages branch with one empty commit on
// it, then switches back to the primary branch. The two branches share no
// generated content at this point.
func (r *Repo) CreatePagesBranch() error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := w.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(PagesBranch),
		Create: true,
	}); err != nil {
		return fmt.Errorf("creating %s branch: %w", PagesBranch, err)
	}

	if err := r.EmptyCommit("empty gh-pages commit"); err != nil {
		return err
	}

	if err := w.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(DefaultBranch),
	}); err != nil {
		return fmt.Errorf("switching back to %s: %w", DefaultBranch, err)
	}
	return nil
}

// Branches returns the short names of all local branches.
func (r *Repo) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating branches: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// CommitCount returns the number of commits reachable from HEAD.
func (r *Repo) CommitCount() (int, error) {
	head, err := r.repo.Head()
	if err != nil {
		return 0, fmt.Errorf("resolving HEAD: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return 0, fmt.Errorf("reading log: %w", err)
	}

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("iterating log: %w", err)
	}
	return count, nil
}

// RemoteURL computes the origin URL for a package: SSH form
// git@<host>:<user>/<pkg>.jl.git or HTTPS form https://<host>/<user>/<pkg>.jl.
func RemoteURL(host, user, pkg string, ssh bool) string {
	if ssh {
		return fmt.Sprintf("git@%s:%s/%s.jl.git", host, user, pkg)
	}
	return fmt.Sprintf("https://%s/%s/%s.jl", host, user, pkg)
}

// signature builds the commit author from the repository's user section,
// with fixed fallbacks when it is not configured.
func (r *Repo) signature() *object.Signature {
	name, email := fallbackAuthorName, fallbackAuthorEmail

	if cfg, err := r.repo.Config(); err == nil {
		user := cfg.Raw.Section("user")
		if v := user.Option("name"); v != "" {
			name = v
		}
		if v := user.Option("email"); v != "" {
			email = v
		}
	}

	return &object.Signature{Name: name, Email: email, When: time.Now()}
}

// splitConfigKey splits a dotted git config key into section, optional
// subsection, and option name.
func splitConfigKey(key string) (section, subsection, name string, err error) {
	parts := strings.Split(key, ".")
	switch len(parts) {
	case 2:
		return parts[0], "", parts[1], nil
	case 3:
		return parts[0], parts[1], parts[2], nil
	default:
		return "", "", "", fmt.Errorf("invalid git config key %q", key)
	}
}
