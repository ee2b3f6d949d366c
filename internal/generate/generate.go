package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkgsmith-labs/pkgsmith/internal/fsutil"
	"github.com/pkgsmith-labs/pkgsmith/internal/gitrepo"
	"github.com/pkgsmith-labs/pkgsmith/internal/logging"
	"github.com/pkgsmith-labs/pkgsmith/internal/scaffold"
)

// commitMessage is used for the commit containing the generated files.
const commitMessage = "files generated by pkgsmith"

// Options are the caller-supplied flags for one generation run.
type Options struct {
	// Force allows overwriting an existing destination.
	Force bool

	// SSH selects the SSH remote URL form instead of HTTPS.
	SSH bool

	// BackupDir receives the package if relocation fails. Empty means a
	// fresh temporary directory is created on demand.
	BackupDir string
}

// Result reports where the package ended up and what was generated.
type Result struct {
	// Path is the final package location: the destination on success,
	// the backup location when relocation failed.
	Path string

	// BackedUp is true when Path is a backup location and the intended
	// destination was left untouched.
	BackedUp bool

	// Files are the generated relative paths, deduplicated.
	Files []string

	// Warnings are non-fatal notices: the backup reroute and the
	// multi-branch push reminder.
	Warnings []string
}

// Run generates a package named name from t and publishes it to
// <t.Dir>/<name>. All output is staged in a fresh temporary directory,
// committed to a newly initialized repository, and relocated in one move.
// Failures before relocation are fatal and leave the staging directory in
// place for inspection; a failed relocation reroutes the package to a
// backup location and is reported as a warning.
func Run(name string, t *scaffold.Template, opts Options) (*Result, error) {
	log := logging.Logger("generate")

	pkg := scaffold.NormalizeName(name)
	if pkg == "" {
		return nil, fmt.Errorf("empty package name")
	}

	dest := filepath.Join(t.Dir, pkg)
	if _, err := os.Stat(dest); err == nil && !opts.Force {
		return nil, fmt.Errorf("%s: %w", dest, ErrDestinationExists)
	}

	staging, err := os.MkdirTemp("", "pkgsmith-")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	pkgDir := filepath.Join(staging, pkg)
	log.Debug().Str("staging", pkgDir).Str("dest", dest).Msg("staging package")

	repo, err := setupRepository(pkgDir, pkg, t, opts.SSH)
	if err != nil {
		return nil, err
	}

	files, err := scaffold.GenerateAll(pkgDir, pkg, t)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	files = dedupe(files)
	log.Debug().Strs("files", files).Msg("generated files")

	if err := repo.Commit(files, commitMessage); err != nil {
		return nil, &SetupError{Step: "commit", Err: err}
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, &SetupError{Step: "branches", Err: err}
	}

	result := &Result{Files: files}

	if err := relocate(pkgDir, dest, opts.Force); err != nil {
		log.Warn().Err(err).Str("dest", dest).Msg("relocation failed, rerouting to backup")
		backupPath, backupErr := backup(pkgDir, pkg, opts.BackupDir)
		if backupErr != nil {
			return nil, fmt.Errorf("relocating to %s failed (%v) and backup failed: %w", dest, err, backupErr)
		}
		result.Path = backupPath
		result.BackedUp = true
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"could not move package to %s (%v); package saved at %s, destination untouched", dest, err, backupPath))
	} else {
		result.Path = dest
	}
	os.RemoveAll(staging)

	if len(branches) > 1 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"repository has branches %v; push them explicitly (git push --all origin)", branches))
	}

	log.Info().Str("path", result.Path).Int("files", len(files)).Msg("package generated")
	return result, nil
}

// setupRepository runs the version-control setup sequence against the
// staging package directory: init, local config, empty initial commit,
// origin remote, and the optional gh-pages branch.
func setupRepository(pkgDir, pkg string, t *scaffold.Template, ssh bool) (*gitrepo.Repo, error) {
	repo, err := gitrepo.Init(pkgDir)
	if err != nil {
		return nil, &SetupError{Step: "init", Err: err}
	}

	if err := repo.ApplyConfig(t.GitConfig); err != nil {
		return nil, &SetupError{Step: "config", Err: err}
	}

	if err := repo.EmptyCommit("initial empty commit"); err != nil {
		return nil, &SetupError{Step: "initial commit", Err: err}
	}

	url := gitrepo.RemoteURL(t.Host, t.User, pkg, ssh)
	if err := repo.AttachOrigin(url); err != nil {
		return nil, &SetupError{Step: "remote", Err: err}
	}

	if t.Plugins.NeedsPagesBranch() {
		if err := repo.CreatePagesBranch(); err != nil {
			return nil, &SetupError{Step: "gh-pages branch", Err: err}
		}
	}

	return repo, nil
}

// relocate moves the staged package directory to dest, creating
// intermediate destination parents. An existing destination is replaced
// only when force is set; the precondition check has already rejected
// that case otherwise.
func relocate(pkgDir, dest string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating destination parent: %w", err)
	}

	if force {
		if _, err := os.Stat(dest); err == nil {
			if err := os.RemoveAll(dest); err != nil {
				return fmt.Errorf("removing existing destination: %w", err)
			}
		}
	}

	if err := os.Rename(pkgDir, dest); err == nil {
		return nil
	}

	// Cross-filesystem fallback: copy to a sibling of the destination,
	// then finish with a same-filesystem rename so the destination is
	// never left partially written.
	tmp := dest + ".partial"
	if err := fsutil.CopyDir(pkgDir, tmp); err != nil {
		os.RemoveAll(tmp)
		return fmt.Errorf("copying package to destination filesystem: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.RemoveAll(tmp)
		return fmt.Errorf("moving package into place: %w", err)
	}
	os.RemoveAll(pkgDir)
	return nil
}

// backup moves the staged package into backupDir, or into a fresh
// temporary directory when backupDir is empty.
func backup(pkgDir, pkg, backupDir string) (string, error) {
	if backupDir == "" {
		dir, err := os.MkdirTemp("", "pkgsmith-backup-")
		if err != nil {
			return "", fmt.Errorf("creating backup directory: %w", err)
		}
		backupDir = dir
	} else if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory %s: %w", backupDir, err)
	}

	backupPath := filepath.Join(backupDir, pkg)
	if err := fsutil.Move(pkgDir, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}

// dedupe removes duplicate paths, preserving first-seen order.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
