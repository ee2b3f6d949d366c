package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkgsmith-labs/pkgsmith/internal/config"
	"github.com/pkgsmith-labs/pkgsmith/internal/generate"
	"github.com/pkgsmith-labs/pkgsmith/internal/plugins"
	"github.com/pkgsmith-labs/pkgsmith/internal/profile"
	"github.com/pkgsmith-labs/pkgsmith/internal/scaffold"
)

// Package names: a capitalized word, optionally with a .jl suffix.
var pkgNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.jl)?$`)

const defaultJuliaVersion = "1.0.0"

var (
	genDir        string
	genHost       string
	genUser       string
	genLicense    string
	genYears      string
	genAuthors    []string
	genJulia      string
	genPrecompile bool
	genRequires   []string
	genPlugins    []string
	genGitConfig  []string
	genProfile    string
	genForce      bool
	genSSH        bool
	genBackupDir  string
)

func init() {
	generateCmd = &cobra.Command{
		Use:   "generate <name>",
		Short: "Generate and publish a new Julia package",
		Long: `Generate a new Julia package: src/<Name>.jl, test/runtests.jl, REQUIRE,
README.md with badges, .gitignore, optional LICENSE, and plugin artifacts,
committed to a fresh git repository and published to <dir>/<Name>.

Examples:
  pkgsmith generate Example --user alice --license mit
  pkgsmith generate Example.jl --plugin travis --plugin codecov --ssh
  pkgsmith generate Example --profile ./pkgsmith.yaml --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !pkgNamePattern.MatchString(name) {
				return fmt.Errorf("invalid package name %q: must match pattern [A-Za-z][A-Za-z0-9_]*", name)
			}

			t, err := buildTemplate()
			if err != nil {
				return err
			}

			result, err := generate.Run(name, t, generate.Options{
				Force:     genForce,
				SSH:       genSSH,
				BackupDir: genBackupDir,
			})
			if err != nil {
				return err
			}

			printGenerateResult(result)
			return nil
		},
	}

	f := generateCmd.Flags()
	f.StringVar(&genDir, "dir", ".", "Parent directory the package is published into")
	f.StringVar(&genHost, "host", "", "Remote host (default: configured host or github.com)")
	f.StringVar(&genUser, "user", "", "Remote user/namespace (default: configured user)")
	f.StringVar(&genLicense, "license", "", "License identifier, empty for no LICENSE file")
	f.StringVar(&genYears, "years", "", "Copyright years (default: current year)")
	f.StringSliceVar(&genAuthors, "author", nil, "Author for the copyright line (repeatable)")
	f.StringVar(&genJulia, "julia", "", "Target Julia version (default: "+defaultJuliaVersion+")")
	f.BoolVar(&genPrecompile, "precompile", false, "Add a __precompile__() directive to the entrypoint")
	f.StringSliceVar(&genRequires, "require", nil, "Dependency requirement line (repeatable, order preserved)")
	f.StringSliceVar(&genPlugins, "plugin", nil, "Plugin to activate: travis, appveyor, coveralls, codecov, documenter, ghpages (repeatable)")
	f.StringSliceVar(&genGitConfig, "git-config", nil, "Repository config pair key=value (repeatable)")
	f.StringVar(&genProfile, "profile", "", "Profile file to load the template from")
	f.BoolVar(&genForce, "force", false, "Overwrite an existing destination")
	f.BoolVar(&genSSH, "ssh", false, "Use the SSH remote URL form")
	f.StringVar(&genBackupDir, "backup-dir", "", "Directory receiving the package if relocation fails")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd *cobra.Command

// buildTemplate assembles the generation template: profile file first (if
// given), then user configuration for unset fields, then flag overrides.
func buildTemplate() (*scaffold.Template, error) {
	config.Load()

	t := &scaffold.Template{Plugins: plugins.NewSet()}
	if genProfile != "" {
		p, err := profile.Load(genProfile)
		if err != nil {
			return nil, err
		}
		t, err = p.Template()
		if err != nil {
			return nil, err
		}
	}

	applyFlagOverrides(t)
	applyConfigDefaults(t)

	for _, name := range genPlugins {
		kind, ok := plugins.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown plugin %q (known: %v)", name, plugins.AllKinds())
		}
		p, err := plugins.New(kind)
		if err != nil {
			return nil, err
		}
		if err := t.Plugins.Add(p); err != nil {
			return nil, err
		}
	}

	for _, pair := range genGitConfig {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --git-config %q: expected key=value", pair)
		}
		if t.GitConfig == nil {
			t.GitConfig = make(map[string]string)
		}
		t.GitConfig[key] = value
	}

	if t.User == "" {
		return nil, fmt.Errorf("remote user required: pass --user or run `pkgsmith config set user <name>`")
	}
	return t, nil
}

func applyFlagOverrides(t *scaffold.Template) {
	if generateCmd.Flags().Changed("dir") || t.Dir == "" {
		t.Dir = genDir
	}
	if genHost != "" {
		t.Host = genHost
	}
	if genUser != "" {
		t.User = genUser
	}
	if genLicense != "" {
		t.License = genLicense
	}
	if genYears != "" {
		t.Years = genYears
	}
	if len(genAuthors) > 0 {
		t.Authors = genAuthors
	}
	if genJulia != "" {
		t.JuliaVersion = genJulia
	}
	if genPrecompile {
		t.Precompile = true
	}
	if len(genRequires) > 0 {
		t.Requires = append(t.Requires, genRequires...)
	}
}

func applyConfigDefaults(t *scaffold.Template) {
	if t.Host == "" {
		t.Host = config.Host()
	}
	if t.User == "" {
		t.User = config.Get(config.KeyUser)
	}
	if t.License == "" && genProfile == "" {
		t.License = config.Get(config.KeyLicense)
	}
	if t.Years == "" {
		t.Years = strconv.Itoa(time.Now().Year())
	}
	if len(t.Authors) == 0 {
		if author := config.Get(config.KeyAuthor); author != "" {
			t.Authors = []string{author}
		} else {
			t.Authors = []string{t.User}
		}
	}
	if t.JuliaVersion == "" {
		t.JuliaVersion = defaultJuliaVersion
	}

	// Commit identity defaults from user configuration.
	if t.GitConfig == nil {
		t.GitConfig = make(map[string]string)
	}
	if _, ok := t.GitConfig["user.name"]; !ok {
		if author := config.Get(config.KeyAuthor); author != "" {
			t.GitConfig["user.name"] = author
		}
	}
	if _, ok := t.GitConfig["user.email"]; !ok {
		if email := config.Get(config.KeyEmail); email != "" {
			t.GitConfig["user.email"] = email
		}
	}
}

func printGenerateResult(result *generate.Result) {
	if result.BackedUp {
		fmt.Printf("Package saved to backup location %s\n", result.Path)
	} else {
		fmt.Printf("Created package at %s\n", result.Path)
	}
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
