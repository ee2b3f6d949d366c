package scaffold

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Floor computes the "major.minor" constraint floor for a version string.
// A prerelease whose minor and patch are both zero keeps a trailing "-"
// marker instead of silently dropping the prerelease ("2.0.0-dev" →
// "2.0-"). This is a display/constraint computation, not a version
// comparison. A leading "v" is tolerated.
func Floor(version string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", version, err)
	}

	floored := fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	if v.Prerelease() != "" && v.Minor() == 0 && v.Patch() == 0 {
		floored += "-"
	}
	return floored, nil
}
