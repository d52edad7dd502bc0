package aggregate

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultConstraint is the version range sibling packages must satisfy.
const DefaultConstraint = ">= 1.0.0, < 2.0.0"

// checkVersion reports whether version satisfies c. A leading "v" is
// tolerated.
func checkVersion(c *semver.Constraints, version string) (bool, error) {
	if strings.TrimSpace(version) == "" {
		return false, fmt.Errorf("version is missing")
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version: %w", err)
	}
	return c.Check(v), nil
}
