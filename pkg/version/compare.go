package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Satisfies reports whether v matches a semver constraint such as ">= 3".
func (v Version) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return c.Check(v.Semver()), nil
}

// AtLeastMajor reports whether v's major version is at least major.
func (v Version) AtLeastMajor(major int) bool {
	ok, err := v.Satisfies(fmt.Sprintf(">= %d", major))
	return err == nil && ok
}
