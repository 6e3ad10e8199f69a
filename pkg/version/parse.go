package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version represents a semantic version with major, minor, patch components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches version patterns like 1.2.3, v1.2, 5, etc.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Extract finds and parses the first version number in a string.
// It is used for tools whose --version banner varies, e.g.
// "GNU bash, version 5.2.21(1)-release" or "zsh 5.9 (x86_64-apple-darwin23.0)".
func Extract(s string) (Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, fmt.Errorf("no version found in: %q", strings.TrimSpace(s))
	}
	return fromMatches(matches[1], matches[2], matches[3]), nil
}

// ExtractNamed parses output of the form "<name> major.minor.patch",
// e.g. "Python 3.11.7". All three components are required.
func ExtractNamed(name, s string) (Version, error) {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s+(\d+)\.(\d+)\.(\d+)`)
	matches := re.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, fmt.Errorf("no %s version found in: %q", name, strings.TrimSpace(s))
	}
	return fromMatches(matches[1], matches[2], matches[3]), nil
}

func fromMatches(majorStr, minorStr, patchStr string) Version {
	major, _ := strconv.Atoi(majorStr)
	var minor, patch int
	if minorStr != "" {
		minor, _ = strconv.Atoi(minorStr)
	}
	if patchStr != "" {
		patch, _ = strconv.Atoi(patchStr)
	}
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Semver converts v into a Masterminds semver version.
func (v Version) Semver() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Patch), "", "") // #nosec G115 -- components come from \d+ matches
}
