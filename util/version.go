// Package util provides version comparison helpers for fix-version
// resolution. Ecosystem-specific parsers (npm, PyPI) are used where semver
// rules do not apply.
package util

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	npm "github.com/aquasecurity/go-npm-version/pkg"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/google/osv-scanner/pkg/models"
)

// ResolveFixVersions returns the remediation versions applicable to the
// installed component version. When no affected range matches the installed
// version, every fixed version named by the ranges is returned as a fallback
// so the UI still has something to show.
func ResolveFixVersions(installed string, allAffected []models.Affected) []string {
	if installed != "" {
		for _, affected := range allAffected {
			ecosystem := string(affected.Package.Ecosystem)
			for _, vrange := range affected.Ranges {
				if vrange.Type != models.RangeEcosystem && vrange.Type != models.RangeSemVer {
					continue
				}
				if !versionInRange(installed, vrange, ecosystem) {
					continue
				}
				if fixed := fixedVersions(vrange); len(fixed) > 0 {
					return fixed
				}
			}
		}
	}

	var all []string
	seen := make(map[string]bool)
	for _, affected := range allAffected {
		for _, vrange := range affected.Ranges {
			for _, v := range fixedVersions(vrange) {
				if !seen[v] {
					seen[v] = true
					all = append(all, v)
				}
			}
		}
	}
	return all
}

func fixedVersions(vrange models.Range) []string {
	var fixed []string
	for _, event := range vrange.Events {
		if event.Fixed != "" {
			fixed = append(fixed, event.Fixed)
		}
	}
	return fixed
}

// versionInRange checks whether version falls inside one OSV range. A range
// needs both a lower and an upper boundary; incomplete ranges never match, to
// avoid false positives.
func versionInRange(version string, vrange models.Range, ecosystem string) bool {
	var introduced, fixed, lastAffected string
	for _, event := range vrange.Events {
		if event.Introduced != "" {
			introduced = event.Introduced
			if introduced == "0" { // OSV's "from the beginning"
				introduced = "0.0.0"
			}
		}
		if event.Fixed != "" {
			fixed = event.Fixed
		}
		if event.LastAffected != "" {
			lastAffected = event.LastAffected
		}
	}

	if introduced == "" || (fixed == "" && lastAffected == "") {
		return false
	}

	if cmp, ok := CompareVersions(ecosystem, version, introduced); !ok || cmp < 0 {
		return false
	}
	if fixed != "" {
		if cmp, ok := CompareVersions(ecosystem, version, fixed); !ok || cmp >= 0 {
			return false
		}
		return true
	}
	cmp, ok := CompareVersions(ecosystem, version, lastAffected)
	return ok && cmp <= 0
}

// CompareVersions compares a and b under the ecosystem's version scheme.
// Returns (-1|0|1, true) on success; (0, false) when either side cannot be
// parsed under any scheme.
func CompareVersions(ecosystem, a, b string) (int, bool) {
	switch strings.ToLower(ecosystem) {
	case "npm":
		va, errA := npm.NewVersion(a)
		vb, errB := npm.NewVersion(b)
		if errA == nil && errB == nil {
			switch {
			case va.LessThan(vb):
				return -1, true
			case va.GreaterThan(vb):
				return 1, true
			default:
				return 0, true
			}
		}
	case "pypi":
		va, errA := pep440.Parse(a)
		vb, errB := pep440.Parse(b)
		if errA == nil && errB == nil {
			switch {
			case va.LessThan(vb):
				return -1, true
			case va.GreaterThan(vb):
				return 1, true
			default:
				return 0, true
			}
		}
	}

	// Default scheme: semver, tolerating a leading "v" or "go" prefix.
	va, errA := semver.NewVersion(strings.TrimPrefix(a, "go"))
	vb, errB := semver.NewVersion(strings.TrimPrefix(b, "go"))
	if errA != nil || errB != nil {
		return 0, false
	}
	return va.Compare(vb), true
}

// CompareVersionStrings orders two image version labels for display lists.
// Semver ordering when both sides parse, lexicographic otherwise.
func CompareVersionStrings(a, b string) int {
	if cmp, ok := CompareVersions("", a, b); ok {
		return cmp
	}
	return strings.Compare(a, b)
}
