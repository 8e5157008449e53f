package domain

import (
	"slices"

	"github.com/Masterminds/semver/v3"
)

// SortVersions returns the valid semantic versions in descending order.
// Strings that do not parse are dropped. Equal versions keep their first occurrence only.
func SortVersions(raw []string) []*semver.Version {
	var versions []*semver.Version
	for _, r := range raw {
		v, err := semver.NewVersion(r)
		if err != nil {
			continue
		}
		if slices.ContainsFunc(versions, v.Equal) {
			continue
		}
		versions = append(versions, v)
	}

	slices.SortStableFunc(versions, func(a, b *semver.Version) int {
		return b.Compare(a)
	})

	return versions
}

// ResolveLatest picks the highest semantic version in raw.
// The returned string is the original spelling of the winning entry.
func ResolveLatest(raw []string) (string, bool) {
	versions := SortVersions(raw)
	if len(versions) == 0 {
		return "", false
	}
	return versions[0].Original(), true
}
