// Package version models release identifiers. Versions are opaque: equality
// and ordering are by identifier alone, never by release metadata.
package version

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// Version identifies one release.
type Version string

func (v Version) String() string {
	return string(v)
}

// Compare orders two versions. Identifiers that parse as semantic versions
// order semantically and before every non-semver identifier; non-semver
// identifiers order lexicographically among themselves. Partitioning the two
// groups keeps the order total, which Sort relies on.
func Compare(a, b Version) int {
	ca, cb := canonical(a), canonical(b)
	switch {
	case ca != "" && cb != "":
		if c := semver.Compare(ca, cb); c != 0 {
			return c
		}
	case ca != "":
		return -1
	case cb != "":
		return 1
	}
	return strings.Compare(string(a), string(b))
}

// Sort sorts versions in ascending release order. The ancestry engine never
// sorts its input; callers use Sort to build the chronological collection it
// requires.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})
}

func canonical(v Version) string {
	s := string(v)
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	if !semver.IsValid(s) {
		return ""
	}
	return s
}
