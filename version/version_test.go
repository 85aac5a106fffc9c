package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		description string
		a, b        Version
		want        int
	}{
		{description: "equal", a: "1.20.1", b: "1.20.1", want: 0},
		{description: "semantic ordering", a: "1.9", b: "1.10", want: -1},
		{description: "patch ordering", a: "1.20.2", b: "1.20.1", want: 1},
		{description: "pre-release before release", a: "1.20.0-rc1", b: "1.20.0", want: -1},
		{description: "non-semver compares lexicographically", a: "20w06a", b: "20w07a", want: -1},
		{description: "semver orders before non-semver", a: "1.20", b: "20w06a", want: -1},
		{description: "non-semver orders after semver", a: "20w06a", b: "1.20", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestSort(t *testing.T) {
	versions := []Version{"1.10", "1.9.4", "1.2", "1.9"}
	Sort(versions)
	assert.Equal(t, []Version{"1.2", "1.9", "1.9.4", "1.10"}, versions)
}

func TestCompare_MixedSetStaysTransitive(t *testing.T) {
	// "1.9" and "1.10" order semantically while "1.5x" is not semver; the
	// semver-first partition must keep all three pairs consistent instead
	// of cycling through the lexicographic fallback
	assert.Negative(t, Compare("1.9", "1.10"))
	assert.Negative(t, Compare("1.10", "1.5x"))
	assert.Negative(t, Compare("1.9", "1.5x"))

	versions := []Version{"1.5x", "1.10", "20w06a", "1.9"}
	Sort(versions)
	assert.Equal(t, []Version{"1.9", "1.10", "1.5x", "20w06a"}, versions)
}
