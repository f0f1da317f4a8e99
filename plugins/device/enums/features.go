package enums

import "strings"

// LockFeature describes a bit-flag set of optional operations
// supported by a lock device. New features are added by taking
// the next unused power of two.
type LockFeature int

const (
	// FeatureOpen indicates support for opening the door latch.
	FeatureOpen LockFeature = 1 << iota
)

// Display names for known feature flags, ordered by bit position.
var featureNames = []struct {
	flag LockFeature
	name string
}{
	{FeatureOpen, "open"},
}

// HasFlag checks whether feature set contains certain flag.
func (i LockFeature) HasFlag(flag LockFeature) bool {
	return i&flag != 0
}

// String returns comma-separated list of feature names.
func (i LockFeature) String() string {
	names := make([]string, 0)
	for _, v := range featureNames {
		if i.HasFlag(v.flag) {
			names = append(names, v.name)
		}
	}

	return strings.Join(names, ",")
}
