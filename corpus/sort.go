package corpus

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yurkevych/parafii/core"
)

// PinnedRegion is always ordered first among regions.
const PinnedRegion = "Рівненська область"

// newCollator returns a collator for Ukrainian ordering. Collators carry
// internal buffers and are not safe for concurrent use, so each sort gets
// its own.
func newCollator() *collate.Collator {
	return collate.New(language.MustParse("uk"))
}

// SortRegions returns the regions in display order: the pinned region
// first, the OtherSentinel last, and the rest collated by Ukrainian rules.
// The input slice is never mutated.
func SortRegions(regions []core.Region) []core.Region {
	sorted := make([]core.Region, len(regions))
	copy(sorted, regions)

	c := newCollator()
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Name, sorted[j].Name
		switch {
		case a == PinnedRegion:
			return b != PinnedRegion
		case b == PinnedRegion:
			return false
		case a == core.OtherSentinel:
			return false
		case b == core.OtherSentinel:
			return true
		default:
			return c.CompareString(a, b) < 0
		}
	})
	return sorted
}

// SortParishes returns the parishes collated by title under Ukrainian
// rules. The input slice is never mutated.
func SortParishes(parishes []core.Parish) []core.Parish {
	sorted := make([]core.Parish, len(parishes))
	copy(sorted, parishes)

	c := newCollator()
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Title, sorted[j].Title) < 0
	})
	return sorted
}
