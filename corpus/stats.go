package corpus

import "github.com/yurkevych/parafii/core"

// Statistics summarizes the indexed corpus and the catalog's book records.
type Statistics struct {
	Parishes    int
	Settlements int
	ByReligion  map[core.Religion]int
	ByRegion    map[string]int
	Books       map[core.BookCategory]int
}

// Stats computes corpus statistics. Records from the OtherSentinel
// hierarchy are counted under an empty region name.
func Stats(records []core.ParishRecord, catalog []core.CatalogParish) Statistics {
	stats := Statistics{
		Parishes:   len(records),
		ByReligion: make(map[core.Religion]int),
		ByRegion:   make(map[string]int),
		Books:      make(map[core.BookCategory]int),
	}

	seen := make(map[string]struct{})
	for _, record := range records {
		stats.ByReligion[record.Religion]++
		stats.ByRegion[record.RegionName]++
		for _, name := range record.Settlements {
			seen[name] = struct{}{}
		}
	}
	stats.Settlements = len(seen)

	for _, parish := range catalog {
		for category, books := range parish.Books {
			stats.Books[category] += len(books)
		}
	}

	return stats
}
