package corpus

import (
	"github.com/yurkevych/parafii/core"
)

// Flatten walks the nested region/district/hromada/settlement/parish tree
// depth-first and produces the flat list of searchable parish records.
//
// Each record's Settlements list is derived from the parish's raw
// settlements field via NormalizeSettlements, and PrimarySettlement comes
// from the enclosing settlement node. Location-path components equal to
// the OtherSentinel become empty strings so that those parishes stay out
// of region-based display but remain indexed.
//
// A nil or empty tree yields an empty slice: search availability degrades
// to "no results" instead of failing.
func Flatten(tree []core.Region) []core.ParishRecord {
	records := make([]core.ParishRecord, 0, countParishes(tree))
	for _, region := range tree {
		for _, district := range region.Districts {
			for _, hromada := range district.Hromadas {
				for _, settlement := range hromada.Settlements {
					for _, parish := range settlement.Parafii {
						records = append(records, flattenParish(parish, region.Name, district.Name, hromada.Name, settlement.Name))
					}
				}
			}
		}
	}
	return records
}

func flattenParish(parish core.Parish, region, district, hromada, settlement string) core.ParishRecord {
	id := parish.ID
	if id == "" {
		id = core.IDFromContent(parish.Title + "|" + parish.ChurchSettlement)
	}
	return core.ParishRecord{
		ID:                id,
		DisplayName:       parish.Title,
		Religion:          core.ParseReligion(parish.Religion),
		ChurchSettlement:  parish.ChurchSettlement,
		SettlementsRaw:    parish.Settlements,
		Settlements:       NormalizeSettlements(parish.Settlements),
		PrimarySettlement: blankSentinel(settlement),
		RegionName:        blankSentinel(region),
		DistrictName:      blankSentinel(district),
		HromadaName:       blankSentinel(hromada),
	}
}

// blankSentinel hides the OtherSentinel from display fields.
func blankSentinel(name string) string {
	if name == core.OtherSentinel {
		return ""
	}
	return name
}

func countParishes(tree []core.Region) int {
	n := 0
	for _, region := range tree {
		for _, district := range region.Districts {
			for _, hromada := range district.Hromadas {
				for _, settlement := range hromada.Settlements {
					n += len(settlement.Parafii)
				}
			}
		}
	}
	return n
}
