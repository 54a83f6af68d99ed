package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yurkevych/parafii/core"
)

// Penalty added to the raw score depending on which field matched, and the
// bonus subtracted when the matched value starts with the query. Together
// they bias ranking toward church-settlement prefix hits.
const (
	penaltyChurchSettlement = 0.10
	penaltySettlement       = 0.20
	penaltySettlements      = 0.30

	startsWithBonus = 0.05
)

func fieldPenalty(field core.MatchField) float64 {
	switch field {
	case core.MatchFieldChurchSettlement:
		return penaltyChurchSettlement
	case core.MatchFieldSettlement:
		return penaltySettlement
	default:
		return penaltySettlements
	}
}

// Rank deduplicates field-level matches into one result per parish and
// orders them best first. For a parish with several matches the first one
// wins, so callers must pass matches in candidate order. The input slice is
// not modified.
func Rank(matches []*core.SearchMatch) []*core.SearchResult {
	results := make([]*core.SearchResult, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, match := range matches {
		if _, ok := seen[match.Parish.ID]; ok {
			continue
		}
		seen[match.Parish.ID] = struct{}{}

		score := match.RawScore + fieldPenalty(match.Field)
		if match.StartsWithQuery {
			score -= startsWithBonus
		}

		results = append(results, &core.SearchResult{
			Parish:          match.Parish,
			FinalScore:      score,
			MatchedField:    match.Field,
			MatchedValue:    match.MatchedValue,
			StartsWithQuery: match.StartsWithQuery,
		})
	}

	// Collators are not safe for concurrent use, so build one per call.
	collator := collate.New(language.MustParse("uk"))
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore < results[j].FinalScore
		}
		return collator.CompareString(results[i].Parish.DisplayName, results[j].Parish.DisplayName) < 0
	})

	return results
}
