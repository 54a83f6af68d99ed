package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurkevych/parafii/core"
)

func TestRankKeepsFirstMatchPerParish(t *testing.T) {
	matches := []*core.SearchMatch{
		{
			Parish:       core.ParishRecord{ID: "p1", DisplayName: "Перша"},
			Field:        core.MatchFieldChurchSettlement,
			MatchedValue: "Костопіль",
			RawScore:     0.1,
		},
		{
			Parish:       core.ParishRecord{ID: "p1", DisplayName: "Перша"},
			Field:        core.MatchFieldSettlements,
			MatchedValue: "Костопіль",
			RawScore:     0.1,
		},
	}

	results := Rank(matches)
	require.Len(t, results, 1)
	assert.Equal(t, core.MatchFieldChurchSettlement, results[0].MatchedField)
	assert.InDelta(t, 0.2, results[0].FinalScore, 1e-9)
}

func TestRankFieldPenalties(t *testing.T) {
	mk := func(id string, field core.MatchField) *core.SearchMatch {
		return &core.SearchMatch{
			Parish:   core.ParishRecord{ID: id, DisplayName: id},
			Field:    field,
			RawScore: 0.1,
		}
	}

	results := Rank([]*core.SearchMatch{
		mk("a", core.MatchFieldSettlements),
		mk("b", core.MatchFieldSettlement),
		mk("c", core.MatchFieldChurchSettlement),
	})
	require.Len(t, results, 3)

	assert.Equal(t, "c", results[0].Parish.ID)
	assert.Equal(t, "b", results[1].Parish.ID)
	assert.Equal(t, "a", results[2].Parish.ID)
}

func TestRankStartsWithBonus(t *testing.T) {
	plain := &core.SearchMatch{
		Parish:   core.ParishRecord{ID: "plain", DisplayName: "plain"},
		Field:    core.MatchFieldChurchSettlement,
		RawScore: 0.1,
	}
	prefixed := &core.SearchMatch{
		Parish:          core.ParishRecord{ID: "prefixed", DisplayName: "prefixed"},
		Field:           core.MatchFieldChurchSettlement,
		RawScore:        0.1,
		StartsWithQuery: true,
	}

	results := Rank([]*core.SearchMatch{plain, prefixed})
	require.Len(t, results, 2)
	assert.Equal(t, "prefixed", results[0].Parish.ID)
	assert.InDelta(t, startsWithBonus, results[1].FinalScore-results[0].FinalScore, 1e-9)
}

func TestRankTieBreaksByUkrainianName(t *testing.T) {
	mk := func(id, name string) *core.SearchMatch {
		return &core.SearchMatch{
			Parish:   core.ParishRecord{ID: id, DisplayName: name},
			Field:    core.MatchFieldChurchSettlement,
			RawScore: 0.1,
		}
	}

	// ґ sorts between г and д in Ukrainian even though its code point is
	// higher than both.
	results := Rank([]*core.SearchMatch{
		mk("d", "Дубно"),
		mk("g", "Ґвіздів"),
		mk("h", "Гоща"),
	})
	require.Len(t, results, 3)

	assert.Equal(t, "h", results[0].Parish.ID)
	assert.Equal(t, "g", results[1].Parish.ID)
	assert.Equal(t, "d", results[2].Parish.ID)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]*core.SearchMatch{}))
}
