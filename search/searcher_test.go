package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurkevych/parafii/core"
)

func testRecords() []core.ParishRecord {
	return []core.ParishRecord{
		{
			ID:                "kostopil-church",
			DisplayName:       "Свято-Михайлівська церква",
			ChurchSettlement:  "Костопіль",
			PrimarySettlement: "Костопіль",
			Settlements:       []string{"Костопіль"},
		},
		{
			ID:                "rivne-served",
			DisplayName:       "Свято-Покровська церква",
			ChurchSettlement:  "Рівне",
			PrimarySettlement: "Рівне",
			Settlements:       []string{"Костопільське", "Олександрія"},
		},
		{
			ID:                "zdolbuniv",
			DisplayName:       "Петропавлівська церква",
			ChurchSettlement:  "Здолбунів",
			PrimarySettlement: "Здолбунів",
			Settlements:       []string{"Здолбунів"},
		},
	}
}

func newTestSearcher(t *testing.T, opts ...Option) *Searcher {
	t.Helper()
	s, err := NewSearcher(testRecords(), opts...)
	require.NoError(t, err)
	return s
}

func TestNewSearcherRequiresCorpus(t *testing.T) {
	_, err := NewSearcher(nil)
	assert.ErrorIs(t, err, ErrNilCorpus)
}

func TestNewSearcherRejectsBadOptions(t *testing.T) {
	records := testRecords()

	_, err := NewSearcher(records, WithLimit(-1))
	assert.ErrorIs(t, err, ErrNegativeLimit)

	_, err = NewSearcher(records, WithMonitor(nil))
	assert.ErrorIs(t, err, ErrNilMonitor)

	_, err = NewSearcher(records, WithLogger(nil))
	assert.ErrorIs(t, err, ErrNilLogger)
}

func TestSearchShortQueryReturnsNothing(t *testing.T) {
	s := newTestSearcher(t)

	assert.Empty(t, s.Search(""))
	assert.Empty(t, s.Search("рв"))
	assert.Empty(t, s.Search("  рв  "), "surrounding whitespace does not count toward length")
}

func TestSearchMinimumLengthQueryIsEvaluated(t *testing.T) {
	s := newTestSearcher(t)

	results := s.Search("рів")
	require.NotEmpty(t, results, "a three-rune query must be evaluated")
	assert.Equal(t, "rivne-served", results[0].Parish.ID)
}

func TestSearchChurchHitOutranksServedSettlementHit(t *testing.T) {
	s := newTestSearcher(t)

	results := s.Search("костопіль")
	require.Len(t, results, 2)

	assert.Equal(t, "kostopil-church", results[0].Parish.ID)
	assert.Equal(t, core.MatchFieldChurchSettlement, results[0].MatchedField)
	assert.True(t, results[0].StartsWithQuery)
	assert.InDelta(t, 0.05, results[0].FinalScore, 1e-9)

	assert.Equal(t, "rivne-served", results[1].Parish.ID)
	assert.Equal(t, core.MatchFieldSettlements, results[1].MatchedField)
	assert.Equal(t, "Костопільське", results[1].MatchedValue)
	assert.InDelta(t, 0.25, results[1].FinalScore, 1e-9)
}

func TestSearchTypoCandidateWithoutContainmentReturnsNothing(t *testing.T) {
	s := newTestSearcher(t)

	// "костопил" aligns against "Костопіль" within the envelope, but no
	// field contains it verbatim, so the record reports no fields.
	assert.Empty(t, s.Search("костопил"))
	assert.Empty(t, s.Matches("костопил"))
}

func TestSearchResultsAreUniqueAndOrdered(t *testing.T) {
	s := newTestSearcher(t)

	results := s.Search("костопіль")
	seen := make(map[string]bool)
	for _, r := range results {
		assert.False(t, seen[r.Parish.ID], "parish %s appears twice", r.Parish.ID)
		seen[r.Parish.ID] = true
	}
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].FinalScore, results[i].FinalScore)
	}
}

func TestSearchLimit(t *testing.T) {
	s := newTestSearcher(t, WithLimit(1))

	results := s.Search("костопіль")
	require.Len(t, results, 1)
	assert.Equal(t, "kostopil-church", results[0].Parish.ID)
}

func TestSearchDoesNotMutateCorpus(t *testing.T) {
	records := testRecords()
	s, err := NewSearcher(records)
	require.NoError(t, err)

	s.Search("костопіль")
	s.Search("рівне")

	assert.Equal(t, testRecords(), records)
}

func TestMatchesEmitsFieldOrderPerRecord(t *testing.T) {
	s := newTestSearcher(t)

	matches := s.Matches("костопіль")
	require.NotEmpty(t, matches)

	// The best record matches on all three fields; its church settlement
	// entry must come first so deduplication keeps it.
	assert.Equal(t, "kostopil-church", matches[0].Parish.ID)
	assert.Equal(t, core.MatchFieldChurchSettlement, matches[0].Field)
}

type recordingMonitor struct {
	started    string
	candidates int
	fieldHits  int
	finished   int
}

func (m *recordingMonitor) Start(query string) { m.started = query }
func (m *recordingMonitor) AfterCandidateCollection(matches []*core.SearchMatch) {
	m.candidates = len(matches)
}
func (m *recordingMonitor) FieldHit(string, core.MatchField, float64) { m.fieldHits++ }
func (m *recordingMonitor) Finish(results []*core.SearchResult)       { m.finished = len(results) }

func TestSearchMonitorCallbacks(t *testing.T) {
	monitor := &recordingMonitor{}
	s := newTestSearcher(t, WithMonitor(monitor))

	results := s.Search("костопіль")

	assert.Equal(t, "костопіль", monitor.started)
	assert.Equal(t, monitor.candidates, monitor.fieldHits)
	assert.Equal(t, len(results), monitor.finished)
	assert.Greater(t, monitor.fieldHits, len(results), "multi-field records report more hits than results")
}
