package parafii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurkevych/parafii/core"
)

func TestNewIndexLoadsArtifacts(t *testing.T) {
	idx, err := NewIndex("testdata")
	require.NoError(t, err)

	records := idx.Corpus()
	require.Len(t, records, 3)

	regions := idx.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, "Рівненська область", regions[0].Name)
	assert.Equal(t, core.OtherSentinel, regions[1].Name)

	assert.Len(t, idx.Listing(), 2)
}

func TestIndexCorpusDerivedFields(t *testing.T) {
	idx, err := NewIndex("testdata")
	require.NoError(t, err)

	var synagogue *core.ParishRecord
	for i := range idx.Corpus() {
		if idx.Corpus()[i].DisplayName == "Синагога" {
			synagogue = &idx.Corpus()[i]
		}
	}
	require.NotNil(t, synagogue)

	assert.NotEmpty(t, synagogue.ID, "records without an ID get a generated one")
	assert.Equal(t, core.ReligionJudaism, synagogue.Religion)
	assert.Equal(t, []string{"Березне"}, synagogue.Settlements)
	assert.Empty(t, synagogue.RegionName, "catch-all bucket names are blanked")
}

func TestIndexEnrichesCatalogBooks(t *testing.T) {
	idx, err := NewIndex("testdata")
	require.NoError(t, err)

	parish, err := idx.Parish("kostopil-mykhailivska")
	require.NoError(t, err)

	births := parish.Books[core.BookBirths]
	require.Len(t, births, 2)
	assert.Equal(t, "https://rv.archives.gov.ua/files/1-15.pdf", births[0].URL)
	assert.Equal(t, "Метрична книга про народження, 1921–1923", births[0].Title)
	assert.Empty(t, births[1].URL, "books of other fonds are not linked")

	divorces := parish.Books[core.BookDivorces]
	require.Len(t, divorces, 1, "legacy category names are remapped")
	assert.Equal(t, "https://rv.archives.gov.ua/files/2-3.pdf", divorces[0].URL)
}

func TestIndexParishNotFound(t *testing.T) {
	idx, err := NewIndex("testdata")
	require.NoError(t, err)

	_, err = idx.Parish("absent")
	assert.ErrorIs(t, err, core.ErrParishNotFound)
}

func TestIndexSearch(t *testing.T) {
	idx, err := NewIndex("testdata")
	require.NoError(t, err)

	searcher, err := idx.NewSearcher()
	require.NoError(t, err)

	results := searcher.Search("костопіль")
	require.NotEmpty(t, results)
	assert.Equal(t, "kostopil-mykhailivska", results[0].Parish.ID)
}

func TestIndexStats(t *testing.T) {
	idx, err := NewIndex("testdata")
	require.NoError(t, err)

	stats := idx.Stats()
	assert.Equal(t, 3, stats.Parishes)
	assert.Equal(t, 2, stats.ByReligion[core.ReligionOrthodox])
	assert.Equal(t, 1, stats.ByReligion[core.ReligionJudaism])
	assert.Equal(t, 3, stats.Books[core.BookBirths])
	assert.Equal(t, 1, stats.Books[core.BookDivorces])
}

func TestIndexFailSoftOnMissingArtifacts(t *testing.T) {
	idx, err := NewIndex(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, idx.Corpus())
	assert.Empty(t, idx.Regions())
	assert.Empty(t, idx.Listing())

	searcher, err := idx.NewSearcher()
	require.NoError(t, err)
	assert.Empty(t, searcher.Search("костопіль"))
}
