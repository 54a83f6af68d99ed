// Copyright 2025 Oleh Yurkevych
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package parafii ties the data artifacts, the corpus and the fuzzy
// search engine together behind one entry point.
package parafii

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yurkevych/parafii/core"
	"github.com/yurkevych/parafii/corpus"
	"github.com/yurkevych/parafii/search"
)

// Artifact file names inside the data directory.
const (
	TreeFile    = "parafii_tree.json"
	CatalogFile = "catalog.json"
	FondFile    = "fond_P720.json"
)

// Index holds the loaded artifacts. Loading is fail-soft: a missing or
// malformed artifact degrades that part of the index to empty instead of
// failing, so a stale deployment still serves what it has.
type Index struct {
	records []core.ParishRecord
	catalog []core.CatalogParish
	listing []core.ArchiveCase
	regions []core.Region
	logger  *slog.Logger
}

// IndexOption configures an Index.
type IndexOption func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) IndexOption {
	return func(idx *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
		return nil
	}
}

// NewIndex loads the artifacts from dataDir and builds the search corpus.
// Catalog books of the digitized fond are enriched with document links
// from the scraped case listing.
func NewIndex(dataDir string, opts ...IndexOption) (*Index, error) {
	idx := &Index{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}

	if tree, err := loadArtifact(dataDir, TreeFile, corpus.LoadTree); err != nil {
		idx.logger.Warn("parish tree unavailable, search corpus is empty", "err", err)
	} else {
		idx.regions = corpus.SortRegions(tree)
		idx.records = dropInvalidRecords(corpus.Flatten(tree), idx.logger)
	}

	if catalog, err := loadArtifact(dataDir, CatalogFile, corpus.LoadCatalog); err != nil {
		idx.logger.Warn("catalog unavailable", "err", err)
	} else {
		idx.catalog = catalog
	}

	if listing, err := loadArtifact(dataDir, FondFile, corpus.LoadFondListing); err != nil {
		idx.logger.Warn("fond listing unavailable, books keep no document links", "err", err)
	} else {
		idx.listing = listing
	}

	matcher := corpus.Matcher{}
	for i := range idx.catalog {
		matcher.Enrich(&idx.catalog[i], idx.listing)
	}

	idx.logger.Info("index loaded",
		"parishes", len(idx.records), "catalogEntries", len(idx.catalog), "cases", len(idx.listing))
	return idx, nil
}

// dropInvalidRecords filters out flattened records that cannot be indexed.
// The tree occasionally carries entries with no title at all; they would
// never match a query and only pollute the id space.
func dropInvalidRecords(records []core.ParishRecord, logger *slog.Logger) []core.ParishRecord {
	kept := records[:0]
	for i := range records {
		if err := core.ValidateParishRecord(&records[i]); err != nil {
			logger.Warn("skipping unindexable parish", "err", err)
			continue
		}
		kept = append(kept, records[i])
	}
	return kept
}

func loadArtifact[T any](dataDir, name string, load func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(filepath.Join(dataDir, name))
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return load(f)
}

// Corpus returns the flattened search corpus. Callers must not modify it.
func (idx *Index) Corpus() []core.ParishRecord {
	return idx.records
}

// Regions returns the navigation tree, pinned region first and the
// catch-all bucket last.
func (idx *Index) Regions() []core.Region {
	return idx.regions
}

// Listing returns the scraped case listing.
func (idx *Index) Listing() []core.ArchiveCase {
	return idx.listing
}

// Parish looks up a catalog entry by parish ID.
func (idx *Index) Parish(id string) (core.CatalogParish, error) {
	for i := range idx.catalog {
		if idx.catalog[i].ID == id {
			return idx.catalog[i], nil
		}
	}
	return core.CatalogParish{}, fmt.Errorf("parish %q: %w", id, core.ErrParishNotFound)
}

// NewSearcher creates a fuzzy searcher over the index corpus.
func (idx *Index) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	records := idx.records
	if records == nil {
		records = []core.ParishRecord{}
	}
	return search.NewSearcher(records, opts...)
}

// Stats summarizes the loaded artifacts.
func (idx *Index) Stats() corpus.Statistics {
	return corpus.Stats(idx.records, idx.catalog)
}
