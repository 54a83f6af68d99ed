// Copyright 2025 Oleh Yurkevych
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"log/slog"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yurkevych/parafii/core"
)

// MinQueryLength is the shortest query, in runes after trimming, that the
// engine will evaluate. Shorter queries return no results.
const MinQueryLength = 3

// Field weights. A weight below 1 softens that field's alignment score, so
// a hit on the church settlement always outranks an equally good hit on a
// served settlement.
const (
	weightChurchSettlement = 1.0
	weightSettlement       = 0.8
	weightSettlements      = 0.6
)

// Searcher runs fuzzy multi-field search over a flattened parish corpus.
// The corpus is treated as read only, so a single Searcher is safe for
// concurrent use.
type Searcher struct {
	records []core.ParishRecord
	logger  *slog.Logger
	monitor SearchMonitor
	limit   int
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			return ErrNilLogger
		}
		s.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor receiving callbacks at each search stage.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			return ErrNilMonitor
		}
		s.monitor = monitor
		return nil
	}
}

// WithLimit caps the number of ranked results returned by Search.
// Zero, the default, means no cap.
func WithLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit < 0 {
			return ErrNegativeLimit
		}
		s.limit = limit
		return nil
	}
}

// NewSearcher creates a searcher over the given records. The slice is not
// copied and must not be mutated while the searcher is in use.
func NewSearcher(records []core.ParishRecord, opts ...Option) (*Searcher, error) {
	if records == nil {
		return nil, ErrNilCorpus
	}

	s := &Searcher{
		records: records,
		logger:  slog.Default(),
		monitor: &noopMonitor{},
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search evaluates the query against the corpus and returns ranked,
// per-parish results, best first.
func (s *Searcher) Search(query string) []*core.SearchResult {
	s.monitor.Start(query)

	matches := s.Matches(query)
	s.monitor.AfterCandidateCollection(matches)

	results := Rank(matches)
	if s.limit > 0 && len(results) > s.limit {
		results = results[:s.limit]
	}

	s.logger.Debug("search finished",
		"query", query, "matches", len(matches), "results", len(results))
	s.monitor.Finish(results)

	return results
}

// candidate is one record that passed the acceptance envelope on at least
// one field. score is the best weighted field score, lower is better.
type candidate struct {
	record *core.ParishRecord
	score  float64
}

// Matches collects every field-level match for the query, ordered by
// candidate record score ascending and, within a record, by field. A record
// becomes a candidate when any field aligns within the acceptance envelope,
// but a field is reported only when it actually contains the query;
// a typo-only candidate therefore contributes no matches. Queries shorter
// than MinQueryLength produce no matches.
func (s *Searcher) Matches(query string) []*core.SearchMatch {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return []*core.SearchMatch{}
	}
	pattern := []rune(strings.ToLower(trimmed))

	candidates := make([]candidate, 0, 16)
	for i := range s.records {
		record := &s.records[i]
		if score, ok := recordScore(pattern, record); ok {
			candidates = append(candidates, candidate{record: record, score: score})
		}
	}

	// Stable keeps corpus order among equally scored records, which the
	// downstream keep-first deduplication relies on.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	lowerQuery := string(pattern)
	matches := make([]*core.SearchMatch, 0, len(candidates))
	for _, cand := range candidates {
		emit := func(field core.MatchField, value string) {
			lower := strings.ToLower(value)
			if !strings.Contains(lower, lowerQuery) {
				return
			}
			s.monitor.FieldHit(cand.record.ID, field, cand.score)
			matches = append(matches, &core.SearchMatch{
				Parish:          *cand.record,
				Field:           field,
				MatchedValue:    value,
				RawScore:        cand.score,
				StartsWithQuery: strings.HasPrefix(lower, lowerQuery),
			})
		}

		emit(core.MatchFieldChurchSettlement, cand.record.ChurchSettlement)
		emit(core.MatchFieldSettlement, cand.record.PrimarySettlement)
		for _, name := range cand.record.Settlements {
			emit(core.MatchFieldSettlements, name)
		}
	}

	return matches
}

// recordScore aligns the pattern against every searchable field and
// returns the best weighted score, or false when no field passes the
// acceptance envelope.
func recordScore(pattern []rune, record *core.ParishRecord) (float64, bool) {
	best := math.Inf(1)

	consider := func(value string, weight float64) {
		if value == "" {
			return
		}
		score, ok := fuzzyScore(pattern, []rune(strings.ToLower(value)))
		if !ok {
			return
		}
		if weighted := math.Pow(score, weight); weighted < best {
			best = weighted
		}
	}

	consider(record.ChurchSettlement, weightChurchSettlement)
	consider(record.PrimarySettlement, weightSettlement)
	for _, name := range record.Settlements {
		consider(name, weightSettlements)
	}

	return best, !math.IsInf(best, 1)
}
