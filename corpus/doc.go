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


// Package corpus turns the raw data artifacts into the search-facing corpus.
//
// It provides:
//   - NormalizeSettlements, the settlement name normalizer that strips
//     historical administrative qualifiers and splits compound lists
//   - Flatten, which walks the nested region/district/hromada/settlement
//     tree into flat parish records
//   - loaders for the three data artifacts (parish tree, catalog, fond
//     listing), including the legacy book-category remap and the
//     fond-scoped document URL enrichment
//   - display ordering with Ukrainian collation and corpus statistics
//
// Everything here is pure computation over immutable inputs; loaders read
// from the supplied reader once and never cache.
package corpus
