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


// Package search provides fuzzy, multi-field, ranked search over the
// flattened parish corpus.
//
// The Searcher type scores each record against the query with a bounded
// bitap alignment across three weighted fields (church settlement,
// primary settlement, derived settlements list), emits one match per
// field that contains the query, and ranks the deduplicated results by a
// composite distance-like score with Ukrainian collation as the
// tiebreaker.
//
// The corpus is injected at construction time and treated as read-only,
// so a Searcher is safe to use from concurrent requests.
package search
